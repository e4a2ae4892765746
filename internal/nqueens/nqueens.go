// Package nqueens wires the dancing-links solver façade to the n-queens
// problem: one candidate row per board square, strict row/column
// constraints, and optional diagonal constraints (a diagonal may hold at
// most one queen, but need not hold one).
package nqueens

import "github.com/kpitt/dlxcover/internal/solver"

// Square is a candidate queen placement.
type Square struct {
	Row, Col int
}

type constraintKind int

const (
	horizontal constraintKind = iota
	vertical
	diagonalNE
	diagonalNW
)

// Constraint is one row/column/diagonal requirement. NE and NW diagonals are
// numbered so that 0 is the board's main diagonal in that direction.
type Constraint struct {
	Kind constraintKind
	Idx  int
}

func diagNE(sq Square) int { return sq.Col - sq.Row }

func diagNW(sq Square, n int) int {
	invCol := n - 1 - sq.Col
	return sq.Row - invCol
}

func satisfies(n int) func(Square, Constraint) bool {
	return func(sq Square, c Constraint) bool {
		switch c.Kind {
		case horizontal:
			return c.Idx == sq.Row
		case vertical:
			return c.Idx == sq.Col
		case diagonalNE:
			return c.Idx == diagNE(sq)
		case diagonalNW:
			return c.Idx == diagNW(sq, n)
		}
		return false
	}
}

// AllSquares enumerates every square of an n x n board, in row-major order.
func AllSquares(n int) []Square {
	squares := make([]Square, 0, n*n)
	for r := range n {
		for c := range n {
			squares = append(squares, Square{Row: r, Col: c})
		}
	}
	return squares
}

func strictConstraints(n int) []Constraint {
	cons := make([]Constraint, 0, 2*n)
	for i := range n {
		cons = append(cons, Constraint{Kind: horizontal, Idx: i})
	}
	for i := range n {
		cons = append(cons, Constraint{Kind: vertical, Idx: i})
	}
	return cons
}

// There are exactly 2n-1 diagonals in each direction, numbered -(n-1)..n-1.
func optionalConstraints(n int) []Constraint {
	if n == 0 {
		return nil
	}
	cons := make([]Constraint, 0, 2*(2*n-1))
	for d := -(n - 1); d <= n-1; d++ {
		cons = append(cons, Constraint{Kind: diagonalNE, Idx: d})
	}
	for d := -(n - 1); d <= n-1; d++ {
		cons = append(cons, Constraint{Kind: diagonalNW, Idx: d})
	}
	return cons
}

// NewSolver builds an n-queens Solver: n^2 candidate squares, 2n strict
// constraints, and (for n > 0) 2(2n-1) optional diagonal constraints.
func NewSolver(n int) (*solver.Solver[Square, Constraint], error) {
	return solver.FromPredicateOptional(AllSquares(n), strictConstraints(n), optionalConstraints(n), satisfies(n))
}

// SolveOne returns one placement of n non-attacking queens, or false if none
// exists (n is 2 or 3).
func SolveOne(n int) ([]Square, bool, error) {
	s, err := NewSolver(n)
	if err != nil {
		return nil, false, err
	}
	sol, found := s.SolveOne()
	return sol, found, nil
}

// SolveAll returns every placement of n non-attacking queens.
func SolveAll(n int) ([][]Square, error) {
	s, err := NewSolver(n)
	if err != nil {
		return nil, err
	}
	return s.SolveMany(), nil
}
