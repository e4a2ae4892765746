// Package sudoku wires the dancing-links solver façade to classic 9x9
// sudoku: one candidate row per (cell, value) placement, four families of
// strict constraints (one value per cell, one of each value per row/column/
// box).
package sudoku

import (
	"fmt"
	"sync"

	"github.com/kpitt/dlxcover/internal/links"
	"github.com/kpitt/dlxcover/internal/puzzle"
	"github.com/kpitt/dlxcover/internal/solver"
)

// Move is a candidate placement: digit Val in row Row, column Col.
type Move struct {
	Row, Col, Val int
}

type constraintKind int

const (
	cellConstraint constraintKind = iota
	rowConstraint
	colConstraint
	boxConstraint
)

type constraint struct {
	Kind constraintKind
	A, B int
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func satisfies(m Move, c constraint) bool {
	switch c.Kind {
	case cellConstraint:
		return m.Row == c.A && m.Col == c.B
	case rowConstraint:
		return m.Row == c.A && m.Val == c.B
	case colConstraint:
		return m.Col == c.A && m.Val == c.B
	case boxConstraint:
		return boxOf(m.Row, m.Col) == c.A && m.Val == c.B
	}
	return false
}

// allMoves and allConstraints are process-wide lookup tables, built once on
// first use and never torn down: every board uses the identical 729-move,
// 324-constraint universe.
var allMoves = sync.OnceValue(func() []Move {
	moves := make([]Move, 0, 9*9*9)
	for r := range 9 {
		for c := range 9 {
			for v := 1; v <= 9; v++ {
				moves = append(moves, Move{Row: r, Col: c, Val: v})
			}
		}
	}
	return moves
})

var allConstraints = sync.OnceValue(func() []constraint {
	cons := make([]constraint, 0, 9*9*4)
	for r := range 9 {
		for c := range 9 {
			cons = append(cons, constraint{Kind: cellConstraint, A: r, B: c})
		}
	}
	for r := range 9 {
		for v := 1; v <= 9; v++ {
			cons = append(cons, constraint{Kind: rowConstraint, A: r, B: v})
		}
	}
	for c := range 9 {
		for v := 1; v <= 9; v++ {
			cons = append(cons, constraint{Kind: colConstraint, A: c, B: v})
		}
	}
	for b := range 9 {
		for v := 1; v <= 9; v++ {
			cons = append(cons, constraint{Kind: boxConstraint, A: b, B: v})
		}
	}
	return cons
})

// NewSolver builds a fresh Solver over the full sudoku move/constraint
// universe. Every call gets its own Solver, since forcing clues mutates it.
func NewSolver() (*solver.Solver[Move, constraint], error) {
	return solver.FromPredicate(allMoves(), allConstraints(), satisfies)
}

// Solve fills in every empty cell of p, forcing each already-given cell as a
// mandatory row before searching. It returns an error if p's clues admit no
// completion.
func Solve(p *puzzle.Puzzle) error {
	s, err := NewSolver()
	if err != nil {
		return err
	}

	sol, found := s.SolveOneWith(givenMoves(p))
	if !found {
		return fmt.Errorf("sudoku: clues admit no completion")
	}
	place(p, sol)
	return nil
}

// SolveWithStats behaves like Solve but also reports how much search effort
// the Dancing Links algorithm spent, for callers that want to display
// diagnostics (see cmd/dancing_links_demo).
func SolveWithStats(p *puzzle.Puzzle) (*links.SearchStats, error) {
	s, err := NewSolver()
	if err != nil {
		return nil, err
	}

	forced := givenMoves(p)
	s.SetState(forced...)
	rest, found, stats := s.SolveOneWithStats()
	s.RecoverN(len(forced))
	if !found {
		return stats, fmt.Errorf("sudoku: clues admit no completion")
	}

	place(p, forced)
	place(p, rest)
	return stats, nil
}

func givenMoves(p *puzzle.Puzzle) []Move {
	var forced []Move
	for r := range 9 {
		for c := range 9 {
			if cell := p.Grid[r][c]; cell.IsSolved() {
				forced = append(forced, Move{Row: r, Col: c, Val: cell.Value()})
			}
		}
	}
	return forced
}

func place(p *puzzle.Puzzle, moves []Move) {
	for _, m := range moves {
		p.PlaceValue(m.Row, m.Col, m.Val)
	}
}
