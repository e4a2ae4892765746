// Package solver provides a typed façade over the dancing-links exact-cover
// primitive in internal/links. It maps caller-supplied row and column
// values onto the array's integer indices, and adds externally-forced rows
// on top of plain search.
package solver

import (
	"fmt"
	"sort"

	"github.com/kpitt/dlxcover/internal/links"
	"github.com/kpitt/dlxcover/internal/set"
)

// ConfigError reports a malformed set of rows, columns, or incidences given
// to a constructor: a caller-recoverable problem with the input.
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return "solver: " + e.Msg }

// ContractViolation is panicked when a caller breaks the Solver's
// state-machine contract: forcing a row that doesn't exist or is already
// forced, or recovering past the initial state. Unlike ConfigError, these
// are programming errors rather than bad input, so they panic rather than
// return an error.
type ContractViolation struct{ Msg string }

func (e ContractViolation) Error() string { return "solver: " + e.Msg }

// Solver is the universal-cover façade described above, parameterized over
// the caller's own row and column value types.
type Solver[R comparable, C comparable] struct {
	array *links.DancingLinkArray

	rowVals []R
	colVals []C
	rowIdx  map[R]int

	// toRows[i] is the entry node for row i, captured once at construction.
	toRows []int

	// forced is a LIFO stack of row indices externally removed via SetState
	// and not yet restored by RecoverN.
	forced    []int
	forcedSet *set.Set[int]
}

// RowCol is one explicit (row, col) incidence, used by FromPairs.
type RowCol[R comparable, C comparable] struct {
	Row R
	Col C
}

// FromPredicate builds a Solver covering every (row, col) pair for which
// pred returns true. All columns are strict: every solution must cover each
// of them exactly once.
func FromPredicate[R comparable, C comparable](rows []R, cols []C, pred func(R, C) bool) (*Solver[R, C], error) {
	return FromPredicateOptional(rows, cols, nil, pred)
}

// FromPredicateOptional builds a Solver with two groups of columns:
// strictCols must be covered exactly once by every solution, optCols may be
// covered at most once. The predicate is evaluated over the concatenation
// of strictCols then optCols, so a column value must not appear in both.
func FromPredicateOptional[R comparable, C comparable](rows []R, strictCols, optCols []C, pred func(R, C) bool) (*Solver[R, C], error) {
	cols := make([]C, 0, len(strictCols)+len(optCols))
	cols = append(cols, strictCols...)
	cols = append(cols, optCols...)

	// Walking rows then cols in order produces pairs already sorted
	// row-major with no duplicates, satisfying FromSortedUnique's contract.
	var pairs []links.Pair
	for ri, r := range rows {
		for ci, c := range cols {
			if pred(r, c) {
				pairs = append(pairs, links.Pair{Row: ri, Col: ci})
			}
		}
	}

	return newSolver(rows, cols, pairs, len(strictCols), len(optCols))
}

// FromPairs builds a Solver directly from an explicit sparse enumeration of
// (row, col) incidences rather than a predicate over pre-known universes: the
// row and column value tables are discovered from pairs itself, each value
// assigned an index the first time it is seen. This is the sparse enumerator
// constructor of spec.md §4.6/§6, for callers who don't know the full
// row/column universe ahead of time. Every column is strict. Returns a
// ConfigError if any (row, col) incidence repeats.
func FromPairs[R comparable, C comparable](pairs []RowCol[R, C]) (*Solver[R, C], error) {
	rowIdx := make(map[R]int)
	var rows []R
	colIdx := make(map[C]int)
	var cols []C

	seen := make(map[links.Pair]bool, len(pairs))
	idcPairs := make([]links.Pair, 0, len(pairs))
	for _, rc := range pairs {
		ri, ok := rowIdx[rc.Row]
		if !ok {
			ri = len(rows)
			rowIdx[rc.Row] = ri
			rows = append(rows, rc.Row)
		}
		ci, ok := colIdx[rc.Col]
		if !ok {
			ci = len(cols)
			colIdx[rc.Col] = ci
			cols = append(cols, rc.Col)
		}
		p := links.Pair{Row: ri, Col: ci}
		if seen[p] {
			return nil, &ConfigError{Msg: fmt.Sprintf("duplicate incidence (%v, %v)", rc.Row, rc.Col)}
		}
		seen[p] = true
		idcPairs = append(idcPairs, p)
	}

	sort.Slice(idcPairs, func(i, j int) bool {
		if idcPairs[i].Row != idcPairs[j].Row {
			return idcPairs[i].Row < idcPairs[j].Row
		}
		return idcPairs[i].Col < idcPairs[j].Col
	})

	return newSolver(rows, cols, idcPairs, len(cols), 0)
}

func newSolver[R comparable, C comparable](rows []R, cols []C, pairs []links.Pair, numStrict, numOpt int) (*Solver[R, C], error) {
	array, err := links.FromSortedUnique(pairs, len(rows), numStrict, numOpt)
	if err != nil {
		return nil, &ConfigError{Msg: err.Error()}
	}

	rowIdx := make(map[R]int, len(rows))
	for i, r := range rows {
		rowIdx[r] = i
	}

	return &Solver[R, C]{
		array:     array,
		rowVals:   append([]R(nil), rows...),
		colVals:   append([]C(nil), cols...),
		rowIdx:    rowIdx,
		toRows:    array.RowEntries(),
		forcedSet: set.NewSet[int](),
	}, nil
}

// NumRows returns the number of candidate rows the Solver was built with.
func (s *Solver[R, C]) NumRows() int { return len(s.rowVals) }

// SetState forces each given row to be part of the eventual solution,
// removing it (and the columns it alone would cover) from further search.
// It panics if a row value is unknown or already forced.
func (s *Solver[R, C]) SetState(rows ...R) {
	for _, r := range rows {
		ri, ok := s.rowIdx[r]
		if !ok {
			panic(ContractViolation{Msg: fmt.Sprintf("tried to force an unknown row %v", r)})
		}
		if s.forcedSet.Contains(ri) {
			panic(ContractViolation{Msg: fmt.Sprintf("tried to force an already-forced row %v", r)})
		}
		s.array.RemoveRow(s.toRows[ri])
		s.forced = append(s.forced, ri)
		s.forcedSet.Add(ri)
	}
}

// RecoverN undoes the last n forced rows, in the reverse of the order they
// were forced. It panics if n exceeds the number of rows currently forced.
func (s *Solver[R, C]) RecoverN(n int) {
	for i := 0; i < n; i++ {
		if len(s.forced) == 0 {
			panic(ContractViolation{Msg: "tried to recover further than the initial state"})
		}
		ri := s.forced[len(s.forced)-1]
		s.forced = s.forced[:len(s.forced)-1]
		s.forcedSet.Remove(ri)
		s.array.InsertRow(s.toRows[ri])
	}
}

// SolveOne returns one exact-cover solution's row values, or false if none
// exists. Rows currently forced via SetState are not repeated in the
// result; combine with the forced values yourself if you need the full set.
func (s *Solver[R, C]) SolveOne() ([]R, bool) {
	idc, found := s.array.SolveOne()
	if !found {
		return nil, false
	}
	return s.resolveRows(idc), true
}

// SolveMany returns every exact-cover solution's row values.
func (s *Solver[R, C]) SolveMany() [][]R {
	sols := s.array.SolveMany()
	out := make([][]R, len(sols))
	for i, sol := range sols {
		out[i] = s.resolveRows(sol)
	}
	return out
}

// SolveOneWithStats behaves like SolveOne but also reports search effort.
func (s *Solver[R, C]) SolveOneWithStats() ([]R, bool, *links.SearchStats) {
	idc, found, stats := s.array.SolveOneWithStats()
	if !found {
		return nil, false, stats
	}
	return s.resolveRows(idc), true, stats
}

// SolveOneWith is a convenience wrapper: it forces forcedRows, searches for
// one solution, restores state, and returns the forced rows together with
// whatever the search found — i.e. the complete solution, not just the
// newly-decided part of it.
func (s *Solver[R, C]) SolveOneWith(forcedRows []R) ([]R, bool) {
	s.SetState(forcedRows...)
	defer s.RecoverN(len(forcedRows))

	rest, found := s.SolveOne()
	if !found {
		return nil, false
	}
	out := make([]R, 0, len(forcedRows)+len(rest))
	out = append(out, forcedRows...)
	out = append(out, rest...)
	return out, true
}

// SolveManyWith is the solve_many analogue of SolveOneWith.
func (s *Solver[R, C]) SolveManyWith(forcedRows []R) [][]R {
	s.SetState(forcedRows...)
	defer s.RecoverN(len(forcedRows))

	rest := s.SolveMany()
	out := make([][]R, len(rest))
	for i, sol := range rest {
		full := make([]R, 0, len(forcedRows)+len(sol))
		full = append(full, forcedRows...)
		full = append(full, sol...)
		out[i] = full
	}
	return out
}

func (s *Solver[R, C]) resolveRows(idc []int) []R {
	out := make([]R, len(idc))
	for i, idx := range idc {
		out[i] = s.rowVals[idx]
	}
	return out
}
