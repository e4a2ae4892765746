package sudoku

import (
	"testing"

	"github.com/kpitt/dlxcover/internal/puzzle"
)

// seventeenClues is spec.md scenario D: a minimal 17-clue puzzle with a
// unique completion.
const seventeenClues = "000000010400000000020000000000050407008000300001090000300400200050100000000806000"

func TestMinimalSeventeenClueSudoku(t *testing.T) {
	p := puzzle.PuzzleFromString(seventeenClues)

	if err := Solve(p); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !p.IsSolved() {
		t.Fatal("expected a fully solved grid")
	}

	assertValidCompletedGrid(t, p)
}

func assertValidCompletedGrid(t *testing.T, p *puzzle.Puzzle) {
	t.Helper()

	for r := range 9 {
		seen := [10]bool{}
		for c := range 9 {
			v := p.Grid[r][c].Value()
			if seen[v] {
				t.Fatalf("row %d: digit %d appears more than once", r, v)
			}
			seen[v] = true
		}
	}
	for c := range 9 {
		seen := [10]bool{}
		for r := range 9 {
			v := p.Grid[r][c].Value()
			if seen[v] {
				t.Fatalf("col %d: digit %d appears more than once", c, v)
			}
			seen[v] = true
		}
	}
	for b := range 9 {
		seen := [10]bool{}
		br, bc := (b/3)*3, (b%3)*3
		for dr := range 3 {
			for dc := range 3 {
				v := p.Grid[br+dr][bc+dc].Value()
				if seen[v] {
					t.Fatalf("box %d: digit %d appears more than once", b, v)
				}
				seen[v] = true
			}
		}
	}
}
