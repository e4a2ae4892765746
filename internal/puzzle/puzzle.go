package puzzle

import "fmt"

// Puzzle is a 9x9 sudoku grid.
type Puzzle struct {
	Grid [9][9]*Cell

	// unsolvedCounts[0] is the total number of unsolved cells; unsolvedCounts[d]
	// for d in 1..9 is how many cells still need digit d placed. The puzzle is
	// complete when unsolvedCounts[0] reaches 0.
	unsolvedCounts [10]int
}

func NewPuzzle() *Puzzle {
	p := &Puzzle{}
	for r := range 9 {
		for c := range 9 {
			p.Grid[r][c] = NewCell(r, c)
		}
	}
	p.unsolvedCounts[0] = 9 * 9
	for digit := 1; digit <= 9; digit++ {
		p.unsolvedCounts[digit] = 9
	}
	return p
}

func (p *Puzzle) IsSolved() bool {
	return p.unsolvedCounts[0] == 0
}

func (p *Puzzle) IsDigitSolved(digit int) bool {
	return p.unsolvedCounts[digit] == 0
}

// GivenValue records a clue supplied by the puzzle text.
func (p *Puzzle) GivenValue(r, c, val int) {
	p.Grid[r][c].GivenValue(val)
	p.updateUnsolvedCounts(r, c, val)
}

// PlaceValue records a value derived by the solver. It returns false without
// modifying the grid if the cell already holds this value.
func (p *Puzzle) PlaceValue(r, c, val int) bool {
	cell := p.Grid[r][c]
	if cell.IsSolved() {
		if cell.Value() != val {
			puzzleStateError(fmt.Sprintf("conflicting cell values %d and %d at (%d,%d)",
				cell.Value(), val, r+1, c+1))
		}
		return false
	}
	cell.PlaceValue(val)
	p.updateUnsolvedCounts(r, c, val)
	return true
}

func (p *Puzzle) updateUnsolvedCounts(r, c, val int) {
	p.unsolvedCounts[0]--
	p.unsolvedCounts[val]--
	if p.unsolvedCounts[val] < 0 {
		puzzleStateError(fmt.Sprintf("too many instances of digit %d when placing cell (%d,%d)", val, r, c))
	}
}
