package puzzle

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

var (
	solvedValueColor = color.New(color.Bold, color.FgHiWhite)
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
)

// Print renders the grid with given clues and solver-derived values shown in
// distinct colors.
func (p *Puzzle) Print() {
	color.HiWhite(borderTop)
	for r, row := range p.Grid {
		if r != 0 {
			if r%3 == 0 {
				color.HiWhite(dividerMajor)
			} else {
				color.HiWhite(dividerMinor)
			}
		}
		printRow(row)
	}
	color.HiWhite(borderBot)
}

func printRow(row [9]*Cell) {
	for c, cell := range row {
		if c != 0 && c%3 == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}
		cellColor := solvedValueColor
		if cell.Given {
			cellColor = givenValueColor
		}
		if cell.IsSolved() {
			cellColor.Printf(" %d ", cell.Value())
		} else {
			fmt.Print("   ")
		}
	}
	color.HiWhite(edgeMinor)
}

// PrintUnsolvedCounts prints how many cells of each digit remain unplaced.
func (p *Puzzle) PrintUnsolvedCounts() {
	color.HiWhite("Unsolved Digits:")
	for digit := 1; digit <= 9; digit++ {
		if !p.IsDigitSolved(digit) {
			fmt.Printf("%d: %d remaining\n", digit, p.unsolvedCounts[digit])
		} else {
			fmt.Printf("%d: complete\n", digit)
		}
	}
	fmt.Printf("\n%s %d\n",
		color.HiWhiteString("Total Unsolved Cells:"),
		p.unsolvedCounts[0])
}
