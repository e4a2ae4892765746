package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/dlxcover/internal/puzzle"
	"github.com/kpitt/dlxcover/internal/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	clues := flag.String("clues", "", "81-character flat clue string instead of reading stdin")
	flag.Parse()

	var p *puzzle.Puzzle
	if *clues != "" {
		p = puzzle.PuzzleFromString(*clues)
	} else {
		if isStdinTTY() {
			fmt.Println("Enter the puzzle as 9 lines of 9 characters.")
			fmt.Println("Use any character other than the digits 1-9 for empty cells.")
			fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
		}
		p = puzzle.PuzzleFromFile(os.Stdin)
	}

	if err := sudoku.Solve(p); err != nil {
		color.HiRed("\n%s", err)
		p.Print()
		fmt.Println()
		p.PrintUnsolvedCounts()
		os.Exit(1)
	}

	color.HiWhite("\nSolution:")
	p.Print()
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
