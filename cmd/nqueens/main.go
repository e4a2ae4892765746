package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kpitt/dlxcover/internal/nqueens"
)

func main() {
	n := flag.Int("n", 8, "board size")
	all := flag.Bool("all", false, "find every solution instead of just one")
	flag.Parse()

	if *all {
		sols, err := nqueens.SolveAll(*n)
		if err != nil {
			color.HiRed("error: %s", err)
			return
		}
		if len(sols) == 0 {
			fmt.Println("No solution")
			return
		}
		fmt.Printf("%s (%d)\n", color.HiGreenString("Solutions"), len(sols))
		for i, sol := range sols {
			fmt.Printf("\n%s %d:\n", color.HiBlueString("Solution"), i+1)
			printBoard(*n, sol)
		}
		return
	}

	sol, found, err := nqueens.SolveOne(*n)
	if err != nil {
		color.HiRed("error: %s", err)
		return
	}
	if !found {
		fmt.Println("No solution")
		return
	}
	color.HiGreen("Solution")
	printBoard(*n, sol)
}

func printBoard(n int, sol []nqueens.Square) {
	board := make([][]bool, n)
	for r := range board {
		board[r] = make([]bool, n)
	}
	for _, sq := range sol {
		board[sq.Row][sq.Col] = true
	}

	var out strings.Builder
	for r := range n {
		for c := range n {
			if board[r][c] {
				out.WriteString(color.HiYellowString("Q "))
			} else {
				out.WriteString(". ")
			}
		}
		out.WriteByte('\n')
	}
	fmt.Print(out.String())
}
