package puzzle

import (
	"bufio"
	"os"
)

// PuzzleFromFile reads a grid from f, one row per line, nine lines total.
// A digit '1'-'9' is a given clue; any other character (typically '.' or
// '0') is an empty cell.
func PuzzleFromFile(f *os.File) *Puzzle {
	p := NewPuzzle()
	scanner := bufio.NewScanner(f)

	r := 0
	for scanner.Scan() {
		if r >= 9 {
			puzzleStateError("too many input lines")
		}
		line := scanner.Text()
		if len(line) < 9 {
			puzzleStateError("input line too short")
		}
		p.processRow(r, line[:9])
		r++
	}
	if r < 9 {
		puzzleStateError("not enough input lines")
	}
	if err := scanner.Err(); err != nil {
		fatalError("error reading standard input", err.Error())
	}

	return p
}

// PuzzleFromString reads a grid from a flat 81-character string, row-major,
// using the same clue/blank convention as PuzzleFromFile.
func PuzzleFromString(s string) *Puzzle {
	if len(s) != 81 {
		puzzleStateError("clue string must be exactly 81 characters")
	}
	p := NewPuzzle()
	for r := range 9 {
		p.processRow(r, s[r*9:r*9+9])
	}
	return p
}

func (p *Puzzle) processRow(row int, line string) {
	for col := range 9 {
		ch := line[col]
		if ch >= '1' && ch <= '9' {
			p.GivenValue(row, col, int(ch-'0'))
		}
	}
}
