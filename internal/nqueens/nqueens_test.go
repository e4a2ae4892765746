package nqueens

import (
	"reflect"
	"sort"
	"testing"
)

func sortSquares(sqs []Square) []Square {
	out := append([]Square(nil), sqs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func TestFourQueensHasExactlyTwoSolutions(t *testing.T) {
	sols, err := SolveAll(4)
	if err != nil {
		t.Fatalf("SolveAll: %v", err)
	}
	if len(sols) != 2 {
		t.Fatalf("expected 2 solutions, got %d: %v", len(sols), sols)
	}

	want1 := []Square{{0, 1}, {1, 3}, {2, 0}, {3, 2}}
	want2 := []Square{{0, 2}, {1, 0}, {2, 3}, {3, 1}}
	found1, found2 := false, false
	for _, sol := range sols {
		got := sortSquares(sol)
		if reflect.DeepEqual(got, want1) {
			found1 = true
		}
		if reflect.DeepEqual(got, want2) {
			found2 = true
		}
	}
	if !found1 || !found2 {
		t.Fatalf("missing expected solution(s) among %v", sols)
	}
}

func TestOneQueenTrivialSolution(t *testing.T) {
	sol, found, err := SolveOne(1)
	if err != nil {
		t.Fatalf("SolveOne: %v", err)
	}
	if !found {
		t.Fatal("expected a solution")
	}
	if len(sol) != 1 || sol[0] != (Square{0, 0}) {
		t.Fatalf("expected {(0,0)}, got %v", sol)
	}
}

func TestTwoAndThreeQueensHaveNoSolution(t *testing.T) {
	for _, n := range []int{2, 3} {
		_, found, err := SolveOne(n)
		if err != nil {
			t.Fatalf("n=%d: SolveOne: %v", n, err)
		}
		if found {
			t.Errorf("n=%d: expected no solution", n)
		}
		sols, err := SolveAll(n)
		if err != nil {
			t.Fatalf("n=%d: SolveAll: %v", n, err)
		}
		if len(sols) != 0 {
			t.Errorf("n=%d: expected zero solutions, got %d", n, len(sols))
		}
	}
}

func TestEightQueensSolutionCount(t *testing.T) {
	sols, err := SolveAll(8)
	if err != nil {
		t.Fatalf("SolveAll: %v", err)
	}
	if len(sols) != 92 {
		t.Fatalf("expected the well-known 92 solutions for n=8, got %d", len(sols))
	}
}
