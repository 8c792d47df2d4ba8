package solver

import (
	"strings"
	"testing"

	"github.com/sakateka/min2phase/internal/cube"
)

func TestSolveAlreadySolved(t *testing.T) {
	sol, err := Solve(cube.NewCube().Facelet(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol != "" {
		t.Errorf("solved cube should need no moves, got %q", sol)
	}
}

func TestSolveInvalidFacelet(t *testing.T) {
	if _, err := Solve("short", 21); err == nil {
		t.Error("expected an error for a malformed facelet string")
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	facelet, err := ApplyMoves(cube.NewCube().Facelet(), "R")
	if err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	sol, err := Solve(facelet, 21)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	result, err := ApplyMoves(facelet, sol)
	if err != nil {
		t.Fatalf("ApplyMoves(solution): %v", err)
	}
	if result != cube.NewCube().Facelet() {
		t.Errorf("applying the solver's solution did not solve the cube; solution = %q", sol)
	}
}

func TestSolveSexyMoveScramble(t *testing.T) {
	facelet, err := ApplyMoves(cube.NewCube().Facelet(), "R U R' U'")
	if err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	sol, err := Solve(facelet, 21)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	result, err := ApplyMoves(facelet, sol)
	if err != nil {
		t.Fatalf("ApplyMoves(solution): %v", err)
	}
	if result != cube.NewCube().Facelet() {
		t.Errorf("applying the solver's solution did not solve the cube; solution = %q", sol)
	}
}

func TestFromMoves(t *testing.T) {
	facelet, err := FromMoves("R U R' U'")
	if err != nil {
		t.Fatalf("FromMoves: %v", err)
	}
	want, err := ApplyMoves(cube.NewCube().Facelet(), "R U R' U'")
	if err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	if facelet != want {
		t.Errorf("FromMoves disagreed with ApplyMoves on a solved start")
	}
}

func TestApplyMovesRejectsBadNotation(t *testing.T) {
	if _, err := ApplyMoves(cube.NewCube().Facelet(), "Q"); err == nil {
		t.Error("expected an error for an unparseable move token")
	}
}

func TestRandomCubeIsValid(t *testing.T) {
	facelet := RandomCube()
	if _, err := cube.FromFacelet(facelet); err != nil {
		t.Fatalf("RandomCube produced an invalid facelet string: %v", err)
	}
}

func TestRandomMovesHasRequestedLength(t *testing.T) {
	seq := RandomMoves(20)
	moves, err := cube.ParseMoves(seq)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", seq, err)
	}
	if len(moves) != 20 {
		t.Errorf("RandomMoves(20) returned %d moves: %q", len(moves), seq)
	}
}

func TestAllowedNextRejectsSameFaceRepeat(t *testing.T) {
	path := []cube.Move{{Face: cube.R, Power: 1}}
	if allowedNext(path, cube.Move{Face: cube.R, Power: 2}) {
		t.Error("same-face repeat should be rejected")
	}
}

func TestAllowedNextCanonicalizesOppositeAxis(t *testing.T) {
	path := []cube.Move{{Face: cube.D, Power: 1}}
	if allowedNext(path, cube.Move{Face: cube.U, Power: 1}) {
		t.Error("D followed by U should be rejected (U must come first on the U/D axis)")
	}
	path2 := []cube.Move{{Face: cube.U, Power: 1}}
	if !allowedNext(path2, cube.Move{Face: cube.D, Power: 1}) {
		t.Error("U followed by D should be allowed")
	}
}

func TestAllowedNextAllowsDifferentAxis(t *testing.T) {
	path := []cube.Move{{Face: cube.R, Power: 1}}
	if !allowedNext(path, cube.Move{Face: cube.U, Power: 1}) {
		t.Error("moves on different axes should always be allowed back to back")
	}
}

func TestSolveRespectsMaxLength(t *testing.T) {
	facelet, err := ApplyMoves(cube.NewCube().Facelet(), "R U R' U'")
	if err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	if _, err := Solve(facelet, -5); err != nil {
		t.Fatalf("Solve with a non-positive maxl should fall back to the default bound: %v", err)
	}
	sol, err := Solve(facelet, 21)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if strings.Count(sol, " ")+1 > 26 {
		t.Errorf("solution longer than the 25-move hard cap plus parsing slack: %q", sol)
	}
}
