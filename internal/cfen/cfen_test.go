package cfen

import (
	"testing"

	"github.com/sakateka/min2phase/internal/cube"
)

const solvedCFEN = "UF|U9/R9/F9/D9/L9/B9"

func TestParseCFENSolved(t *testing.T) {
	s, err := ParseCFEN(solvedCFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Orientation.Up != cube.U || s.Orientation.Front != cube.F {
		t.Errorf("orientation = %v, want UF", s.Orientation)
	}
	if s.String() != solvedCFEN {
		t.Errorf("String() round trip = %q, want %q", s.String(), solvedCFEN)
	}
}

func TestParseCFENBadFormat(t *testing.T) {
	if _, err := ParseCFEN("no pipe here"); err == nil {
		t.Error("expected an error for a string with no '|'")
	}
}

func TestParseCFENBadFaceCount(t *testing.T) {
	if _, err := ParseCFEN("UF|U9/R9/F9"); err == nil {
		t.Error("expected an error for fewer than 6 faces")
	}
}

func TestParseCFENWildcards(t *testing.T) {
	s, err := ParseCFEN("UF|?9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range s.Faces[0].Stickers {
		if b != '?' {
			t.Errorf("expected all wildcards on face 0, got %q", s.Faces[0].Stickers)
		}
	}
}

func TestToCubeAndGenerateCFEN(t *testing.T) {
	s, err := ParseCFEN(solvedCFEN)
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	c, err := s.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if !c.IsSolved() {
		t.Error("solved CFEN should decode to the solved cube")
	}
	if got := GenerateCFEN(c); got != solvedCFEN {
		t.Errorf("GenerateCFEN() = %q, want %q", got, solvedCFEN)
	}
}

func TestToCubeRejectsOtherOrientations(t *testing.T) {
	s, err := ParseCFEN("DF|U9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	if _, err := s.ToCube(); err == nil {
		t.Error("expected an error for a non-UF orientation")
	}
}

func TestToCubeRejectsWildcards(t *testing.T) {
	s, err := ParseCFEN("UF|?9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	if _, err := s.ToCube(); err == nil {
		t.Error("expected an error converting a wildcard pattern to a concrete cube")
	}
}

func TestMatchesCubeWithWildcards(t *testing.T) {
	c := cube.NewCube()
	moves, err := cube.ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c.ApplyMoves(moves)

	pattern, err := ParseCFEN("UF|?9/?9/?9/?9/?9/?9")
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	matches, err := pattern.MatchesCube(c)
	if err != nil {
		t.Fatalf("MatchesCube: %v", err)
	}
	if !matches {
		t.Error("an all-wildcard pattern should match any cube")
	}
}

func TestMatchesCubeExact(t *testing.T) {
	c := cube.NewCube()
	pattern, err := ParseCFEN(solvedCFEN)
	if err != nil {
		t.Fatalf("ParseCFEN: %v", err)
	}
	matches, err := pattern.MatchesCube(c)
	if err != nil {
		t.Fatalf("MatchesCube: %v", err)
	}
	if !matches {
		t.Error("solved pattern should match solved cube")
	}

	c.ApplyMoves([]cube.Move{{Face: cube.R, Power: 1}})
	matches, err = pattern.MatchesCube(c)
	if err != nil {
		t.Fatalf("MatchesCube: %v", err)
	}
	if matches {
		t.Error("solved pattern should not match a scrambled cube")
	}
}

func TestValidateCFEN(t *testing.T) {
	if err := ValidateCFEN(solvedCFEN); err != nil {
		t.Errorf("ValidateCFEN(solved) = %v, want nil", err)
	}
	if err := ValidateCFEN("garbage"); err == nil {
		t.Error("ValidateCFEN(garbage) should return an error")
	}
}
