package cube

import "testing"

func TestNewCubeSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("NewCube() should be solved")
	}
	want := "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
	if c.Facelet() != want {
		t.Errorf("NewCube().Facelet() = %q, want %q", c.Facelet(), want)
	}
}

func TestCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
	c.ApplyMove(Move{Face: R, Power: 1})
	if c.IsSolved() {
		t.Error("cube should not be solved after applying R")
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		notation string
		want     Move
		wantErr  bool
	}{
		{"R", Move{Face: R, Power: 1}, false},
		{"R'", Move{Face: R, Power: 3}, false},
		{"R2", Move{Face: R, Power: 2}, false},
		{"U", Move{Face: U, Power: 1}, false},
		{"U'", Move{Face: U, Power: 3}, false},
		{"U2", Move{Face: U, Power: 2}, false},
		{"F+", Move{Face: F, Power: 1}, false},
		{"F-", Move{Face: F, Power: 3}, false},
		{"B1", Move{Face: B, Power: 1}, false},
		{"L3", Move{Face: L, Power: 3}, false},
		{"D", Move{Face: D, Power: 1}, false},
		{"", Move{}, true},
		{"X", Move{}, true},
		{"R5", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseMove(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMove(%q) error = %v, wantErr %v", tt.notation, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestParseScramble(t *testing.T) {
	tests := []struct {
		scramble string
		wantLen  int
		wantErr  bool
	}{
		{"", 0, false},
		{"R", 1, false},
		{"R U R' U'", 4, false},
		{"R U R' U' R' F R F'", 8, false},
		{"R X", 0, true},
		{"R U2 R' D'", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.scramble, func(t *testing.T) {
			got, err := ParseScramble(tt.scramble)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseScramble(%q) error = %v, wantErr %v", tt.scramble, err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("ParseScramble(%q) length = %d, want %d", tt.scramble, len(got), tt.wantLen)
			}
		})
	}
}

func TestMovesChangeState(t *testing.T) {
	c := NewCube()
	original := c.Facelet()

	c.ApplyMove(Move{Face: R, Power: 1})
	afterR := c.Facelet()
	if original == afterR {
		t.Error("R move should change cube state")
	}

	c.ApplyMove(Move{Face: U, Power: 1})
	afterU := c.Facelet()
	if afterR == afterU {
		t.Error("U move should change cube state")
	}
}

func TestRURPrimeUPrimeScramble(t *testing.T) {
	c := NewCube()
	original := c.Facelet()

	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("failed to parse R U R' U': %v", err)
	}
	c.ApplyMoves(moves)

	if c.Facelet() == original {
		t.Error("R U R' U' should change the cube state")
	}
	if c.IsSolved() {
		t.Error("cube should not be solved after R U R' U'")
	}
}

func TestDoubleMoveEquivalence(t *testing.T) {
	c1, c2 := NewCube(), NewCube()
	c1.ApplyMove(Move{Face: R, Power: 2})
	c2.ApplyMove(Move{Face: R, Power: 1})
	c2.ApplyMove(Move{Face: R, Power: 1})

	if c1.Facelet() != c2.Facelet() {
		t.Error("R2 should be equivalent to R R")
	}
}

func TestInverseMoves(t *testing.T) {
	c := NewCube()
	original := c.Facelet()

	c.ApplyMove(Move{Face: R, Power: 1})
	c.ApplyMove(Move{Face: R, Power: 3})

	if c.Facelet() != original {
		t.Error("R R' should return the cube to its original state")
	}
	if !c.IsSolved() {
		t.Error("cube should be solved after R R'")
	}
}

func TestAllFacesRotate(t *testing.T) {
	for _, face := range []Face{U, R, F, D, L, B} {
		t.Run(face.String(), func(t *testing.T) {
			c := NewCube()
			original := c.Facelet()
			c.ApplyMove(Move{Face: face, Power: 1})
			if c.Facelet() == original {
				t.Errorf("%s face rotation should change cube state", face)
			}
		})
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, face := range []Face{U, R, F, D, L, B} {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.ApplyMove(Move{Face: face, Power: 1})
		}
		if !c.IsSolved() {
			t.Errorf("four quarter turns of %s should return to solved", face)
		}
	}
}

func TestFaceletRoundTrip(t *testing.T) {
	scrambles := []string{"", "R U R' U'", "F2 L D2 B' R U' L2"}
	for _, s := range scrambles {
		t.Run(s, func(t *testing.T) {
			c := NewCube()
			moves, err := ParseScramble(s)
			if err != nil {
				t.Fatalf("ParseScramble(%q): %v", s, err)
			}
			c.ApplyMoves(moves)

			facelet := c.Facelet()
			c2, err := FromFacelet(facelet)
			if err != nil {
				t.Fatalf("FromFacelet(%q): %v", facelet, err)
			}
			if c2.Facelet() != facelet {
				t.Errorf("round trip mismatch: got %q, want %q", c2.Facelet(), facelet)
			}
		})
	}
}
