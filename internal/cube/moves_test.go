package cube

import (
	"math/rand"
	"testing"
)

func TestMultIdentity(t *testing.T) {
	id := Solved()
	c := RandomCubie(rand.New(rand.NewSource(1)))
	if Mult(c, id) != c {
		t.Error("Mult(c, identity) should equal c")
	}
	if Mult(id, c) != c {
		t.Error("Mult(identity, c) should equal c")
	}
}

func TestMultAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := RandomCubie(rng)
	b := RandomCubie(rng)
	c := RandomCubie(rng)

	left := Mult(Mult(a, b), c)
	right := Mult(a, Mult(b, c))
	if left != right {
		t.Error("Mult should be associative")
	}
}

func TestInvIsInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		c := RandomCubie(rng)
		if Mult(c, Inv(c)) != Solved() {
			t.Fatalf("Mult(c, Inv(c)) should be identity for %+v", c)
		}
		if Mult(Inv(c), c) != Solved() {
			t.Fatalf("Mult(Inv(c), c) should be identity for %+v", c)
		}
	}
}

func TestMoveInverseCancels(t *testing.T) {
	for _, face := range []Face{U, R, F, D, L, B} {
		m := Move{Face: face, Power: 1}
		inv := Move{Face: face, Power: 3}
		result := Mult(Mult(Solved(), m.Cubie()), inv.Cubie())
		if result != Solved() {
			t.Errorf("%s followed by %s should be identity", m, inv)
		}
	}
}

func TestMoveIndexRoundTrip(t *testing.T) {
	for i := 0; i < 18; i++ {
		m := MoveFromIndex(i)
		if m.Index() != i {
			t.Errorf("MoveFromIndex(%d).Index() = %d", i, m.Index())
		}
	}
}

func TestAllMovesDistinct(t *testing.T) {
	moves := AllMoves()
	if len(moves) != 18 {
		t.Fatalf("AllMoves() returned %d moves, want 18", len(moves))
	}
	seen := map[Cubie]bool{}
	for _, m := range moves {
		seen[m.Cubie()] = true
	}
	if len(seen) != 18 {
		t.Errorf("expected 18 distinct move transformations, got %d", len(seen))
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(moves)
	}
	if !c.IsSolved() {
		t.Error("(R U R' U')^6 should return to solved")
	}
}

func TestRandomCubieValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		c := RandomCubie(rng)
		facelet := faceletFromCubie(c)
		if _, err := cubieFromFacelet(facelet); err != nil {
			t.Fatalf("RandomCubie produced an invalid state: %v", err)
		}
	}
}

func TestRandomMovesNoRepeatFace(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	moves := RandomMoves(rng, 25)
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("consecutive moves on the same face at index %d: %v %v", i, moves[i-1], moves[i])
		}
	}
}

func TestAppendMoveCancel(t *testing.T) {
	seq := AppendMove([]Move{{Face: R, Power: 1}}, Move{Face: R, Power: 3})
	if len(seq) != 0 {
		t.Errorf("R R' should cancel, got %v", seq)
	}
}

func TestAppendMoveCombine(t *testing.T) {
	seq := AppendMove([]Move{{Face: R, Power: 1}}, Move{Face: R, Power: 1})
	if len(seq) != 1 || seq[0].Power != 2 {
		t.Errorf("R R should combine to R2, got %v", seq)
	}
}

func TestAppendMoveTwoBackFold(t *testing.T) {
	seq := []Move{{Face: R, Power: 1}, {Face: L, Power: 1}}
	seq = AppendMove(seq, Move{Face: R, Power: 1})
	if len(seq) != 2 || seq[0].Face != R || seq[0].Power != 2 || seq[1].Face != L {
		t.Errorf("R L R should fold into R2 L, got %v", seq)
	}
}

func TestAppendMoveTwoBackCancel(t *testing.T) {
	seq := []Move{{Face: R, Power: 1}, {Face: L, Power: 1}}
	seq = AppendMove(seq, Move{Face: R, Power: 3})
	if len(seq) != 1 || seq[0].Face != L {
		t.Errorf("R L R' should fold down to just L, got %v", seq)
	}
}
