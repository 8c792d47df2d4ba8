package sym

import (
	"testing"

	"github.com/sakateka/min2phase/internal/cube"
)

func TestGroupHasSixteenElements(t *testing.T) {
	if len(Elements) != 16 {
		t.Fatalf("got %d elements, want 16", len(Elements))
	}
}

func TestIdentityIsFirstElement(t *testing.T) {
	if Elements[0] != cube.Solved() {
		t.Fatal("Elements[0] should be the identity (solved cubie)")
	}
}

func TestGroupClosedUnderMult(t *testing.T) {
	set := make(map[cube.Cubie]bool, len(Elements))
	for _, e := range Elements {
		set[e] = true
	}
	for i, a := range Elements {
		for j, b := range Elements {
			if !set[cube.Mult(a, b)] {
				t.Fatalf("Elements[%d] * Elements[%d] not in the group", i, j)
			}
		}
	}
}

func TestInversesUndoElements(t *testing.T) {
	for i, e := range Elements {
		if cube.Mult(e, Inverses[i]) != cube.Solved() {
			t.Fatalf("Elements[%d] * Inverses[%d] != identity", i, i)
		}
	}
}

func TestMirrorGeneratorIsSelfInverse(t *testing.T) {
	m := mirrorLR()
	if cube.Mult(m, m) != cube.Solved() {
		t.Fatal("mirrorLR squared should be the identity")
	}
}

func TestURF3HasOrderThree(t *testing.T) {
	cubed := cube.Mult(cube.Mult(URF3, URF3), URF3)
	if cubed != cube.Solved() {
		t.Fatal("URF3^3 should be the identity")
	}
	if cube.Mult(URF3, URF3Inv) != cube.Solved() {
		t.Fatal("URF3 * URF3Inv should be the identity")
	}
}

func TestConjugateByIdentityIsNoop(t *testing.T) {
	c := cube.Mult(URF3, mirrorLR())
	if Conjugate(0, c) != c {
		t.Fatal("conjugating by the identity element should return the input unchanged")
	}
}

func TestConjugateURF3ZeroIsNoop(t *testing.T) {
	c := mirrorLR()
	if ConjugateURF3(0, c) != c {
		t.Fatal("ConjugateURF3(0, c) should return c unchanged")
	}
}

func TestUnconjugateURF3MoveZeroIsNoop(t *testing.T) {
	m := cube.Move{Face: cube.R, Power: 1}
	if UnconjugateURF3Move(0, m) != m.Cubie() {
		t.Fatal("UnconjugateURF3Move(0, m) should return m.Cubie() unchanged")
	}
}

func TestUnconjugateURF3MoveRoundTrips(t *testing.T) {
	// Conjugating a move's cubie by URF3^k yields another named move;
	// un-conjugating that move should return the original move's cubie,
	// for every k.
	for k := 0; k < 3; k++ {
		for _, m := range cube.AllMoves() {
			conjugated := ConjugateURF3(k, m.Cubie())
			var named cube.Move
			found := false
			for _, cand := range cube.AllMoves() {
				if cand.Cubie() == conjugated {
					named, found = cand, true
				}
			}
			if !found {
				t.Fatalf("k=%d: ConjugateURF3 of %v is not one of the 18 moves", k, m)
			}
			back := UnconjugateURF3Move(k, named)
			if back != m.Cubie() {
				t.Fatalf("k=%d: round trip through ConjugateURF3/UnconjugateURF3Move failed for %v", k, m)
			}
		}
	}
}

func checkClassTablePartitions(t *testing.T, name string, n int, tbl *ClassTable) {
	t.Helper()
	if tbl.Classes == 0 {
		t.Fatalf("%s: expected at least one class", name)
	}
	if len(tbl.Sym2Raw) != tbl.Classes || len(tbl.SelfSym) != tbl.Classes {
		t.Fatalf("%s: Sym2Raw/SelfSym length should match Classes", name)
	}
	for raw := 0; raw < n; raw++ {
		class := tbl.Raw2Class[raw]
		if class < 0 || int(class) >= tbl.Classes {
			t.Fatalf("%s: raw %d has no valid class", name, raw)
		}
		s := tbl.Raw2Sym[raw]
		if s < 0 || int(s) >= NSyms {
			t.Fatalf("%s: raw %d has no valid symmetry index", name, raw)
		}
	}
	for class, stab := range tbl.SelfSym {
		if stab&1 == 0 {
			t.Fatalf("%s: class %d's stabilizer should always include the identity", name, class)
		}
		rep := int(tbl.Sym2Raw[class])
		if tbl.Raw2Class[rep] != int16(class) {
			t.Fatalf("%s: class %d's own representative should map to itself", name, class)
		}
	}
}

func TestTwistClassesPartitionRawSpace(t *testing.T) {
	checkClassTablePartitions(t, "twist", 2187, TwistClasses())
}

func TestFlipClassesPartitionRawSpace(t *testing.T) {
	checkClassTablePartitions(t, "flip", 2048, FlipClasses())
}

func TestTwistClassesAreFewerThanRawValues(t *testing.T) {
	tbl := TwistClasses()
	if tbl.Classes >= 2187 {
		t.Fatalf("expected symmetry reduction to collapse classes below 2187, got %d", tbl.Classes)
	}
}

func TestFlipClassesAreFewerThanRawValues(t *testing.T) {
	tbl := FlipClasses()
	if tbl.Classes >= 2048 {
		t.Fatalf("expected symmetry reduction to collapse classes below 2048, got %d", tbl.Classes)
	}
}
