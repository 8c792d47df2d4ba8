package cube

import "testing"

func TestPatternsIncludesSolved(t *testing.T) {
	p, ok := LookupPattern("solved")
	if !ok {
		t.Fatal("expected a \"solved\" pattern")
	}
	facelet, err := p.Facelet()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := FromFacelet(facelet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsSolved() {
		t.Error("solved pattern should decode to the solved cubie")
	}
}

func TestLookupPatternUnknown(t *testing.T) {
	if _, ok := LookupPattern("not-a-pattern"); ok {
		t.Error("expected unknown pattern name to miss")
	}
}

func TestPatternsAreValidCubes(t *testing.T) {
	for _, p := range Patterns() {
		facelet, err := p.Facelet()
		if err != nil {
			t.Errorf("pattern %s: unexpected error: %v", p.Name, err)
			continue
		}
		if _, err := FromFacelet(facelet); err != nil {
			t.Errorf("pattern %s produced an invalid facelet string: %v", p.Name, err)
		}
	}
}

func TestSuperflipIsScrambled(t *testing.T) {
	p, _ := LookupPattern("superflip")
	facelet, err := p.Facelet()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := FromFacelet(facelet)
	if c.IsSolved() {
		t.Error("superflip should not be the solved state")
	}
}
