package cube

import "testing"

const solvedFacelet = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func errCode(err error) int {
	if ve, ok := err.(*ValidationError); ok {
		return ve.Code
	}
	return 0
}

func TestFromFaceletSolved(t *testing.T) {
	c, err := FromFacelet(solvedFacelet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsSolved() {
		t.Error("solved facelet string should decode to the solved cubie")
	}
}

func TestFromFaceletWrongLength(t *testing.T) {
	_, err := FromFacelet("UUU")
	if errCode(err) != 1 {
		t.Fatalf("want error code 1, got %v", err)
	}
}

func TestFromFaceletBadCenters(t *testing.T) {
	facelet := []byte(solvedFacelet)
	facelet[4] = facelet[13] // duplicate a center color
	_, err := FromFacelet(string(facelet))
	if errCode(err) != 1 {
		t.Fatalf("want error code 1 for duplicate centers, got %v", err)
	}
}

func TestFromFaceletBadCornerPermutation(t *testing.T) {
	facelet := []byte(solvedFacelet)
	// Swap URF's R-facing sticker (index 9) with the D sticker of the DF
	// edge (index 28): every color still appears nine times, and URF now
	// shows U/D/F, a combination with no matching corner identity.
	facelet[9], facelet[28] = facelet[28], facelet[9]
	_, err := FromFacelet(string(facelet))
	if errCode(err) != 4 {
		t.Fatalf("want error code 4, got %v", err)
	}
}

func TestFromFaceletCornerTwistParity(t *testing.T) {
	c, err := FromFacelet(solvedFacelet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := c.State
	bad.Corners[0] = packCorner(cornerID(bad.Corners[0]), 1)
	_, err = FromFacelet(faceletFromCubie(bad))
	if errCode(err) != 5 {
		t.Fatalf("want error code 5 for bad corner twist parity, got %v", err)
	}
}

func TestFromFaceletEdgeFlipParity(t *testing.T) {
	c, err := FromFacelet(solvedFacelet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := c.State
	bad.Edges[0] = packEdge(edgeID(bad.Edges[0]), 1)
	_, err = FromFacelet(faceletFromCubie(bad))
	if errCode(err) != 3 {
		t.Fatalf("want error code 3 for bad edge flip parity, got %v", err)
	}
}

func TestFromFaceletOverallParityMismatch(t *testing.T) {
	c, err := FromFacelet(solvedFacelet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := c.State
	// Swap two corners only: makes corner permutation odd while edges stay even.
	bad.Corners[0], bad.Corners[1] = bad.Corners[1], bad.Corners[0]
	_, err = FromFacelet(faceletFromCubie(bad))
	if errCode(err) != 6 {
		t.Fatalf("want error code 6 for parity mismatch, got %v", err)
	}
}

func TestFaceletAfterEachMoveIsValid(t *testing.T) {
	for _, m := range AllMoves() {
		c := NewCube()
		c.ApplyMove(m)
		if _, err := FromFacelet(c.Facelet()); err != nil {
			t.Errorf("move %s produced an invalid facelet string: %v", m, err)
		}
	}
}
