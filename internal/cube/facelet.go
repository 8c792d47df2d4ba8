package cube

import "fmt"

// ValidationError is the facelet/cubie validation failure reported back to
// callers. Code follows the documented error codes:
//
//	1  malformed facelet string (wrong length, or stickers don't resolve
//	   to exactly six nine-sticker groups against the detected centers)
//	2  edge permutation is not a valid permutation of the 12 edges
//	3  edge orientation parity is wrong (flip sum is odd)
//	4  corner permutation is not a valid permutation of the 8 corners
//	5  corner orientation parity is wrong (twist sum is not a multiple of 3)
//	6  corner and edge permutation parities disagree
type ValidationError struct {
	Code int
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("facelet error %d: %s", e.Code, e.Msg)
}

func newValidationError(code int, msg string) error {
	return &ValidationError{Code: code, Msg: msg}
}

// cornerFacelet[i] lists, in canonical cyclic order, the three facelet
// indices touched by corner slot i. edgeFacelet[i] lists the two facelet
// indices touched by edge slot i. Both are the standard tables used
// throughout the Kociemba-algorithm literature for facelet<->cubie
// conversion, indexed against the U(0-8) R(9-17) F(18-26) D(27-35)
// L(36-44) B(45-53) layout.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

// cornerColor[i] gives the three facelet colors of corner identity i, in
// the same cyclic order as cornerFacelet: the U/D-face color first.
var cornerColor = [8][3]Face{
	{U, R, F},
	{U, F, L},
	{U, L, B},
	{U, B, R},
	{D, F, R},
	{D, L, F},
	{D, B, L},
	{D, R, B},
}

var edgeColor = [12][2]Face{
	{U, R},
	{U, F},
	{U, L},
	{U, B},
	{D, R},
	{D, F},
	{D, L},
	{D, B},
	{F, R},
	{F, L},
	{B, L},
	{B, R},
}

// faceletFromCubie renders a cubie state into the canonical 54-character
// facelet string.
func faceletFromCubie(c Cubie) string {
	var f [54]byte
	for face := 0; face < 6; face++ {
		f[face*9+4] = faceLetters[face]
	}
	for slot := 0; slot < 8; slot++ {
		cb := c.Corners[slot]
		id, ori := cornerID(cb), cornerOri(cb)
		for k := 0; k < 3; k++ {
			f[cornerFacelet[slot][(ori+k)%3]] = faceLetters[cornerColor[id][k]]
		}
	}
	for slot := 0; slot < 12; slot++ {
		eb := c.Edges[slot]
		id, flip := edgeID(eb), edgeFlip(eb)
		for k := 0; k < 2; k++ {
			f[edgeFacelet[slot][(flip+k)%2]] = faceLetters[edgeColor[id][k]]
		}
	}
	return string(f[:])
}

// cubieFromFacelet decodes and validates a 54-character facelet string.
func cubieFromFacelet(facelet string) (Cubie, error) {
	var zero Cubie
	if len(facelet) != 54 {
		return zero, newValidationError(1, fmt.Sprintf("facelet string must be 54 characters, got %d", len(facelet)))
	}

	// The center sticker of each face names that face's letter; any other
	// character appearing exactly nine times maps onto one of those six
	// faces. Anything else is malformed.
	var centerOf [6]byte
	for face := 0; face < 6; face++ {
		centerOf[face] = facelet[face*9+4]
	}
	letterToFace := make(map[byte]Face, 6)
	for face := 0; face < 6; face++ {
		if _, dup := letterToFace[centerOf[face]]; dup {
			return zero, newValidationError(1, "center stickers are not six distinct colors")
		}
		letterToFace[centerOf[face]] = Face(face)
	}

	var count [6]int
	f := make([]Face, 54)
	for i := 0; i < 54; i++ {
		face, ok := letterToFace[facelet[i]]
		if !ok {
			return zero, newValidationError(1, fmt.Sprintf("sticker %q at position %d does not match any center", facelet[i], i))
		}
		f[i] = face
		count[face]++
	}
	for face := 0; face < 6; face++ {
		if count[face] != 9 {
			return zero, newValidationError(1, fmt.Sprintf("face %s has %d stickers, want 9", Face(face), count[face]))
		}
	}

	var c Cubie
	var cornerSeen [8]bool
	for slot := 0; slot < 8; slot++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			col := f[cornerFacelet[slot][ori]]
			if col == U || col == D {
				break
			}
		}
		if ori == 3 {
			return zero, newValidationError(4, fmt.Sprintf("corner %d has no U/D sticker", slot))
		}
		col1 := f[cornerFacelet[slot][(ori+1)%3]]
		col2 := f[cornerFacelet[slot][(ori+2)%3]]
		id := -1
		for j := 0; j < 8; j++ {
			if col1 == cornerColor[j][1] && col2 == cornerColor[j][2] {
				id = j
				break
			}
		}
		if id < 0 {
			return zero, newValidationError(4, fmt.Sprintf("corner %d does not match any known piece", slot))
		}
		if cornerSeen[id] {
			return zero, newValidationError(4, fmt.Sprintf("corner identity %d appears more than once", id))
		}
		cornerSeen[id] = true
		c.Corners[slot] = packCorner(id, ori)
	}

	var edgeSeen [12]bool
	for slot := 0; slot < 12; slot++ {
		a := f[edgeFacelet[slot][0]]
		b := f[edgeFacelet[slot][1]]
		id, flip := -1, 0
		for j := 0; j < 12; j++ {
			if a == edgeColor[j][0] && b == edgeColor[j][1] {
				id, flip = j, 0
				break
			}
			if a == edgeColor[j][1] && b == edgeColor[j][0] {
				id, flip = j, 1
				break
			}
		}
		if id < 0 {
			return zero, newValidationError(2, fmt.Sprintf("edge %d does not match any known piece", slot))
		}
		if edgeSeen[id] {
			return zero, newValidationError(2, fmt.Sprintf("edge identity %d appears more than once", id))
		}
		edgeSeen[id] = true
		c.Edges[slot] = packEdge(id, flip)
	}

	twistSum := 0
	for i := 0; i < 8; i++ {
		twistSum += cornerOri(c.Corners[i])
	}
	if twistSum%3 != 0 {
		return zero, newValidationError(5, "corner orientation sum is not a multiple of three")
	}

	flipSum := 0
	for i := 0; i < 12; i++ {
		flipSum += edgeFlip(c.Edges[i])
	}
	if flipSum%2 != 0 {
		return zero, newValidationError(3, "edge orientation sum is not even")
	}

	if cornerParity(c) != edgePermParity(c) {
		return zero, newValidationError(6, "corner and edge permutation parities disagree")
	}

	return c, nil
}

func cornerParity(c Cubie) int {
	var perm [8]int
	for i := range perm {
		perm[i] = cornerID(c.Corners[i])
	}
	return permParity(perm[:])
}

func edgePermParity(c Cubie) int {
	var perm [12]int
	for i := range perm {
		perm[i] = edgeID(c.Edges[i])
	}
	return permParity(perm[:])
}

// permParity returns 0 for an even permutation, 1 for odd, counting
// transpositions via selection sort.
func permParity(perm []int) int {
	p := append([]int(nil), perm...)
	parity := 0
	for i := 0; i < len(p); i++ {
		for p[i] != i {
			j := p[i]
			p[i], p[j] = p[j], p[i]
			parity ^= 1
		}
	}
	return parity
}
