package cube

// Cubie is the permutation/orientation state of a 3x3x3 cube: which piece
// sits in each of the 8 corner and 12 edge slots, and how it is twisted or
// flipped there.
//
// Corners[i] packs the identity of the piece at slot i in the low 3 bits
// and its orientation in bits 3..5. Orientation is 0..2 for an ordinary
// (proper) cube. The improper "mirror" cube used while building symmetry
// tables extends it to 0..5, where ori/3 is a mirror flag and ori%3 is the
// twist relative to that mirrored frame.
//
// Edges[i] packs identity<<1 | flip.
type Cubie struct {
	Corners [8]uint8
	Edges   [12]uint8
}

// Corner slot / identity order: URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB.
const (
	CornerURF = iota
	CornerUFL
	CornerULB
	CornerUBR
	CornerDFR
	CornerDLF
	CornerDBL
	CornerDRB
)

// Edge slot / identity order: UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR.
const (
	EdgeUR = iota
	EdgeUF
	EdgeUL
	EdgeUB
	EdgeDR
	EdgeDF
	EdgeDL
	EdgeDB
	EdgeFR
	EdgeFL
	EdgeBL
	EdgeBR
)

func cornerID(b uint8) int  { return int(b & 7) }
func cornerOri(b uint8) int { return int(b >> 3) }

func packCorner(id, ori int) uint8 {
	return uint8(id) | uint8(ori<<3)
}

func edgeID(b uint8) int   { return int(b >> 1) }
func edgeFlip(b uint8) int { return int(b & 1) }

func packEdge(id, flip int) uint8 {
	return uint8(id<<1) | uint8(flip)
}

// CornerAt returns the identity and orientation of the piece at corner
// slot i. Exported for packages (coord, sym, tables) that need to read
// or rebuild coordinates without reaching into the packed byte layout.
func (c Cubie) CornerAt(i int) (id, ori int) {
	return cornerID(c.Corners[i]), cornerOri(c.Corners[i])
}

// SetCornerAt sets corner slot i to hold piece id with orientation ori.
func (c *Cubie) SetCornerAt(i, id, ori int) {
	c.Corners[i] = packCorner(id, ori)
}

// EdgeAt returns the identity and flip of the piece at edge slot i.
func (c Cubie) EdgeAt(i int) (id, flip int) {
	return edgeID(c.Edges[i]), edgeFlip(c.Edges[i])
}

// SetEdgeAt sets edge slot i to hold piece id with the given flip.
func (c *Cubie) SetEdgeAt(i, id, flip int) {
	c.Edges[i] = packEdge(id, flip)
}

// Solved returns the identity cubie.
func Solved() Cubie {
	var c Cubie
	for i := 0; i < 8; i++ {
		c.Corners[i] = packCorner(i, 0)
	}
	for i := 0; i < 12; i++ {
		c.Edges[i] = packEdge(i, 0)
	}
	return c
}

// IsSolved reports whether c is the identity cubie.
func (c Cubie) IsSolved() bool {
	return c == Solved()
}

// Mult returns a*b: the state reached by applying move b on top of a.
func Mult(a, b Cubie) Cubie {
	var out Cubie
	for i := 0; i < 8; i++ {
		bc := b.Corners[i]
		bid, bori := cornerID(bc), cornerOri(bc)
		ac := a.Corners[bid]
		aid, aori := cornerID(ac), cornerOri(ac)

		var ori int
		if aori < 3 && bori < 3 {
			ori = (aori + bori) % 3
		} else {
			ori = (aori + 6 - bori) % 3
			if aori/3 != bori/3 {
				ori += 3
			}
		}
		out.Corners[i] = packCorner(aid, ori)
	}
	for i := 0; i < 12; i++ {
		be := b.Edges[i]
		bid, bflip := edgeID(be), edgeFlip(be)
		ae := a.Edges[bid]
		out.Edges[i] = ae ^ uint8(bflip)
	}
	return out
}

// Inv returns the inverse of a.
func Inv(a Cubie) Cubie {
	var out Cubie
	for i := 0; i < 8; i++ {
		ac := a.Corners[i]
		id, ori := cornerID(ac), cornerOri(ac)
		mirror, twist := ori/3, ori%3
		invTwist := (3 - twist) % 3
		out.Corners[id] = packCorner(i, invTwist+mirror*3)
	}
	for i := 0; i < 12; i++ {
		ae := a.Edges[i]
		id, flip := edgeID(ae), edgeFlip(ae)
		out.Edges[id] = packEdge(i, flip)
	}
	return out
}
