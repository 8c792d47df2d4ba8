// Package sym builds the whole-cube symmetry group the two-phase search
// uses to fold equivalent states together (spec.md §2 component 3, §4.3)
// and to re-view the input cube from several rotated frames before
// searching it (spec.md §2 component 6, §4.5).
//
// The group fixing the U/D axis as a set (allowing U<->D swap) has order
// 16: it is generated by a 90-degree rotation about the U-D axis, a
// 180-degree rotation about the F-B axis, and a mirror reflection through
// the L-R plane. Elements are built geometrically, as a relabeling of the
// solved cube's 54 facelets, then decoded through cube.FromFacelet so
// construction reuses the same validated corner/edge decoding the rest of
// the package depends on — nobody hand-derives orientation arithmetic for
// a whole-cube rotation here.
//
// URF3 (the 3-fold rotation cycling U->R->F->U) is not part of this
// UD-preserving group; it is kept alongside it because the solver's URF
// outer loop (spec.md §4.5) conjugates by its 3 powers plus cube
// inversion to search the input cube from 6 equivalent frames.
package sym

import "github.com/sakateka/min2phase/internal/cube"

// Expected class counts for the reduced coordinates in classes.go,
// per spec.md §3. The tables are built by orbit enumeration rather than
// hardcoded to these numbers; they are recorded here for reference and
// documentation, not asserted against at build time.
const (
	NTwistSym = 324
	NFlipSym  = 336
	NPermSym  = 2768
)

// point3 is an integer position on the cube's surface, used only to
// reason about whole-cube symmetries geometrically: axes x (L -1 .. R
// +1), y (D -1 .. U +1), z (B -1 .. F +1).
type point3 struct{ x, y, z int }

// faceNormal is the outward unit normal of each face.
var faceNormal = [6]point3{
	cube.U: {0, 1, 0},
	cube.R: {1, 0, 0},
	cube.F: {0, 0, 1},
	cube.D: {0, -1, 0},
	cube.L: {-1, 0, 0},
	cube.B: {0, 0, -1},
}

// faceletPoint returns the 3D position of facelet (face, row, col),
// using the row/col convention the facelet string's layout implies for
// that face (derived from internal/cube's corner/edge facelet tables:
// U has row0=back/row2=front, col0=left/col2=right; D mirrors the rows;
// F/B/R/L each run row0=up/row2=down with the remaining axis ordered to
// match which side of the face is visible from outside the cube).
func faceletPoint(face cube.Face, row, col int) point3 {
	switch face {
	case cube.U:
		return point3{col - 1, 1, row - 1}
	case cube.D:
		return point3{col - 1, -1, 1 - row}
	case cube.F:
		return point3{col - 1, 1 - row, 1}
	case cube.B:
		return point3{1 - col, 1 - row, -1}
	case cube.R:
		return point3{1, 1 - row, 1 - col}
	case cube.L:
		return point3{-1, 1 - row, col - 1}
	}
	panic("sym: bad face")
}

// faceletAt is faceletPoint's inverse restricted to a known face.
func faceletAt(face cube.Face, p point3) (row, col int) {
	switch face {
	case cube.U:
		return p.z + 1, p.x + 1
	case cube.D:
		return 1 - p.z, p.x + 1
	case cube.F:
		return 1 - p.y, p.x + 1
	case cube.B:
		return 1 - p.y, 1 - p.x
	case cube.R:
		return 1 - p.y, 1 - p.z
	case cube.L:
		return 1 - p.y, p.z + 1
	}
	panic("sym: bad face")
}

func faceFromNormal(n point3) cube.Face {
	for f := cube.U; f <= cube.B; f++ {
		if faceNormal[f] == n {
			return f
		}
	}
	panic("sym: not a face normal")
}

// relabel returns the 54-character facelet string obtained by applying
// the rigid transform t to every sticker of solved. t must map the cube
// onto itself as a set (one of its 48 geometric symmetries).
func relabel(solved string, t func(point3) point3) string {
	out := make([]byte, 54)
	for face := cube.U; face <= cube.B; face++ {
		nf := faceFromNormal(t(faceNormal[face]))
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				p2 := t(faceletPoint(face, row, col))
				r2, c2 := faceletAt(nf, p2)
				out[int(nf)*9+r2*3+c2] = solved[int(face)*9+row*3+col]
			}
		}
	}
	return string(out)
}

func rotU4(p point3) point3 { return point3{p.z, p.y, -p.x} }
func rotF2(p point3) point3 { return point3{-p.x, -p.y, p.z} }
func rotURF3(p point3) point3 { return point3{p.y, p.z, p.x} }

// fromProperRotation builds the Cubie for a proper (orientation-
// preserving) whole-cube rotation by relabeling the solved facelet
// string and decoding it with the already-validated facelet codec.
func fromProperRotation(t func(point3) point3) cube.Cubie {
	solved := cube.NewCube().Facelet()
	fc := relabel(solved, t)
	c, err := cube.FromFacelet(fc)
	if err != nil {
		panic("sym: invalid rotation generator: " + err.Error())
	}
	return c.State
}

// mirrorLR builds the improper (mirror) symmetry reflecting through the
// L-R plane (x -> -x, fixing U, D, F, B individually). It cannot be
// built through the facelet codec: a sticker relabeling that swaps
// chirality produces a corner/edge permutation parity relationship the
// codec rejects as unreachable by any real scramble (it is, in the
// ordinary sense — a mirror image of a cube is not a state any physical
// cube can reach). Cubie's corner orientation already reserves values
// 3..5 for exactly this case (ori/3 is a mirror flag, ori%3 the twist in
// the mirrored frame; see cubie.go and cube.Mult's orientation-combine
// rule), so it is built directly as a permutation instead:
//
// Reflecting through x=0 leaves the U/D axis untouched, so every
// corner's U/D-facing sticker keeps facing U/D — each swapped corner
// pair gets twist 0, only the mirror flag set. The four L-R edge pairs
// and the two slice-diagonal pairs likewise keep their U/D or F/B
// sticker facing the same way, so their flip stays 0; UF/UB/DF/DB are
// fixed points.
func mirrorLR() cube.Cubie {
	c := cube.Solved()
	cornerPairs := [4][2]int{
		{cube.CornerURF, cube.CornerUFL},
		{cube.CornerULB, cube.CornerUBR},
		{cube.CornerDFR, cube.CornerDLF},
		{cube.CornerDBL, cube.CornerDRB},
	}
	for _, p := range cornerPairs {
		c.SetCornerAt(p[0], p[1], 3)
		c.SetCornerAt(p[1], p[0], 3)
	}
	edgePairs := [4][2]int{
		{cube.EdgeUR, cube.EdgeUL},
		{cube.EdgeDR, cube.EdgeDL},
		{cube.EdgeFR, cube.EdgeFL},
		{cube.EdgeBL, cube.EdgeBR},
	}
	for _, p := range edgePairs {
		c.SetEdgeAt(p[0], p[1], 0)
		c.SetEdgeAt(p[1], p[0], 0)
	}
	return c
}

// Elements is the 16-element group stabilizing the U/D axis as a set,
// generated by rotU4, rotF2 and the L-R mirror via group closure (not
// assumed a priori to have any particular size).
var Elements = buildGroup()

// Inverses[i] is cube.Inv(Elements[i]), precomputed once.
var Inverses = buildInverses()

// URF3 cycles U->R->F->U (and D->L->B->D), the 120-degree rotation
// about the URF-DLB diagonal. It is not a member of Elements (it does
// not stabilize the U/D axis); the solver's URF outer loop conjugates
// by its powers directly.
var URF3 = fromProperRotation(rotURF3)

// URF3Inv is cube.Inv(URF3).
var URF3Inv = cube.Inv(URF3)

func buildGroup() []cube.Cubie {
	gens := []cube.Cubie{
		fromProperRotation(rotU4),
		fromProperRotation(rotF2),
		mirrorLR(),
	}
	seen := map[cube.Cubie]bool{cube.Solved(): true}
	elems := []cube.Cubie{cube.Solved()}
	for i := 0; i < len(elems); i++ {
		for _, g := range gens {
			next := cube.Mult(elems[i], g)
			if !seen[next] {
				seen[next] = true
				elems = append(elems, next)
			}
		}
	}
	return elems
}

func buildInverses() []cube.Cubie {
	inv := make([]cube.Cubie, len(Elements))
	for i, e := range Elements {
		inv[i] = cube.Inv(e)
	}
	return inv
}

// Conjugate returns Elements[s] * c * Inverses[s]: the state reached by
// viewing c from the frame rotated by symmetry s.
func Conjugate(s int, c cube.Cubie) cube.Cubie {
	return cube.Mult(cube.Mult(Elements[s], c), Inverses[s])
}

// ConjugateURF3 returns URF3^k * c * URF3^-k for k in {0,1,2} (k is
// reduced mod 3).
func ConjugateURF3(k int, c cube.Cubie) cube.Cubie {
	k = ((k % 3) + 3) % 3
	out := c
	for i := 0; i < k; i++ {
		out = cube.Mult(cube.Mult(URF3, out), URF3Inv)
	}
	return out
}

// UnconjugateURF3Move maps a move found while searching
// ConjugateURF3(k, c) back to the move that has the same effect on c
// itself: apply URF3^-k before the move and URF3^k after it, i.e.
// conjugate the move's own cubie by URF3^-k.
func UnconjugateURF3Move(k int, m cube.Move) cube.Cubie {
	k = ((k % 3) + 3) % 3
	out := m.Cubie()
	for i := 0; i < k; i++ {
		out = cube.Mult(cube.Mult(URF3Inv, out), URF3)
	}
	return out
}
