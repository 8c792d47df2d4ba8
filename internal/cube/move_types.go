package cube

// Move is a single quarter- or half-turn of one of the six faces.
// Power is 1 for a clockwise quarter turn, 2 for a half turn, 3 for a
// counter-clockwise quarter turn (so Power also counts quarter turns).
type Move struct {
	Face  Face
	Power int
}

// Index returns the move's position (0..17) in the canonical move
// ordering: face-major, then power 1,2,3.
func (m Move) Index() int {
	return int(m.Face)*3 + (m.Power - 1)
}

// MoveFromIndex is the inverse of Index.
func MoveFromIndex(i int) Move {
	return Move{Face: Face(i / 3), Power: i%3 + 1}
}

// moveDef describes a quarter-turn generator as two 4-cycles over corner
// and edge slots (listed in physical movement order: piece at cycle[k]
// moves to cycle[k+1 mod 4]), plus whether that turn twists the corners
// it moves and flips the edges it moves. U and D never twist or flip;
// R, L, F and B always twist corners, and only F and B flip edges.
type moveDef struct {
	corners     [4]int
	edges       [4]int
	twistCorner bool
	flipEdge    bool
}

var moveDefs = [6]moveDef{
	U: {corners: [4]int{CornerURF, CornerUFL, CornerULB, CornerUBR}, edges: [4]int{EdgeUR, EdgeUF, EdgeUL, EdgeUB}},
	D: {corners: [4]int{CornerDFR, CornerDRB, CornerDBL, CornerDLF}, edges: [4]int{EdgeDR, EdgeDB, EdgeDL, EdgeDF}},
	R: {corners: [4]int{CornerURF, CornerUBR, CornerDRB, CornerDFR}, edges: [4]int{EdgeUR, EdgeBR, EdgeDR, EdgeFR}, twistCorner: true},
	L: {corners: [4]int{CornerULB, CornerUFL, CornerDLF, CornerDBL}, edges: [4]int{EdgeUL, EdgeFL, EdgeDL, EdgeBL}, twistCorner: true},
	F: {corners: [4]int{CornerUFL, CornerURF, CornerDFR, CornerDLF}, edges: [4]int{EdgeUF, EdgeFR, EdgeDF, EdgeFL}, twistCorner: true, flipEdge: true},
	B: {corners: [4]int{CornerUBR, CornerULB, CornerDBL, CornerDRB}, edges: [4]int{EdgeUB, EdgeBL, EdgeDB, EdgeBR}, twistCorner: true, flipEdge: true},
}

func buildQuarterTurn(def moveDef) Cubie {
	c := Solved()
	for k := 0; k < 4; k++ {
		src := def.corners[k]
		dst := def.corners[(k+1)%4]
		ori := 0
		if def.twistCorner {
			if k%2 == 0 {
				ori = 1
			} else {
				ori = 2
			}
		}
		c.Corners[dst] = packCorner(src, ori)
	}
	for k := 0; k < 4; k++ {
		src := def.edges[k]
		dst := def.edges[(k+1)%4]
		flip := 0
		if def.flipEdge {
			flip = 1
		}
		c.Edges[dst] = packEdge(src, flip)
	}
	return c
}

// faceMoveCubie[f] is the cubie resulting from a single clockwise quarter
// turn of face f applied to a solved cube.
var faceMoveCubie [6]Cubie

// moveCubie[i] is the cubie for move index i (0..17), built by repeating
// the face's quarter turn Power times.
var moveCubie [18]Cubie

func init() {
	for f := 0; f < 6; f++ {
		faceMoveCubie[f] = buildQuarterTurn(moveDefs[f])
	}
	for f := 0; f < 6; f++ {
		acc := Solved()
		for power := 1; power <= 3; power++ {
			acc = Mult(acc, faceMoveCubie[f])
			moveCubie[Move{Face: Face(f), Power: power}.Index()] = acc
		}
	}
}

// Cubie returns the cubie transformation performed by m.
func (m Move) Cubie() Cubie {
	return moveCubie[m.Index()]
}

// AllMoves lists the 18 face turns in canonical order.
func AllMoves() []Move {
	moves := make([]Move, 18)
	for i := range moves {
		moves[i] = MoveFromIndex(i)
	}
	return moves
}
