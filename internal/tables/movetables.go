// Package tables builds and caches the move-transition and pruning
// tables the solver searches over. Every table is a pure function of
// the move definitions in internal/cube and the coordinate functions in
// internal/coord; nothing here is randomized or depends on the cube
// being solved, so each table is built exactly once, lazily, behind a
// sync.Once, and shared by every subsequent call into the package.
package tables

import (
	"sync"

	"github.com/sakateka/min2phase/internal/coord"
	"github.com/sakateka/min2phase/internal/cube"
)

// G1Moves lists, in ascending move-index order, the 10 moves that keep
// a cube inside the G1 subgroup (<U,D,R2,L2,F2,B2>): any power of U or
// D, and only the half turn of R, L, F, B. Phase 2 searches exclusively
// over this move set; phase 1 searches over all 18.
var G1Moves = buildG1Moves()

func buildG1Moves() []int {
	var out []int
	for _, f := range []cube.Face{cube.U, cube.D} {
		for power := 1; power <= 3; power++ {
			out = append(out, cube.Move{Face: f, Power: power}.Index())
		}
	}
	for _, f := range []cube.Face{cube.R, cube.L, cube.F, cube.B} {
		out = append(out, cube.Move{Face: f, Power: 2}.Index())
	}
	return out
}

var (
	twistMoveOnce sync.Once
	twistMoveTbl  [][18]int16

	flipMoveOnce sync.Once
	flipMoveTbl  [][18]int16

	sliceMoveOnce sync.Once
	sliceMoveTbl  [][18]int16

	cpermMoveOnce sync.Once
	cpermMoveTbl  [][10]uint16

	epermMoveOnce sync.Once
	epermMoveTbl  [][10]uint16

	mpermMoveOnce sync.Once
	mpermMoveTbl  [][10]int16

	ccombMoveOnce sync.Once
	ccombMoveTbl  [][10]int16
)

// TwistMove returns the transition table for the corner-twist
// coordinate: TwistMove()[t][m] is the twist coordinate reached by
// applying move index m to a cubie whose twist coordinate is t.
func TwistMove() [][18]int16 {
	twistMoveOnce.Do(func() {
		twistMoveTbl = make([][18]int16, coord.NTwist)
		for t := 0; t < coord.NTwist; t++ {
			rep := cube.Solved()
			coord.SetTwist(&rep, t)
			for m := 0; m < 18; m++ {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				twistMoveTbl[t][m] = int16(coord.Twist(out))
			}
		}
	})
	return twistMoveTbl
}

// FlipMove is TwistMove's counterpart for the edge-flip coordinate.
func FlipMove() [][18]int16 {
	flipMoveOnce.Do(func() {
		flipMoveTbl = make([][18]int16, coord.NFlip)
		for f := 0; f < coord.NFlip; f++ {
			rep := cube.Solved()
			coord.SetFlip(&rep, f)
			for m := 0; m < 18; m++ {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				flipMoveTbl[f][m] = int16(coord.Flip(out))
			}
		}
	})
	return flipMoveTbl
}

// SliceMove is TwistMove's counterpart for the UD-slice membership
// coordinate.
func SliceMove() [][18]int16 {
	sliceMoveOnce.Do(func() {
		sliceMoveTbl = make([][18]int16, coord.NSlice)
		for s := 0; s < coord.NSlice; s++ {
			rep := cube.Solved()
			coord.SetSlice(&rep, s)
			for m := 0; m < 18; m++ {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				sliceMoveTbl[s][m] = int16(coord.Slice(out))
			}
		}
	})
	return sliceMoveTbl
}

// CPermMove is the corner-permutation transition table, restricted to
// the 10 G1Moves: CPermMove()[p][g] is reached from cperm coordinate p
// by applying move G1Moves[g].
func CPermMove() [][10]uint16 {
	cpermMoveOnce.Do(func() {
		cpermMoveTbl = make([][10]uint16, coord.NPerm8)
		for p := 0; p < coord.NPerm8; p++ {
			rep := cube.Solved()
			coord.SetCPerm(&rep, p)
			for g, m := range G1Moves {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				cpermMoveTbl[p][g] = uint16(coord.CPerm(out))
			}
		}
	})
	return cpermMoveTbl
}

// EPermMove is the G1-restricted transition table for the 8
// non-slice-edge permutation coordinate.
func EPermMove() [][10]uint16 {
	epermMoveOnce.Do(func() {
		epermMoveTbl = make([][10]uint16, coord.NPerm8)
		for p := 0; p < coord.NPerm8; p++ {
			rep := cube.Solved()
			coord.SetEPerm(&rep, p)
			for g, m := range G1Moves {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				epermMoveTbl[p][g] = uint16(coord.EPerm(out))
			}
		}
	})
	return epermMoveTbl
}

// MPermMove is the G1-restricted transition table for the 4
// slice-edge permutation coordinate.
func MPermMove() [][10]int16 {
	mpermMoveOnce.Do(func() {
		mpermMoveTbl = make([][10]int16, coord.NPermSlice)
		for p := 0; p < coord.NPermSlice; p++ {
			rep := cube.Solved()
			coord.SetMPerm(&rep, p)
			for g, m := range G1Moves {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				mpermMoveTbl[p][g] = int16(coord.MPerm(out))
			}
		}
	})
	return mpermMoveTbl
}

// CCombMove is the G1-restricted transition table for the D-layer
// corner-tetrad membership coordinate.
func CCombMove() [][10]int16 {
	ccombMoveOnce.Do(func() {
		ccombMoveTbl = make([][10]int16, coord.NComb)
		for c := 0; c < coord.NComb; c++ {
			rep := cube.Solved()
			coord.SetCComb(&rep, c)
			for g, m := range G1Moves {
				out := cube.Mult(rep, cube.MoveFromIndex(m).Cubie())
				ccombMoveTbl[c][g] = int16(coord.CComb(out))
			}
		}
	})
	return ccombMoveTbl
}
