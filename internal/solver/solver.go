// Package solver implements the two-phase (Kociemba-style) search: a
// phase 1 IDA* restricted to raw (slice, twist) and (slice, flip)
// pruning, followed at every phase-1 leaf by a phase 2 IDA* restricted
// to the G1 subgroup and raw (ccomb, eperm) / (cperm, mperm) pruning.
//
// Around that core, Solve runs the URF outer loop (spec.md §4.5): the
// cube is re-viewed from 6 equivalent frames (the 3 powers of the
// U->R->F whole-cube rotation, each tried directly and via its
// inverse-cube trick), and the pre-move inner loop (spec.md §4.6): each
// of those 6 views is additionally tried with one of the 18 moves
// prepended. All 6*19 resulting searches share the same depth budget and
// the shortest complete solution found across every view/pre-move
// combination is returned.
package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sakateka/min2phase/internal/coord"
	"github.com/sakateka/min2phase/internal/cube"
	"github.com/sakateka/min2phase/internal/sym"
	"github.com/sakateka/min2phase/internal/tables"
)

// ErrNoSolution is returned when no solution exists within the move
// bound passed to Solve.
var ErrNoSolution = errors.New("solver: no solution found within the move bound")

// DefaultMaxLength is used by Solve when maxl <= 0.
const DefaultMaxLength = 21

func axisOf(f cube.Face) int { return int(f) % 3 }

// allowedNext rejects moves that repeat the previous move's face
// (strictly dominated by a single move of a different power) and
// canonicalizes adjacent moves on commuting opposite faces (same
// axis) to ascending face order, so the search never explores both
// orderings of two moves that commute.
func allowedNext(path []cube.Move, m cube.Move) bool {
	if len(path) == 0 {
		return true
	}
	last := path[len(path)-1]
	if last.Face == m.Face {
		return false
	}
	if axisOf(last.Face) == axisOf(m.Face) && last.Face > m.Face {
		return false
	}
	return true
}

// inverseMove returns the move that undoes m.
func inverseMove(m cube.Move) cube.Move {
	return cube.Move{Face: m.Face, Power: 4 - m.Power}
}

// moveFromCubie finds the named move whose Cubie() equals c. Used to
// print a move found by conjugating a searched move's Cubie by a URF3
// power back into the original frame; it always matches one of the 18
// named moves because conjugation by a whole-cube rotation maps the
// move set onto itself.
func moveFromCubie(c cube.Cubie) (cube.Move, bool) {
	for _, m := range cube.AllMoves() {
		if m.Cubie() == c {
			return m, true
		}
	}
	return cube.Move{}, false
}

// Solve returns a space-separated move sequence that brings the cube
// described by facelet to the solved state, using at most
// min(25, maxl+1) moves (the off-by-one in that bound matches the
// reference solver this is modeled on; see DESIGN.md). maxl <= 0 uses
// DefaultMaxLength.
func Solve(facelet string, maxl int) (string, error) {
	c, err := cube.FromFacelet(facelet)
	if err != nil {
		return "", err
	}
	if c.IsSolved() {
		return "", nil
	}

	if maxl <= 0 {
		maxl = DefaultMaxLength
	}
	maxTotal := maxl + 1
	if maxTotal > 25 {
		maxTotal = 25
	}

	var best []cube.Move

	for _, premove := range premoveCandidates() {
		budget := maxTotal
		if premove != nil {
			budget--
			if budget < 0 {
				continue
			}
		}

		c2 := c.State
		if premove != nil {
			c2 = cube.Mult(c2, premove.Cubie())
		}

		for view := 0; view < 6; view++ {
			k := view % 3
			inverted := view >= 3
			target := sym.ConjugateURF3(k, c2)
			if inverted {
				target = cube.Inv(target)
			}

			found := searchFromCubie(target, budget)
			if found == nil {
				continue
			}

			full := unconjugateSolution(k, inverted, premove, found)
			if best == nil || len(full) < len(best) {
				best = full
			}
		}
	}

	if best == nil {
		return "", ErrNoSolution
	}
	return cube.MovesString(cube.Simplify(best)), nil
}

// premoveCandidates returns nil (no pre-move) followed by each of the
// 18 single-move pre-moves (spec.md §4.6).
func premoveCandidates() []*cube.Move {
	out := make([]*cube.Move, 0, 19)
	out = append(out, nil)
	for _, m := range cube.AllMoves() {
		m := m
		out = append(out, &m)
	}
	return out
}

// unconjugateSolution maps a move sequence found while searching
// Inv(ConjugateURF3(k, c2)) (if inverted) or ConjugateURF3(k, c2)
// directly (c2 being c with premove already applied in the original
// frame) back to the sequence that solves the original cube c.
//
// If inverted, reversing the sequence and inverting every move first
// turns a solution of the inverse cube into a solution of the cube
// itself (standard trick: if m1..mn solves d, then inv(mn)..inv(m1)
// solves inv(d)). Each move is then un-conjugated by URF3^-k (see
// sym.UnconjugateURF3Move) to map it from the rotated frame back to the
// original one. premove needs no such treatment: it was applied to c
// directly, before any view transform, so it simply goes first.
func unconjugateSolution(k int, inverted bool, premove *cube.Move, found []cube.Move) []cube.Move {
	seq := found
	if inverted {
		rev := make([]cube.Move, len(seq))
		for i, m := range seq {
			rev[len(seq)-1-i] = inverseMove(m)
		}
		seq = rev
	}

	out := make([]cube.Move, 0, len(seq)+1)
	if premove != nil {
		out = append(out, *premove)
	}
	for _, m := range seq {
		mc := sym.UnconjugateURF3Move(k, m)
		named, ok := moveFromCubie(mc)
		if !ok {
			// Should not happen: URF3 conjugation maps the 18-move set onto
			// itself. Fall back to the searched move rather than lose the
			// solution's correctness guarantee from an impossible branch.
			named = m
		}
		out = append(out, named)
	}
	return out
}

// searchFromCubie runs the unconjugated phase1/phase2 IDA* against c,
// iterative-deepening depth1 up to budget, and returns the first
// complete move sequence found, or nil if none exists within budget.
func searchFromCubie(c cube.Cubie, budget int) []cube.Move {
	if budget < 0 {
		return nil
	}
	for depth1 := 0; depth1 <= budget; depth1++ {
		path := make([]cube.Move, 0, budget)
		if searchPhase1(c, depth1, budget, &path) {
			out := make([]cube.Move, len(path))
			copy(out, path)
			return out
		}
	}
	return nil
}

func searchPhase1(c cube.Cubie, depth1, maxTotal int, path *[]cube.Move) bool {
	slice := coord.Slice(c)
	twist := coord.Twist(c)
	flip := coord.Flip(c)

	h1 := tables.SliceTwistDist(slice, twist)
	h2 := tables.SliceFlipDist(slice, flip)
	h := h1
	if h2 > h {
		h = h2
	}
	if h > depth1 {
		return false
	}
	if depth1 == 0 {
		// h == 0 here forces slice == twist == flip == 0: the cube is
		// already in G1. Hand off to phase 2 with whatever moves remain
		// in the overall budget.
		return searchPhase2(c, maxTotal-len(*path), path)
	}

	for _, m := range cube.AllMoves() {
		if !allowedNext(*path, m) {
			continue
		}
		next := cube.Mult(c, m.Cubie())
		*path = append(*path, m)
		if searchPhase1(next, depth1-1, maxTotal, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}

func phase2Heuristic(c cube.Cubie) int {
	h1 := tables.CombEPermDist(coord.CComb(c), coord.EPerm(c))
	h2 := tables.CPermMPermDist(coord.CPerm(c), coord.MPerm(c))
	if h2 > h1 {
		return h2
	}
	return h1
}

func searchPhase2(c cube.Cubie, budget int, path *[]cube.Move) bool {
	h := phase2Heuristic(c)
	for depth2 := h; depth2 <= budget; depth2++ {
		if searchPhase2Bounded(c, depth2, path) {
			return true
		}
	}
	return false
}

func searchPhase2Bounded(c cube.Cubie, depth2 int, path *[]cube.Move) bool {
	h := phase2Heuristic(c)
	if h > depth2 {
		return false
	}
	if depth2 == 0 {
		return true
	}
	for _, g := range tables.G1Moves {
		m := cube.MoveFromIndex(g)
		if !allowedNext(*path, m) {
			continue
		}
		next := cube.Mult(c, m.Cubie())
		*path = append(*path, m)
		if searchPhase2Bounded(next, depth2-1, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}

// FromMoves applies a move sequence (standard notation, e.g. "R U R'
// U'") to the solved cube and returns the resulting facelet string.
func FromMoves(moves string) (string, error) {
	return ApplyMoves(cube.NewCube().Facelet(), moves)
}

// ApplyMoves applies a move sequence to the cube described by facelet
// and returns the resulting facelet string.
func ApplyMoves(facelet, moves string) (string, error) {
	c, err := cube.FromFacelet(facelet)
	if err != nil {
		return "", err
	}
	parsed, err := cube.ParseMoves(moves)
	if err != nil {
		return "", err
	}
	c.ApplyMoves(parsed)
	return c.Facelet(), nil
}

// RandomCube returns the facelet string of a uniformly random valid
// cube state.
func RandomCube() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := cube.RandomCubie(rng)
	c := cube.Cube{State: state}
	return c.Facelet()
}

// RandomMoves returns a space-separated sequence of n random moves
// with no two consecutive moves on the same face.
func RandomMoves(n int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	moves := cube.RandomMoves(rng, n)
	return cube.MovesString(moves)
}
