// Package coord implements the combinatorial coordinates the two-phase
// search runs over: corner twist, edge flip, UD-slice edge membership,
// corner and edge permutation, the 4-slice-edge permutation, and the
// corner-tetrad combination used for the phase-2 pruning pair. Every
// coordinate is a pure function of a cube.Cubie and is independent of the
// others it isn't explicitly paired with.
package coord

import "github.com/sakateka/min2phase/internal/cube"

// Coordinate space sizes.
const (
	NTwist    = 2187 // 3^7
	NFlip     = 2048 // 2^11
	NSlice    = 495  // C(12,4)
	NPerm8    = 40320 // 8!
	NPermSlice = 24   // 4!
	NComb     = 70   // C(8,4)
)

// binom[n][k] is precomputed for n,k <= 12, which covers every
// combination index this package needs.
var binom [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binom[n][0] = 1
		for k := 1; k <= n; k++ {
			binom[n][k] = binom[n-1][k-1]
			if k <= n-1 {
				binom[n][k] += binom[n-1][k]
			}
		}
	}
}

func cnk(n, k int) int {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	return binom[n][k]
}

// --- Twist: corner orientation, 0..2186 ---

// Twist encodes the orientation of corners 0..6; corner 7's orientation is
// determined by the invariant that the sum is a multiple of 3.
func Twist(c cube.Cubie) int {
	t := 0
	for i := 0; i < 7; i++ {
		_, ori := c.CornerAt(i)
		t = t*3 + ori
	}
	return t
}

// SetTwist sets the orientation of corners 0..6 from t and corner 7 to
// complete the parity, leaving every corner's identity untouched.
func SetTwist(c *cube.Cubie, t int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		ori := t % 3
		t /= 3
		id, _ := c.CornerAt(i)
		c.SetCornerAt(i, id, ori)
		sum += ori
	}
	id, _ := c.CornerAt(7)
	c.SetCornerAt(7, id, (3-sum%3)%3)
}

// --- Flip: edge orientation, 0..2047 ---

// Flip encodes the flip of edges 0..10; edge 11's flip is determined by
// the invariant that the sum is even.
func Flip(c cube.Cubie) int {
	f := 0
	for i := 0; i < 11; i++ {
		_, flip := c.EdgeAt(i)
		f = f*2 + flip
	}
	return f
}

// SetFlip sets the flip of edges 0..10 from f and edge 11 to complete the
// parity, leaving every edge's identity untouched.
func SetFlip(c *cube.Cubie, f int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		flip := f % 2
		f /= 2
		id, _ := c.EdgeAt(i)
		c.SetEdgeAt(i, id, flip)
		sum += flip
	}
	id, _ := c.EdgeAt(11)
	c.SetEdgeAt(11, id, sum%2)
}

// combIndex ranks a strictly increasing slice of chosen positions among
// {0,...,n-1} via the combinatorial number system: rank =
// sum_t C(chosen[t], t+1). It does not need n explicitly.
func combIndex(chosen []int) int {
	idx := 0
	for t, v := range chosen {
		idx += cnk(v, t+1)
	}
	return idx
}

// combUnindex is the inverse of combIndex for a k-subset of {0,...,n-1}.
func combUnindex(rank, n, k int) []int {
	chosen := make([]int, k)
	v := n - 1
	for t := k - 1; t >= 0; t-- {
		for cnk(v, t+1) > rank {
			v--
		}
		chosen[t] = v
		rank -= cnk(v, t+1)
		v--
	}
	return chosen
}

// --- Slice: which 4 of the 12 edge slots hold a UD-slice edge (FR, FL,
// BL, BR; identities 8..11), 0..494. Slots are ranked counting down from
// 11, so the solved cube (slice edges in slots 8..11) has slice 0. ---

func Slice(c cube.Cubie) int {
	var chosen []int
	for i := 11; i >= 0; i-- {
		id, _ := c.EdgeAt(i)
		if id >= cube.EdgeFR {
			chosen = append(chosen, 11-i)
		}
	}
	return combIndex(chosen)
}

// SetSlice places identities 8..11, in ascending order, at the slots
// named by s, and the other identities at the remaining slots. Used only to build a
// representative cubie for table construction; it does not try to
// preserve any other coordinate.
func SetSlice(c *cube.Cubie, s int) {
	slots := combUnindex(s, 12, 4)
	isSlice := make(map[int]bool, 4)
	for _, p := range slots {
		isSlice[11-p] = true
	}
	sliceID, otherID := cube.EdgeFR, 0
	for i := 0; i < 12; i++ {
		if isSlice[i] {
			c.SetEdgeAt(i, sliceID, 0)
			sliceID++
		} else {
			c.SetEdgeAt(i, otherID, 0)
			otherID++
		}
	}
}

// --- CComb: which 4 of the 8 corner slots hold a D-layer corner (DFR,
// DLF, DBL, DRB; identities 4..7), 0..69. Paired with EPerm for one of
// the phase-2 pruning tables. Slots are ranked counting down from 7, so
// the solved cube has ccomb 0. ---

func CComb(c cube.Cubie) int {
	var chosen []int
	for i := 7; i >= 0; i-- {
		id, _ := c.CornerAt(i)
		if id >= cube.CornerDFR {
			chosen = append(chosen, 7-i)
		}
	}
	return combIndex(chosen)
}

func SetCComb(c *cube.Cubie, comb int) {
	slots := combUnindex(comb, 8, 4)
	isD := make(map[int]bool, 4)
	for _, p := range slots {
		isD[7-p] = true
	}
	dID, uID := cube.CornerDFR, 0
	for i := 0; i < 8; i++ {
		if isD[i] {
			c.SetCornerAt(i, dID, 0)
			dID++
		} else {
			c.SetCornerAt(i, uID, 0)
			uID++
		}
	}
}

// --- Permutation coordinates, via the factorial number system (Lehmer
// code): rank of a length-n permutation of {0,...,n-1}. ---

func permIndex(p []int) int {
	n := len(p)
	idx := 0
	for i := 0; i < n; i++ {
		count := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				count++
			}
		}
		idx = idx*(n-i) + count
	}
	return idx
}

func permUnindex(idx, n int) []int {
	fact := make([]int, n+1)
	fact[0] = 1
	for i := 1; i <= n; i++ {
		fact[i] = fact[i-1] * i
	}
	avail := make([]int, n)
	for i := range avail {
		avail[i] = i
	}
	perm := make([]int, n)
	rem := idx
	for i := 0; i < n; i++ {
		f := fact[n-1-i]
		pos := rem / f
		rem %= f
		perm[i] = avail[pos]
		avail = append(avail[:pos], avail[pos+1:]...)
	}
	return perm
}

// CPerm is the permutation index (0..40319) of all 8 corner identities.
func CPerm(c cube.Cubie) int {
	p := make([]int, 8)
	for i := range p {
		p[i], _ = c.CornerAt(i)
	}
	return permIndex(p)
}

func SetCPerm(c *cube.Cubie, idx int) {
	p := permUnindex(idx, 8)
	for i, id := range p {
		_, ori := c.CornerAt(i)
		c.SetCornerAt(i, id, ori)
	}
}

// EPerm is the permutation index (0..40319) of the 8 non-slice edge
// identities (UR..DB), read from slots 0..7. Only meaningful once the
// slice coordinate is 0 (phase 2 has been reached).
func EPerm(c cube.Cubie) int {
	p := make([]int, 8)
	for i := range p {
		p[i], _ = c.EdgeAt(i)
	}
	return permIndex(p)
}

func SetEPerm(c *cube.Cubie, idx int) {
	p := permUnindex(idx, 8)
	for i, id := range p {
		_, flip := c.EdgeAt(i)
		c.SetEdgeAt(i, id, flip)
	}
}

// MPerm is the permutation index (0..23) of the 4 slice-edge identities
// (FR..BR), read from slots 8..11. Only meaningful once the slice
// coordinate is 0.
func MPerm(c cube.Cubie) int {
	p := make([]int, 4)
	for i := range p {
		id, _ := c.EdgeAt(8 + i)
		p[i] = id - cube.EdgeFR
	}
	return permIndex(p)
}

func SetMPerm(c *cube.Cubie, idx int) {
	p := permUnindex(idx, 4)
	for i, id := range p {
		_, flip := c.EdgeAt(8 + i)
		c.SetEdgeAt(8+i, id+cube.EdgeFR, flip)
	}
}
