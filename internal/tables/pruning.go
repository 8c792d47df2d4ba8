package tables

import (
	"sync"

	"github.com/sakateka/min2phase/internal/coord"
)

// nibbleTable is a 4-bit-packed array of BFS distances, two entries per
// byte. 0xF is used both as "distance clamped to 15" and, before a
// table finishes building, as "not yet visited" — once built every
// reachable state holds a real (possibly clamped) distance, so the two
// meanings never need to be told apart by a caller.
type nibbleTable struct {
	data []byte
	n    int
}

func newNibbleTable(n int) *nibbleTable {
	t := &nibbleTable{data: make([]byte, (n+1)/2), n: n}
	for i := range t.data {
		t.data[i] = 0xFF
	}
	return t
}

func (t *nibbleTable) get(i int) int {
	b := t.data[i/2]
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

func (t *nibbleTable) set(i, v int) {
	if v > 15 {
		v = 15
	}
	idx := i / 2
	if i%2 == 0 {
		t.data[idx] = (t.data[idx] & 0xF0) | byte(v)
	} else {
		t.data[idx] = (t.data[idx] & 0x0F) | byte(v<<4)
	}
}

// buildPair runs a forward BFS over the product space of two
// coordinates sharing a move set, using moveA/moveB to step each
// coordinate independently under the same move index. The table holds
// sizeA*sizeB entries; pair (a,b) lives at slot a*sizeB+b, and the BFS
// starts from slot 0, the pair (0,0).
func buildPair(sizeA, sizeB, numMoves int, moveA, moveB func(v, m int) int) *nibbleTable {
	total := sizeA * sizeB
	tbl := newNibbleTable(total)
	tbl.set(0, 0)

	frontier := []int{0}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []int
		for _, idx := range frontier {
			a, b := idx/sizeB, idx%sizeB
			for m := 0; m < numMoves; m++ {
				na, nb := moveA(a, m), moveB(b, m)
				nidx := na*sizeB + nb
				if tbl.get(nidx) != 0xF {
					continue
				}
				tbl.set(nidx, depth+1)
				next = append(next, nidx)
			}
		}
		frontier = next
	}
	return tbl
}

var (
	sliceTwistOnce sync.Once
	sliceTwistTbl  *nibbleTable

	sliceFlipOnce sync.Once
	sliceFlipTbl  *nibbleTable

	combEPermOnce sync.Once
	combEPermTbl  *nibbleTable

	cpermMPermOnce sync.Once
	cpermMPermTbl  *nibbleTable
)

// SliceTwistDist returns a lower bound, over all 18 moves, on the
// number of moves needed to bring slice to 0 and twist to 0
// simultaneously, starting from coordinates (slice, twist).
func SliceTwistDist(slice, twist int) int {
	sliceTwistOnce.Do(func() {
		sm, tm := SliceMove(), TwistMove()
		sliceTwistTbl = buildPair(coord.NSlice, coord.NTwist, 18,
			func(v, m int) int { return int(sm[v][m]) },
			func(v, m int) int { return int(tm[v][m]) },
		)
	})
	return sliceTwistTbl.get(slice*coord.NTwist + twist)
}

// SliceFlipDist is SliceTwistDist's counterpart pairing slice with
// edge flip instead of corner twist.
func SliceFlipDist(slice, flip int) int {
	sliceFlipOnce.Do(func() {
		sm, fm := SliceMove(), FlipMove()
		sliceFlipTbl = buildPair(coord.NSlice, coord.NFlip, 18,
			func(v, m int) int { return int(sm[v][m]) },
			func(v, m int) int { return int(fm[v][m]) },
		)
	})
	return sliceFlipTbl.get(slice*coord.NFlip + flip)
}

// CombEPermDist returns a lower bound, over the 10 G1 moves, on the
// number of moves needed to solve both the D-layer corner-tetrad
// membership and the 8 non-slice-edge permutation, starting from
// (ccomb, eperm).
func CombEPermDist(ccomb, eperm int) int {
	combEPermOnce.Do(func() {
		cm, em := CCombMove(), EPermMove()
		combEPermTbl = buildPair(coord.NComb, coord.NPerm8, 10,
			func(v, m int) int { return int(cm[v][m]) },
			func(v, m int) int { return int(em[v][m]) },
		)
	})
	return combEPermTbl.get(ccomb*coord.NPerm8 + eperm)
}

// CPermMPermDist is CombEPermDist's counterpart pairing the 8 corner
// permutation with the 4 slice-edge permutation.
func CPermMPermDist(cperm, mperm int) int {
	cpermMPermOnce.Do(func() {
		cm, mm := CPermMove(), MPermMove()
		cpermMPermTbl = buildPair(coord.NPerm8, coord.NPermSlice, 10,
			func(v, m int) int { return int(cm[v][m]) },
			func(v, m int) int { return int(mm[v][m]) },
		)
	})
	return cpermMPermTbl.get(cperm*coord.NPermSlice + mperm)
}
