package cube

// axisOf groups opposite faces that share a turning axis: U/D, R/L, F/B.
func axisOf(f Face) int {
	return int(f) % 3
}

// combinePower folds two same-face quarter-turn counts into one, modulo
// four full turns. A result of 0 means the moves cancel completely.
func combinePower(a, b int) int {
	return (a + b) % 4
}

// AppendMove appends m to seq using the same simplification a solver
// applies while emitting a solution: adjacent moves on the same face
// combine (and cancel when their powers sum to a multiple of four), and a
// move two slots back folds into that slot when the move between them
// turns the opposite face of the same axis and so commutes with it (e.g.
// R L R becomes R2 L, since R and L turn parallel layers and can be
// reordered to sit next to each other).
func AppendMove(seq []Move, m Move) []Move {
	if n := len(seq); n > 0 && seq[n-1].Face == m.Face {
		if combined := combinePower(seq[n-1].Power, m.Power); combined == 0 {
			return seq[:n-1]
		} else {
			seq[n-1].Power = combined
			return seq
		}
	}

	if n := len(seq); n >= 2 && seq[n-2].Face == m.Face && axisOf(seq[n-1].Face) == axisOf(m.Face) {
		if combined := combinePower(seq[n-2].Power, m.Power); combined == 0 {
			out := make([]Move, 0, n-1)
			out = append(out, seq[:n-2]...)
			out = append(out, seq[n-1])
			return out
		} else {
			seq[n-2].Power = combined
			return seq
		}
	}

	return append(seq, m)
}

// Simplify rebuilds moves by feeding each move through AppendMove in turn.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		out = AppendMove(out, m)
	}
	return out
}
