package cube

import (
	"fmt"
	"strings"
)

var letterToFaceMove = map[byte]Face{
	'U': U, 'R': R, 'F': F, 'D': D, 'L': L, 'B': B,
}

// ParseMove parses a single move token. The face letter (U R F D L B) may
// be followed by a suffix naming its power: none, "1" or "+" for a
// clockwise quarter turn, "2" for a half turn, and "'", "-" or "3" for a
// counter-clockwise quarter turn.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 {
		return Move{}, fmt.Errorf("empty move notation")
	}
	face, ok := letterToFaceMove[token[0]]
	if !ok {
		return Move{}, fmt.Errorf("unknown face letter %q", token[0:1])
	}
	suffix := token[1:]
	power := 1
	switch suffix {
	case "", "1", "+":
		power = 1
	case "2":
		power = 2
	case "'", "-", "3":
		power = 3
	default:
		return Move{}, fmt.Errorf("unknown move suffix %q in %q", suffix, token)
	}
	return Move{Face: face, Power: power}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return []Move{}, nil
	}
	tokens := strings.Fields(sequence)
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("error parsing move %q: %w", tok, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseScramble is an alias for ParseMoves kept for CLI command symmetry.
func ParseScramble(sequence string) ([]Move, error) {
	return ParseMoves(sequence)
}

// String renders a move in canonical notation: face letter, then "" for a
// clockwise quarter turn, "2" for a half turn, "'" for counter-clockwise.
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.Face.String())
	switch m.Power {
	case 2:
		sb.WriteString("2")
	case 3:
		sb.WriteString("'")
	}
	return sb.String()
}

// MovesString renders a move sequence as a space-separated string.
func MovesString(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
