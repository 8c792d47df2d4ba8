package cube

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces of the cube. The iota order matches
// the canonical facelet layout: each face occupies a contiguous run of 9
// characters in that order within a 54-character facelet string.
type Face int

const (
	U Face = iota
	R
	F
	D
	L
	B
)

var faceLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func (f Face) String() string {
	return string(faceLetters[f])
}

// letterANSI returns an ANSI-colored rendering of a facelet letter, using
// the conventional western color scheme (U white, R red, F green, D
// yellow, L orange, B blue).
func letterANSI(b byte) string {
	switch b {
	case 'U':
		return "\033[37mU\033[0m"
	case 'R':
		return "\033[31mR\033[0m"
	case 'F':
		return "\033[32mF\033[0m"
	case 'D':
		return "\033[33mD\033[0m"
	case 'L':
		return "\033[35mL\033[0m"
	case 'B':
		return "\033[34mB\033[0m"
	default:
		return string(b)
	}
}

func letterUnicode(b byte) string {
	switch b {
	case 'U':
		return "⬜"
	case 'R':
		return "🟥"
	case 'F':
		return "🟩"
	case 'D':
		return "🟨"
	case 'L':
		return "🟧"
	case 'B':
		return "🟦"
	default:
		return "⬛"
	}
}

// Cube is a 3x3x3 cube in a fixed orientation, backed by cubie-level
// permutation/orientation state.
type Cube struct {
	State Cubie
}

// NewCube returns a solved cube.
func NewCube() *Cube {
	return &Cube{State: Solved()}
}

// FromFacelet builds a Cube from a 54-character facelet string, validating
// it per the corner/edge permutation and orientation invariants.
func FromFacelet(facelet string) (*Cube, error) {
	c, err := cubieFromFacelet(facelet)
	if err != nil {
		return nil, err
	}
	return &Cube{State: c}, nil
}

// Facelet returns the 54-character facelet string for the current state.
func (c *Cube) Facelet() string {
	return faceletFromCubie(c.State)
}

// IsSolved reports whether the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.State.IsSolved()
}

// ApplyMove applies a single move to the cube in place.
func (c *Cube) ApplyMove(m Move) {
	c.State = Mult(c.State, m.Cubie())
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// String returns the facelet string representation.
func (c *Cube) String() string {
	return c.Facelet()
}

// UnfoldedString renders the cube as an unfolded cross, matching the
// classic U/L-F-R-B/D layout used throughout the CLI.
func (c *Cube) UnfoldedString(useColor, useUnicode bool) string {
	return UnfoldedFacelet(c.Facelet(), useColor, useUnicode)
}

// UnfoldedFacelet renders an arbitrary 54-character facelet string as an
// unfolded cross.
func UnfoldedFacelet(facelet string, useColor, useUnicode bool) string {
	glyph := func(b byte) string {
		switch {
		case useUnicode:
			return letterUnicode(b)
		case useColor:
			return letterANSI(b)
		default:
			return string(b) + " "
		}
	}

	var sb strings.Builder
	pad := strings.Repeat("  ", 3)
	if !useUnicode {
		pad = strings.Repeat("   ", 3)
	}

	face := func(base int) [9]byte {
		var f [9]byte
		copy(f[:], facelet[base:base+9])
		return f
	}

	uf, rf, ff, df, lf, bf := face(0), face(9), face(18), face(27), face(36), face(45)

	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		for col := 0; col < 3; col++ {
			sb.WriteString(glyph(uf[row*3+col]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	mid := [4][9]byte{lf, ff, rf, bf}
	for row := 0; row < 3; row++ {
		for i, mf := range mid {
			for col := 0; col < 3; col++ {
				sb.WriteString(glyph(mf[row*3+col]))
			}
			if i < 3 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		for col := 0; col < 3; col++ {
			sb.WriteString(glyph(df[row*3+col]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSticker renders a single facelet letter for display, matching the
// glyph rules UnfoldedFacelet uses.
func FormatSticker(letter byte, useColor, useUnicode bool) string {
	switch {
	case useUnicode:
		return letterUnicode(letter)
	case useColor:
		return letterANSI(letter)
	default:
		return fmt.Sprintf("%c", letter)
	}
}
