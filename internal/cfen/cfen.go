// Package cfen implements a compact, human-friendly run-length notation
// for a cube state: an orientation pair followed by six run-length
// encoded faces, e.g. "UF|U9/R9/F9/D9/L9/B9" for the solved cube.
// '?' stands for a wildcard sticker when matching against a pattern.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sakateka/min2phase/internal/cube"
)

// Orientation names which face is up and which is front. Only the
// canonical UF orientation round-trips through ToCube/FromCube; the other
// 23 whole-cube orientations parse, but ToCube rejects them.
type Orientation struct {
	Up    cube.Face
	Front cube.Face
}

// Face is one face's 9 stickers in row-major order, each either one of
// the six face letters or '?' for a wildcard.
type Face struct {
	Stickers [9]byte
}

// State is a parsed CFEN string.
type State struct {
	Orientation Orientation
	Faces       [6]Face // U, R, F, D, L, B order
}

var letterToFace = map[byte]cube.Face{
	'U': cube.U, 'R': cube.R, 'F': cube.F,
	'D': cube.D, 'L': cube.L, 'B': cube.B,
}

func faceLetter(f cube.Face) byte {
	return "URFDLB"[int(f)]
}

// ParseCFEN parses a CFEN string into a State.
func ParseCFEN(s string) (*State, error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cfen: expected 'orientation|faces', got %q", s)
	}

	orientation, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid orientation %q: %w", parts[0], err)
	}
	faces, err := parseFaces(parts[1])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid faces %q: %w", parts[1], err)
	}
	return &State{Orientation: *orientation, Faces: faces}, nil
}

func parseOrientation(s string) (*Orientation, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("orientation must be exactly 2 characters, got %d", len(s))
	}
	up, ok := letterToFace[s[0]]
	if !ok {
		return nil, fmt.Errorf("unknown up face letter %q", s[0])
	}
	front, ok := letterToFace[s[1]]
	if !ok {
		return nil, fmt.Errorf("unknown front face letter %q", s[1])
	}
	return &Orientation{Up: up, Front: front}, nil
}

var runToken = regexp.MustCompile(`([URFDLB?])(\d*)`)

func parseFaces(s string) ([6]Face, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 6 {
		return [6]Face{}, fmt.Errorf("expected 6 faces separated by '/', got %d", len(parts))
	}
	var faces [6]Face
	for i, p := range parts {
		f, err := parseFace(p)
		if err != nil {
			return [6]Face{}, fmt.Errorf("face %d: %w", i, err)
		}
		faces[i] = f
	}
	return faces, nil
}

func parseFace(s string) (Face, error) {
	matches := runToken.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return Face{}, fmt.Errorf("no valid sticker tokens in %q", s)
	}

	var stickers []byte
	consumed := 0
	for _, m := range matches {
		if m[0] != consumed {
			return Face{}, fmt.Errorf("unparseable text in %q at offset %d", s, consumed)
		}
		letter := s[m[2]]
		count := 1
		if m[4] != m[5] {
			n, err := strconv.Atoi(s[m[4]:m[5]])
			if err != nil || n < 1 {
				return Face{}, fmt.Errorf("invalid run count in %q", s)
			}
			count = n
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, letter)
		}
		consumed = m[1]
	}
	if consumed != len(s) {
		return Face{}, fmt.Errorf("trailing unparsed text in %q", s)
	}
	if len(stickers) != 9 {
		return Face{}, fmt.Errorf("face has %d stickers, want 9", len(stickers))
	}

	var f Face
	copy(f.Stickers[:], stickers)
	return f, nil
}

func (f Face) compactString() string {
	var sb strings.Builder
	cur := f.Stickers[0]
	count := 1
	flush := func() {
		sb.WriteByte(cur)
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < len(f.Stickers); i++ {
		if f.Stickers[i] == cur {
			count++
			continue
		}
		flush()
		cur = f.Stickers[i]
		count = 1
	}
	flush()
	return sb.String()
}

// String renders s back to CFEN notation.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteByte(faceLetter(s.Orientation.Up))
	sb.WriteByte(faceLetter(s.Orientation.Front))
	sb.WriteByte('|')
	for i, f := range s.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(f.compactString())
	}
	return sb.String()
}

// ValidateCFEN reports whether s parses as a well-formed CFEN string.
func ValidateCFEN(s string) error {
	_, err := ParseCFEN(s)
	return err
}
