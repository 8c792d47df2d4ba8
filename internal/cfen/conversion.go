package cfen

import (
	"fmt"

	"github.com/sakateka/min2phase/internal/cube"
)

// ToCube converts a concrete (wildcard-free) State in the canonical UF
// orientation into a cube.Cube.
func (s *State) ToCube() (*cube.Cube, error) {
	if s.Orientation.Up != cube.U || s.Orientation.Front != cube.F {
		return nil, fmt.Errorf("cfen: only the UF orientation is supported, got %q%q",
			string(faceLetter(s.Orientation.Up)), string(faceLetter(s.Orientation.Front)))
	}
	var b [54]byte
	for i, f := range s.Faces {
		for j, sticker := range f.Stickers {
			if sticker == '?' {
				return nil, fmt.Errorf("cfen: cannot build a concrete cube from a pattern containing wildcards")
			}
			b[i*9+j] = sticker
		}
	}
	return cube.FromFacelet(string(b[:]))
}

// FromCube renders c as a State in the canonical UF orientation.
func FromCube(c *cube.Cube) *State {
	facelet := c.Facelet()
	var s State
	s.Orientation = Orientation{Up: cube.U, Front: cube.F}
	for i := 0; i < 6; i++ {
		copy(s.Faces[i].Stickers[:], facelet[i*9:i*9+9])
	}
	return &s
}

// GenerateCFEN renders c as a CFEN string in the canonical orientation.
func GenerateCFEN(c *cube.Cube) string {
	return FromCube(c).String()
}

// MatchesCube reports whether c's facelet state matches s, treating
// '?' stickers in s as wildcards.
func (s *State) MatchesCube(c *cube.Cube) (bool, error) {
	facelet := c.Facelet()
	if len(facelet) != 54 {
		return false, fmt.Errorf("cfen: cube produced a malformed facelet string")
	}
	for i, f := range s.Faces {
		for j, want := range f.Stickers {
			if want == '?' {
				continue
			}
			if facelet[i*9+j] != want {
				return false, nil
			}
		}
	}
	return true, nil
}
