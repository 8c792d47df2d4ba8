package cli

import (
	"strings"

	"github.com/sakateka/min2phase/internal/cfen"
	"github.com/sakateka/min2phase/internal/cube"
)

// parseStart resolves a --start flag value into a facelet string. An
// empty value means the solved cube; a value containing '|' is parsed
// as CFEN; anything else is treated as a raw 54-character facelet
// string and validated directly.
func parseStart(s string) (string, error) {
	if s == "" {
		return cube.NewCube().Facelet(), nil
	}
	if strings.Contains(s, "|") {
		state, err := cfen.ParseCFEN(s)
		if err != nil {
			return "", err
		}
		c, err := state.ToCube()
		if err != nil {
			return "", err
		}
		return c.Facelet(), nil
	}
	c, err := cube.FromFacelet(s)
	if err != nil {
		return "", err
	}
	return c.Facelet(), nil
}
