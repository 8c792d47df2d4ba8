package cube

// Pattern is a named, recognizable cube state, reached from solved by a
// fixed algorithm. Patterns are primarily useful for demos and for
// exercising the solver against known non-trivial states.
type Pattern struct {
	Name      string
	Algorithm string
}

var namedPatterns = []Pattern{
	{Name: "solved", Algorithm: ""},
	{Name: "checkerboard", Algorithm: "U2 D2 F2 B2 L2 R2"},
	{Name: "superflip", Algorithm: "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"},
	{Name: "cube-in-cube", Algorithm: "F L F U' R U F2 L2 U' L' B D' B' L2 U"},
}

// Patterns returns the full set of named patterns.
func Patterns() []Pattern {
	return namedPatterns
}

// LookupPattern finds a named pattern case-sensitively.
func LookupPattern(name string) (Pattern, bool) {
	for _, p := range namedPatterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Facelet returns the 54-character facelet string reached by applying the
// pattern's algorithm to a solved cube.
func (p Pattern) Facelet() (string, error) {
	moves, err := ParseMoves(p.Algorithm)
	if err != nil {
		return "", err
	}
	c := NewCube()
	c.ApplyMoves(moves)
	return c.Facelet(), nil
}
