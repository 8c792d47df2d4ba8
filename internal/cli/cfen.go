package cli

import (
	"fmt"

	"github.com/sakateka/min2phase/internal/cfen"
	"github.com/sakateka/min2phase/internal/cube"
	"github.com/spf13/cobra"
)

var parseCfenCmd = &cobra.Command{
	Use:   "parse-cfen <cfen-string>",
	Short: "Parse and display a CFEN string as a cube state",
	Long: `Parse a CFEN (Cube Forsyth-Edwards Notation) string and display the
resulting cube state. Only the canonical UF orientation (U up, F front)
can be converted to a cube; other orientations parse but fail to convert.

Examples:
  cube parse-cfen "UF|U9/R9/F9/D9/L9/B9"
  cube parse-cfen "UF|?U?UUU?U?/?9/?9/?9/?9/?9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfenStr := args[0]

		cfenState, err := cfen.ParseCFEN(cfenStr)
		if err != nil {
			return fmt.Errorf("failed to parse CFEN: %w", err)
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		fmt.Printf("CFEN: %s\n", cfenStr)
		fmt.Printf("Orientation: %c up, %c front\n", "URFDLB"[cfenState.Orientation.Up], "URFDLB"[cfenState.Orientation.Front])

		c, err := cfenState.ToCube()
		if err != nil {
			fmt.Printf("Cannot convert to cube: %v\n", err)
			return nil
		}
		fmt.Printf("Solved: %t\n\n", c.IsSolved())
		fmt.Print(c.UnfoldedString(useColor, useUnicode))
		return nil
	},
}

var generateCfenCmd = &cobra.Command{
	Use:   "generate-cfen <scramble>",
	Short: "Apply scramble moves and output the resulting CFEN string",
	Long: `Apply a scramble sequence to a starting cube and output the resulting
state as a CFEN string.

Examples:
  cube generate-cfen "R U R' U'"
  cube generate-cfen "R U R' U'" --start "UF|..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]

		startFlag, _ := cmd.Flags().GetString("start")
		facelet, err := parseStart(startFlag)
		if err != nil {
			return fmt.Errorf("invalid starting state: %w", err)
		}

		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}
			c, err := cube.FromFacelet(facelet)
			if err != nil {
				return fmt.Errorf("invalid starting state: %w", err)
			}
			c.ApplyMoves(moves)
			facelet = c.Facelet()
		}

		c, err := cube.FromFacelet(facelet)
		if err != nil {
			return fmt.Errorf("invalid starting state: %w", err)
		}
		fmt.Println(cfen.GenerateCFEN(c))
		return nil
	},
}

var matchCfenCmd = &cobra.Command{
	Use:   "match-cfen <current-cfen> <target-cfen>",
	Short: "Compare a CFEN state against a target pattern",
	Long: `Compare a CFEN string against a target CFEN pattern. Supports
wildcard matching where '?' positions in the target are ignored.

Examples:
  cube match-cfen "UF|U9/R9/F9/D9/L9/B9" "UF|U9/R9/F9/D9/L9/B9"
  cube match-cfen "UF|UUUUUUUUU/..." "UF|?U?UUU?U?/?9/?9/?9/?9/?9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		currentCfen := args[0]
		targetCfen := args[1]

		currentState, err := cfen.ParseCFEN(currentCfen)
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %w", err)
		}
		targetState, err := cfen.ParseCFEN(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		currentCube, err := currentState.ToCube()
		if err != nil {
			return fmt.Errorf("failed to convert current CFEN to cube: %w", err)
		}

		matches, err := targetState.MatchesCube(currentCube)
		if err != nil {
			return fmt.Errorf("failed to match: %w", err)
		}

		if matches {
			fmt.Println("MATCH: current state matches target pattern")
		} else {
			fmt.Println("NO MATCH: current state does not match target pattern")
		}
		fmt.Printf("Current: %s\n", currentCfen)
		fmt.Printf("Target:  %s\n", targetCfen)
		return nil
	},
}

func init() {
	parseCfenCmd.Flags().BoolP("color", "c", false, "use colored output")
	parseCfenCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")

	generateCfenCmd.Flags().String("start", "", "starting state as a facelet string or CFEN (default: solved)")

	rootCmd.AddCommand(parseCfenCmd)
	rootCmd.AddCommand(generateCfenCmd)
	rootCmd.AddCommand(matchCfenCmd)
}
