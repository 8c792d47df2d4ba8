package cli

import (
	"fmt"
	"os"

	"github.com/sakateka/min2phase/internal/cube"
	"github.com/sakateka/min2phase/internal/solver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve finds a move sequence that returns the cube to the solved state.
The scramble (if given) is applied to the starting state before solving.

Use --headless for programmatic output (space-separated moves only, no
solution found produces a non-zero exit code and no output).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		startFlag, _ := cmd.Flags().GetString("start")
		maxl, _ := cmd.Flags().GetInt("maxl")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		facelet, err := parseStart(startFlag)
		if err != nil {
			fail(headless, "Error parsing starting state: %v", err)
		}

		if scramble != "" {
			facelet, err = solver.ApplyMoves(facelet, scramble)
			if err != nil {
				fail(headless, "Error parsing scramble: %v", err)
			}
		}

		if !headless {
			fmt.Printf("Solving cube with scramble: %s\n\n", scramble)
			c, _ := cube.FromFacelet(facelet)
			fmt.Println(c.UnfoldedString(useColor, useUnicode))
		}

		solution, err := solver.Solve(facelet, maxl)
		if err != nil {
			fail(headless, "Error solving cube: %v", err)
		}

		if headless {
			fmt.Print(solution)
			return
		}

		result, err := solver.ApplyMoves(facelet, solution)
		if err != nil {
			fail(headless, "Error applying solution: %v", err)
		}
		c, _ := cube.FromFacelet(result)

		fmt.Printf("Solution: %s\n", solution)
		if solution == "" {
			fmt.Println("Moves: 0 (already solved)")
		} else {
			fmt.Printf("Moves: %d\n", len(mustParseMoves(solution)))
		}
		fmt.Printf("Solved: %t\n", c.IsSolved())
	},
}

func fail(headless bool, format string, err error) {
	if !headless {
		fmt.Printf(format+"\n", err)
	}
	os.Exit(1)
}

func mustParseMoves(s string) []cube.Move {
	moves, err := cube.ParseMoves(s)
	if err != nil {
		return nil
	}
	return moves
}

func init() {
	solveCmd.Flags().IntP("maxl", "m", 21, "maximum solution length (hard cap 25)")
	solveCmd.Flags().String("start", "", "starting state as a facelet string or CFEN (default: solved)")
	solveCmd.Flags().BoolP("color", "c", false, "use colored output")
	solveCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")
	solveCmd.Flags().Bool("headless", false, "output only the space-separated solution moves")
}
