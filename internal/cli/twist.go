package cli

import (
	"fmt"
	"os"

	"github.com/sakateka/min2phase/internal/cfen"
	"github.com/sakateka/min2phase/internal/cube"
	"github.com/sakateka/min2phase/internal/solver"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Twist applies a sequence of moves to a cube and displays the resulting
state. It does not solve the cube - useful for exploring scrambles and
checking move notation.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color
  cube twist "R U R' U'" --cfen`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		startFlag, _ := cmd.Flags().GetString("start")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		facelet, err := parseStart(startFlag)
		if err != nil {
			fmt.Printf("Error parsing starting state: %v\n", err)
			os.Exit(1)
		}

		result, err := solver.ApplyMoves(facelet, moves)
		if err != nil {
			fmt.Printf("Error applying moves: %v\n", err)
			os.Exit(1)
		}

		c, err := cube.FromFacelet(result)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if useCfenOutput {
			fmt.Print(cfen.GenerateCFEN(c))
			return
		}

		parsed, _ := cube.ParseMoves(moves)
		fmt.Printf("Applying moves: %s\n\n", moves)
		fmt.Println(c.UnfoldedString(useColor, useUnicode))
		fmt.Printf("Moves applied: %d\n", len(parsed))
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().String("start", "", "starting state as a facelet string or CFEN (default: solved)")
	twistCmd.Flags().Bool("cfen", false, "output the resulting state as a CFEN string")
	twistCmd.Flags().BoolP("color", "c", false, "use colored output")
	twistCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")
}
