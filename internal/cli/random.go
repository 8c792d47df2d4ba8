package cli

import (
	"fmt"
	"os"

	"github.com/sakateka/min2phase/internal/cfen"
	"github.com/sakateka/min2phase/internal/cube"
	"github.com/sakateka/min2phase/internal/solver"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random scramble or a random cube state",
	Long: `Random prints a random sequence of moves, or (with --state) applies
that sequence to the solved cube and prints the resulting state.

Examples:
  cube random
  cube random --length 25
  cube random --state --cfen`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		length, _ := cmd.Flags().GetInt("length")
		showState, _ := cmd.Flags().GetBool("state")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		moves := solver.RandomMoves(length)

		if !showState {
			fmt.Println(moves)
			return
		}

		facelet, err := solver.ApplyMoves(cube.NewCube().Facelet(), moves)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		c, err := cube.FromFacelet(facelet)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if useCfenOutput {
			fmt.Print(cfen.GenerateCFEN(c))
			return
		}

		fmt.Printf("Scramble: %s\n\n", moves)
		fmt.Println(c.UnfoldedString(useColor, useUnicode))
	},
}

func init() {
	randomCmd.Flags().IntP("length", "n", 25, "number of random moves")
	randomCmd.Flags().Bool("state", false, "apply the scramble and show the resulting state")
	randomCmd.Flags().Bool("cfen", false, "with --state, output the state as a CFEN string")
	randomCmd.Flags().BoolP("color", "c", false, "use colored output")
	randomCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")
}
