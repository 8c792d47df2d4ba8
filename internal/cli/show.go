package cli

import (
	"fmt"

	"github.com/sakateka/min2phase/internal/cube"
	"github.com/sakateka/min2phase/internal/solver"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show a cube state",
	Long: `Show displays a cube state, optionally after applying a scramble.

Examples:
  cube show
  cube show "R U R' U'" --color
  cube show --start "UF|U9/R9/F9/D9/L9/B9"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		startFlag, _ := cmd.Flags().GetString("start")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		facelet, err := parseStart(startFlag)
		if err != nil {
			fmt.Printf("Error parsing starting state: %v\n", err)
			return
		}

		if scramble != "" {
			facelet, err = solver.ApplyMoves(facelet, scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Cube state:")
		}

		c, err := cube.FromFacelet(facelet)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(c.UnfoldedString(useColor, useUnicode))
	},
}

func init() {
	showCmd.Flags().String("start", "", "starting state as a facelet string or CFEN (default: solved)")
	showCmd.Flags().BoolP("color", "c", false, "use colored output")
	showCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")
}
