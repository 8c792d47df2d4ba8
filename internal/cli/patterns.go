package cli

import (
	"fmt"
	"os"

	"github.com/sakateka/min2phase/internal/cube"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [name]",
	Short: "List named cube patterns, or display one",
	Long: `Patterns lists the named recognizable states (solved, checkerboard,
superflip, cube-in-cube). Given a name, it displays the state reached
by applying that pattern's algorithm to a solved cube.

Examples:
  cube patterns
  cube patterns superflip --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, p := range cube.Patterns() {
				fmt.Printf("%-14s %s\n", p.Name, p.Algorithm)
			}
			return
		}

		name := args[0]
		p, ok := cube.LookupPattern(name)
		if !ok {
			fmt.Printf("Unknown pattern %q\n", name)
			os.Exit(1)
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		facelet, err := p.Facelet()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		c, err := cube.FromFacelet(facelet)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pattern: %s (%s)\n\n", p.Name, p.Algorithm)
		fmt.Println(c.UnfoldedString(useColor, useUnicode))
	},
}

func init() {
	patternsCmd.Flags().BoolP("color", "c", false, "use colored output")
	patternsCmd.Flags().Bool("letters", false, "use colored letters instead of Unicode blocks")
	rootCmd.AddCommand(patternsCmd)
}
