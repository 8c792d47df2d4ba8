package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A two-phase Rubik's cube solver",
	Long: `Cube solves a scrambled 3x3x3 Rubik's cube using a two-phase
(Kociemba-style) search over the cubie coordinate space.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(serveCmd)
}
