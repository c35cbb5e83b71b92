// Package cmd implements the minesweepr command-line interface: a thin
// wrapper that reads a JSON solve request and prints the JSON response.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrgriscom/minesweepr/internal/config"
	"github.com/mrgriscom/minesweepr/pkg/solver"
)

var (
	verbose bool
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minesweepr",
	Short: "Compute Minesweeper mine probabilities from board constraints",
	Long: `minesweepr reads a set of "N mines among these cells" constraints and
computes, for every cell mentioned, the probability it holds a mine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose || cfg.Log.Trace {
			solver.EnableTrace()
		}
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable pipeline tracing")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a minesweepr config file")
}
