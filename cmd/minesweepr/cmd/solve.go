package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrgriscom/minesweepr/pkg/wire"
)

var (
	inputFile  string
	outputFile string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a board from a JSON request file (or stdin)",
	Example: `  minesweepr solve -i board.json
  cat board.json | minesweepr solve`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&inputFile, "input", "i", "", "request JSON file (defaults to stdin)")
	solveCmd.Flags().StringVarP(&outputFile, "output", "o", "", "response JSON file (defaults to stdout)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	var req wire.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}

	// A request with no prevalence at all falls back to the configured
	// default mine probability.
	if cfg != nil && req.MineProb == nil && req.TotalCells == 0 && req.TotalMines == 0 {
		p := cfg.Solver.DefaultMineProb
		req.MineProb = &p
	}

	resp := wire.Solve(req)

	out, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
