// Command minesweepr computes Minesweeper mine probabilities from a JSON
// board description.
package main

import "github.com/mrgriscom/minesweepr/cmd/minesweepr/cmd"

func main() {
	cmd.Execute()
}
