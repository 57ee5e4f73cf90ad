// Command coinpack finds the most valuable combination of coins that fits
// a carrying-weight budget.
package main

import "github.com/katalvlaran/coinpack/internal/cli"

func main() {
	cli.Execute()
}
