// Command incrun prints the leftmost longest strictly increasing run of its
// input.
//
//	incrun ababc                     # 2 5 / abc
//	incrun -mode ints 12 45 32 65 78 23 35 45 57
//	echo "b a c" | incrun -mode words -format json
//	incrun -gen sawtooth -n 20 -param 5 -log-level debug
package main

import (
	"os"

	"github.com/katalvlaran/incrun/internal/cli"
)

// main keeps the process boundary thin; everything testable lives in cli.
func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}
