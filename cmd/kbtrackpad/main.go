// Command kbtrackpad turns the keyboard into a trackpad: while Fn or
// Control+Option is held, each key moves the cursor to its spot on screen.
package main

import (
	"os"
)

// Version is set at build time through -ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
