// Package main is a small interactive demo of the tuikit runtime.
//
// Usage:
//
//	tuikit [flags]           Run the counter demo
//	tuikit config            Print the effective configuration
//
// Keys: + and - change the counter, q quits, Ctrl+C quits (configurable
// with ui.quit_key). The on-screen buttons can be clicked.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
