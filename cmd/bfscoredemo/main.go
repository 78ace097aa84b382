// Command bfscoredemo exercises the arena, varena, and ioq packages end to
// end against a real directory tree: it walks a path using ioq's
// asynchronous opendir/closedir, allocating one arena-backed entry per
// directory and one varena-backed name buffer per directory entry.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
