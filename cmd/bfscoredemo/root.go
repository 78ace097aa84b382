package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	nthreads int
	depth    int
)

var rootCmd = &cobra.Command{
	Use:   "bfscoredemo",
	Short: "Exercise the arena, varena, and ioq packages against a directory tree",
	Long: `bfscoredemo walks a directory tree using the ioq asynchronous I/O
queue for opendir/closedir, allocating per-directory bookkeeping from an
arena and per-entry name buffers from a varena, then reports allocator and
queue statistics.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log worker lifecycle events")
	rootCmd.PersistentFlags().IntVar(&nthreads, "threads", 4, "ioq worker goroutine count")
	rootCmd.PersistentFlags().IntVar(&depth, "queue-depth", 64, "ioq entry pool depth")
	rootCmd.AddCommand(walkCmd)
}
