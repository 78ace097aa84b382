package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bfswalk/bfscore/arena"
	"github.com/bfswalk/bfscore/internal/obslog"
	"github.com/bfswalk/bfscore/ioq"
	"github.com/bfswalk/bfscore/varena"
)

var walkCmd = &cobra.Command{
	Use:   "walk <path>",
	Short: "Walk a directory tree through the ioq queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWalk(args[0])
	},
}

// dirStat is the arena-backed scratch struct allocated once per directory
// visited: a fixed-size type, so it belongs in arena rather than varena.
type dirStat struct {
	Files int
	Dirs  int
}

// nameHeader is the varena header for a directory entry's name, stored as
// a trailing flexible byte array sized to the name's length.
type nameHeader struct {
	Len uint32
}

func runWalk(root string) error {
	var log *obslog.Logger
	if verbose {
		log = obslog.New(nil)
	}

	q := ioq.CreateWithLogger(depth, nthreads, log)
	if q == nil {
		return fmt.Errorf("bfscoredemo: invalid --threads/--queue-depth")
	}
	defer q.Destroy()

	stats := arena.NewTyped[dirStat]()
	defer stats.Destroy()

	names := varena.NewTyped[nameHeader, byte]()
	defer names.Destroy()

	ctx := context.Background()
	var totalDirs, totalFiles int

	var walk func(path string) error
	walk = func(path string) error {
		var d ioq.Dir
		if err := q.Opendir(nil, path, &d, path); err != nil {
			return fmt.Errorf("opendir %s: %w", path, err)
		}
		openEnt, err := q.Pop(ctx)
		if err != nil {
			return err
		}
		if openEnt.Err != nil {
			err := fmt.Errorf("opendir %s: %w", path, openEnt.Err)
			q.Free(openEnt)
			return err
		}
		q.Free(openEnt)

		st := stats.Alloc()
		entries, err := d.File().ReadDir(-1)
		if err != nil {
			stats.Free(st)
			return fmt.Errorf("readdir %s: %w", path, err)
		}

		for _, e := range entries {
			name := e.Name()
			h, buf := names.Alloc(uint64(len(name)))
			h.Len = uint32(len(name))
			copy(buf, name)

			if e.IsDir() {
				st.Dirs++
				if err := walk(filepath.Join(path, name)); err != nil {
					names.Free(h, uint64(len(name)))
					stats.Free(st)
					return err
				}
			} else {
				st.Files++
			}
			names.Free(h, uint64(len(name)))
		}

		totalDirs++
		totalFiles += st.Files
		stats.Free(st)

		if err := q.Closedir(&d, nil); err != nil {
			return fmt.Errorf("closedir %s: %w", path, err)
		}
		closeEnt, err := q.Pop(ctx)
		if err != nil {
			return err
		}
		defer q.Free(closeEnt)
		if closeEnt.Err != nil {
			return fmt.Errorf("closedir %s: %w", path, closeEnt.Err)
		}
		return nil
	}

	if err := walk(root); err != nil {
		return err
	}

	fmt.Printf("directories: %d\n", totalDirs)
	fmt.Printf("files:       %d\n", totalFiles)

	as := stats.Arena().Stats()
	fmt.Printf("arena slabs: %d (chunk %d bytes)\n", as.NumSlabs, as.ChunkSize)

	vs := names.VArena().Stats()
	fmt.Printf("varena size classes: %d\n", vs.NumClasses)

	fmt.Printf("ioq capacity remaining: %d\n", q.Capacity())
	return nil
}
