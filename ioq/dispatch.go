package ioq

import (
	"os"
	"syscall"
)

// dispatch executes e's operation synchronously, filling in e.Ret and
// e.Err. It runs on a worker goroutine, the Go stand-in for the original
// bfs ioq's pthread pool workers that keep the calling thread's "API" side
// free of blocking syscalls.
func dispatch(e *IoqEnt) {
	switch e.Op {
	case OpClose:
		dispatchClose(e)
	case OpOpendir:
		dispatchOpendir(e)
	case OpClosedir:
		dispatchClosedir(e)
	default:
		e.Ret = -1
		e.Err = syscall.EINVAL
	}
}

func dispatchClose(e *IoqEnt) {
	err := syscall.Close(e.Close.FD)
	if err != nil {
		e.Ret = -1
		e.Err = err
		return
	}
	e.Ret = 0
}

func dispatchOpendir(e *IoqEnt) {
	args := e.Opendir
	var (
		f   *os.File
		err error
	)
	if args.DFD != nil {
		f, err = args.DFD.Open(args.Path)
	} else {
		f, err = os.Open(args.Path)
	}
	if err != nil {
		e.Ret = -1
		e.Err = err
		return
	}
	if args.Dir != nil {
		args.Dir.f = f
	}
	e.Ret = 0
}

func dispatchClosedir(e *IoqEnt) {
	args := e.Closedir
	if args.Dir == nil || args.Dir.f == nil {
		e.Ret = -1
		e.Err = syscall.EBADF
		return
	}
	err := args.Dir.f.Close()
	args.Dir.f = nil
	if err != nil {
		e.Ret = -1
		e.Err = err
		return
	}
	e.Ret = 0
}
