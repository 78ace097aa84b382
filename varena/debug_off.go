//go:build !bfsdebug

package varena

import "unsafe"

func (v *VArena) debugRecord(unsafe.Pointer, uint64) {}

func (v *VArena) debugCheck(unsafe.Pointer, uint64) {}
