//go:build !bfsdebug

package arena

import "unsafe"

// Release builds pay nothing for contract-violation detection; a double
// free is undefined behavior here.
func (a *Arena) poisonFree(unsafe.Pointer) {}

func (a *Arena) clearPoison(unsafe.Pointer) {}
