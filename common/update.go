package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess returns true if contract can be updated by the owner.
func HasUpdateAccess(owner []byte) bool {
	return runtime.CheckWitness(owner)
}
