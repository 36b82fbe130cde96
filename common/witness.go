package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called by the
	// contract owner but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrIssuerWitnessFailed appears when the method must be called by the
	// token issuer but was not.
	ErrIssuerWitnessFailed = "issuer witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrOwnerWitnessFailed)
}

// CheckIssuerWitness checks witness of the token issuer.
// It panics with ErrIssuerWitnessFailed message on fail.
func CheckIssuerWitness(issuer []byte) {
	checkWitnessWithPanic(issuer, ErrIssuerWitnessFailed)
}

// CheckWitness checks witness of the passed caller. A contract calling the
// method directly is authorized as itself.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	if len(caller) != interop.Hash160Len {
		panic(ErrWitnessFailed)
	}

	if runtime.GetCallingScriptHash().Equals(caller) {
		return
	}

	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
