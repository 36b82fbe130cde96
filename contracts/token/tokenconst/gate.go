package tokenconst

// Gate is an enumeration of disbursement cooldown models.
type Gate int

const (
	// GateNone stands for buckets limited by their caps only.
	GateNone Gate = iota

	// GateOneShot stands for buckets that unlock at a fixed absolute time
	// (unix seconds) and stay unlocked thereafter.
	GateOneShot

	// GateRolling stands for buckets that wait a fixed interval (seconds)
	// after their own previous disbursement.
	GateRolling
)
