package deploy

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Config groups deployment parameters of the token contract. They can't be
// changed after deployment.
type Config struct {
	// Ledger owner allowed to create tokens and release bucket allocations.
	Owner util.Uint160

	// Destination wallets of the buckets indexed by tokenconst.Bucket. Zero
	// pre-ICO wallet is replaced with the ICO one, staking bonus wallet is
	// not used.
	Wallets [tokenconst.BucketCount]util.Uint160

	// Bucket caps in the smallest token units. Empty list means defaults.
	Caps []int64

	// Bucket time locks and their parameters. Both lists are either empty
	// (defaults) or set for all buckets.
	Gates      []tokenconst.Gate
	GateParams []int64
}

// DefaultConfig returns configuration with default caps and gates. Wallets
// must be set before use.
func DefaultConfig(owner util.Uint160) Config {
	c := Config{
		Owner:      owner,
		Caps:       make([]int64, tokenconst.BucketCount),
		Gates:      make([]tokenconst.Gate, tokenconst.BucketCount),
		GateParams: make([]int64, tokenconst.BucketCount),
	}

	for i := 0; i < tokenconst.BucketCount; i++ {
		b := tokenconst.Bucket(i)
		c.Caps[i] = int64(tokenconst.DefaultCap(b))

		g, p := tokenconst.DefaultGate(b)
		c.Gates[i] = g
		c.GateParams[i] = int64(p)
	}

	return c
}

// Validate checks whether configuration is accepted by the contract.
func (c Config) Validate() error {
	if c.Owner.Equals(util.Uint160{}) {
		return errors.New("missing owner")
	}

	for i, w := range c.Wallets {
		b := tokenconst.Bucket(i)
		if b == tokenconst.StakingBonus || b == tokenconst.PreICO {
			continue
		}
		if w.Equals(util.Uint160{}) {
			return fmt.Errorf("missing wallet of %s bucket", tokenconst.BucketName(b))
		}
	}

	if len(c.Caps) != 0 && len(c.Caps) != tokenconst.BucketCount {
		return fmt.Errorf("invalid number of caps %d", len(c.Caps))
	}

	for i, v := range c.Caps {
		if v < 0 || v > tokenconst.MaxAmount {
			return fmt.Errorf("invalid cap of %s bucket: %d", tokenconst.BucketName(tokenconst.Bucket(i)), v)
		}
	}

	if c.CapsSum().Cmp(big.NewInt(tokenconst.MaxAmount)) > 0 {
		return errors.New("caps sum exceeds maximum token amount")
	}

	if len(c.Gates) != len(c.GateParams) {
		return fmt.Errorf("gates and gate parameters mismatch: %d != %d", len(c.Gates), len(c.GateParams))
	}

	if len(c.Gates) != 0 && len(c.Gates) != tokenconst.BucketCount {
		return fmt.Errorf("invalid number of gates %d", len(c.Gates))
	}

	for i, g := range c.Gates {
		name := tokenconst.BucketName(tokenconst.Bucket(i))
		if g < tokenconst.GateNone || g > tokenconst.GateRolling {
			return fmt.Errorf("invalid gate of %s bucket: %d", name, g)
		}
		if c.GateParams[i] < 0 {
			return fmt.Errorf("invalid gate parameter of %s bucket: %d", name, c.GateParams[i])
		}
	}

	return nil
}

// CapsSum returns minimum max supply of a token created with this
// configuration.
func (c Config) CapsSum() *big.Int {
	caps := c.Caps
	if len(caps) == 0 {
		caps = DefaultConfig(c.Owner).Caps
	}

	res := new(big.Int)
	for _, v := range caps {
		res.Add(res, big.NewInt(v))
	}

	return res
}

// DeployData returns `_deploy` method data of the token contract.
func (c Config) DeployData() []any {
	wallets := make([]any, tokenconst.BucketCount)
	for i, w := range c.Wallets {
		if tokenconst.Bucket(i) == tokenconst.PreICO && w.Equals(util.Uint160{}) {
			w = c.Wallets[tokenconst.ICO]
		}
		wallets[i] = w
	}

	caps := make([]any, len(c.Caps))
	for i := range c.Caps {
		caps[i] = c.Caps[i]
	}

	gates := make([]any, len(c.Gates))
	params := make([]any, len(c.GateParams))
	for i := range c.Gates {
		gates[i] = int64(c.Gates[i])
		params[i] = c.GateParams[i]
	}

	return []any{c.Owner, wallets, caps, gates, params}
}
