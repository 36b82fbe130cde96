package token

import (
	"fmt"
	"math/big"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

var maxAmount = big.NewInt(tokenconst.MaxAmount)

// ParseQuantity converts decimal string representation of the token amount
// into the raw contract value for the given precision.
func ParseQuantity(s string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > tokenconst.MaxDecimals {
		return nil, fmt.Errorf("%s: %d", tokenconst.ErrInvalidDecimals, decimals)
	}

	v, err := fixedn.FromString(s, decimals)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}

	if new(big.Int).Abs(v).Cmp(maxAmount) > 0 {
		return nil, fmt.Errorf("%s: %s", tokenconst.ErrInvalidQuantity, s)
	}

	return v, nil
}

// FormatQuantity converts raw contract value of the token amount into its
// decimal string representation.
func FormatQuantity(amount *big.Int, decimals int) string {
	return fixedn.ToString(amount, decimals)
}
