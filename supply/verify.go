package supply

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/amzchain/amz-token/rpc/token"
)

// Supply accounting violations returned by Verify.
var (
	ErrSymbolMismatch     = errors.New("supply record symbol mismatch")
	ErrMalformedStats     = errors.New("malformed supply record")
	ErrIssuedOutOfRange   = errors.New("issued supply out of range")
	ErrNegativePool       = errors.New("negative supply pool")
	ErrCirculation        = errors.New("circulating supply mismatch")
	ErrBucketOutOfRange   = errors.New("bucket allocation out of range")
	ErrAllocationMismatch = errors.New("bucket allocations do not sum up to issued supply")
	ErrBalancesMismatch   = errors.New("balances do not sum up to circulating supply")
	ErrNegativeBalance    = errors.New("negative balance")
)

// Verify checks supply record st of the sym token and all its balance records
// against supply accounting rules. It returns all found violations joined.
func Verify(sym string, st *token.Stats, accounts []token.AccountRecord) error {
	if st == nil {
		return fmt.Errorf("%w: no record", ErrMalformedStats)
	}

	if st.Symbol != sym {
		return fmt.Errorf("%w: expected %s, got %s", ErrSymbolMismatch, sym, st.Symbol)
	}

	if err := checkShape(st); err != nil {
		return err
	}

	var errs []error

	if st.Supply.Sign() < 0 || st.Supply.Cmp(st.MaxSupply) > 0 {
		errs = append(errs, fmt.Errorf("%w: issued %s, max %s", ErrIssuedOutOfRange, st.Supply, st.MaxSupply))
	}

	for name, v := range map[string]*big.Int{
		"circulating": st.Circulating,
		"burned":      st.Burned,
		"blocked":     st.Blocked,
	} {
		if v.Sign() < 0 {
			errs = append(errs, fmt.Errorf("%w: %s is %s", ErrNegativePool, name, v))
		}
	}

	expected := new(big.Int).Sub(st.Supply, st.Burned)
	expected.Sub(expected, st.Blocked)
	if expected.Cmp(st.Circulating) != 0 {
		errs = append(errs, fmt.Errorf("%w: expected %s, got %s", ErrCirculation, expected, st.Circulating))
	}

	allocated := new(big.Int)
	for i := 0; i < tokenconst.BucketCount; i++ {
		a, c := st.Allocated[i], st.Caps[i]
		if a.Sign() < 0 || a.Cmp(c) > 0 {
			errs = append(errs, fmt.Errorf("%w: %s allocated %s of %s",
				ErrBucketOutOfRange, tokenconst.BucketName(tokenconst.Bucket(i)), a, c))
		}
		allocated.Add(allocated, a)
	}

	if allocated.Cmp(st.Supply) != 0 {
		errs = append(errs, fmt.Errorf("%w: allocated %s, issued %s", ErrAllocationMismatch, allocated, st.Supply))
	}

	held := new(big.Int)
	for _, acc := range accounts {
		if acc.Balance.Sign() < 0 {
			errs = append(errs, fmt.Errorf("%w: %s has %s", ErrNegativeBalance, acc.Owner.StringLE(), acc.Balance))
		}
		held.Add(held, acc.Balance)
	}

	if held.Cmp(st.Circulating) != 0 {
		errs = append(errs, fmt.Errorf("%w: held %s, circulating %s", ErrBalancesMismatch, held, st.Circulating))
	}

	return errors.Join(errs...)
}

func checkShape(st *token.Stats) error {
	for name, v := range map[string]*big.Int{
		"max supply":  st.MaxSupply,
		"supply":      st.Supply,
		"circulating": st.Circulating,
		"burned":      st.Burned,
		"blocked":     st.Blocked,
	} {
		if v == nil {
			return fmt.Errorf("%w: no %s", ErrMalformedStats, name)
		}
	}

	for name, vs := range map[string][]*big.Int{
		"allocated":    st.Allocated,
		"caps":         st.Caps,
		"gates":        st.Gates,
		"gate params":  st.GateParams,
		"last release": st.LastRelease,
	} {
		if len(vs) != tokenconst.BucketCount {
			return fmt.Errorf("%w: %d %s values", ErrMalformedStats, len(vs), name)
		}
	}

	return nil
}
