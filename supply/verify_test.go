package supply

import (
	"errors"
	"math/big"
	"testing"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/amzchain/amz-token/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bigs(n int, v int64) []*big.Int {
	res := make([]*big.Int, n)
	for i := range res {
		res[i] = big.NewInt(v)
	}
	return res
}

// newStats returns a consistent record: 150 issued from airdrop and ico,
// 10 burned, 20 blocked.
func newStats() *token.Stats {
	caps := make([]*big.Int, tokenconst.BucketCount)
	for i := range caps {
		caps[i] = big.NewInt(int64(tokenconst.DefaultCap(tokenconst.Bucket(i))))
	}

	allocated := bigs(tokenconst.BucketCount, 0)
	allocated[tokenconst.Airdrop] = big.NewInt(100)
	allocated[tokenconst.ICO] = big.NewInt(50)

	return &token.Stats{
		Symbol:      "AMZ",
		Decimals:    big.NewInt(2),
		Issuer:      util.Uint160{1},
		MaxSupply:   big.NewInt(24_000_000_000_000_000),
		Supply:      big.NewInt(150),
		Circulating: big.NewInt(120),
		Burned:      big.NewInt(10),
		Blocked:     big.NewInt(20),
		Allocated:   allocated,
		Caps:        caps,
		Gates:       bigs(tokenconst.BucketCount, 0),
		GateParams:  bigs(tokenconst.BucketCount, 0),
		LastRelease: bigs(tokenconst.BucketCount, 0),
	}
}

func newAccounts() []token.AccountRecord {
	return []token.AccountRecord{
		{Owner: util.Uint160{1}, Account: token.Account{Balance: big.NewInt(70)}},
		{Owner: util.Uint160{2}, Account: token.Account{Balance: big.NewInt(50)}},
		{Owner: util.Uint160{3}, Account: token.Account{Balance: big.NewInt(0)}},
	}
}

func TestVerify(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		require.NoError(t, Verify("AMZ", newStats(), newAccounts()))
	})

	tcs := []struct {
		name     string
		modify   func(*token.Stats, []token.AccountRecord) []token.AccountRecord
		expected []error
	}{
		{
			name: "symbol",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Symbol = "ZMA"
				return accs
			},
			expected: []error{ErrSymbolMismatch},
		},
		{
			name: "short bucket list",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Caps = st.Caps[:3]
				return accs
			},
			expected: []error{ErrMalformedStats},
		},
		{
			name: "issued over max",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.MaxSupply = big.NewInt(100)
				return accs
			},
			expected: []error{ErrIssuedOutOfRange},
		},
		{
			name: "circulating",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Blocked = big.NewInt(10)
				return accs
			},
			expected: []error{ErrCirculation},
		},
		{
			name: "negative pool",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Burned = big.NewInt(-10)
				st.Blocked = big.NewInt(40)
				return accs
			},
			expected: []error{ErrNegativePool},
		},
		{
			name: "bucket over cap",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Caps[tokenconst.ICO] = big.NewInt(49)
				return accs
			},
			expected: []error{ErrBucketOutOfRange},
		},
		{
			name: "allocations",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Allocated[tokenconst.Marketing] = big.NewInt(1)
				return accs
			},
			expected: []error{ErrAllocationMismatch},
		},
		{
			name: "balances",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				return accs[1:]
			},
			expected: []error{ErrBalancesMismatch},
		},
		{
			name: "several",
			modify: func(st *token.Stats, accs []token.AccountRecord) []token.AccountRecord {
				st.Supply = big.NewInt(151)
				accs[0].Balance = big.NewInt(-70)
				return accs
			},
			expected: []error{ErrCirculation, ErrAllocationMismatch, ErrNegativeBalance, ErrBalancesMismatch},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			st := newStats()
			accs := tc.modify(st, newAccounts())

			err := Verify("AMZ", st, accs)
			require.Error(t, err)
			for _, e := range tc.expected {
				require.True(t, errors.Is(err, e), "expected %v in %v", e, err)
			}
		})
	}

	require.ErrorIs(t, Verify("AMZ", nil, nil), ErrMalformedStats)
}

func TestNewReport(t *testing.T) {
	st := newStats()
	st.Allocated[tokenconst.Airdrop] = big.NewInt(int64(tokenconst.DefaultAirdropCap / 2))
	st.Supply = new(big.Int).Add(st.Allocated[tokenconst.Airdrop], big.NewInt(50))

	r := NewReport(st, newAccounts())
	require.Equal(t, "AMZ", r.Symbol)
	require.Equal(t, 2, r.Holders)
	require.True(t, decimal.RequireFromString("1.2").Equal(r.Held))
	require.True(t, decimal.RequireFromString("0.1").Equal(r.Burned))
	require.Len(t, r.Buckets, tokenconst.BucketCount)

	airdrop := r.Buckets[tokenconst.Airdrop]
	require.Equal(t, "airdrop", airdrop.Name)
	require.True(t, decimal.RequireFromString("0.5").Equal(airdrop.Share), airdrop.Share.String())
	require.True(t, r.Buckets[tokenconst.Marketing].Share.IsZero())
}
