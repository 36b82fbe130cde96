package token

import (
	"errors"
	"math/big"
	"testing"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{
		State: "HALT",
		Stack: items,
	}
}

func intArray(vs ...int64) stackitem.Item {
	arr := make([]stackitem.Item, len(vs))
	for i := range vs {
		arr[i] = stackitem.Make(vs[i])
	}
	return stackitem.NewArray(arr)
}

func statsItem(issuer util.Uint160) stackitem.Item {
	zeros := make([]int64, tokenconst.BucketCount)
	caps := make([]int64, tokenconst.BucketCount)
	for i := range caps {
		caps[i] = int64(tokenconst.DefaultCap(tokenconst.Bucket(i)))
	}
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make("AMZ"),
		stackitem.Make(8),
		stackitem.Make(issuer.BytesBE()),
		stackitem.Make(int64(24_000_000_000_000_000)),
		stackitem.Make(100),
		stackitem.Make(90),
		stackitem.Make(4),
		stackitem.Make(6),
		intArray(100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		intArray(caps...),
		intArray(zeros...),
		intArray(zeros...),
		intArray(zeros...),
	})
}

func TestGetStats(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetStats("AMZ")
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{}))
	_, err = r.GetStats("AMZ")
	require.Error(t, err)

	issuer := util.Uint160{4, 5, 6}
	ti.res = halt(statsItem(issuer))
	st, err := r.GetStats("AMZ")
	require.NoError(t, err)
	require.Equal(t, "AMZ", st.Symbol)
	require.Equal(t, issuer, st.Issuer)
	require.EqualValues(t, 8, st.Decimals.Int64())
	require.EqualValues(t, 100, st.Supply.Int64())
	require.EqualValues(t, 90, st.Circulating.Int64())
	require.EqualValues(t, 4, st.Burned.Int64())
	require.EqualValues(t, 6, st.Blocked.Int64())
	require.Len(t, st.Caps, tokenconst.BucketCount)
	require.EqualValues(t, tokenconst.DefaultINBNetworkCap, st.Caps[tokenconst.INBNetwork].Int64())
	require.EqualValues(t, 100, st.Allocated[tokenconst.Airdrop].Int64())
}

func TestGetAccount(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	payer := util.Uint160{7, 8, 9}
	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(42),
		stackitem.Make(payer.BytesBE()),
	}))
	acc, err := r.GetAccount(util.Uint160{1}, "AMZ")
	require.NoError(t, err)
	require.EqualValues(t, 42, acc.Balance.Int64())
	require.Equal(t, payer, acc.Payer)

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(42),
		stackitem.Make([]byte{1, 2, 3}),
	}))
	_, err = r.GetAccount(util.Uint160{1}, "AMZ")
	require.Error(t, err)
}

func TestSimpleReads(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.Make(1_001_000))
	v, err := r.Version()
	require.NoError(t, err)
	require.EqualValues(t, 1_001_000, v.Int64())

	ti.res = halt(stackitem.Make(15))
	b, err := r.GetBalance(util.Uint160{1}, "AMZ")
	require.NoError(t, err)
	require.EqualValues(t, 15, b.Int64())

	owner := util.Uint160{0xaa, 0xbb}
	ti.res = halt(stackitem.Make(owner.BytesBE()))
	h, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, owner, h)

	ti.res = &result.Invoke{State: "FAULT", FaultException: tokenconst.ErrUnknownBucket}
	_, err = r.Wallet(big.NewInt(12))
	require.Error(t, err)
}

func TestAccountRecordsFromItems(t *testing.T) {
	owner := util.Uint160{1, 1, 1}
	payer := util.Uint160{2, 2, 2}

	items := []stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(owner.BytesBE()),
			stackitem.NewStruct([]stackitem.Item{
				stackitem.Make(0),
				stackitem.Make(payer.BytesBE()),
			}),
		}),
	}

	recs, err := AccountRecordsFromItems(items)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, owner, recs[0].Owner)
	require.Equal(t, payer, recs[0].Payer)
	require.EqualValues(t, 0, recs[0].Balance.Int64())

	_, err = AccountRecordsFromItems([]stackitem.Item{stackitem.Make(1)})
	require.Error(t, err)
}

func TestTransferEventsFromApplicationLog(t *testing.T) {
	_, err := TransferEventsFromApplicationLog(nil)
	require.Error(t, err)

	to := util.Uint160{3, 3, 3}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Disburse",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("AMZ"),
						stackitem.Make(int64(tokenconst.Marketing)),
						stackitem.Make(to.BytesBE()),
						stackitem.Make(10),
					}),
				},
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Null{},
						stackitem.Make(to.BytesBE()),
						stackitem.Make(10),
					}),
				},
			},
		}},
	}

	transfers, err := TransferEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, util.Uint160{}, transfers[0].From)
	require.Equal(t, to, transfers[0].To)
	require.EqualValues(t, 10, transfers[0].Amount.Int64())

	disburses, err := DisburseEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, disburses, 1)
	require.EqualValues(t, tokenconst.Marketing, disburses[0].Bucket.Int64())

	burns, err := BurnEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, burns)
}

func TestDisburseMethod(t *testing.T) {
	m, err := DisburseMethod(tokenconst.HistoryNewsletter)
	require.NoError(t, err)
	require.Equal(t, "tNewsletterSubscribers", m)

	m, err = DisburseMethod(tokenconst.StakingBonus)
	require.NoError(t, err)
	require.Equal(t, "tStakingBonus", m)

	_, err = DisburseMethod(tokenconst.BucketCount)
	require.Error(t, err)
}

func TestQuantity(t *testing.T) {
	v, err := ParseQuantity("1.5", 8)
	require.NoError(t, err)
	require.EqualValues(t, 150_000_000, v.Int64())
	require.Equal(t, "1.5", FormatQuantity(v, 8))

	_, err = ParseQuantity("1", 19)
	require.Error(t, err)

	_, err = ParseQuantity("1.5", 0)
	require.Error(t, err)

	_, err = ParseQuantity("100000000000", 8)
	require.Error(t, err)
}
