package token

import (
	"math/big"
	"testing"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

type testAct struct {
	testInv

	contract util.Uint160
	method   string
	params   []any
}

func (t *testAct) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) MakeRun(script []byte) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, t.err
}
func (t *testAct) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	t.contract, t.method, t.params = contract, method, params
	return util.Uint256{1}, 42, t.err
}
func (t *testAct) SendRun(script []byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, t.err
}

func TestContractDisburse(t *testing.T) {
	ta := new(testAct)
	hash := util.Uint160{1, 2, 3}
	c := New(ta, hash)

	to := util.Uint160{4, 5, 6}
	amount := big.NewInt(100)
	decimals := big.NewInt(8)

	h, vub, err := c.Disburse(tokenconst.Marketing, to, amount, "AMZ", decimals)
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1}, h)
	require.EqualValues(t, 42, vub)
	require.Equal(t, hash, ta.contract)
	require.Equal(t, "tMarketing", ta.method)
	require.Equal(t, []any{amount, "AMZ", decimals}, ta.params)

	_, _, err = c.Disburse(tokenconst.StakingBonus, to, amount, "AMZ", decimals)
	require.NoError(t, err)
	require.Equal(t, "tStakingBonus", ta.method)
	require.Equal(t, []any{to, amount, "AMZ", decimals}, ta.params)

	ta.method = ""
	_, _, err = c.Disburse(tokenconst.Bucket(tokenconst.BucketCount), to, amount, "AMZ", decimals)
	require.ErrorContains(t, err, tokenconst.ErrUnknownBucket)
	require.Empty(t, ta.method)
}
