package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const tokenPath = "../contracts/token"

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// compileToken compiles the token contract to be deployed by sender.
func compileToken(t *testing.T, sender util.Uint160) *neotest.Contract {
	return neotest.CompileFile(t, sender, tokenPath, path.Join(tokenPath, "config.yml"))
}

func randomHash(t *testing.T) util.Uint160 {
	h, err := util.Uint160DecodeBytesBE(randomBytes(util.Uint160Size))
	require.NoError(t, err)
	return h
}

// setTime adds a block so that the next transaction is executed at sec unix
// time. Contracts see block time in milliseconds.
func setTime(t *testing.T, c *neotest.ContractInvoker, sec uint64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = sec*1000 - 1
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}

// now returns unix time of the latest block in seconds.
func now(t *testing.T, c *neotest.ContractInvoker) uint64 {
	return c.TopBlock(t).Timestamp / 1000
}
