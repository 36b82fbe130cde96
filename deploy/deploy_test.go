package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testBlockchain struct {
	err error
}

func (b testBlockchain) GetContractStateByHash(util.Uint160) (*state.Contract, error) {
	if b.err != nil {
		return nil, b.err
	}
	return new(state.Contract), nil
}

type testActor struct {
	management.Actor
	sender util.Uint160
}

func (a testActor) Sender() util.Uint160 {
	return a.sender
}

func (a testActor) Wait(util.Uint256, uint32, error) (*state.AppExecResult, error) {
	return nil, errors.New("not implemented")
}

func TestDeploy(t *testing.T) {
	prm := Prm{
		Logger:     zaptest.NewLogger(t),
		Blockchain: testBlockchain{},
		Actor:      testActor{sender: util.Uint160{9}},
		NEF:        nef.File{Checksum: 42},
		Manifest:   manifest.Manifest{Name: "AMZ Token"},
		Config:     validConfig(),
	}

	t.Run("invalid config", func(t *testing.T) {
		p := prm
		p.Config.Owner = util.Uint160{}
		_, err := Deploy(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("already deployed", func(t *testing.T) {
		addr, err := Deploy(context.Background(), prm)
		require.NoError(t, err)
		require.Equal(t, state.CreateContractHash(util.Uint160{9}, 42, "AMZ Token"), addr)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := prm
		p.Blockchain = testBlockchain{err: errors.New("Unknown contract")}
		_, err := Deploy(ctx, p)
		require.ErrorIs(t, err, context.Canceled)
	})
}
