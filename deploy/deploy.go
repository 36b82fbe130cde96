package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the token contract deployment.
type Blockchain interface {
	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns an error if the contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Actor composes, signs and sends deployment transaction.
type Actor interface {
	management.Actor

	// Sender returns deployer account address.
	Sender() util.Uint160

	// Wait waits until transaction is accepted to the chain.
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Prm groups parameters of the token contract deployment.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Neo blockchain to deploy contract to.
	Blockchain Blockchain

	// Deployer. Contract address depends on it.
	Actor Actor

	NEF      nef.File
	Manifest manifest.Manifest

	Config Config
}

// Deploy deploys token contract using given Prm and returns its address. If
// the contract is already deployed by the same sender, Deploy does nothing.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	err := prm.Config.Validate()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid configuration: %w", err)
	}

	addr := state.CreateContractHash(prm.Actor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)
	l := prm.Logger.With(zap.Stringer("address", addr))

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("token contract is already deployed")
		return addr, nil
	}

	l.Debug("token contract is missing on the chain, deploying...", zap.Error(err))

	select {
	case <-ctx.Done():
		return util.Uint160{}, ctx.Err()
	default:
	}

	txID, vub, err := management.New(prm.Actor).Deploy(&prm.NEF, &prm.Manifest, prm.Config.DeployData())
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Info("deployment transaction sent, waiting...", zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	res, err := prm.Actor.Wait(txID, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction %s: %w", txID.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %w", txID.StringLE(), errors.New(res.FaultException))
	}

	l.Info("token contract successfully deployed")

	return addr, nil
}
