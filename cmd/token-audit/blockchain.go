package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amzchain/amz-token/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// wrapper over rpcNeo providing token contract state needed for current command.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	inv *invoker.Invoker

	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15
// timeout.
func newRemoteBlockChain(ctx context.Context, blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		inv:          invoker.New(c, nil),
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage iterates over storage items of the Neo smart
// contract referenced by given address with the given key prefix and passes
// them into f. iterateContractStorage breaks on any f's error and returns it.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, prefix []byte, f func(key, value []byte) error) error {
	stateRoot, err := x.rpc.GetStateRootByHeight(x.currentBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", x.currentBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, prefix, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}

// accountsFromStorage reads balance records of the token directly from the
// contract storage. It is used when RPC server doesn't support iterator
// sessions.
func (x *remoteBlockchain) accountsFromStorage(contract util.Uint160, sym string) ([]token.AccountRecord, error) {
	prefix := []byte("a" + sym + ".")

	var res []token.AccountRecord

	err := x.iterateContractStorage(contract, prefix, func(key, value []byte) error {
		owner, err := util.Uint160DecodeBytesBE(key[len(prefix):])
		if err != nil {
			return fmt.Errorf("invalid account key %x: %w", key, err)
		}

		item, err := stackitem.Deserialize(value)
		if err != nil {
			return fmt.Errorf("deserialize account %s: %w", owner.StringLE(), err)
		}

		rec := token.AccountRecord{Owner: owner}

		err = rec.Account.FromStackItem(item)
		if err != nil {
			return fmt.Errorf("decode account %s: %w", owner.StringLE(), err)
		}

		res = append(res, rec)
		return nil
	})

	return res, err
}
