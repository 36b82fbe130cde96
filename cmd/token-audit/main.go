package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/amzchain/amz-token/rpc/token"
	"github.com/amzchain/amz-token/supply"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "Token contract address (LE hex)")
	symbol := flag.String("symbol", "AMZ", "Token symbol")
	fromStorage := flag.Bool("storage", false, "Read balances from contract storage instead of iterator sessions")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddr == "":
		log.Fatal("missing token contract address")
	}

	contract, err := util.Uint160DecodeStringLE(*contractAddr)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid token contract address: %w", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	err = audit(context.Background(), logger, *neoRPCEndpoint, contract, *symbol, *fromStorage)
	if err != nil {
		logger.Error("supply audit failed", zap.Error(err))
		os.Exit(1)
	}
}

func audit(ctx context.Context, l *zap.Logger, endpoint string, contract util.Uint160, sym string, fromStorage bool) error {
	b, err := newRemoteBlockChain(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	l = l.With(zap.Stringer("contract", contract), zap.String("symbol", sym), zap.Uint32("block", b.currentBlock))

	reader := token.NewReader(b.inv, contract)

	st, err := reader.GetStats(sym)
	if err != nil {
		return fmt.Errorf("get supply record: %w", err)
	}

	var accounts []token.AccountRecord
	if fromStorage {
		accounts, err = b.accountsFromStorage(contract, sym)
	} else {
		accounts, err = reader.Accounts(sym)
	}
	if err != nil {
		return fmt.Errorf("get balance records: %w", err)
	}

	err = supply.Verify(sym, st, accounts)
	if err != nil {
		return fmt.Errorf("supply accounting is broken: %w", err)
	}

	r := supply.NewReport(st, accounts)

	l.Info("supply accounting is consistent",
		zap.Stringer("max_supply", r.MaxSupply),
		zap.Stringer("issued", r.Issued),
		zap.Stringer("issued_share", r.IssuedShare),
		zap.Stringer("circulating", r.Circulating),
		zap.Stringer("burned", r.Burned),
		zap.Stringer("blocked", r.Blocked),
		zap.Int("holders", r.Holders))

	for _, u := range r.Buckets {
		l.Info("bucket",
			zap.String("name", u.Name),
			zap.Stringer("allocated", u.Allocated),
			zap.Stringer("cap", u.Cap),
			zap.Stringer("share", u.Share))
	}

	return nil
}
