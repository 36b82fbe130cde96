package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/amzchain/amz-token/contracts"
	"github.com/amzchain/amz-token/deploy"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the deployer NEP-6 wallet")
	accAddress := flag.String("address", "", "Deployer account address (default account if empty)")
	configPath := flag.String("config", "", "Path to the YAML token configuration")
	contractDir := flag.String("contract", contracts.TokenDir, "Directory with compiled contract.nef and manifest.json")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet")
	case *configPath == "":
		log.Fatal("missing token configuration")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	prm, closeFn, err := prepare(*neoRPCEndpoint, *walletPath, *accAddress, *configPath, *contractDir)
	if err != nil {
		logger.Fatal("prepare deployment", zap.Error(err))
	}
	defer closeFn()

	prm.Logger = logger

	addr, err := deploy.Deploy(context.Background(), prm)
	if err != nil {
		logger.Fatal("token contract deployment failed", zap.Error(err))
	}

	fmt.Println(addr.StringLE())
}

func prepare(endpoint, walletPath, accAddress, configPath, contractDir string) (deploy.Prm, func(), error) {
	var prm deploy.Prm

	cfg, err := deploy.LoadConfig(configPath)
	if err != nil {
		return prm, nil, err
	}

	ctr, err := contracts.ReadDir(contractDir)
	if err != nil {
		return prm, nil, err
	}

	prm.NEF = ctr.NEF
	prm.Manifest = ctr.Manifest

	acc, err := unlockAccount(walletPath, accAddress)
	if err != nil {
		return prm, nil, err
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return prm, nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return prm, nil, fmt.Errorf("RPC client init: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return prm, nil, fmt.Errorf("init actor: %w", err)
	}

	prm.Blockchain = c
	prm.Actor = act
	prm.Config = cfg

	return prm, c.Close, nil
}

func unlockAccount(walletPath, accAddress string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if accAddress == "" {
		acc = w.GetAccount(w.GetChangeAddress())
	} else {
		h, err := address.StringToUint160(accAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
		acc = w.GetAccount(h)
	}
	if acc == nil {
		return nil, fmt.Errorf("account not found in wallet %s", walletPath)
	}

	err = acc.Decrypt(os.Getenv("TOKEN_WALLET_PASSWORD"), w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("unlock account %s: %w", acc.Address, err)
	}

	return acc, nil
}
