//go:build rpctest
// +build rpctest

package regtest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/btcsuite/corerpc/integration"
	"github.com/btcsuite/corerpc/rpcclient"
)

const (
	rpcUser = "user"
	rpcPass = "pass"

	minerWalletName = "miner"

	// coinbaseMaturity is the number of blocks mined up front so the
	// first coinbase output is spendable.
	coinbaseMaturity = 101
)

var (
	// node is shared by every test in the package.
	node *integration.Node

	// miner is a wallet client holding the mined coins.
	miner *rpcclient.Client

	minerAddr string
)

// setUp starts the node, creates the miner wallet and matures a coinbase.
func setUp() error {
	var err error
	node, err = integration.NewNode(integration.NodeConfig{
		RPCUser: rpcUser,
		RPCPass: rpcPass,
	})
	if err != nil {
		return err
	}
	if err := node.Start(context.Background()); err != nil {
		return err
	}

	if _, err := node.Client().CreateWallet(minerWalletName); err != nil {
		return fmt.Errorf("unable to create miner wallet: %w", err)
	}
	miner = node.Client().WalletClient(minerWalletName)

	minerAddr, err = miner.GetNewAddress(nil, nil)
	if err != nil {
		return err
	}
	_, err = miner.GenerateToAddress(coinbaseMaturity, minerAddr, nil)
	return err
}

func TestMain(m *testing.M) {
	err := setUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to set up regtest node: %v\n", err)
	}

	code := 1
	if err == nil {
		code = m.Run()
	}

	if node != nil {
		node.Dispose()
	}
	integration.VerifyNoAssetsLeaked()

	os.Exit(code)
}
