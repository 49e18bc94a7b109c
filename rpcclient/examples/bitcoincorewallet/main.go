// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/btcsuite/corerpc/rpcclient"
)

func main() {
	// Authenticate with the cookie file written by a regtest node.
	connCfg := &rpcclient.ConnConfig{
		URL:        "http://127.0.0.1:18443",
		CookiePath: "/home/user/.bitcoin/regtest/.cookie",
	}
	client, err := rpcclient.New(connCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Shutdown()

	// Load the wallet, creating it when the node does not know it.
	const walletName = "example"
	_, err = client.LoadWallet(walletName)
	switch {
	case corejson.IsRPCError(err, corejson.ErrRPCWalletNotFound):
		res, err := client.CreateWallet(walletName)
		if err != nil {
			log.Fatal(err)
		}
		if res.Warning != "" {
			log.Printf("Warning: %s", res.Warning)
		}

	case corejson.IsRPCError(err, corejson.ErrRPCWalletAlreadyLoaded):

	case err != nil:
		log.Fatal(err)
	}

	// Calls on the wallet client are routed to /wallet/example.
	wallet := client.WalletClient(walletName)

	// Issue both requests at once and wait for the replies.
	addrFuture := wallet.GetNewAddressAsync(nil, nil)
	balanceFuture := wallet.GetBalanceAsync()

	addr, err := addrFuture.Receive()
	if err != nil {
		log.Fatal(err)
	}
	balance, err := balanceFuture.Receive()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("New address: %s", addr)
	log.Printf("Balance: %v", balance)
}
