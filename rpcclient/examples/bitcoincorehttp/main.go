// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/btcsuite/corerpc/rpcclient"
)

func main() {
	// Connect to local bitcoin core RPC server.
	connCfg := &rpcclient.ConnConfig{
		URL:  "http://127.0.0.1:8332",
		User: "yourrpcuser",
		Pass: "yourrpcpass",
	}
	client, err := rpcclient.New(connCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Shutdown()

	// Get the current block count.
	blockCount, err := client.GetBlockCount()
	if err != nil {
		switch rpcclient.KindOf(err) {
		case rpcclient.ErrKindConnection:
			log.Fatalf("Node unreachable: %v", err)
		case rpcclient.ErrKindAuth:
			log.Fatalf("Check rpcuser and rpcpassword: %v", err)
		default:
			log.Fatal(err)
		}
	}
	log.Printf("Block count: %d", blockCount)
}
