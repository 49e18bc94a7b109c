// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package regtest holds the tests that run the RPC client against a live
// bitcoind regtest node.  They are built with the rpctest tag.
package regtest
