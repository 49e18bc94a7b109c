// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package integration runs bitcoind on regtest for the integration tests of the
RPC client.

node.go launches a node in a temporary data directory and waits for its RPC
server.  disposable.go provides a registry that tracks every node and data
directory so that a failing test setup still cleans up after itself.
testutil.go reports defects of the test setup itself.  tempdir.go manages the
data directories and port.go hands out free ports.

The tests live in the regtest subpackage behind the rpctest build tag:

	BITCOIND_EXE=/path/to/bitcoind go test -tags=rpctest ./integration/...
*/
package integration
