// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson_test

import (
	"testing"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/stretchr/testify/require"
)

// TestRPCErrorCodeValues pins the numeric codes the node sends.
func TestRPCErrorCodeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code corejson.RPCErrorCode
		want int
	}{
		{corejson.ErrRPCInvalidRequest, -32600},
		{corejson.ErrRPCMethodNotFound, -32601},
		{corejson.ErrRPCInvalidParams, -32602},
		{corejson.ErrRPCInternal, -32603},
		{corejson.ErrRPCParse, -32700},
		{corejson.ErrRPCMisc, -1},
		{corejson.ErrRPCType, -3},
		{corejson.ErrRPCInvalidAddressOrKey, -5},
		{corejson.ErrRPCOutOfMemory, -7},
		{corejson.ErrRPCInvalidParameter, -8},
		{corejson.ErrRPCDatabase, -20},
		{corejson.ErrRPCDeserialization, -22},
		{corejson.ErrRPCVerify, -25},
		{corejson.ErrRPCVerifyRejected, -26},
		{corejson.ErrRPCVerifyAlreadyInChain, -27},
		{corejson.ErrRPCInWarmup, -28},
		{corejson.ErrRPCMethodDeprecated, -32},
		{corejson.ErrRPCClientNotConnected, -9},
		{corejson.ErrRPCClientInInitialDownload, -10},
		{corejson.ErrRPCClientNodeAlreadyAdded, -23},
		{corejson.ErrRPCClientNodeNotAdded, -24},
		{corejson.ErrRPCClientNodeNotConnected, -29},
		{corejson.ErrRPCClientInvalidIPOrSubnet, -30},
		{corejson.ErrRPCClientP2PDisabled, -31},
		{corejson.ErrRPCClientMempoolDisabled, -33},
		{corejson.ErrRPCWallet, -4},
		{corejson.ErrRPCWalletInsufficientFunds, -6},
		{corejson.ErrRPCWalletInvalidLabelName, -11},
		{corejson.ErrRPCWalletKeypoolRanOut, -12},
		{corejson.ErrRPCWalletUnlockNeeded, -13},
		{corejson.ErrRPCWalletNotFound, -18},
		{corejson.ErrRPCWalletAlreadyLoaded, -35},
	}

	for _, test := range tests {
		require.Equal(t, test.want, int(test.code), test.code.String())
	}
}

// TestRPCErrorCodeStringer tests the stringized output for RPCErrorCode.
func TestRPCErrorCodeStringer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ErrRPCWalletNotFound", corejson.ErrRPCWalletNotFound.String())
	require.Equal(t, "ErrRPCMisc", corejson.ErrRPCMisc.String())
	require.Equal(t, "Unknown RPCErrorCode (-1000)",
		corejson.RPCErrorCode(-1000).String())

	// Every enumerated code must have a name.
	for _, code := range corejson.KnownRPCErrorCodes() {
		require.NotContains(t, code.String(), "Unknown", int(code))
	}
}
