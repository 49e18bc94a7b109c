// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import "fmt"

// RPCErrorCode represents an error code to be used as a part of an RPCError
// which is in turn used in a JSON-RPC Response object.  The values are defined
// by the node's protocol and are passed through unchanged.
//
// Reference: https://github.com/bitcoin/bitcoin/blob/master/src/rpc/protocol.h
type RPCErrorCode int

// Standard JSON-RPC 2.0 errors.
const (
	// ErrRPCInvalidRequest is mapped to HTTP 400 by the node.  It is not
	// used for application-layer errors.
	ErrRPCInvalidRequest RPCErrorCode = -32600

	// ErrRPCMethodNotFound is mapped to HTTP 404 by the node.  It is not
	// used for application-layer errors.
	ErrRPCMethodNotFound RPCErrorCode = -32601

	// ErrRPCInvalidParams indicates invalid method parameters.
	ErrRPCInvalidParams RPCErrorCode = -32602

	// ErrRPCInternal indicates a genuine error in the node, for example
	// datadir corruption.
	ErrRPCInternal RPCErrorCode = -32603

	// ErrRPCParse indicates the request body could not be parsed.
	ErrRPCParse RPCErrorCode = -32700
)

// General application defined JSON errors.
const (
	// ErrRPCMisc indicates an exception thrown during command handling.
	ErrRPCMisc RPCErrorCode = -1

	// ErrRPCType indicates that an unexpected type was passed as parameter.
	ErrRPCType RPCErrorCode = -3

	// ErrRPCInvalidAddressOrKey indicates an invalid address or key.
	ErrRPCInvalidAddressOrKey RPCErrorCode = -5

	// ErrRPCOutOfMemory indicates that the server ran out of memory during
	// operation.
	ErrRPCOutOfMemory RPCErrorCode = -7

	// ErrRPCInvalidParameter indicates an invalid, missing, or duplicate
	// parameter.
	ErrRPCInvalidParameter RPCErrorCode = -8

	// ErrRPCDatabase indicates a database error.
	ErrRPCDatabase RPCErrorCode = -20

	// ErrRPCDeserialization indicates an error parsing or validating structure
	// in raw format.
	ErrRPCDeserialization RPCErrorCode = -22

	// ErrRPCVerify indicates a general error during transaction or block
	// submission.
	ErrRPCVerify RPCErrorCode = -25

	// ErrRPCVerifyRejected indicates that transaction or block was rejected by
	// network rules.
	ErrRPCVerifyRejected RPCErrorCode = -26

	// ErrRPCVerifyAlreadyInChain indicates that submitted transaction is
	// already in chain.
	ErrRPCVerifyAlreadyInChain RPCErrorCode = -27

	// ErrRPCInWarmup indicates that the node is still warming up.
	ErrRPCInWarmup RPCErrorCode = -28

	// ErrRPCMethodDeprecated indicates that the RPC method is deprecated.
	ErrRPCMethodDeprecated RPCErrorCode = -32
)

// Peer-to-peer client errors.
const (
	// ErrRPCClientNotConnected indicates that Bitcoin is not connected.
	ErrRPCClientNotConnected RPCErrorCode = -9

	// ErrRPCClientInInitialDownload indicates that the node is still
	// downloading initial blocks.
	ErrRPCClientInInitialDownload RPCErrorCode = -10

	// ErrRPCClientNodeAlreadyAdded indicates that node is already added.
	ErrRPCClientNodeAlreadyAdded RPCErrorCode = -23

	// ErrRPCClientNodeNotAdded indicates that node has not been added before.
	ErrRPCClientNodeNotAdded RPCErrorCode = -24

	// ErrRPCClientNodeNotConnected indicates that node to disconnect was not
	// found in connected nodes.
	ErrRPCClientNodeNotConnected RPCErrorCode = -29

	// ErrRPCClientInvalidIPOrSubnet indicates an invalid IP/Subnet.
	ErrRPCClientInvalidIPOrSubnet RPCErrorCode = -30

	// ErrRPCClientP2PDisabled indicates that no valid connection manager
	// instance was found.
	ErrRPCClientP2PDisabled RPCErrorCode = -31
)

// Chain errors.
const (
	// ErrRPCClientMempoolDisabled indicates that no mempool instance was
	// found.
	ErrRPCClientMempoolDisabled RPCErrorCode = -33
)

// Wallet JSON errors.
const (
	// ErrRPCWallet indicates an unspecified problem with wallet, for
	// example, key not found, etc.
	ErrRPCWallet RPCErrorCode = -4

	// ErrRPCWalletInsufficientFunds indicates that there are not enough
	// funds in wallet or account.
	ErrRPCWalletInsufficientFunds RPCErrorCode = -6

	// ErrRPCWalletInvalidLabelName indicates an invalid label name.
	ErrRPCWalletInvalidLabelName RPCErrorCode = -11

	// ErrRPCWalletKeypoolRanOut indicates that the keypool ran out, and that
	// keypoolrefill must be called first.
	ErrRPCWalletKeypoolRanOut RPCErrorCode = -12

	// ErrRPCWalletUnlockNeeded indicates that the wallet passphrase must be
	// entered first with the walletpassphrase RPC.
	ErrRPCWalletUnlockNeeded RPCErrorCode = -13

	// ErrRPCWalletPassphraseIncorrect indicates that the wallet passphrase
	// that was entered was incorrect.
	ErrRPCWalletPassphraseIncorrect RPCErrorCode = -14

	// ErrRPCWalletWrongEncState indicates that a command was given in wrong
	// wallet encryption state, for example, encrypting an encrypted wallet.
	ErrRPCWalletWrongEncState RPCErrorCode = -15

	// ErrRPCWalletEncryptionFailed indicates a failure to encrypt the wallet.
	ErrRPCWalletEncryptionFailed RPCErrorCode = -16

	// ErrRPCWalletAlreadyUnlocked indicates an attempt to unlock a wallet
	// that was already unlocked.
	ErrRPCWalletAlreadyUnlocked RPCErrorCode = -17

	// ErrRPCWalletNotFound indicates that an invalid wallet was specified,
	// which does not exist. It can also indicate an attempt to unload a
	// wallet that was not previously loaded.
	ErrRPCWalletNotFound RPCErrorCode = -18

	// ErrRPCWalletNotSpecified indicates that no wallet was specified, for
	// example, when there are multiple wallets loaded.
	ErrRPCWalletNotSpecified RPCErrorCode = -19

	// ErrRPCWalletAlreadyLoaded indicates that the wallet passed to
	// loadwallet is already loaded.
	ErrRPCWalletAlreadyLoaded RPCErrorCode = -35
)

// Map of RPCErrorCode values back to their constant names for pretty
// printing.
var rpcErrorCodeStrings = map[RPCErrorCode]string{
	ErrRPCInvalidRequest:            "ErrRPCInvalidRequest",
	ErrRPCMethodNotFound:            "ErrRPCMethodNotFound",
	ErrRPCInvalidParams:             "ErrRPCInvalidParams",
	ErrRPCInternal:                  "ErrRPCInternal",
	ErrRPCParse:                     "ErrRPCParse",
	ErrRPCMisc:                      "ErrRPCMisc",
	ErrRPCType:                      "ErrRPCType",
	ErrRPCInvalidAddressOrKey:       "ErrRPCInvalidAddressOrKey",
	ErrRPCOutOfMemory:               "ErrRPCOutOfMemory",
	ErrRPCInvalidParameter:          "ErrRPCInvalidParameter",
	ErrRPCDatabase:                  "ErrRPCDatabase",
	ErrRPCDeserialization:           "ErrRPCDeserialization",
	ErrRPCVerify:                    "ErrRPCVerify",
	ErrRPCVerifyRejected:            "ErrRPCVerifyRejected",
	ErrRPCVerifyAlreadyInChain:      "ErrRPCVerifyAlreadyInChain",
	ErrRPCInWarmup:                  "ErrRPCInWarmup",
	ErrRPCMethodDeprecated:          "ErrRPCMethodDeprecated",
	ErrRPCClientNotConnected:        "ErrRPCClientNotConnected",
	ErrRPCClientInInitialDownload:   "ErrRPCClientInInitialDownload",
	ErrRPCClientNodeAlreadyAdded:    "ErrRPCClientNodeAlreadyAdded",
	ErrRPCClientNodeNotAdded:        "ErrRPCClientNodeNotAdded",
	ErrRPCClientNodeNotConnected:    "ErrRPCClientNodeNotConnected",
	ErrRPCClientInvalidIPOrSubnet:   "ErrRPCClientInvalidIPOrSubnet",
	ErrRPCClientP2PDisabled:         "ErrRPCClientP2PDisabled",
	ErrRPCClientMempoolDisabled:     "ErrRPCClientMempoolDisabled",
	ErrRPCWallet:                    "ErrRPCWallet",
	ErrRPCWalletInsufficientFunds:   "ErrRPCWalletInsufficientFunds",
	ErrRPCWalletInvalidLabelName:    "ErrRPCWalletInvalidLabelName",
	ErrRPCWalletKeypoolRanOut:       "ErrRPCWalletKeypoolRanOut",
	ErrRPCWalletUnlockNeeded:        "ErrRPCWalletUnlockNeeded",
	ErrRPCWalletPassphraseIncorrect: "ErrRPCWalletPassphraseIncorrect",
	ErrRPCWalletWrongEncState:       "ErrRPCWalletWrongEncState",
	ErrRPCWalletEncryptionFailed:    "ErrRPCWalletEncryptionFailed",
	ErrRPCWalletAlreadyUnlocked:     "ErrRPCWalletAlreadyUnlocked",
	ErrRPCWalletNotFound:            "ErrRPCWalletNotFound",
	ErrRPCWalletNotSpecified:        "ErrRPCWalletNotSpecified",
	ErrRPCWalletAlreadyLoaded:       "ErrRPCWalletAlreadyLoaded",
}

// String returns the RPCErrorCode as a human-readable name.
func (c RPCErrorCode) String() string {
	if s := rpcErrorCodeStrings[c]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown RPCErrorCode (%d)", int(c))
}

// KnownRPCErrorCodes returns every error code the package enumerates.  The
// order is unspecified.
func KnownRPCErrorCodes() []RPCErrorCode {
	codes := make([]RPCErrorCode, 0, len(rpcErrorCodeStrings))
	for code := range rpcErrorCodeStrings {
		codes = append(codes, code)
	}
	return codes
}
