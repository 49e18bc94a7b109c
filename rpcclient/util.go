// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/corerpc/corejson"
)

// CreateMultisigAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See CreateMultisig for the blocking version and more details.
func (c *Client) CreateMultisigAsync(requiredSigs int, keys []string, addrType *corejson.AddressType) FutureResult[*corejson.CreateMultiSigResult] {
	return c.sendCmd("createmultisig", requiredSigs, keys, addrType)
}

// CreateMultisig creates a multisignature address that requires the specified
// number of signatures for the provided hex-encoded public keys and returns
// the address and script needed to redeem it.
func (c *Client) CreateMultisig(requiredSigs int, keys []string, addrType *corejson.AddressType) (*corejson.CreateMultiSigResult, error) {
	return c.CreateMultisigAsync(requiredSigs, keys, addrType).Receive()
}

// EstimateSmartFeeAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See EstimateSmartFee for the blocking version and more details.
func (c *Client) EstimateSmartFeeAsync(confTarget int64, mode *corejson.FeeEstimateMode) FutureResult[*corejson.EstimateSmartFeeResult] {
	return c.sendCmd("estimatesmartfee", confTarget, mode)
}

// EstimateSmartFee requests the server to estimate a fee level based on the
// given parameters.
func (c *Client) EstimateSmartFee(confTarget int64, mode *corejson.FeeEstimateMode) (*corejson.EstimateSmartFeeResult, error) {
	return c.EstimateSmartFeeAsync(confTarget, mode).Receive()
}

// SignMessageWithPrivKeyAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See SignMessageWithPrivKey for the blocking version and more details.
func (c *Client) SignMessageWithPrivKeyAsync(privKey *btcutil.WIF, message string) FutureResult[string] {
	if privKey == nil {
		return newFutureError(fmt.Errorf("%w: missing private key",
			ErrInvalidParam))
	}
	return c.sendCmd("signmessagewithprivkey", privKey.String(), message)
}

// SignMessageWithPrivKey signs a message with the given private key and
// returns the base64-encoded signature.
func (c *Client) SignMessageWithPrivKey(privKey *btcutil.WIF, message string) (string, error) {
	return c.SignMessageWithPrivKeyAsync(privKey, message).Receive()
}

// ValidateAddressAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ValidateAddress for the blocking version and more details.
func (c *Client) ValidateAddressAsync(address string) FutureResult[*corejson.ValidateAddressResult] {
	return c.sendCmd("validateaddress", address)
}

// ValidateAddress returns information about the given bitcoin address.
func (c *Client) ValidateAddress(address string) (*corejson.ValidateAddressResult, error) {
	return c.ValidateAddressAsync(address).Receive()
}

// VerifyMessageAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See VerifyMessage for the blocking version and more details.
func (c *Client) VerifyMessageAsync(address, signature, message string) FutureResult[bool] {
	return c.sendCmd("verifymessage", address, signature, message)
}

// VerifyMessage verifies a signed message.
func (c *Client) VerifyMessage(address, signature, message string) (bool, error) {
	return c.VerifyMessageAsync(address, signature, message).Receive()
}
