// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corerpc/corejson"
)

// CombineRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See CombineRawTransaction for the blocking version and more details.
func (c *Client) CombineRawTransactionAsync(txsHex []string) FutureResult[string] {
	return c.sendCmd("combinerawtransaction", txsHex)
}

// CombineRawTransaction combines partially signed versions of the same
// transaction into one, returned hex-encoded.
func (c *Client) CombineRawTransaction(txsHex []string) (string, error) {
	return c.CombineRawTransactionAsync(txsHex).Receive()
}

// CreateRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See CreateRawTransaction for the blocking version and more details.
func (c *Client) CreateRawTransactionAsync(inputs []corejson.TransactionInput,
	outputs corejson.RawTxOutputs, lockTime *int64, replaceable *bool) FutureResult[string] {

	if inputs == nil {
		inputs = []corejson.TransactionInput{}
	}
	var locktime int64
	if lockTime != nil {
		locktime = *lockTime
	}
	return c.sendCmd("createrawtransaction", inputs, outputs, locktime,
		replaceable)
}

// CreateRawTransaction returns a new unsigned hex-encoded transaction spending
// the provided inputs and sending to the provided outputs.  lockTime defaults
// to 0.
func (c *Client) CreateRawTransaction(inputs []corejson.TransactionInput,
	outputs corejson.RawTxOutputs, lockTime *int64, replaceable *bool) (string, error) {

	return c.CreateRawTransactionAsync(inputs, outputs, lockTime,
		replaceable).Receive()
}

// DecodeRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See DecodeRawTransaction for the blocking version and more details.
func (c *Client) DecodeRawTransactionAsync(txHex string) FutureResult[*corejson.TxRawDecodeResult] {
	return c.sendCmd("decoderawtransaction", txHex)
}

// DecodeRawTransaction returns information about a transaction given its
// hex-encoded serialized form.
func (c *Client) DecodeRawTransaction(txHex string) (*corejson.TxRawDecodeResult, error) {
	return c.DecodeRawTransactionAsync(txHex).Receive()
}

// DecodeScriptAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See DecodeScript for the blocking version and more details.
func (c *Client) DecodeScriptAsync(scriptHex string) FutureResult[*corejson.DecodeScriptResult] {
	return c.sendCmd("decodescript", scriptHex)
}

// DecodeScript returns information about a hex-encoded script.
func (c *Client) DecodeScript(scriptHex string) (*corejson.DecodeScriptResult, error) {
	return c.DecodeScriptAsync(scriptHex).Receive()
}

// FundRawTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See FundRawTransaction for the blocking version and more details.
func (c *Client) FundRawTransactionAsync(txHex string, opts *corejson.FundRawTransactionOptions) FutureResult[*corejson.FundRawTransactionResult] {
	return c.sendCmd("fundrawtransaction", txHex, opts)
}

// FundRawTransaction adds inputs, and a change output when needed, to a
// transaction until it covers its outputs and fee.
func (c *Client) FundRawTransaction(txHex string, opts *corejson.FundRawTransactionOptions) (*corejson.FundRawTransactionResult, error) {
	return c.FundRawTransactionAsync(txHex, opts).Receive()
}

// GetRawTransactionAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetRawTransaction for the blocking version and more details.
func (c *Client) GetRawTransactionAsync(txHash *chainhash.Hash) FutureResult[string] {
	return c.sendCmd("getrawtransaction", txHash.String(), false)
}

// GetRawTransaction returns the hex-encoded transaction with the given hash.
//
// See GetRawTransactionVerbose to obtain additional information about the
// transaction.
func (c *Client) GetRawTransaction(txHash *chainhash.Hash) (string, error) {
	return c.GetRawTransactionAsync(txHash).Receive()
}

// GetRawTransactionVerboseAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetRawTransactionVerbose for the blocking version and more details.
func (c *Client) GetRawTransactionVerboseAsync(txHash *chainhash.Hash) FutureResult[*corejson.TxRawResult] {
	return c.sendCmd("getrawtransaction", txHash.String(), true)
}

// GetRawTransactionVerbose returns information about a transaction given
// its hash.
//
// See GetRawTransaction to obtain only the transaction already deserialized.
func (c *Client) GetRawTransactionVerbose(txHash *chainhash.Hash) (*corejson.TxRawResult, error) {
	return c.GetRawTransactionVerboseAsync(txHash).Receive()
}

// SendRawTransactionAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See SendRawTransaction for the blocking version and more details.
func (c *Client) SendRawTransactionAsync(txHex string, maxFeeRate *float64) FutureHashResult {
	return c.sendCmd("sendrawtransaction", txHex, maxFeeRate)
}

// SendRawTransaction submits the hex-encoded transaction to the server which
// will then relay it to the network.  maxFeeRate, in BTC/kvB, is optional.
func (c *Client) SendRawTransaction(txHex string, maxFeeRate *float64) (*chainhash.Hash, error) {
	return c.SendRawTransactionAsync(txHex, maxFeeRate).Receive()
}

// SignRawTransactionWithKeyAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See SignRawTransactionWithKey for the blocking version and more details.
func (c *Client) SignRawTransactionWithKeyAsync(txHex string, privKeysWIF []string,
	prevTxs []corejson.PrevTxOut, hashType *corejson.SigHashType) FutureResult[*corejson.SignRawTransactionResult] {

	if privKeysWIF == nil {
		privKeysWIF = []string{}
	}
	if prevTxs == nil {
		prevTxs = []corejson.PrevTxOut{}
	}
	return c.sendCmd("signrawtransactionwithkey", txHex, privKeysWIF,
		prevTxs, hashType)
}

// SignRawTransactionWithKey signs inputs of the hex-encoded transaction with
// the given WIF encoded private keys.  prevTxs describes outputs the node does
// not know about yet.
func (c *Client) SignRawTransactionWithKey(txHex string, privKeysWIF []string,
	prevTxs []corejson.PrevTxOut, hashType *corejson.SigHashType) (*corejson.SignRawTransactionResult, error) {

	return c.SignRawTransactionWithKeyAsync(txHex, privKeysWIF, prevTxs,
		hashType).Receive()
}
