// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corerpc/corejson"
)

// GenerateToAddressAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GenerateToAddress for the blocking version and more details.
func (c *Client) GenerateToAddressAsync(numBlocks int64, address string, maxTries *int64) FutureHashesResult {
	return c.sendCmd("generatetoaddress", numBlocks, address, maxTries)
}

// GenerateToAddress generates numBlocks blocks to the given address and
// returns their hashes.
func (c *Client) GenerateToAddress(numBlocks int64, address string, maxTries *int64) ([]*chainhash.Hash, error) {
	return c.GenerateToAddressAsync(numBlocks, address, maxTries).Receive()
}

// GetMiningInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetMiningInfo for the blocking version and more details.
func (c *Client) GetMiningInfoAsync() FutureResult[*corejson.GetMiningInfoResult] {
	return c.sendCmd("getmininginfo")
}

// GetMiningInfo returns mining information.
func (c *Client) GetMiningInfo() (*corejson.GetMiningInfoResult, error) {
	return c.GetMiningInfoAsync().Receive()
}

// GetNetworkHashPSAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetNetworkHashPS for the blocking version and more details.
func (c *Client) GetNetworkHashPSAsync(numBlocks, height *int64) FutureResult[float64] {
	blocks := int64(defaultNetworkHashPsNB)
	if numBlocks != nil {
		blocks = *numBlocks
	}
	return c.sendCmd("getnetworkhashps", blocks, height)
}

// GetNetworkHashPS returns the estimated network hashes per second over the
// last numBlocks blocks (120 when nil, -1 for the blocks since the last
// difficulty change) at the given height (the tip when nil).
func (c *Client) GetNetworkHashPS(numBlocks, height *int64) (float64, error) {
	return c.GetNetworkHashPSAsync(numBlocks, height).Receive()
}

// PrioritiseTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See PrioritiseTransaction for the blocking version and more details.
func (c *Client) PrioritiseTransactionAsync(txHash *chainhash.Hash, feeDelta int64) FutureResult[bool] {
	// The second parameter is a dummy the node requires to be zero.
	return c.sendCmd("prioritisetransaction", txHash.String(), 0, feeDelta)
}

// PrioritiseTransaction accepts a transaction into mined blocks at a higher
// (or lower) priority.  feeDelta is in satoshis.
func (c *Client) PrioritiseTransaction(txHash *chainhash.Hash, feeDelta int64) (bool, error) {
	return c.PrioritiseTransactionAsync(txHash, feeDelta).Receive()
}

// FutureSubmitBlockResult is a future promise to deliver the result of a
// SubmitBlockAsync RPC invocation (or an applicable error).
type FutureSubmitBlockResult chan *response

// Receive waits for the response promised by the future and returns an error if
// any occurred when submitting the block.  A block the node refuses is
// reported with the node's rejection reason as the error text.
func (r FutureSubmitBlockResult) Receive() error {
	res, err := receiveFuture(r)
	if err != nil {
		return err
	}

	if len(res) != 0 && string(res) != "null" {
		var result string
		err = json.Unmarshal(res, &result)
		if err != nil {
			return err
		}

		return errors.New(result)
	}

	return nil
}

// SubmitBlockAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SubmitBlock for the blocking version and more details.
func (c *Client) SubmitBlockAsync(blockHex string) FutureSubmitBlockResult {
	return c.sendCmd("submitblock", blockHex)
}

// SubmitBlock attempts to submit a new hex-encoded block into the bitcoin
// network.
func (c *Client) SubmitBlock(blockHex string) error {
	return c.SubmitBlockAsync(blockHex).Receive()
}
