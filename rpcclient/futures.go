// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// FutureResult is a future promise to deliver the result of an RPC invocation
// whose reply decodes directly into T (or an applicable error).
type FutureResult[T any] chan *response

// Receive waits for the response promised by the future and returns the
// decoded result.
func (r FutureResult[T]) Receive() (T, error) {
	var result T

	res, err := receiveFuture(r)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(res, &result); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// FutureVoidResult is a future promise to deliver the result of an RPC
// invocation whose reply carries no data (or an applicable error).
type FutureVoidResult chan *response

// Receive waits for the response promised by the future and returns an error
// if any occurred.
func (r FutureVoidResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// FutureAmountResult is a future promise to deliver a BTC denominated value.
type FutureAmountResult chan *response

// Receive waits for the response promised by the future and returns the
// amount.
func (r FutureAmountResult) Receive() (btcutil.Amount, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return 0, err
	}

	// Unmarshal result as a floating point number.
	var value float64
	err = json.Unmarshal(res, &value)
	if err != nil {
		return 0, err
	}

	amount, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}

	return amount, nil
}

// FutureHashResult is a future promise to deliver a block or transaction hash.
type FutureHashResult chan *response

// Receive waits for the response promised by the future and returns the hash.
func (r FutureHashResult) Receive() (*chainhash.Hash, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal result as a string.
	var hashStr string
	err = json.Unmarshal(res, &hashStr)
	if err != nil {
		return nil, err
	}
	return chainhash.NewHashFromStr(hashStr)
}

// FutureHashesResult is a future promise to deliver a list of block or
// transaction hashes.
type FutureHashesResult chan *response

// Receive waits for the response promised by the future and returns the
// hashes.
func (r FutureHashesResult) Receive() ([]*chainhash.Hash, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal as an array of strings.
	var hashStrs []string
	err = json.Unmarshal(res, &hashStrs)
	if err != nil {
		return nil, err
	}

	hashes := make([]*chainhash.Hash, 0, len(hashStrs))
	for _, hashStr := range hashStrs {
		hash, err := chainhash.NewHashFromStr(hashStr)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// FutureRawResult is a future promise to deliver the result of a RawRequest
// RPC invocation (or an applicable error).
type FutureRawResult chan *response

// Receive waits for the response promised by the future and returns the raw
// response, or an error if the request was unsuccessful.
func (r FutureRawResult) Receive() (json.RawMessage, error) {
	return receiveFuture(r)
}
