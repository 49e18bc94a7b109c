// Copyright (c) 2014-2020 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file houses the structured parameters passed to node calls.
// Scalar parameters are passed directly by the client methods.

package corejson

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
)

// OutPoint identifies a transaction output.  It is used by lockunspent and
// returned by listlockunspent.
type OutPoint struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// TransactionInput represents the inputs to a transaction for
// createrawtransaction.
type TransactionInput struct {
	TxID     string  `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// RawTxOutputs are the outputs of a transaction built with
// createrawtransaction.  Amounts maps each destination address to the value
// it receives.  Data, when not empty, adds an OP_RETURN output carrying the
// hex encoded payload.
type RawTxOutputs struct {
	Amounts map[string]btcutil.Amount
	Data    string
}

// MarshalJSON encodes the outputs as the single object the node expects, with
// amounts in BTC.
func (o RawTxOutputs) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(o.Amounts)+1)
	for addr, amount := range o.Amounts {
		out[addr] = amount.ToBTC()
	}
	if o.Data != "" {
		out["data"] = o.Data
	}
	return json.Marshal(out)
}

// PrevTxOut describes a previous output not yet known to the node, used when
// signing raw transactions.
type PrevTxOut struct {
	TxID          string   `json:"txid"`
	Vout          uint32   `json:"vout"`
	ScriptPubKey  string   `json:"scriptPubKey"`
	RedeemScript  *string  `json:"redeemScript,omitempty"`
	WitnessScript *string  `json:"witnessScript,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// BumpFeeOptions are the optional settings of bumpfee.
type BumpFeeOptions struct {
	ConfTarget   *int             `json:"conf_target,omitempty"`
	FeeRate      *float64         `json:"fee_rate,omitempty"`
	Replaceable  *bool            `json:"replaceable,omitempty"`
	EstimateMode *FeeEstimateMode `json:"estimate_mode,omitempty"`
}

// FundRawTransactionOptions are the optional settings of fundrawtransaction.
type FundRawTransactionOptions struct {
	ChangeAddress          *string          `json:"changeAddress,omitempty"`
	ChangePosition         *int             `json:"changePosition,omitempty"`
	ChangeType             *AddressType     `json:"change_type,omitempty"`
	IncludeWatching        *bool            `json:"includeWatching,omitempty"`
	LockUnspents           *bool            `json:"lockUnspents,omitempty"`
	FeeRate                *float64         `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []int            `json:"subtractFeeFromOutputs,omitempty"`
	Replaceable            *bool            `json:"replaceable,omitempty"`
	ConfTarget             *int             `json:"conf_target,omitempty"`
	EstimateMode           *FeeEstimateMode `json:"estimate_mode,omitempty"`
}

// ListUnspentQueryOptions narrows the outputs returned by listunspent.
// Amounts are in BTC.
type ListUnspentQueryOptions struct {
	MinimumAmount    *float64 `json:"minimumAmount,omitempty"`
	MaximumAmount    *float64 `json:"maximumAmount,omitempty"`
	MaximumCount     *int     `json:"maximumCount,omitempty"`
	MinimumSumAmount *float64 `json:"minimumSumAmount,omitempty"`
}

// ImportMultiScriptPubKey is either a raw hex script or an address.
type ImportMultiScriptPubKey struct {
	Script  string
	Address string
}

// MarshalJSON encodes an address as {"address": ...} and a script as a plain
// string, the two forms importmulti accepts.
func (s ImportMultiScriptPubKey) MarshalJSON() ([]byte, error) {
	if s.Address != "" {
		return json.Marshal(struct {
			Address string `json:"address"`
		}{s.Address})
	}
	return json.Marshal(s.Script)
}

// ImportMultiTimestamp is either a UNIX time or the literal "now".
type ImportMultiTimestamp struct {
	Now  bool
	Unix int64
}

// MarshalJSON encodes the timestamp as "now" or as a number.
func (t ImportMultiTimestamp) MarshalJSON() ([]byte, error) {
	if t.Now {
		return json.Marshal("now")
	}
	return json.Marshal(t.Unix)
}

// ImportMultiRequest is a single entry of an importmulti call.
type ImportMultiRequest struct {
	ScriptPubKey  ImportMultiScriptPubKey `json:"scriptPubKey"`
	Timestamp     ImportMultiTimestamp    `json:"timestamp"`
	RedeemScript  *string                 `json:"redeemscript,omitempty"`
	WitnessScript *string                 `json:"witnessscript,omitempty"`
	PubKeys       []string                `json:"pubkeys,omitempty"`
	Keys          []string                `json:"keys,omitempty"`
	Internal      *bool                   `json:"internal,omitempty"`
	WatchOnly     *bool                   `json:"watchonly,omitempty"`
	Label         *string                 `json:"label,omitempty"`
}

// ImportMultiOptions are the optional settings of importmulti.
type ImportMultiOptions struct {
	Rescan *bool `json:"rescan,omitempty"`
}
