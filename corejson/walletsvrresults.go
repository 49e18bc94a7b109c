// Copyright (c) 2014-2020 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import (
	"encoding/json"
	"fmt"
)

// CreateWalletResult models the result of the createwallet command.  Warning
// is empty unless the node has something to report, for example that the
// wallet will not be encrypted.  Nodes since v25 report the same notices in
// Warnings and leave Warning empty.
type CreateWalletResult struct {
	Name     string   `json:"name"`
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings,omitempty"`
}

// LoadWalletResult models the result of the loadwallet command.
type LoadWalletResult struct {
	Name     string   `json:"name"`
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings,omitempty"`
}

// UnloadWalletResult models the result of the unloadwallet command.
type UnloadWalletResult struct {
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings,omitempty"`
}

// BumpFeeResult models the result of the bumpfee command.
type BumpFeeResult struct {
	TxID    string   `json:"txid"`
	OrigFee float64  `json:"origfee"`
	Fee     float64  `json:"fee"`
	PSBT    string   `json:"psbt,omitempty"`
	Errors  []string `json:"errors"`
}

// DumpWalletResult models the result of the dumpwallet command.
type DumpWalletResult struct {
	Filename string `json:"filename"`
}

// AddressLabel is a label entry of getaddressinfo.
type AddressLabel struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// embeddedAddressInfo includes all getaddressinfo output fields, excluding
// metadata and relation to the wallet.
type embeddedAddressInfo struct {
	Address             string   `json:"address"`
	ScriptPubKey        string   `json:"scriptPubKey"`
	Solvable            bool     `json:"solvable"`
	Descriptor          *string  `json:"desc,omitempty"`
	IsScript            bool     `json:"isscript"`
	IsChange            bool     `json:"ischange"`
	IsWitness           bool     `json:"iswitness"`
	WitnessVersion      int      `json:"witness_version,omitempty"`
	WitnessProgram      *string  `json:"witness_program,omitempty"`
	ScriptType          *string  `json:"script,omitempty"`
	Hex                 *string  `json:"hex,omitempty"`
	PubKeys             []string `json:"pubkeys,omitempty"`
	SignaturesRequired  *int     `json:"sigsrequired,omitempty"`
	PubKey              *string  `json:"pubkey,omitempty"`
	IsCompressed        *bool    `json:"iscompressed,omitempty"`
	HDMasterFingerprint *string  `json:"hdmasterfingerprint,omitempty"`
}

// GetAddressInfoResult models the result of the getaddressinfo command. It
// contains information about a bitcoin address.
//
// Labels is decoded from both the current form (a list of names) and the
// older form (a list of name/purpose objects).
type GetAddressInfoResult struct {
	embeddedAddressInfo
	IsMine      bool                 `json:"ismine"`
	IsWatchOnly bool                 `json:"iswatchonly"`
	Timestamp   *int64               `json:"timestamp,omitempty"`
	HDKeyPath   *string              `json:"hdkeypath,omitempty"`
	HDSeedID    *string              `json:"hdseedid,omitempty"`
	Embedded    *embeddedAddressInfo `json:"embedded,omitempty"`
	Labels      []AddressLabel       `json:"-"`
}

// UnmarshalJSON provides a custom unmarshaller for GetAddressInfoResult that
// accepts both shapes of the labels field.
func (e *GetAddressInfoResult) UnmarshalJSON(data []byte) error {
	type Alias GetAddressInfoResult

	aux := &struct {
		Labels []json.RawMessage `json:"labels"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	e.Labels = make([]AddressLabel, 0, len(aux.Labels))
	for _, raw := range aux.Labels {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			e.Labels = append(e.Labels, AddressLabel{Name: name})
			continue
		}

		var label AddressLabel
		if err := json.Unmarshal(raw, &label); err != nil {
			return fmt.Errorf("invalid label %s: %w", raw, err)
		}
		e.Labels = append(e.Labels, label)
	}
	return nil
}

// GetTransactionDetailsResult models the details data from the gettransaction
// command.
type GetTransactionDetailsResult struct {
	Address           string   `json:"address,omitempty"`
	Category          string   `json:"category"`
	Amount            float64  `json:"amount"`
	Label             string   `json:"label,omitempty"`
	Vout              uint32   `json:"vout"`
	Fee               *float64 `json:"fee,omitempty"`
	Abandoned         *bool    `json:"abandoned,omitempty"`
	InvolvesWatchOnly bool     `json:"involveswatchonly,omitempty"`
}

// GetTransactionResult models the data from the gettransaction command.
type GetTransactionResult struct {
	Amount            float64                       `json:"amount"`
	Fee               float64                       `json:"fee,omitempty"`
	Confirmations     int64                         `json:"confirmations"`
	BlockHash         string                        `json:"blockhash,omitempty"`
	BlockIndex        int64                         `json:"blockindex,omitempty"`
	BlockTime         int64                         `json:"blocktime,omitempty"`
	TxID              string                        `json:"txid"`
	WalletConflicts   []string                      `json:"walletconflicts"`
	Time              int64                         `json:"time"`
	TimeReceived      int64                         `json:"timereceived"`
	BIP125Replaceable Bip125Replaceable             `json:"bip125-replaceable"`
	Comment           string                        `json:"comment,omitempty"`
	To                string                        `json:"to,omitempty"`
	Details           []GetTransactionDetailsResult `json:"details"`
	Hex               string                        `json:"hex"`
	Decoded           *TxRawDecodeResult            `json:"decoded,omitempty"`
}

// ListTransactionsResult models the data from the listtransactions command
// and the entries of listsinceblock.
type ListTransactionsResult struct {
	InvolvesWatchOnly bool              `json:"involvesWatchonly,omitempty"`
	Address           string            `json:"address,omitempty"`
	Category          string            `json:"category"`
	Amount            float64           `json:"amount"`
	Label             *string           `json:"label,omitempty"`
	Vout              uint32            `json:"vout"`
	Fee               *float64          `json:"fee,omitempty"`
	Confirmations     int64             `json:"confirmations"`
	Trusted           *bool             `json:"trusted,omitempty"`
	Generated         bool              `json:"generated,omitempty"`
	BlockHash         string            `json:"blockhash,omitempty"`
	BlockHeight       *int64            `json:"blockheight,omitempty"`
	BlockIndex        *int64            `json:"blockindex,omitempty"`
	BlockTime         int64             `json:"blocktime,omitempty"`
	TxID              string            `json:"txid"`
	WalletConflicts   []string          `json:"walletconflicts"`
	Time              int64             `json:"time"`
	TimeReceived      int64             `json:"timereceived"`
	Comment           string            `json:"comment,omitempty"`
	To                string            `json:"to,omitempty"`
	BIP125Replaceable Bip125Replaceable `json:"bip125-replaceable"`
	Abandoned         *bool             `json:"abandoned,omitempty"`
}

// ListSinceBlockResult models the data from the listsinceblock command.
type ListSinceBlockResult struct {
	Transactions []ListTransactionsResult `json:"transactions"`
	Removed      []ListTransactionsResult `json:"removed,omitempty"`
	LastBlock    string                   `json:"lastblock"`
}

// ListUnspentResult models a successful response from the listunspent
// request.
type ListUnspentResult struct {
	TxID          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Address       string  `json:"address"`
	Label         string  `json:"label,omitempty"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	RedeemScript  string  `json:"redeemScript,omitempty"`
	WitnessScript string  `json:"witnessScript,omitempty"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	Spendable     bool    `json:"spendable"`
	Solvable      bool    `json:"solvable"`
	Descriptor    string  `json:"desc,omitempty"`
	Safe          bool    `json:"safe"`
}

// ListReceivedByLabelResult models the data from the listreceivedbylabel
// command.
type ListReceivedByLabelResult struct {
	InvolvesWatchOnly bool    `json:"involvesWatchonly,omitempty"`
	Amount            float64 `json:"amount"`
	Confirmations     uint64  `json:"confirmations"`
	Label             string  `json:"label"`
}

// ListReceivedByAddressResult models the data from the listreceivedbyaddress
// command.
type ListReceivedByAddressResult struct {
	InvolvesWatchOnly bool     `json:"involvesWatchonly,omitempty"`
	Address           string   `json:"address"`
	Amount            float64  `json:"amount"`
	Confirmations     uint64   `json:"confirmations"`
	Label             string   `json:"label"`
	TxIDs             []string `json:"txids,omitempty"`
}

// WalletScanning is the scanning field of getwalletinfo.  The node reports
// false when no rescan is running and an object otherwise.
type WalletScanning struct {
	Scanning bool
	Duration int64
	Progress float64
}

// UnmarshalJSON decodes either false or {"duration":..,"progress":..}.
func (s *WalletScanning) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*s = WalletScanning{Scanning: flag}
		return nil
	}

	var progress struct {
		Duration int64   `json:"duration"`
		Progress float64 `json:"progress"`
	}
	if err := json.Unmarshal(data, &progress); err != nil {
		return err
	}
	*s = WalletScanning{
		Scanning: true,
		Duration: progress.Duration,
		Progress: progress.Progress,
	}
	return nil
}

// MarshalJSON encodes the value back into the node's representation.
func (s WalletScanning) MarshalJSON() ([]byte, error) {
	if !s.Scanning {
		return json.Marshal(false)
	}
	return json.Marshal(struct {
		Duration int64   `json:"duration"`
		Progress float64 `json:"progress"`
	}{s.Duration, s.Progress})
}

// GetWalletInfoResult models the result of the getwalletinfo command.
type GetWalletInfoResult struct {
	WalletName            string         `json:"walletname"`
	WalletVersion         int            `json:"walletversion"`
	Format                string         `json:"format,omitempty"`
	Balance               float64        `json:"balance"`
	UnconfirmedBalance    float64        `json:"unconfirmed_balance"`
	ImmatureBalance       float64        `json:"immature_balance"`
	TransactionCount      int            `json:"txcount"`
	KeyPoolOldest         *int64         `json:"keypoololdest,omitempty"`
	KeyPoolSize           int            `json:"keypoolsize"`
	KeyPoolSizeHDInternal *int           `json:"keypoolsize_hd_internal,omitempty"`
	UnlockedUntil         *int64         `json:"unlocked_until,omitempty"`
	PayTransactionFee     float64        `json:"paytxfee"`
	HDSeedID              *string        `json:"hdseedid,omitempty"`
	PrivateKeysEnabled    bool           `json:"private_keys_enabled"`
	AvoidReuse            bool           `json:"avoid_reuse"`
	Scanning              WalletScanning `json:"scanning"`
	Descriptors           bool           `json:"descriptors"`
}

// ImportMultiResultError is the error entry of an importmulti result.
type ImportMultiResultError struct {
	Code    RPCErrorCode `json:"code"`
	Message string       `json:"message"`
}

// ImportMultiResult models a single entry of the importmulti result.
type ImportMultiResult struct {
	Success  bool                    `json:"success"`
	Warnings []string                `json:"warnings,omitempty"`
	Error    *ImportMultiResultError `json:"error,omitempty"`
}

// FundRawTransactionResult models the result of fundrawtransaction.
type FundRawTransactionResult struct {
	Hex       string  `json:"hex"`
	Fee       float64 `json:"fee"`
	ChangePos int     `json:"changepos"`
}

// SignRawTransactionError models the data that contains script verification
// errors from the signrawtransaction request.
type SignRawTransactionError struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	Witness   []string `json:"witness,omitempty"`
	ScriptSig string   `json:"scriptSig"`
	Sequence  uint32   `json:"sequence"`
	Error     string   `json:"error"`
}

// SignRawTransactionResult models the data from the signrawtransaction
// family of commands.
type SignRawTransactionResult struct {
	Hex      string                    `json:"hex"`
	Complete bool                      `json:"complete"`
	Errors   []SignRawTransactionError `json:"errors,omitempty"`
}

// AddressGrouping is one address of a listaddressgroupings group.  The node
// encodes it as [address, amount] or [address, amount, label].
type AddressGrouping struct {
	Address string
	Amount  float64
	Label   string
}

// UnmarshalJSON decodes the positional array form of an address grouping.
func (g *AddressGrouping) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("address grouping has %d fields, want 2 or 3",
			len(fields))
	}

	var grouping AddressGrouping
	if err := json.Unmarshal(fields[0], &grouping.Address); err != nil {
		return err
	}
	if err := json.Unmarshal(fields[1], &grouping.Amount); err != nil {
		return err
	}
	if len(fields) == 3 {
		if err := json.Unmarshal(fields[2], &grouping.Label); err != nil {
			return err
		}
	}

	*g = grouping
	return nil
}
