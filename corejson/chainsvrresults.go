// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import "encoding/json"

// GetBlockHeaderVerboseResult models the data from the getblockheader command
// when the verbose flag is set.  When the verbose flag is not set,
// getblockheader returns a hex-encoded string.
type GetBlockHeaderVerboseResult struct {
	Hash          string  `json:"hash"`
	Confirmations int64   `json:"confirmations"`
	Height        int32   `json:"height"`
	Version       int32   `json:"version"`
	VersionHex    string  `json:"versionHex"`
	MerkleRoot    string  `json:"merkleroot"`
	Time          int64   `json:"time"`
	MedianTime    int64   `json:"mediantime"`
	Nonce         uint64  `json:"nonce"`
	Bits          string  `json:"bits"`
	Difficulty    float64 `json:"difficulty"`
	ChainWork     string  `json:"chainwork"`
	NTx           int64   `json:"nTx"`
	PreviousHash  string  `json:"previousblockhash,omitempty"`
	NextHash      string  `json:"nextblockhash,omitempty"`
}

// GetBlockVerboseResult models the data from the getblock command when the
// verbosity is 1.  Tx holds the transaction ids.
type GetBlockVerboseResult struct {
	Hash          string   `json:"hash"`
	Confirmations int64    `json:"confirmations"`
	StrippedSize  int32    `json:"strippedsize"`
	Size          int32    `json:"size"`
	Weight        int32    `json:"weight"`
	Height        int64    `json:"height"`
	Version       int32    `json:"version"`
	VersionHex    string   `json:"versionHex"`
	MerkleRoot    string   `json:"merkleroot"`
	Tx            []string `json:"tx"`
	Time          int64    `json:"time"`
	MedianTime    int64    `json:"mediantime"`
	Nonce         uint32   `json:"nonce"`
	Bits          string   `json:"bits"`
	Difficulty    float64  `json:"difficulty"`
	ChainWork     string   `json:"chainwork"`
	NTx           int64    `json:"nTx"`
	PreviousHash  string   `json:"previousblockhash"`
	NextHash      string   `json:"nextblockhash,omitempty"`
}

// GetBlockVerboseTxResult models the data from the getblock command when the
// verbosity is 2.  Tx holds the decoded transactions.
type GetBlockVerboseTxResult struct {
	Hash          string        `json:"hash"`
	Confirmations int64         `json:"confirmations"`
	StrippedSize  int32         `json:"strippedsize"`
	Size          int32         `json:"size"`
	Weight        int32         `json:"weight"`
	Height        int64         `json:"height"`
	Version       int32         `json:"version"`
	VersionHex    string        `json:"versionHex"`
	MerkleRoot    string        `json:"merkleroot"`
	Tx            []TxRawResult `json:"tx"`
	Time          int64         `json:"time"`
	MedianTime    int64         `json:"mediantime"`
	Nonce         uint32        `json:"nonce"`
	Bits          string        `json:"bits"`
	Difficulty    float64       `json:"difficulty"`
	ChainWork     string        `json:"chainwork"`
	NTx           int64         `json:"nTx"`
	PreviousHash  string        `json:"previousblockhash"`
	NextHash      string        `json:"nextblockhash,omitempty"`
}

// CreateMultiSigResult models the data returned from the createmultisig
// command.
type CreateMultiSigResult struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeemScript"`
	Descriptor   string `json:"descriptor,omitempty"`
}

// DecodeScriptResult models the data returned from the decodescript command.
type DecodeScriptResult struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex,omitempty"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
	P2sh      string   `json:"p2sh,omitempty"`
}

// GetBlockChainInfoResult models the data returned from the getblockchaininfo
// command.  Softforks is kept raw since its shape depends on the node
// version.
type GetBlockChainInfoResult struct {
	Chain                string          `json:"chain"`
	Blocks               int32           `json:"blocks"`
	Headers              int32           `json:"headers"`
	BestBlockHash        string          `json:"bestblockhash"`
	Difficulty           float64         `json:"difficulty"`
	MedianTime           int64           `json:"mediantime"`
	VerificationProgress float64         `json:"verificationprogress"`
	InitialBlockDownload bool            `json:"initialblockdownload"`
	ChainWork            string          `json:"chainwork"`
	SizeOnDisk           int64           `json:"size_on_disk"`
	Pruned               bool            `json:"pruned"`
	PruneHeight          int32           `json:"pruneheight,omitempty"`
	AutomaticPruning     bool            `json:"automatic_pruning,omitempty"`
	PruneTargetSize      int64           `json:"prune_target_size,omitempty"`
	SoftForks            json.RawMessage `json:"softforks,omitempty"`
	Warnings             json.RawMessage `json:"warnings,omitempty"`
}

// GetChainTipsResult models a single entry of the getchaintips command.
type GetChainTipsResult struct {
	Height    int32  `json:"height"`
	Hash      string `json:"hash"`
	BranchLen int32  `json:"branchlen"`
	Status    string `json:"status"`
}

// GetChainTxStatsResult models the data from the getchaintxstats command.
type GetChainTxStatsResult struct {
	Time                   int64    `json:"time"`
	TxCount                int64    `json:"txcount"`
	WindowFinalBlockHash   string   `json:"window_final_block_hash"`
	WindowFinalBlockHeight int32    `json:"window_final_block_height"`
	WindowBlockCount       int32    `json:"window_block_count"`
	WindowTxCount          *int64   `json:"window_tx_count,omitempty"`
	WindowInterval         *int64   `json:"window_interval,omitempty"`
	TxRate                 *float64 `json:"txrate,omitempty"`
}

// ScriptSig models a signature script.  It is defined separately since it only
// applies to non-coinbase.  Therefore the field in the Vin structure needs
// to be a pointer.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vin models parts of the tx data.  It is defined separately since
// getrawtransaction, decoderawtransaction, and searchrawtransaction use the
// same structure.
type Vin struct {
	Coinbase  string     `json:"coinbase,omitempty"`
	Txid      string     `json:"txid,omitempty"`
	Vout      uint32     `json:"vout,omitempty"`
	ScriptSig *ScriptSig `json:"scriptSig,omitempty"`
	Witness   []string   `json:"txinwitness,omitempty"`
	Sequence  uint32     `json:"sequence"`
}

// IsCoinBase returns a bool to show if a Vin is a Coinbase one or not.
func (v *Vin) IsCoinBase() bool {
	return len(v.Coinbase) > 0
}

// HasWitness returns a bool to show if a Vin has any witness data associated
// with it or not.
func (v *Vin) HasWitness() bool {
	return len(v.Witness) > 0
}

// ScriptPubKeyResult models the scriptPubKey data of a tx script.  It is
// defined separately since it is used by multiple commands.
type ScriptPubKeyResult struct {
	Asm       string   `json:"asm"`
	Desc      string   `json:"desc,omitempty"`
	Hex       string   `json:"hex,omitempty"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

// Vout models parts of the tx data.  It is defined separately since both
// getrawtransaction and decoderawtransaction use the same structure.
type Vout struct {
	Value        float64            `json:"value"`
	N            uint32             `json:"n"`
	ScriptPubKey ScriptPubKeyResult `json:"scriptPubKey"`
}

// TxRawDecodeResult models the data from the decoderawtransaction command.
type TxRawDecodeResult struct {
	Txid     string `json:"txid"`
	Hash     string `json:"hash"`
	Size     int32  `json:"size"`
	Vsize    int32  `json:"vsize"`
	Weight   int32  `json:"weight"`
	Version  int32  `json:"version"`
	Locktime uint32 `json:"locktime"`
	Vin      []Vin  `json:"vin"`
	Vout     []Vout `json:"vout"`
}

// TxRawResult models the data from the getrawtransaction command.
type TxRawResult struct {
	Hex           string  `json:"hex"`
	Txid          string  `json:"txid"`
	Hash          string  `json:"hash,omitempty"`
	Size          int32   `json:"size,omitempty"`
	Vsize         int32   `json:"vsize,omitempty"`
	Weight        int32   `json:"weight,omitempty"`
	Version       uint32  `json:"version"`
	LockTime      uint32  `json:"locktime"`
	Vin           []Vin   `json:"vin"`
	Vout          []Vout  `json:"vout"`
	Fee           float64 `json:"fee,omitempty"`
	BlockHash     string  `json:"blockhash,omitempty"`
	Confirmations uint64  `json:"confirmations,omitempty"`
	Time          int64   `json:"time,omitempty"`
	Blocktime     int64   `json:"blocktime,omitempty"`
}

// GetTxOutResult models the data from the gettxout command.
type GetTxOutResult struct {
	BestBlock     string             `json:"bestblock"`
	Confirmations int64              `json:"confirmations"`
	Value         float64            `json:"value"`
	ScriptPubKey  ScriptPubKeyResult `json:"scriptPubKey"`
	Coinbase      bool               `json:"coinbase"`
}

// GetTxOutSetInfoResult models the data from the gettxoutsetinfo command.
type GetTxOutSetInfoResult struct {
	Height          int64   `json:"height"`
	BestBlock       string  `json:"bestblock"`
	Transactions    int64   `json:"transactions"`
	TxOuts          int64   `json:"txouts"`
	BogoSize        int64   `json:"bogosize"`
	HashSerialized2 string  `json:"hash_serialized_2,omitempty"`
	HashSerialized3 string  `json:"hash_serialized_3,omitempty"`
	DiskSize        int64   `json:"disk_size"`
	TotalAmount     float64 `json:"total_amount"`
}

// MempoolFees holds the fee fields of a mempool entry, in BTC.
type MempoolFees struct {
	Base       float64 `json:"base"`
	Modified   float64 `json:"modified"`
	Ancestor   float64 `json:"ancestor"`
	Descendant float64 `json:"descendant"`
}

// GetMempoolEntryResult models the data returned from the getmempoolentry
// command and the values of the verbose getrawmempool family.
type GetMempoolEntryResult struct {
	VSize             int32       `json:"vsize"`
	Weight            int32       `json:"weight"`
	Time              int64       `json:"time"`
	Height            int64       `json:"height"`
	DescendantCount   int64       `json:"descendantcount"`
	DescendantSize    int64       `json:"descendantsize"`
	AncestorCount     int64       `json:"ancestorcount"`
	AncestorSize      int64       `json:"ancestorsize"`
	WTxID             string      `json:"wtxid"`
	Fees              MempoolFees `json:"fees"`
	Depends           []string    `json:"depends"`
	SpentBy           []string    `json:"spentby"`
	BIP125Replaceable bool        `json:"bip125-replaceable"`
	Unbroadcast       bool        `json:"unbroadcast"`
}

// GetMempoolInfoResult models the data returned from the getmempoolinfo
// command.
type GetMempoolInfoResult struct {
	Loaded          bool    `json:"loaded"`
	Size            int64   `json:"size"`
	Bytes           int64   `json:"bytes"`
	Usage           int64   `json:"usage"`
	TotalFee        float64 `json:"total_fee"`
	MaxMempool      int64   `json:"maxmempool"`
	MempoolMinFee   float64 `json:"mempoolminfee"`
	MinRelayTxFee   float64 `json:"minrelaytxfee"`
	UnbroadcastSize int64   `json:"unbroadcastcount"`
}

// GetMiningInfoResult models the data from the getmininginfo command.
type GetMiningInfoResult struct {
	Blocks             int64           `json:"blocks"`
	CurrentBlockWeight uint64          `json:"currentblockweight,omitempty"`
	CurrentBlockTx     uint64          `json:"currentblocktx,omitempty"`
	Difficulty         float64         `json:"difficulty"`
	NetworkHashPS      float64         `json:"networkhashps"`
	PooledTx           uint64          `json:"pooledtx"`
	Chain              string          `json:"chain"`
	Warnings           json.RawMessage `json:"warnings,omitempty"`
}

// EstimateSmartFeeResult models the data returned from the estimatesmartfee
// command.
type EstimateSmartFeeResult struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Blocks  int64    `json:"blocks"`
}

// ValidateAddressResult models the data returned by the validateaddress
// command.
type ValidateAddressResult struct {
	IsValid        bool    `json:"isvalid"`
	Address        string  `json:"address,omitempty"`
	ScriptPubKey   string  `json:"scriptPubKey,omitempty"`
	IsScript       *bool   `json:"isscript,omitempty"`
	IsWitness      *bool   `json:"iswitness,omitempty"`
	WitnessVersion *int32  `json:"witness_version,omitempty"`
	WitnessProgram *string `json:"witness_program,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// LockedMemoryInfo models the "locked" section of getmemoryinfo in stats
// mode.
type LockedMemoryInfo struct {
	Used       uint64 `json:"used"`
	Free       uint64 `json:"free"`
	Total      uint64 `json:"total"`
	Locked     uint64 `json:"locked"`
	ChunksUsed uint64 `json:"chunks_used"`
	ChunksFree uint64 `json:"chunks_free"`
}

// GetMemoryInfoResult models the data from the getmemoryinfo command in stats
// mode.  In mallocinfo mode the node returns an XML string instead.
type GetMemoryInfoResult struct {
	Locked LockedMemoryInfo `json:"locked"`
}
