// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/corerpc/corejson"
)

// hashParam returns the string form of an optional hash, or nil so the
// parameter is omitted.
func hashParam(hash *chainhash.Hash) *string {
	if hash == nil {
		return nil
	}
	return corejson.String(hash.String())
}

// hashStrings returns the string form of every hash.
func hashStrings(hashes []*chainhash.Hash) []string {
	strs := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		strs = append(strs, hash.String())
	}
	return strs
}

// GetBestBlockHashAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetBestBlockHash for the blocking version and more details.
func (c *Client) GetBestBlockHashAsync() FutureHashResult {
	return c.sendCmd("getbestblockhash")
}

// GetBestBlockHash returns the hash of the best block in the longest block
// chain.
func (c *Client) GetBestBlockHash() (*chainhash.Hash, error) {
	return c.GetBestBlockHashAsync().Receive()
}

// GetBlockAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlock for the blocking version and more details.
func (c *Client) GetBlockAsync(blockHash *chainhash.Hash) FutureResult[string] {
	return c.sendCmd("getblock", blockHash.String(), 0)
}

// GetBlock returns the hex-encoded serialized block with the given hash.
//
// See GetBlockVerbose to retrieve a data structure with information about the
// block instead.
func (c *Client) GetBlock(blockHash *chainhash.Hash) (string, error) {
	return c.GetBlockAsync(blockHash).Receive()
}

// GetBlockVerboseAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetBlockVerbose for the blocking version and more details.
func (c *Client) GetBlockVerboseAsync(blockHash *chainhash.Hash) FutureResult[*corejson.GetBlockVerboseResult] {
	return c.sendCmd("getblock", blockHash.String(), 1)
}

// GetBlockVerbose returns a data structure from the server with information
// about a block given its hash.  Transactions are listed by id.
//
// See GetBlockVerboseTx to retrieve transaction data structures as well.
func (c *Client) GetBlockVerbose(blockHash *chainhash.Hash) (*corejson.GetBlockVerboseResult, error) {
	return c.GetBlockVerboseAsync(blockHash).Receive()
}

// GetBlockVerboseTxAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetBlockVerboseTx for the blocking version and more details.
func (c *Client) GetBlockVerboseTxAsync(blockHash *chainhash.Hash) FutureResult[*corejson.GetBlockVerboseTxResult] {
	return c.sendCmd("getblock", blockHash.String(), 2)
}

// GetBlockVerboseTx returns a data structure from the server with information
// about a block and its transactions given its hash.
func (c *Client) GetBlockVerboseTx(blockHash *chainhash.Hash) (*corejson.GetBlockVerboseTxResult, error) {
	return c.GetBlockVerboseTxAsync(blockHash).Receive()
}

// GetBlockChainInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetBlockChainInfo for the blocking version and more details.
func (c *Client) GetBlockChainInfoAsync() FutureResult[*corejson.GetBlockChainInfoResult] {
	return c.sendCmd("getblockchaininfo")
}

// GetBlockChainInfo returns information related to the processing state of
// various chain-specific details such as the current difficulty from the tip
// of the main chain.
func (c *Client) GetBlockChainInfo() (*corejson.GetBlockChainInfoResult, error) {
	return c.GetBlockChainInfoAsync().Receive()
}

// GetBlockCountAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockCount for the blocking version and more details.
func (c *Client) GetBlockCountAsync() FutureResult[int64] {
	return c.sendCmd("getblockcount")
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount() (int64, error) {
	return c.GetBlockCountAsync().Receive()
}

// GetBlockHashAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockHash for the blocking version and more details.
func (c *Client) GetBlockHashAsync(blockHeight int64) FutureHashResult {
	return c.sendCmd("getblockhash", blockHeight)
}

// GetBlockHash returns the hash of the block in the best block chain at the
// given height.
func (c *Client) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	return c.GetBlockHashAsync(blockHeight).Receive()
}

// GetBlockHeaderAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBlockHeader for the blocking version and more details.
func (c *Client) GetBlockHeaderAsync(blockHash *chainhash.Hash) FutureResult[string] {
	return c.sendCmd("getblockheader", blockHash.String(), false)
}

// GetBlockHeader returns the hex-encoded serialized header of the block with
// the given hash.
func (c *Client) GetBlockHeader(blockHash *chainhash.Hash) (string, error) {
	return c.GetBlockHeaderAsync(blockHash).Receive()
}

// GetBlockHeaderVerboseAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetBlockHeaderVerbose for the blocking version and more details.
func (c *Client) GetBlockHeaderVerboseAsync(blockHash *chainhash.Hash) FutureResult[*corejson.GetBlockHeaderVerboseResult] {
	return c.sendCmd("getblockheader", blockHash.String(), true)
}

// GetBlockHeaderVerbose returns a data structure with information about the
// header of the block with the given hash.
func (c *Client) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*corejson.GetBlockHeaderVerboseResult, error) {
	return c.GetBlockHeaderVerboseAsync(blockHash).Receive()
}

// GetChainTipsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetChainTips for the blocking version and more details.
func (c *Client) GetChainTipsAsync() FutureResult[[]corejson.GetChainTipsResult] {
	return c.sendCmd("getchaintips")
}

// GetChainTips returns information about all known tips in the block tree,
// including the main chain as well as orphaned branches.
func (c *Client) GetChainTips() ([]corejson.GetChainTipsResult, error) {
	return c.GetChainTipsAsync().Receive()
}

// GetChainTxStatsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetChainTxStats for the blocking version and more details.
func (c *Client) GetChainTxStatsAsync(nBlocks *int32, blockHash *chainhash.Hash) FutureResult[*corejson.GetChainTxStatsResult] {
	return c.sendCmd("getchaintxstats", nBlocks, hashParam(blockHash))
}

// GetChainTxStats returns statistics about the total number and rate of
// transactions in the chain over a window of nBlocks ending at blockHash.
// Both are optional, but nBlocks must be set when blockHash is.
func (c *Client) GetChainTxStats(nBlocks *int32, blockHash *chainhash.Hash) (*corejson.GetChainTxStatsResult, error) {
	return c.GetChainTxStatsAsync(nBlocks, blockHash).Receive()
}

// GetDifficultyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetDifficulty for the blocking version and more details.
func (c *Client) GetDifficultyAsync() FutureResult[float64] {
	return c.sendCmd("getdifficulty")
}

// GetDifficulty returns the proof-of-work difficulty as a multiple of the
// minimum difficulty.
func (c *Client) GetDifficulty() (float64, error) {
	return c.GetDifficultyAsync().Receive()
}

// GetMempoolAncestorsAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetMempoolAncestors for the blocking version and more details.
func (c *Client) GetMempoolAncestorsAsync(txHash *chainhash.Hash) FutureHashesResult {
	return c.sendCmd("getmempoolancestors", txHash.String(), false)
}

// GetMempoolAncestors returns the ids of all in-mempool ancestors of the given
// transaction.
func (c *Client) GetMempoolAncestors(txHash *chainhash.Hash) ([]*chainhash.Hash, error) {
	return c.GetMempoolAncestorsAsync(txHash).Receive()
}

// GetMempoolAncestorsVerboseAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See GetMempoolAncestorsVerbose for the blocking version and more details.
func (c *Client) GetMempoolAncestorsVerboseAsync(txHash *chainhash.Hash) FutureResult[map[string]corejson.GetMempoolEntryResult] {
	return c.sendCmd("getmempoolancestors", txHash.String(), true)
}

// GetMempoolAncestorsVerbose returns the mempool entries of all in-mempool
// ancestors of the given transaction keyed by transaction id.
func (c *Client) GetMempoolAncestorsVerbose(txHash *chainhash.Hash) (map[string]corejson.GetMempoolEntryResult, error) {
	return c.GetMempoolAncestorsVerboseAsync(txHash).Receive()
}

// GetMempoolDescendantsAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetMempoolDescendants for the blocking version and more details.
func (c *Client) GetMempoolDescendantsAsync(txHash *chainhash.Hash) FutureHashesResult {
	return c.sendCmd("getmempooldescendants", txHash.String(), false)
}

// GetMempoolDescendants returns the ids of all in-mempool descendants of the
// given transaction.
func (c *Client) GetMempoolDescendants(txHash *chainhash.Hash) ([]*chainhash.Hash, error) {
	return c.GetMempoolDescendantsAsync(txHash).Receive()
}

// GetMempoolDescendantsVerboseAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See GetMempoolDescendantsVerbose for the blocking version and more details.
func (c *Client) GetMempoolDescendantsVerboseAsync(txHash *chainhash.Hash) FutureResult[map[string]corejson.GetMempoolEntryResult] {
	return c.sendCmd("getmempooldescendants", txHash.String(), true)
}

// GetMempoolDescendantsVerbose returns the mempool entries of all in-mempool
// descendants of the given transaction keyed by transaction id.
func (c *Client) GetMempoolDescendantsVerbose(txHash *chainhash.Hash) (map[string]corejson.GetMempoolEntryResult, error) {
	return c.GetMempoolDescendantsVerboseAsync(txHash).Receive()
}

// GetMempoolEntryAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetMempoolEntry for the blocking version and more details.
func (c *Client) GetMempoolEntryAsync(txHash *chainhash.Hash) FutureResult[*corejson.GetMempoolEntryResult] {
	return c.sendCmd("getmempoolentry", txHash.String())
}

// GetMempoolEntry returns a data structure with information about the
// transaction in the memory pool given its hash.
func (c *Client) GetMempoolEntry(txHash *chainhash.Hash) (*corejson.GetMempoolEntryResult, error) {
	return c.GetMempoolEntryAsync(txHash).Receive()
}

// GetMempoolInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetMempoolInfo for the blocking version and more details.
func (c *Client) GetMempoolInfoAsync() FutureResult[*corejson.GetMempoolInfoResult] {
	return c.sendCmd("getmempoolinfo")
}

// GetMempoolInfo returns a data structure with information about the state of
// the memory pool.
func (c *Client) GetMempoolInfo() (*corejson.GetMempoolInfoResult, error) {
	return c.GetMempoolInfoAsync().Receive()
}

// GetRawMempoolAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetRawMempool for the blocking version and more details.
func (c *Client) GetRawMempoolAsync() FutureHashesResult {
	return c.sendCmd("getrawmempool", false)
}

// GetRawMempool returns the hashes of all transactions in the memory pool.
//
// See GetRawMempoolVerbose to retrieve data structures with information about
// the transactions instead.
func (c *Client) GetRawMempool() ([]*chainhash.Hash, error) {
	return c.GetRawMempoolAsync().Receive()
}

// GetRawMempoolVerboseAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetRawMempoolVerbose for the blocking version and more details.
func (c *Client) GetRawMempoolVerboseAsync() FutureResult[map[string]corejson.GetMempoolEntryResult] {
	return c.sendCmd("getrawmempool", true)
}

// GetRawMempoolVerbose returns a map of transaction hashes to an associated
// data structure with information about the transaction for all transactions
// in the memory pool.
//
// See GetRawMempool to retrieve only the transaction hashes instead.
func (c *Client) GetRawMempoolVerbose() (map[string]corejson.GetMempoolEntryResult, error) {
	return c.GetRawMempoolVerboseAsync().Receive()
}

// GetTxOutAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetTxOut for the blocking version and more details.
func (c *Client) GetTxOutAsync(txHash *chainhash.Hash, index uint32, mempool *bool) FutureResult[*corejson.GetTxOutResult] {
	return c.sendCmd("gettxout", txHash.String(), index, mempool)
}

// GetTxOut returns the transaction output info if it's unspent and nil
// otherwise.  mempool is optional and defaults to true on the node.
func (c *Client) GetTxOut(txHash *chainhash.Hash, index uint32, mempool *bool) (*corejson.GetTxOutResult, error) {
	return c.GetTxOutAsync(txHash, index, mempool).Receive()
}

// GetTxOutProofAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetTxOutProof for the blocking version and more details.
func (c *Client) GetTxOutProofAsync(txHashes []*chainhash.Hash, blockHash *chainhash.Hash) FutureResult[string] {
	return c.sendCmd("gettxoutproof", hashStrings(txHashes),
		hashParam(blockHash))
}

// GetTxOutProof returns a hex-encoded proof that the given transactions were
// included in a block.  blockHash is optional.
func (c *Client) GetTxOutProof(txHashes []*chainhash.Hash, blockHash *chainhash.Hash) (string, error) {
	return c.GetTxOutProofAsync(txHashes, blockHash).Receive()
}

// GetTxOutSetInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetTxOutSetInfo for the blocking version and more details.
func (c *Client) GetTxOutSetInfoAsync() FutureResult[*corejson.GetTxOutSetInfoResult] {
	return c.sendCmd("gettxoutsetinfo")
}

// GetTxOutSetInfo returns the statistics about the unspent transaction output
// set.
func (c *Client) GetTxOutSetInfo() (*corejson.GetTxOutSetInfoResult, error) {
	return c.GetTxOutSetInfoAsync().Receive()
}

// PreciousBlockAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See PreciousBlock for the blocking version and more details.
func (c *Client) PreciousBlockAsync(blockHash *chainhash.Hash) FutureVoidResult {
	return c.sendCmd("preciousblock", blockHash.String())
}

// PreciousBlock treats a block as if it were received before others with the
// same work.
func (c *Client) PreciousBlock(blockHash *chainhash.Hash) error {
	return c.PreciousBlockAsync(blockHash).Receive()
}

// PruneBlockchainAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See PruneBlockchain for the blocking version and more details.
func (c *Client) PruneBlockchainAsync(height int64) FutureResult[int64] {
	return c.sendCmd("pruneblockchain", height)
}

// PruneBlockchain prunes the block files up to the given height and returns
// the height of the last block pruned.
func (c *Client) PruneBlockchain(height int64) (int64, error) {
	return c.PruneBlockchainAsync(height).Receive()
}

// VerifyChainAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See VerifyChain for the blocking version and more details.
func (c *Client) VerifyChainAsync(checkLevel, numBlocks *int32) FutureResult[bool] {
	level := int32(defaultCheckLevel)
	if checkLevel != nil {
		level = *checkLevel
	}
	return c.sendCmd("verifychain", level, numBlocks)
}

// VerifyChain requests the server to verify the block chain database.  The
// check level defaults to 3 and the number of blocks to the node's own
// default.
func (c *Client) VerifyChain(checkLevel, numBlocks *int32) (bool, error) {
	return c.VerifyChainAsync(checkLevel, numBlocks).Receive()
}

// VerifyTxOutProofAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See VerifyTxOutProof for the blocking version and more details.
func (c *Client) VerifyTxOutProofAsync(proof string) FutureHashesResult {
	return c.sendCmd("verifytxoutproof", proof)
}

// VerifyTxOutProof verifies that a proof points to a transaction in a block,
// returning the transactions it commits to.
func (c *Client) VerifyTxOutProof(proof string) ([]*chainhash.Hash, error) {
	return c.VerifyTxOutProofAsync(proof).Receive()
}
