// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/corerpc/corejson"
)

// labelOrDefault returns the label to send, the empty label when unset.
func labelOrDefault(label *string) string {
	if label == nil {
		return ""
	}
	return *label
}

// intOrDefault returns *v, or def when v is nil.
func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// boolOrDefault returns *v, or def when v is nil.
func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// *****************************
// Transaction Listing Functions
// *****************************

// GetTransactionAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetTransaction for the blocking version and more details.
func (c *Client) GetTransactionAsync(txHash *chainhash.Hash) FutureResult[*corejson.GetTransactionResult] {
	return c.sendCmd("gettransaction", txHash.String())
}

// GetTransaction returns detailed information about a wallet transaction.
//
// See GetRawTransaction to return the raw transaction instead.
func (c *Client) GetTransaction(txHash *chainhash.Hash) (*corejson.GetTransactionResult, error) {
	return c.GetTransactionAsync(txHash).Receive()
}

// GetTransactionWatchOnlyAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetTransactionWatchOnly for the blocking version and more details.
func (c *Client) GetTransactionWatchOnlyAsync(txHash *chainhash.Hash, watchOnly, verbose bool) FutureResult[*corejson.GetTransactionResult] {
	return c.sendCmd("gettransaction", txHash.String(), watchOnly, verbose)
}

// GetTransactionWatchOnly returns detailed information about a wallet
// transaction, and allow including watch-only addresses in balance
// calculation and details.  verbose adds the decoded transaction.
func (c *Client) GetTransactionWatchOnly(txHash *chainhash.Hash, watchOnly, verbose bool) (*corejson.GetTransactionResult, error) {
	return c.GetTransactionWatchOnlyAsync(txHash, watchOnly, verbose).Receive()
}

// ListTransactionsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListTransactions for the blocking version and more details.
func (c *Client) ListTransactionsAsync(label *string, count, skip *int, includeWatchOnly *bool) FutureResult[[]corejson.ListTransactionsResult] {
	l := defaultAllLabels
	if label != nil {
		l = *label
	}
	return c.sendCmd("listtransactions", l,
		intOrDefault(count, defaultListTxCount), intOrDefault(skip, 0),
		includeWatchOnly)
}

// ListTransactions returns a list of the most recent transactions.  label
// defaults to "*" (all labels), count to 10 and skip to 0.
func (c *Client) ListTransactions(label *string, count, skip *int, includeWatchOnly *bool) ([]corejson.ListTransactionsResult, error) {
	return c.ListTransactionsAsync(label, count, skip, includeWatchOnly).Receive()
}

// ListUnspentAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ListUnspent for the blocking version and more details.
func (c *Client) ListUnspentAsync(minConf, maxConf *int, addresses []string,
	includeUnsafe *bool, query *corejson.ListUnspentQueryOptions) FutureResult[[]corejson.ListUnspentResult] {

	if addresses == nil {
		addresses = []string{}
	}
	return c.sendCmd("listunspent", intOrDefault(minConf, defaultMinConf),
		intOrDefault(maxConf, defaultMaxConf), addresses,
		boolOrDefault(includeUnsafe, true), query)
}

// ListUnspent returns unspent transaction outputs with between minConf (1)
// and maxConf (9999999) confirmations, optionally restricted to addresses.
func (c *Client) ListUnspent(minConf, maxConf *int, addresses []string,
	includeUnsafe *bool, query *corejson.ListUnspentQueryOptions) ([]corejson.ListUnspentResult, error) {

	return c.ListUnspentAsync(minConf, maxConf, addresses, includeUnsafe,
		query).Receive()
}

// ListSinceBlockAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListSinceBlock for the blocking version and more details.
func (c *Client) ListSinceBlockAsync(blockHash *chainhash.Hash, targetConfs *int,
	includeWatchOnly, includeRemoved *bool) FutureResult[*corejson.ListSinceBlockResult] {

	var hash string
	if blockHash != nil {
		hash = blockHash.String()
	}
	return c.sendCmd("listsinceblock", hash,
		intOrDefault(targetConfs, defaultTargetConfs),
		boolOrDefault(includeWatchOnly, false), includeRemoved)
}

// ListSinceBlock returns all transactions added in blocks since the specified
// block hash, or all transactions if it is nil.
func (c *Client) ListSinceBlock(blockHash *chainhash.Hash, targetConfs *int,
	includeWatchOnly, includeRemoved *bool) (*corejson.ListSinceBlockResult, error) {

	return c.ListSinceBlockAsync(blockHash, targetConfs, includeWatchOnly,
		includeRemoved).Receive()
}

// **************************
// Transaction Send Functions
// **************************

// FutureLockUnspentResult is a future promise to deliver the result of a
// LockUnspentAsync RPC invocation (or an applicable error).
type FutureLockUnspentResult chan *response

// Receive waits for the response promised by the future and returns the result
// of locking or unlocking the unspent output(s).
func (r FutureLockUnspentResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// LockUnspentAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See LockUnspent for the blocking version and more details.
func (c *Client) LockUnspentAsync(unlock bool, ops []*wire.OutPoint) FutureLockUnspentResult {
	var outputs []corejson.OutPoint
	if ops != nil {
		outputs = make([]corejson.OutPoint, len(ops))
		for i, op := range ops {
			outputs[i] = corejson.OutPoint{
				TxID: op.Hash.String(),
				Vout: op.Index,
			}
		}
	}

	return c.sendCmd("lockunspent", unlock, outputs)
}

// LockUnspent marks outputs as locked or unlocked, depending on the value of
// the unlock bool.  When locked, the unspent output will not be selected as
// input for newly created, non-raw transactions, and will not be returned in
// future ListUnspent results, until the output is marked unlocked again.
//
// If unlock is false, each outpoint in ops will be marked locked.  If unlocked
// is true and specific outputs are specified in ops (len != 0), exactly those
// outputs will be marked unlocked.  If unlocked is true and ops is nil, all
// previous locked outputs are marked unlocked.
//
// NOTE: While this method would be a bit more readable if the unlock bool was
// reversed (that is, LockUnspent(true, ...) locked the outputs), it has been
// left as unlock to keep compatibility with the reference client API and to
// avoid confusion for those who are already familiar with the lockunspent RPC.
func (c *Client) LockUnspent(unlock bool, ops []*wire.OutPoint) error {
	return c.LockUnspentAsync(unlock, ops).Receive()
}

// FutureListLockUnspentResult is a future promise to deliver the result of a
// ListLockUnspentAsync RPC invocation (or an applicable error).
type FutureListLockUnspentResult chan *response

// Receive waits for the response promised by the future and returns the result
// of all currently locked unspent outputs.
func (r FutureListLockUnspentResult) Receive() ([]*wire.OutPoint, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal as an array of outpoints.
	var inputs []corejson.OutPoint
	err = json.Unmarshal(res, &inputs)
	if err != nil {
		return nil, err
	}

	// Create a slice of outpoints from the transaction input structs.
	ops := make([]*wire.OutPoint, len(inputs))
	for i, input := range inputs {
		sha, err := chainhash.NewHashFromStr(input.TxID)
		if err != nil {
			return nil, err
		}
		ops[i] = wire.NewOutPoint(sha, input.Vout)
	}

	return ops, nil
}

// ListLockUnspentAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListLockUnspent for the blocking version and more details.
func (c *Client) ListLockUnspentAsync() FutureListLockUnspentResult {
	return c.sendCmd("listlockunspent")
}

// ListLockUnspent returns a slice of outpoints for all unspent outputs marked
// as locked by a wallet.  Unspent outputs may be marked locked using
// LockUnspent.
func (c *Client) ListLockUnspent() ([]*wire.OutPoint, error) {
	return c.ListLockUnspentAsync().Receive()
}

// SetTxFeeAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SetTxFee for the blocking version and more details.
func (c *Client) SetTxFeeAsync(fee btcutil.Amount) FutureResult[bool] {
	return c.sendCmd("settxfee", fee.ToBTC())
}

// SetTxFee sets an optional transaction fee per KB that helps ensure
// transactions are processed quickly.  Most transaction are 1KB.
func (c *Client) SetTxFee(fee btcutil.Amount) (bool, error) {
	return c.SetTxFeeAsync(fee).Receive()
}

// SendOption is a functional option argument that allows callers to modify
// the optional parameters of SendToAddress and SendMany.
type SendOption func(*sendOptions)

// sendOptions houses the optional parameters shared by the send calls.
type sendOptions struct {
	comment         string
	commentTo       string
	subtractFee     bool
	subtractFeeFrom []string
	replaceable     bool
	confTarget      int
	estimateMode    corejson.FeeEstimateMode
	avoidReuse      *bool
}

// defaultSendOptions returns the node's defaults for the send calls.
func defaultSendOptions() *sendOptions {
	return &sendOptions{
		subtractFeeFrom: []string{},
		confTarget:      defaultConfTarget,
		estimateMode:    corejson.EstimateModeUnset,
	}
}

// WithComment attaches a comment to the wallet transaction.  commentTo, only
// used by SendToAddress, names the recipient.
func WithComment(comment, commentTo string) SendOption {
	return func(o *sendOptions) {
		o.comment = comment
		o.commentTo = commentTo
	}
}

// WithSubtractFee deducts the fee from the amount sent.  For SendMany the
// fee is split between addresses, for SendToAddress they are ignored.
func WithSubtractFee(addresses ...string) SendOption {
	return func(o *sendOptions) {
		o.subtractFee = true
		o.subtractFeeFrom = append(o.subtractFeeFrom, addresses...)
	}
}

// WithReplaceable signals BIP 125 replaceability.
func WithReplaceable() SendOption {
	return func(o *sendOptions) {
		o.replaceable = true
	}
}

// WithConfTarget sets the confirmation target, in blocks, used for fee
// estimation and the estimation mode.
func WithConfTarget(blocks int, mode corejson.FeeEstimateMode) SendOption {
	return func(o *sendOptions) {
		o.confTarget = blocks
		o.estimateMode = mode
	}
}

// WithAvoidReuse sets whether outputs of already used addresses are avoided.
// Only honored by SendToAddress on wallets with the avoid_reuse flag.
func WithAvoidReuse(avoid bool) SendOption {
	return func(o *sendOptions) {
		o.avoidReuse = &avoid
	}
}

// SendToAddressAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SendToAddress for the blocking version and more details.
func (c *Client) SendToAddressAsync(address string, amount btcutil.Amount, options ...SendOption) FutureHashResult {
	opts := defaultSendOptions()
	for _, option := range options {
		option(opts)
	}

	return c.sendCmd("sendtoaddress", address, amount.ToBTC(), opts.comment,
		opts.commentTo, opts.subtractFee, opts.replaceable,
		opts.confTarget, opts.estimateMode, opts.avoidReuse)
}

// SendToAddress sends the passed amount to the given address and returns the
// id of the transaction.
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SendToAddress(address string, amount btcutil.Amount, options ...SendOption) (*chainhash.Hash, error) {
	return c.SendToAddressAsync(address, amount, options...).Receive()
}

// SendManyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SendMany for the blocking version and more details.
func (c *Client) SendManyAsync(amounts map[string]btcutil.Amount, options ...SendOption) FutureHashResult {
	opts := defaultSendOptions()
	for _, option := range options {
		option(opts)
	}

	convertedAmounts := make(map[string]float64, len(amounts))
	for addr, amount := range amounts {
		convertedAmounts[addr] = amount.ToBTC()
	}

	// The leading dummy must be empty and minconf is ignored by the node.
	return c.sendCmd("sendmany", "", convertedAmounts, 0, opts.comment,
		opts.subtractFeeFrom, opts.replaceable, opts.confTarget,
		opts.estimateMode)
}

// SendMany sends multiple amounts to multiple addresses using the wallet in a
// single transaction and returns its id.
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SendMany(amounts map[string]btcutil.Amount, options ...SendOption) (*chainhash.Hash, error) {
	return c.SendManyAsync(amounts, options...).Receive()
}

// BumpFeeAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See BumpFee for the blocking version and more details.
func (c *Client) BumpFeeAsync(txHash *chainhash.Hash, opts *corejson.BumpFeeOptions) FutureResult[*corejson.BumpFeeResult] {
	return c.sendCmd("bumpfee", txHash.String(), opts)
}

// BumpFee replaces an unconfirmed, replaceable wallet transaction with one
// paying a higher fee.
func (c *Client) BumpFee(txHash *chainhash.Hash, opts *corejson.BumpFeeOptions) (*corejson.BumpFeeResult, error) {
	return c.BumpFeeAsync(txHash, opts).Receive()
}

// AbandonTransactionAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See AbandonTransaction for the blocking version and more details.
func (c *Client) AbandonTransactionAsync(txHash *chainhash.Hash) FutureVoidResult {
	return c.sendCmd("abandontransaction", txHash.String())
}

// AbandonTransaction marks an in-wallet transaction and all its in-wallet
// descendants as abandoned so their inputs can be respent.
func (c *Client) AbandonTransaction(txHash *chainhash.Hash) error {
	return c.AbandonTransactionAsync(txHash).Receive()
}

// SignRawTransactionWithWalletAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See SignRawTransactionWithWallet for the blocking version and more details.
func (c *Client) SignRawTransactionWithWalletAsync(txHex string, prevTxs []corejson.PrevTxOut,
	hashType *corejson.SigHashType) FutureResult[*corejson.SignRawTransactionResult] {

	if prevTxs == nil {
		prevTxs = []corejson.PrevTxOut{}
	}
	return c.sendCmd("signrawtransactionwithwallet", txHex, prevTxs, hashType)
}

// SignRawTransactionWithWallet signs inputs for the passed hex-encoded
// transaction with the keys of the wallet.
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SignRawTransactionWithWallet(txHex string, prevTxs []corejson.PrevTxOut,
	hashType *corejson.SigHashType) (*corejson.SignRawTransactionResult, error) {

	return c.SignRawTransactionWithWalletAsync(txHex, prevTxs, hashType).Receive()
}

// *************************
// Address/Account Functions
// *************************

// AddMultisigAddressAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See AddMultisigAddress for the blocking version and more details.
func (c *Client) AddMultisigAddressAsync(requiredSigs int, keys []string, label *string,
	addrType *corejson.AddressType) FutureResult[*corejson.CreateMultiSigResult] {

	return c.sendCmd("addmultisigaddress", requiredSigs, keys,
		labelOrDefault(label), addrType)
}

// AddMultisigAddress adds a multisignature address that requires the
// specified number of signatures for the provided keys or addresses to the
// wallet.
func (c *Client) AddMultisigAddress(requiredSigs int, keys []string, label *string,
	addrType *corejson.AddressType) (*corejson.CreateMultiSigResult, error) {

	return c.AddMultisigAddressAsync(requiredSigs, keys, label,
		addrType).Receive()
}

// GetNewAddressAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetNewAddress for the blocking version and more details.
func (c *Client) GetNewAddressAsync(label *string, addrType *corejson.AddressType) FutureResult[string] {
	return c.sendCmd("getnewaddress", labelOrDefault(label), addrType)
}

// GetNewAddress returns a new address for receiving payments, encoded for the
// node's network.
func (c *Client) GetNewAddress(label *string, addrType *corejson.AddressType) (string, error) {
	return c.GetNewAddressAsync(label, addrType).Receive()
}

// GetRawChangeAddressAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetRawChangeAddress for the blocking version and more details.
func (c *Client) GetRawChangeAddressAsync(addrType *corejson.AddressType) FutureResult[string] {
	return c.sendCmd("getrawchangeaddress", addrType)
}

// GetRawChangeAddress returns a new address for receiving change that will be
// associated with the provided account.  Note that this is only for raw
// transactions and NOT for normal use.
func (c *Client) GetRawChangeAddress(addrType *corejson.AddressType) (string, error) {
	return c.GetRawChangeAddressAsync(addrType).Receive()
}

// GetAddressInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetAddressInfo for the blocking version and more details.
func (c *Client) GetAddressInfoAsync(address string) FutureResult[*corejson.GetAddressInfoResult] {
	return c.sendCmd("getaddressinfo", address)
}

// GetAddressInfo returns information about the given bitcoin address.
func (c *Client) GetAddressInfo(address string) (*corejson.GetAddressInfoResult, error) {
	return c.GetAddressInfoAsync(address).Receive()
}

// ListAddressGroupingsAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See ListAddressGroupings for the blocking version and more details.
func (c *Client) ListAddressGroupingsAsync() FutureResult[[][]corejson.AddressGrouping] {
	return c.sendCmd("listaddressgroupings")
}

// ListAddressGroupings returns groups of addresses whose common ownership was
// made public by common use as inputs or as the resulting change in past
// transactions.
func (c *Client) ListAddressGroupings() ([][]corejson.AddressGrouping, error) {
	return c.ListAddressGroupingsAsync().Receive()
}

// ListLabelsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListLabels for the blocking version and more details.
func (c *Client) ListLabelsAsync(purpose *string) FutureResult[[]string] {
	return c.sendCmd("listlabels", purpose)
}

// ListLabels returns the labels of the wallet, restricted to those with the
// given purpose ("send" or "receive") when it is not nil.
func (c *Client) ListLabels(purpose *string) ([]string, error) {
	return c.ListLabelsAsync(purpose).Receive()
}

// ListReceivedByAddressAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See ListReceivedByAddress for the blocking version and more details.
func (c *Client) ListReceivedByAddressAsync(minConf *int, includeEmpty, includeWatchOnly *bool,
	addressFilter *string) FutureResult[[]corejson.ListReceivedByAddressResult] {

	// The filter is positional, so it needs an explicit include_watchonly.
	if addressFilter != nil {
		includeWatchOnly = corejson.Bool(boolOrDefault(includeWatchOnly,
			false))
	}
	return c.sendCmd("listreceivedbyaddress",
		intOrDefault(minConf, defaultMinConf),
		boolOrDefault(includeEmpty, false), includeWatchOnly, addressFilter)
}

// ListReceivedByAddress lists balances by address.  minConf defaults to 1
// and addresses that have not received any payments are skipped unless
// includeEmpty is set.  includeWatchOnly is left to the node unless
// addressFilter is set, in which case it defaults to false.
func (c *Client) ListReceivedByAddress(minConf *int, includeEmpty, includeWatchOnly *bool,
	addressFilter *string) ([]corejson.ListReceivedByAddressResult, error) {

	return c.ListReceivedByAddressAsync(minConf, includeEmpty,
		includeWatchOnly, addressFilter).Receive()
}

// ListReceivedByLabelAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See ListReceivedByLabel for the blocking version and more details.
func (c *Client) ListReceivedByLabelAsync(minConf *int, includeEmpty,
	includeWatchOnly *bool) FutureResult[[]corejson.ListReceivedByLabelResult] {

	return c.sendCmd("listreceivedbylabel",
		intOrDefault(minConf, defaultMinConf),
		boolOrDefault(includeEmpty, false), includeWatchOnly)
}

// ListReceivedByLabel lists balances by label with the same defaults as
// ListReceivedByAddress.
func (c *Client) ListReceivedByLabel(minConf *int, includeEmpty,
	includeWatchOnly *bool) ([]corejson.ListReceivedByLabelResult, error) {

	return c.ListReceivedByLabelAsync(minConf, includeEmpty,
		includeWatchOnly).Receive()
}

// GetReceivedByAddressAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetReceivedByAddress for the blocking version and more details.
func (c *Client) GetReceivedByAddressAsync(address string, minConf *int) FutureAmountResult {
	return c.sendCmd("getreceivedbyaddress", address, minConf)
}

// GetReceivedByAddress returns the total amount received by the specified
// address with at least minConf confirmations (1 when nil).
func (c *Client) GetReceivedByAddress(address string, minConf *int) (btcutil.Amount, error) {
	return c.GetReceivedByAddressAsync(address, minConf).Receive()
}

// ************************
// Wallet Locking Functions
// ************************

// EncryptWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See EncryptWallet for the blocking version and more details.
func (c *Client) EncryptWalletAsync(passphrase string) FutureVoidResult {
	return c.sendCmd("encryptwallet", passphrase)
}

// EncryptWallet encrypts the wallet with passphrase for the first time.
func (c *Client) EncryptWallet(passphrase string) error {
	return c.EncryptWalletAsync(passphrase).Receive()
}

// WalletLockAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See WalletLock for the blocking version and more details.
func (c *Client) WalletLockAsync() FutureVoidResult {
	return c.sendCmd("walletlock")
}

// WalletLock locks the wallet by removing the encryption key from memory.
//
// After calling this function, the WalletPassphrase function must be used to
// unlock the wallet prior to calling any other function which requires the
// wallet to be unlocked.
func (c *Client) WalletLock() error {
	return c.WalletLockAsync().Receive()
}

// WalletPassphraseAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See WalletPassphrase for the blocking version and more details.
func (c *Client) WalletPassphraseAsync(passphrase string, timeoutSecs int64) FutureVoidResult {
	return c.sendCmd("walletpassphrase", passphrase, timeoutSecs)
}

// WalletPassphrase unlocks the wallet by using the passphrase to derive the
// decryption key which is then stored in memory for the specified timeout
// (in seconds).
func (c *Client) WalletPassphrase(passphrase string, timeoutSecs int64) error {
	return c.WalletPassphraseAsync(passphrase, timeoutSecs).Receive()
}

// WalletPassphraseChangeAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See WalletPassphraseChange for the blocking version and more details.
func (c *Client) WalletPassphraseChangeAsync(old, new string) FutureVoidResult {
	return c.sendCmd("walletpassphrasechange", old, new)
}

// WalletPassphraseChange changes the wallet passphrase from the specified old
// to new passphrase.
func (c *Client) WalletPassphraseChange(old, new string) error {
	return c.WalletPassphraseChangeAsync(old, new).Receive()
}

// *************************
// Message Signing Functions
// *************************

// SignMessageAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See SignMessage for the blocking version and more details.
func (c *Client) SignMessageAsync(address, message string) FutureResult[string] {
	return c.sendCmd("signmessage", address, message)
}

// SignMessage signs a message with the private key of the specified address
// and returns the base64-encoded signature.
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) SignMessage(address, message string) (string, error) {
	return c.SignMessageAsync(address, message).Receive()
}

// ***********************
// Dump/Import Functions
// ***********************

// FutureDumpPrivKeyResult is a future promise to deliver the result of a
// DumpPrivKeyAsync RPC invocation (or an applicable error).
type FutureDumpPrivKeyResult chan *response

// Receive waits for the response promised by the future and returns the private
// key corresponding to the passed address encoded in the wallet import format
// (WIF)
func (r FutureDumpPrivKeyResult) Receive() (*btcutil.WIF, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal result as a string.
	var privKeyWIF string
	err = json.Unmarshal(res, &privKeyWIF)
	if err != nil {
		return nil, err
	}

	return btcutil.DecodeWIF(privKeyWIF)
}

// DumpPrivKeyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See DumpPrivKey for the blocking version and more details.
func (c *Client) DumpPrivKeyAsync(address string) FutureDumpPrivKeyResult {
	return c.sendCmd("dumpprivkey", address)
}

// DumpPrivKey gets the private key corresponding to the passed address encoded
// in the wallet import format (WIF).
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) DumpPrivKey(address string) (*btcutil.WIF, error) {
	return c.DumpPrivKeyAsync(address).Receive()
}

// DumpWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See DumpWallet for the blocking version and more details.
func (c *Client) DumpWalletAsync(filename string) FutureResult[*corejson.DumpWalletResult] {
	return c.sendCmd("dumpwallet", filename)
}

// DumpWallet dumps all wallet keys in a human-readable format to a server-side
// file.
//
// NOTE: This function requires to the wallet to be unlocked.  See the
// WalletPassphrase function for more details.
func (c *Client) DumpWallet(filename string) (*corejson.DumpWalletResult, error) {
	return c.DumpWalletAsync(filename).Receive()
}

// BackupWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See BackupWallet for the blocking version and more details.
func (c *Client) BackupWalletAsync(destination string) FutureVoidResult {
	return c.sendCmd("backupwallet", destination)
}

// BackupWallet safely copies current wallet file to destination, which can
// be a directory or a path with filename.
func (c *Client) BackupWallet(destination string) error {
	return c.BackupWalletAsync(destination).Receive()
}

// ImportAddressAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ImportAddress for the blocking version and more details.
func (c *Client) ImportAddressAsync(address string, label *string, rescan, p2sh *bool) FutureVoidResult {
	return c.sendCmd("importaddress", address, labelOrDefault(label),
		boolOrDefault(rescan, true), p2sh)
}

// ImportAddress imports the passed public address or hex-encoded script as
// watch-only.  The wallet is rescanned unless rescan is false.
func (c *Client) ImportAddress(address string, label *string, rescan, p2sh *bool) error {
	return c.ImportAddressAsync(address, label, rescan, p2sh).Receive()
}

// ImportMultiAsync returns an instance of a type that can be used to get the result
// of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ImportMulti for the blocking version and more details.
func (c *Client) ImportMultiAsync(requests []corejson.ImportMultiRequest, options *corejson.ImportMultiOptions) FutureResult[[]corejson.ImportMultiResult] {
	return c.sendCmd("importmulti", requests, options)
}

// ImportMulti imports addresses, scripts or keys in a single call, with a
// single rescan at the end.
func (c *Client) ImportMulti(requests []corejson.ImportMultiRequest, options *corejson.ImportMultiOptions) ([]corejson.ImportMultiResult, error) {
	return c.ImportMultiAsync(requests, options).Receive()
}

// ImportPrivKeyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ImportPrivKey for the blocking version and more details.
func (c *Client) ImportPrivKeyAsync(privKeyWIF *btcutil.WIF, label *string, rescan *bool) FutureVoidResult {
	if privKeyWIF == nil {
		return newFutureError(fmt.Errorf("%w: missing private key",
			ErrInvalidParam))
	}
	return c.sendCmd("importprivkey", privKeyWIF.String(),
		labelOrDefault(label), rescan)
}

// ImportPrivKey imports the passed private key which must be the wallet import
// format (WIF).
func (c *Client) ImportPrivKey(privKeyWIF *btcutil.WIF, label *string, rescan *bool) error {
	return c.ImportPrivKeyAsync(privKeyWIF, label, rescan).Receive()
}

// ImportPrunedFundsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See ImportPrunedFunds for the blocking version and more details.
func (c *Client) ImportPrunedFundsAsync(rawTxHex, txOutProof string) FutureVoidResult {
	return c.sendCmd("importprunedfunds", rawTxHex, txOutProof)
}

// ImportPrunedFunds imports a transaction paying the wallet, together with
// the proof of its inclusion, without rescanning.
func (c *Client) ImportPrunedFunds(rawTxHex, txOutProof string) error {
	return c.ImportPrunedFundsAsync(rawTxHex, txOutProof).Receive()
}

// ImportPubKeyAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See ImportPubKey for the blocking version and more details.
func (c *Client) ImportPubKeyAsync(pubKey string, label *string, rescan *bool) FutureVoidResult {
	return c.sendCmd("importpubkey", pubKey, labelOrDefault(label), rescan)
}

// ImportPubKey imports the passed hex-encoded public key as watch-only.
func (c *Client) ImportPubKey(pubKey string, label *string, rescan *bool) error {
	return c.ImportPubKeyAsync(pubKey, label, rescan).Receive()
}

// ImportWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ImportWallet for the blocking version and more details.
func (c *Client) ImportWalletAsync(filename string) FutureVoidResult {
	return c.sendCmd("importwallet", filename)
}

// ImportWallet imports keys from a wallet dump file created by DumpWallet.
func (c *Client) ImportWallet(filename string) error {
	return c.ImportWalletAsync(filename).Receive()
}

// RemovePrunedFundsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See RemovePrunedFunds for the blocking version and more details.
func (c *Client) RemovePrunedFundsAsync(txHash *chainhash.Hash) FutureVoidResult {
	return c.sendCmd("removeprunedfunds", txHash.String())
}

// RemovePrunedFunds deletes the transaction from the wallet.
func (c *Client) RemovePrunedFunds(txHash *chainhash.Hash) error {
	return c.RemovePrunedFundsAsync(txHash).Receive()
}

// ***********************
// Miscellaneous Functions
// ***********************

// AbortRescanAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See AbortRescan for the blocking version and more details.
func (c *Client) AbortRescanAsync() FutureResult[bool] {
	return c.sendCmd("abortrescan")
}

// AbortRescan stops the current wallet rescan and reports whether one was
// running.
func (c *Client) AbortRescan() (bool, error) {
	return c.AbortRescanAsync().Receive()
}

// GetBalanceAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See GetBalance for the blocking version and more details.
func (c *Client) GetBalanceAsync() FutureAmountResult {
	return c.sendCmd("getbalance", defaultAllLabels, 0, true)
}

// GetBalance returns the available balance of the wallet, watch-only
// addresses included.
func (c *Client) GetBalance() (btcutil.Amount, error) {
	return c.GetBalanceAsync().Receive()
}

// GetBalanceMinConfAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetBalanceMinConf for the blocking version and more details.
func (c *Client) GetBalanceMinConfAsync(minConfirms int, includeWatchOnly bool, avoidReuse *bool) FutureAmountResult {
	return c.sendCmd("getbalance", defaultAllLabels, minConfirms,
		includeWatchOnly, avoidReuse)
}

// GetBalanceMinConf returns the available balance of the wallet counting only
// outputs with at least minConfirms confirmations.
func (c *Client) GetBalanceMinConf(minConfirms int, includeWatchOnly bool, avoidReuse *bool) (btcutil.Amount, error) {
	return c.GetBalanceMinConfAsync(minConfirms, includeWatchOnly,
		avoidReuse).Receive()
}

// GetUnconfirmedBalanceAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetUnconfirmedBalance for the blocking version and more details.
func (c *Client) GetUnconfirmedBalanceAsync() FutureAmountResult {
	return c.sendCmd("getunconfirmedbalance")
}

// GetUnconfirmedBalance returns the unconfirmed balance of the wallet.
func (c *Client) GetUnconfirmedBalance() (btcutil.Amount, error) {
	return c.GetUnconfirmedBalanceAsync().Receive()
}

// GetWalletInfoAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See GetWalletInfo for the blocking version and more details.
func (c *Client) GetWalletInfoAsync() FutureResult[*corejson.GetWalletInfoResult] {
	return c.sendCmd("getwalletinfo")
}

// GetWalletInfo returns various wallet state info.
func (c *Client) GetWalletInfo() (*corejson.GetWalletInfoResult, error) {
	return c.GetWalletInfoAsync().Receive()
}

// KeyPoolRefillAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See KeyPoolRefill for the blocking version and more details.
func (c *Client) KeyPoolRefillAsync(newSize *uint) FutureVoidResult {
	return c.sendCmd("keypoolrefill", newSize)
}

// KeyPoolRefill fills the key pool as necessary to reach newSize keys, or the
// node's configured size when nil.
func (c *Client) KeyPoolRefill(newSize *uint) error {
	return c.KeyPoolRefillAsync(newSize).Receive()
}

// CreateWalletOpt defines a functional-opt to be used with CreateWallet
// method.
type CreateWalletOpt func(*createWalletOptions)

// createWalletOptions houses the optional parameters of createwallet.
type createWalletOptions struct {
	disablePrivateKeys bool
	blank              bool
	passphrase         string
	avoidReuse         bool
}

// WithCreateWalletDisablePrivateKeys disables the possibility of private keys
// to be used with a wallet created using the CreateWallet method. Using this
// option will make the wallet watch-only.
func WithCreateWalletDisablePrivateKeys() CreateWalletOpt {
	return func(o *createWalletOptions) {
		o.disablePrivateKeys = true
	}
}

// WithCreateWalletBlank specifies creation of a blank wallet.
func WithCreateWalletBlank() CreateWalletOpt {
	return func(o *createWalletOptions) {
		o.blank = true
	}
}

// WithCreateWalletPassphrase specifies a passphrase to encrypt the wallet
// with.
func WithCreateWalletPassphrase(value string) CreateWalletOpt {
	return func(o *createWalletOptions) {
		o.passphrase = value
	}
}

// WithCreateWalletAvoidReuse specifies creation of a wallet that keeps track
// of coin reuse, and treats dirty and clean coins differently with privacy
// considerations leading to different balances.
func WithCreateWalletAvoidReuse() CreateWalletOpt {
	return func(o *createWalletOptions) {
		o.avoidReuse = true
	}
}

// CreateWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See CreateWallet for the blocking version and more details.
func (c *Client) CreateWalletAsync(name string, opts ...CreateWalletOpt) FutureResult[*corejson.CreateWalletResult] {
	options := &createWalletOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return c.sendCmd("createwallet", name, options.disablePrivateKeys,
		options.blank, options.passphrase, options.avoidReuse)
}

// CreateWallet creates a new wallet account, with the possibility to use
// private keys.
//
// Optional parameters can be specified using functional-options pattern. The
// following functions are available:
//   - WithCreateWalletDisablePrivateKeys
//   - WithCreateWalletBlank
//   - WithCreateWalletPassphrase
//   - WithCreateWalletAvoidReuse
//
// The result carries a warning when the wallet is created unencrypted.
func (c *Client) CreateWallet(name string, opts ...CreateWalletOpt) (*corejson.CreateWalletResult, error) {
	return c.CreateWalletAsync(name, opts...).Receive()
}

// ListWalletsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See ListWallets for the blocking version and more details.
func (c *Client) ListWalletsAsync() FutureResult[[]string] {
	return c.sendCmd("listwallets")
}

// ListWallets returns the names of the currently loaded wallets.
func (c *Client) ListWallets() ([]string, error) {
	return c.ListWalletsAsync().Receive()
}

// LoadWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See LoadWallet for the blocking version and more details.
func (c *Client) LoadWalletAsync(walletName string) FutureResult[*corejson.LoadWalletResult] {
	return c.sendCmd("loadwallet", walletName)
}

// LoadWallet loads a wallet from a wallet file or directory.
func (c *Client) LoadWallet(walletName string) (*corejson.LoadWalletResult, error) {
	return c.LoadWalletAsync(walletName).Receive()
}

// UnloadWalletAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on the
// returned instance.
//
// See UnloadWallet for the blocking version and more details.
func (c *Client) UnloadWalletAsync(walletName *string) FutureResult[*corejson.UnloadWalletResult] {
	return c.sendCmd("unloadwallet", walletName)
}

// UnloadWallet unloads the wallet with the given name.  The name may be nil
// on a client obtained from WalletClient, in which case that wallet is
// unloaded.
func (c *Client) UnloadWallet(walletName *string) (*corejson.UnloadWalletResult, error) {
	return c.UnloadWalletAsync(walletName).Receive()
}
