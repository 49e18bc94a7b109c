//go:build rpctest
// +build rpctest

package regtest

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/corerpc/corejson"
	"github.com/btcsuite/corerpc/rpcclient"
	"github.com/stretchr/testify/require"
)

const unencryptedNotice = "wallet will not be encrypted"

// warnings joins the legacy and the current warning fields of a result.
func warnings(warning string, list []string) string {
	return strings.Join(append([]string{warning}, list...), "\n")
}

// newWallet creates a wallet that is unloaded when the test ends.
func newWallet(t *testing.T, name string,
	opts ...rpcclient.CreateWalletOpt) (*rpcclient.Client, *corejson.CreateWalletResult) {

	t.Helper()

	res, err := node.Client().CreateWallet(name, opts...)
	require.NoError(t, err)
	require.Equal(t, name, res.Name)

	t.Cleanup(func() {
		_, err := node.Client().UnloadWallet(&name)
		require.NoError(t, err)
	})

	return node.Client().WalletClient(name), res
}

// TestNewAddress checks that the wallet hands out regtest addresses.
func TestNewAddress(t *testing.T) {
	addr, err := miner.GetNewAddress(nil, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "bcrt"), addr)

	decoded, err := btcutil.DecodeAddress(addr,
		&chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.True(t, decoded.IsForNet(&chaincfg.RegressionNetParams))

	info, err := miner.GetAddressInfo(addr)
	require.NoError(t, err)
	require.True(t, info.IsMine)

	valid, err := miner.ValidateAddress(addr)
	require.NoError(t, err)
	require.True(t, valid.IsValid)
}

// TestCreateWalletWarning checks the notice about unencrypted wallets.
func TestCreateWalletWarning(t *testing.T) {
	_, plain := newWallet(t, "plain")
	require.Contains(t, warnings(plain.Warning, plain.Warnings),
		unencryptedNotice)

	_, encrypted := newWallet(t, "encrypted",
		rpcclient.WithCreateWalletPassphrase("secret"))
	require.Empty(t, encrypted.Warning)
	require.NotContains(t, warnings(encrypted.Warning,
		encrypted.Warnings), unencryptedNotice)

	wallets, err := node.Client().ListWallets()
	require.NoError(t, err)
	require.Subset(t, wallets, []string{minerWalletName, "plain",
		"encrypted"})

	_, err = node.Client().LoadWallet("plain")
	require.True(t, corejson.IsRPCError(err,
		corejson.ErrRPCWalletAlreadyLoaded), "got %v", err)
}

// TestLockUnspent locks an output and then unlocks every locked output.
func TestLockUnspent(t *testing.T) {
	unspent, err := miner.ListUnspent(nil, nil, nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, unspent)

	txHash, err := chainhash.NewHashFromStr(unspent[0].TxID)
	require.NoError(t, err)
	op := wire.NewOutPoint(txHash, unspent[0].Vout)

	require.NoError(t, miner.LockUnspent(false, []*wire.OutPoint{op}))

	locked, err := miner.ListLockUnspent()
	require.NoError(t, err)
	require.Equal(t, []*wire.OutPoint{op}, locked)

	require.NoError(t, miner.LockUnspent(true, nil))

	locked, err = miner.ListLockUnspent()
	require.NoError(t, err)
	require.Empty(t, locked)
}

// TestSendToAddress moves coins from the miner to a fresh wallet.
func TestSendToAddress(t *testing.T) {
	receiver, _ := newWallet(t, "receiver")

	addr, err := receiver.GetNewAddress(nil, nil)
	require.NoError(t, err)

	txHash, err := miner.SendToAddress(addr, btcutil.SatoshiPerBitcoin,
		rpcclient.WithComment("rent", "landlord"),
		rpcclient.WithReplaceable())
	require.NoError(t, err)

	mempool, err := node.Client().GetRawMempool()
	require.NoError(t, err)
	require.Contains(t, mempool, txHash)

	unconfirmed, err := receiver.GetUnconfirmedBalance()
	require.NoError(t, err)
	require.Equal(t, btcutil.Amount(btcutil.SatoshiPerBitcoin), unconfirmed)

	_, err = miner.GenerateToAddress(1, minerAddr, nil)
	require.NoError(t, err)

	balance, err := receiver.GetBalance()
	require.NoError(t, err)
	require.Equal(t, btcutil.Amount(btcutil.SatoshiPerBitcoin), balance)

	received, err := receiver.GetReceivedByAddress(addr, nil)
	require.NoError(t, err)
	require.Equal(t, balance, received)

	tx, err := miner.GetTransaction(txHash)
	require.NoError(t, err)
	require.Equal(t, txHash.String(), tx.TxID)
	require.EqualValues(t, 1, tx.Confirmations)
	require.Equal(t, "rent", tx.Comment)
	require.Equal(t, "landlord", tx.To)

	txs, err := receiver.ListTransactions(nil, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "receive", txs[0].Category)
}

// TestSignMessage signs with a legacy address and verifies the signature.
func TestSignMessage(t *testing.T) {
	legacy := corejson.AddressTypeLegacy
	addr, err := miner.GetNewAddress(nil, &legacy)
	require.NoError(t, err)

	const message = "corerpc"
	signature, err := miner.SignMessage(addr, message)
	require.NoError(t, err)

	valid, err := node.Client().VerifyMessage(addr, signature, message)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = node.Client().VerifyMessage(addr, signature, "other")
	require.NoError(t, err)
	require.False(t, valid)
}

// TestWalletInfo checks the wallet summary of the miner.
func TestWalletInfo(t *testing.T) {
	info, err := miner.GetWalletInfo()
	require.NoError(t, err)
	require.Equal(t, minerWalletName, info.WalletName)
	require.Positive(t, info.Balance)
}
