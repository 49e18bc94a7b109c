package rpcclient

import (
	"net/http"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/corerpc/corejson"
	"github.com/stretchr/testify/require"
)

// TestWalletMethods checks the requests and results of the wallet calls.
func TestWalletMethods(t *testing.T) {
	t.Parallel()

	txHash := mustHash(t, txHashStr)

	runMethodCases(t, []methodCase{
		{
			name: "createwallet defaults",
			call: func(c *Client) (interface{}, error) {
				return c.CreateWallet("alice")
			},
			result: `{"name":"alice","warning":"Empty string given as ` +
				`passphrase, wallet will not be encrypted."}`,
			method: "createwallet",
			params: `["alice",false,false,"",false]`,
			check: func(t *testing.T, res interface{}) {
				created := res.(*corejson.CreateWalletResult)
				require.Equal(t, "alice", created.Name)
				require.Equal(t, "Empty string given as passphrase, "+
					"wallet will not be encrypted.", created.Warning)
			},
		},
		{
			name: "createwallet with options",
			call: func(c *Client) (interface{}, error) {
				return c.CreateWallet("bob",
					WithCreateWalletDisablePrivateKeys(),
					WithCreateWalletBlank(),
					WithCreateWalletPassphrase("secret"),
					WithCreateWalletAvoidReuse(),
				)
			},
			result: `{"name":"bob","warning":""}`,
			method: "createwallet",
			params: `["bob",true,true,"secret",true]`,
			check: func(t *testing.T, res interface{}) {
				require.Empty(t, res.(*corejson.CreateWalletResult).Warning)
			},
		},
		{
			name: "loadwallet",
			call: func(c *Client) (interface{}, error) {
				return c.LoadWallet("alice")
			},
			result: `{"name":"alice","warning":""}`,
			method: "loadwallet",
			params: `["alice"]`,
		},
		{
			name: "unloadwallet current",
			call: func(c *Client) (interface{}, error) {
				return c.UnloadWallet(nil)
			},
			result: `{"warning":""}`,
			method: "unloadwallet",
			params: `[]`,
		},
		{
			name: "listwallets",
			call: func(c *Client) (interface{}, error) {
				return c.ListWallets()
			},
			result: `["","alice"]`,
			method: "listwallets",
			params: `[]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, []string{"", "alice"}, res)
			},
		},
		{
			name: "getbalance",
			call: func(c *Client) (interface{}, error) {
				return c.GetBalance()
			},
			result: `1.5`,
			method: "getbalance",
			params: `["*",0,true]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, btcutil.Amount(150000000), res)
			},
		},
		{
			name: "getbalance minconf",
			call: func(c *Client) (interface{}, error) {
				return c.GetBalanceMinConf(6, false, nil)
			},
			result: `0.00000001`,
			method: "getbalance",
			params: `["*",6,false]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, btcutil.Amount(1), res)
			},
		},
		{
			name: "getnewaddress",
			call: func(c *Client) (interface{}, error) {
				return c.GetNewAddress(nil, corejson.AddressTypePtr(
					corejson.AddressTypeBech32))
			},
			result: `"bcrt1qaddr"`,
			method: "getnewaddress",
			params: `["","bech32"]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, "bcrt1qaddr", res)
			},
		},
		{
			name: "addmultisigaddress",
			call: func(c *Client) (interface{}, error) {
				return c.AddMultisigAddress(1, []string{"02aa", "02bb"},
					nil, nil)
			},
			result: `{"address":"2Maddr","redeemScript":"5121"}`,
			method: "addmultisigaddress",
			params: `[1,["02aa","02bb"],""]`,
		},
		{
			name: "gettransaction",
			call: func(c *Client) (interface{}, error) {
				return c.GetTransaction(txHash)
			},
			result: `{"amount":-0.1,"confirmations":2,` +
				`"txid":"` + txHashStr + `","details":[]}`,
			method: "gettransaction",
			params: `["` + txHashStr + `"]`,
			check: func(t *testing.T, res interface{}) {
				tx := res.(*corejson.GetTransactionResult)
				require.Equal(t, txHashStr, tx.TxID)
				require.Equal(t, -0.1, tx.Amount)
			},
		},
		{
			name: "gettransaction watch only",
			call: func(c *Client) (interface{}, error) {
				return c.GetTransactionWatchOnly(txHash, true, false)
			},
			result: `{"txid":"` + txHashStr + `"}`,
			method: "gettransaction",
			params: `["` + txHashStr + `",true,false]`,
		},
		{
			name: "listtransactions",
			call: func(c *Client) (interface{}, error) {
				return c.ListTransactions(corejson.String("rent"),
					corejson.Int(5), nil, corejson.Bool(true))
			},
			result: `[]`,
			method: "listtransactions",
			params: `["rent",5,0,true]`,
		},
		{
			name: "listsinceblock from genesis",
			call: func(c *Client) (interface{}, error) {
				return c.ListSinceBlock(nil, nil, nil, nil)
			},
			result: `{"transactions":[],"lastblock":"` + genesisHashStr + `"}`,
			method: "listsinceblock",
			params: `["",1,false]`,
		},
		{
			name: "listreceivedbyaddress",
			call: func(c *Client) (interface{}, error) {
				return c.ListReceivedByAddress(nil, corejson.Bool(true),
					nil, nil)
			},
			result: `[]`,
			method: "listreceivedbyaddress",
			params: `[1,true]`,
		},
		{
			name: "listreceivedbyaddress filtered",
			call: func(c *Client) (interface{}, error) {
				return c.ListReceivedByAddress(nil, nil, nil,
					corejson.String("bcrt1qaddr"))
			},
			result: `[]`,
			method: "listreceivedbyaddress",
			params: `[1,false,false,"bcrt1qaddr"]`,
		},
		{
			name: "listreceivedbyaddress filtered watch only",
			call: func(c *Client) (interface{}, error) {
				return c.ListReceivedByAddress(corejson.Int(0), nil,
					corejson.Bool(true), corejson.String("bcrt1qaddr"))
			},
			result: `[]`,
			method: "listreceivedbyaddress",
			params: `[0,false,true,"bcrt1qaddr"]`,
		},
		{
			name: "listreceivedbylabel",
			call: func(c *Client) (interface{}, error) {
				return c.ListReceivedByLabel(nil, nil, nil)
			},
			result: `[]`,
			method: "listreceivedbylabel",
			params: `[1,false]`,
		},
		{
			name: "listaddressgroupings",
			call: func(c *Client) (interface{}, error) {
				return c.ListAddressGroupings()
			},
			result: `[[["bcrt1qone",0.5,"savings"],["bcrt1qtwo",0.25]]]`,
			method: "listaddressgroupings",
			params: `[]`,
			check: func(t *testing.T, res interface{}) {
				groups := res.([][]corejson.AddressGrouping)
				require.Len(t, groups, 1)
				require.Len(t, groups[0], 2)
				require.Equal(t, "savings", groups[0][0].Label)
				require.Equal(t, 0.25, groups[0][1].Amount)
				require.Empty(t, groups[0][1].Label)
			},
		},
		{
			name: "lockunspent all",
			call: func(c *Client) (interface{}, error) {
				return nil, c.LockUnspent(true, nil)
			},
			result: `true`,
			method: "lockunspent",
			params: `[true]`,
		},
		{
			name: "lockunspent outpoints",
			call: func(c *Client) (interface{}, error) {
				ops := []*wire.OutPoint{wire.NewOutPoint(txHash, 1)}
				return nil, c.LockUnspent(false, ops)
			},
			result: `true`,
			method: "lockunspent",
			params: `[false,[{"txid":"` + txHashStr + `","vout":1}]]`,
		},
		{
			name: "listlockunspent",
			call: func(c *Client) (interface{}, error) {
				return c.ListLockUnspent()
			},
			result: `[{"txid":"` + txHashStr + `","vout":3}]`,
			method: "listlockunspent",
			params: `[]`,
			check: func(t *testing.T, res interface{}) {
				ops := res.([]*wire.OutPoint)
				require.Len(t, ops, 1)
				require.Equal(t, *wire.NewOutPoint(txHash, 3), *ops[0])
			},
		},
		{
			name: "sendtoaddress defaults",
			call: func(c *Client) (interface{}, error) {
				return c.SendToAddress("bcrt1qaddr", 100000)
			},
			result: `"` + txHashStr + `"`,
			method: "sendtoaddress",
			params: `["bcrt1qaddr",0.001,"","",false,false,10,"UNSET"]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, txHash, res)
			},
		},
		{
			name: "sendtoaddress with options",
			call: func(c *Client) (interface{}, error) {
				return c.SendToAddress("bcrt1qaddr", btcutil.SatoshiPerBitcoin,
					WithComment("rent", "landlord"),
					WithSubtractFee(),
					WithReplaceable(),
					WithConfTarget(2, corejson.EstimateModeEconomical),
					WithAvoidReuse(false),
				)
			},
			result: `"` + txHashStr + `"`,
			method: "sendtoaddress",
			params: `["bcrt1qaddr",1,"rent","landlord",true,true,2,` +
				`"ECONOMICAL",false]`,
		},
		{
			name: "sendmany",
			call: func(c *Client) (interface{}, error) {
				return c.SendMany(map[string]btcutil.Amount{
					"bcrt1qone": 50000000,
				}, WithSubtractFee("bcrt1qone"))
			},
			result: `"` + txHashStr + `"`,
			method: "sendmany",
			params: `["",{"bcrt1qone":0.5},0,"",["bcrt1qone"],false,10,` +
				`"UNSET"]`,
		},
		{
			name: "settxfee",
			call: func(c *Client) (interface{}, error) {
				return c.SetTxFee(1000)
			},
			result: `true`,
			method: "settxfee",
			params: `[0.00001]`,
		},
		{
			name: "importaddress defaults",
			call: func(c *Client) (interface{}, error) {
				return nil, c.ImportAddress("bcrt1qaddr", nil, nil, nil)
			},
			result: `null`,
			method: "importaddress",
			params: `["bcrt1qaddr","",true]`,
		},
		{
			name: "importpubkey without rescan",
			call: func(c *Client) (interface{}, error) {
				return nil, c.ImportPubKey("02aa", corejson.String("cold"),
					corejson.Bool(false))
			},
			result: `null`,
			method: "importpubkey",
			params: `["02aa","cold",false]`,
		},
		{
			name: "walletpassphrase",
			call: func(c *Client) (interface{}, error) {
				return nil, c.WalletPassphrase("secret", 60)
			},
			result: `null`,
			method: "walletpassphrase",
			params: `["secret",60]`,
		},
		{
			name: "keypoolrefill default size",
			call: func(c *Client) (interface{}, error) {
				return nil, c.KeyPoolRefill(nil)
			},
			result: `null`,
			method: "keypoolrefill",
			params: `[]`,
		},
		{
			name: "signrawtransactionwithwallet",
			call: func(c *Client) (interface{}, error) {
				return c.SignRawTransactionWithWallet("0200", nil,
					corejson.SigHashTypePtr(corejson.SigHashAll))
			},
			result: `{"hex":"0200","complete":true}`,
			method: "signrawtransactionwithwallet",
			params: `["0200",[],"ALL"]`,
			check: func(t *testing.T, res interface{}) {
				signed := res.(*corejson.SignRawTransactionResult)
				require.True(t, signed.Complete)
			},
		},
	})
}

// TestDumpPrivKey ensures the dumped key is decoded from its WIF encoding.
func TestDumpPrivKey(t *testing.T) {
	t.Parallel()

	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	wif, err := btcutil.NewWIF(privKey, &chaincfg.RegressionNetParams, true)
	require.NoError(t, err)

	node := newFakeNode(t, result(t, `"`+wif.String()+`"`))
	client := newTestClient(t, node)

	dumped, err := client.DumpPrivKey("bcrt1qaddr")
	require.NoError(t, err)
	require.Equal(t, wif.PrivKey.Serialize(), dumped.PrivKey.Serialize())
	require.True(t, dumped.CompressPubKey)
	require.True(t, dumped.IsForNet(&chaincfg.RegressionNetParams))

	rec := node.lastRequest(t)
	require.Equal(t, "dumpprivkey", rec.req.Method)
	require.JSONEq(t, `["bcrt1qaddr"]`, rec.paramsJSON(t))

	// The key is sent back to the node in its WIF encoding.
	_, err = client.SignMessageWithPrivKey(dumped, "hello")
	require.NoError(t, err)
	rec = node.lastRequest(t)
	require.Equal(t, "signmessagewithprivkey", rec.req.Method)
	require.JSONEq(t, `["`+wif.String()+`","hello"]`, rec.paramsJSON(t))
}

// TestMissingPrivKey ensures a nil key fails locally without a request.
func TestMissingPrivKey(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, result(t, `null`))
	client := newTestClient(t, node)

	err := client.ImportPrivKey(nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	require.Equal(t, ErrKindNone, KindOf(err))

	_, err = client.SignMessageWithPrivKey(nil, "hello")
	require.ErrorIs(t, err, ErrInvalidParam)

	node.mtx.Lock()
	defer node.mtx.Unlock()
	require.Empty(t, node.requests)
}

// TestWalletNotFound ensures the node's wallet error reaches the caller.
func TestWalletNotFound(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, rpcFailure(t, http.StatusInternalServerError,
		corejson.ErrRPCWalletNotFound,
		"Requested wallet does not exist or is not loaded"))
	client := newTestClient(t, node)

	_, err := client.WalletClient("missing").GetBalance()
	require.Error(t, err)
	require.Equal(t, ErrKindRPC, KindOf(err))
	require.True(t, corejson.IsRPCError(err, corejson.ErrRPCWalletNotFound))
	require.ErrorIs(t, err, corejson.NewRPCError(
		corejson.ErrRPCWalletNotFound,
		"Requested wallet does not exist or is not loaded",
	))
	require.Equal(t, "/wallet/missing", node.lastRequest(t).path)
}

// TestRawTransactionMethods checks the requests of the raw transaction and
// utility calls.
func TestRawTransactionMethods(t *testing.T) {
	t.Parallel()

	txHash := mustHash(t, txHashStr)

	runMethodCases(t, []methodCase{
		{
			name: "createrawtransaction",
			call: func(c *Client) (interface{}, error) {
				inputs := []corejson.TransactionInput{
					{TxID: txHashStr, Vout: 0},
				}
				outputs := corejson.RawTxOutputs{
					Amounts: map[string]btcutil.Amount{
						"bcrt1qaddr": 12345678,
					},
					Data: "beef",
				}
				return c.CreateRawTransaction(inputs, outputs, nil, nil)
			},
			result: `"0200"`,
			method: "createrawtransaction",
			params: `[[{"txid":"` + txHashStr + `","vout":0}],` +
				`{"bcrt1qaddr":0.12345678,"data":"beef"},0]`,
		},
		{
			name: "getrawtransaction",
			call: func(c *Client) (interface{}, error) {
				return c.GetRawTransaction(txHash)
			},
			result: `"0200"`,
			method: "getrawtransaction",
			params: `["` + txHashStr + `",false]`,
		},
		{
			name: "sendrawtransaction",
			call: func(c *Client) (interface{}, error) {
				return c.SendRawTransaction("0200", nil)
			},
			result: `"` + txHashStr + `"`,
			method: "sendrawtransaction",
			params: `["0200"]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, txHash, res)
			},
		},
		{
			name: "signrawtransactionwithkey",
			call: func(c *Client) (interface{}, error) {
				return c.SignRawTransactionWithKey("0200",
					[]string{"cWIF"}, nil, corejson.SigHashTypePtr(
						corejson.SigHashSingle))
			},
			result: `{"hex":"0200","complete":false,"errors":[]}`,
			method: "signrawtransactionwithkey",
			params: `["0200",["cWIF"],[],"SINGLE"]`,
		},
		{
			name: "createmultisig",
			call: func(c *Client) (interface{}, error) {
				return c.CreateMultisig(2, []string{"02aa", "02bb"}, nil)
			},
			result: `{"address":"2Maddr","redeemScript":"5221"}`,
			method: "createmultisig",
			params: `[2,["02aa","02bb"]]`,
		},
		{
			name: "estimatesmartfee",
			call: func(c *Client) (interface{}, error) {
				return c.EstimateSmartFee(6, corejson.FeeEstimateModePtr(
					corejson.EstimateModeConservative))
			},
			result: `{"feerate":0.0001,"blocks":6}`,
			method: "estimatesmartfee",
			params: `[6,"CONSERVATIVE"]`,
		},
		{
			name: "verifymessage",
			call: func(c *Client) (interface{}, error) {
				return c.VerifyMessage("1addr", "c2ln", "hello")
			},
			result: `true`,
			method: "verifymessage",
			params: `["1addr","c2ln","hello"]`,
			check: func(t *testing.T, res interface{}) {
				require.Equal(t, true, res)
			},
		},
	})
}
