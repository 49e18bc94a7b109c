// Copyright (c) 2020 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson_test

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/corerpc/corejson"
	"github.com/stretchr/testify/require"
)

// TestRawTxOutputsMarshal ensures outputs are sent as a single object with
// amounts in BTC.
func TestRawTxOutputsMarshal(t *testing.T) {
	t.Parallel()

	outputs := corejson.RawTxOutputs{
		Amounts: map[string]btcutil.Amount{
			"bcrt1qexample": btcutil.Amount(150000000),
		},
		Data: "deadbeef",
	}
	got, err := json.Marshal(outputs)
	require.NoError(t, err)
	require.JSONEq(t, `{"bcrt1qexample":1.5,"data":"deadbeef"}`, string(got))

	got, err = json.Marshal(corejson.RawTxOutputs{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(got))
}

// TestImportMultiRequestMarshal ensures the two script forms and the two
// timestamp forms are encoded as importmulti accepts them.
func TestImportMultiRequestMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  corejson.ImportMultiRequest
		want string
	}{
		{
			name: "address now",
			req: corejson.ImportMultiRequest{
				ScriptPubKey: corejson.ImportMultiScriptPubKey{
					Address: "bcrt1qexample",
				},
				Timestamp: corejson.ImportMultiTimestamp{Now: true},
				WatchOnly: corejson.Bool(true),
			},
			want: `{"scriptPubKey":{"address":"bcrt1qexample"},"timestamp":"now","watchonly":true}`,
		},
		{
			name: "script at time",
			req: corejson.ImportMultiRequest{
				ScriptPubKey: corejson.ImportMultiScriptPubKey{
					Script: "0014abcd",
				},
				Timestamp: corejson.ImportMultiTimestamp{Unix: 1600000000},
				Label:     corejson.String("cold"),
			},
			want: `{"scriptPubKey":"0014abcd","timestamp":1600000000,"label":"cold"}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(test.req)
			require.NoError(t, err)
			require.JSONEq(t, test.want, string(got))
		})
	}
}

// TestOptionsOmitUnset ensures unset option fields are left to the node.
func TestOptionsOmitUnset(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(corejson.BumpFeeOptions{
		ConfTarget: corejson.Int(6),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"conf_target":6}`, string(got))

	got, err = json.Marshal(corejson.FundRawTransactionOptions{
		ChangeType:   corejson.AddressTypePtr(corejson.AddressTypeBech32),
		EstimateMode: corejson.FeeEstimateModePtr(corejson.EstimateModeConservative),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"change_type":"bech32","estimate_mode":"CONSERVATIVE"}`,
		string(got))
}
