// Copyright (c) 2020 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetAddressInfoResultLabels ensures both forms of the labels field are
// decoded.
func TestGetAddressInfoResultLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  string
		want    GetAddressInfoResult
		wantErr bool
	}{
		{
			name:   "no labels",
			result: `{"address":"bcrt1qexample","ismine":true}`,
			want: GetAddressInfoResult{
				embeddedAddressInfo: embeddedAddressInfo{
					Address: "bcrt1qexample",
				},
				IsMine: true,
				Labels: []AddressLabel{},
			},
		},
		{
			name:   "label names",
			result: `{"address":"bcrt1qexample","labels":["savings"]}`,
			want: GetAddressInfoResult{
				embeddedAddressInfo: embeddedAddressInfo{
					Address: "bcrt1qexample",
				},
				Labels: []AddressLabel{{Name: "savings"}},
			},
		},
		{
			name:   "label objects",
			result: `{"labels":[{"name":"savings","purpose":"receive"}]}`,
			want: GetAddressInfoResult{
				Labels: []AddressLabel{
					{Name: "savings", Purpose: "receive"},
				},
			},
		},
		{
			name:   "embedded",
			result: `{"embedded":{"address":"2Nexample","isscript":true}}`,
			want: GetAddressInfoResult{
				Embedded: &embeddedAddressInfo{
					Address:  "2Nexample",
					IsScript: true,
				},
				Labels: []AddressLabel{},
			},
		},
		{
			name:    "invalid label",
			result:  `{"labels":[5]}`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var out GetAddressInfoResult
			err := json.Unmarshal([]byte(test.result), &out)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, out)
		})
	}
}

// TestWalletScanning ensures the scanning field of getwalletinfo decodes from
// both forms the node reports.
func TestWalletScanning(t *testing.T) {
	t.Parallel()

	var idle GetWalletInfoResult
	err := json.Unmarshal([]byte(`{"walletname":"w","scanning":false}`), &idle)
	require.NoError(t, err)
	require.Equal(t, "w", idle.WalletName)
	require.False(t, idle.Scanning.Scanning)

	var busy GetWalletInfoResult
	err = json.Unmarshal([]byte(`{"scanning":{"duration":12,"progress":0.5}}`), &busy)
	require.NoError(t, err)
	require.Equal(t, WalletScanning{Scanning: true, Duration: 12, Progress: 0.5},
		busy.Scanning)

	out, err := json.Marshal(busy.Scanning)
	require.NoError(t, err)
	require.JSONEq(t, `{"duration":12,"progress":0.5}`, string(out))

	out, err = json.Marshal(idle.Scanning)
	require.NoError(t, err)
	require.Equal(t, "false", string(out))

	err = json.Unmarshal([]byte(`{"scanning":"yes"}`), &busy)
	require.Error(t, err)
}

// TestAddressGrouping ensures the positional form of listaddressgroupings
// entries is decoded.
func TestAddressGrouping(t *testing.T) {
	t.Parallel()

	var groups [][]AddressGrouping
	err := json.Unmarshal([]byte(`[[["bcrt1qa",0.5,"savings"],["bcrt1qb",0]]]`), &groups)
	require.NoError(t, err)
	require.Equal(t, [][]AddressGrouping{{
		{Address: "bcrt1qa", Amount: 0.5, Label: "savings"},
		{Address: "bcrt1qb"},
	}}, groups)

	err = json.Unmarshal([]byte(`[["bcrt1qa"]]`), &groups)
	require.Error(t, err)
}
