// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/stretchr/testify/require"
)

// TestIsValidIDType ensures the IsValidIDType function behaves as expected.
func TestIsValidIDType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      interface{}
		isValid bool
	}{
		{"int", int(1), true},
		{"int8", int8(1), true},
		{"int16", int16(1), true},
		{"int32", int32(1), true},
		{"int64", int64(1), true},
		{"uint", uint(1), true},
		{"uint8", uint8(1), true},
		{"uint16", uint16(1), true},
		{"uint32", uint32(1), true},
		{"uint64", uint64(1), true},
		{"string", "1", true},
		{"nil", nil, true},
		{"float32", float32(1), true},
		{"float64", float64(1), true},
		{"bool", true, false},
		{"chan int", make(chan int), false},
		{"complex64", complex64(1), false},
		{"complex128", complex128(1), false},
		{"func", func() {}, false},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if corejson.IsValidIDType(test.id) != test.isValid {
			t.Errorf("Test #%d (%s) valid mismatch - got %v, "+
				"want %v", i, test.name, !test.isValid,
				test.isValid)
			continue
		}
	}
}

// TestMarshalRequest ensures the wire form of a request is the envelope the
// node expects.
func TestMarshalRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		params []interface{}
		want   string
	}{
		{
			name:   "no params",
			method: "getblockcount",
			params: nil,
			want:   `{"jsonrpc":"2.0","id":1,"method":"getblockcount","params":[]}`,
		},
		{
			name:   "scalar params",
			method: "getbalance",
			params: []interface{}{"*", 0, true},
			want:   `{"jsonrpc":"2.0","id":1,"method":"getbalance","params":["*",0,true]}`,
		},
		{
			name:   "structured param",
			method: "lockunspent",
			params: []interface{}{false, []corejson.OutPoint{{TxID: "ab", Vout: 1}}},
			want:   `{"jsonrpc":"2.0","id":1,"method":"lockunspent","params":[false,[{"txid":"ab","vout":1}]]}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := corejson.MarshalRequest(corejson.RpcVersion2, 1,
				test.method, test.params)
			require.NoError(t, err)
			require.JSONEq(t, test.want, string(got))
		})
	}
}

// TestNewRequestErrors ensures invalid envelopes are rejected with the
// expected error code.
func TestNewRequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version corejson.RPCVersion
		id      interface{}
		params  []interface{}
		code    corejson.ErrorCode
	}{
		{
			name:    "invalid version",
			version: "3.0",
			id:      1,
			code:    corejson.ErrInvalidType,
		},
		{
			name:    "version 1",
			version: "1.0",
			id:      1,
			code:    corejson.ErrInvalidType,
		},
		{
			name:    "invalid id",
			version: corejson.RpcVersion2,
			id:      true,
			code:    corejson.ErrInvalidType,
		},
		{
			name:    "unmarshallable param",
			version: corejson.RpcVersion2,
			id:      1,
			params:  []interface{}{make(chan int)},
			code:    corejson.ErrInvalidParam,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := corejson.NewRequest(test.version, test.id,
				"getblock", test.params)
			var jerr corejson.Error
			require.True(t, errors.As(err, &jerr))
			require.Equal(t, test.code, jerr.ErrorCode)
		})
	}
}

// TestMarshalResponse ensures the MarshalResponse function works as expected.
func TestMarshalResponse(t *testing.T) {
	t.Parallel()

	testID := 1
	tests := []struct {
		name     string
		result   interface{}
		jsonErr  *corejson.RPCError
		expected []byte
	}{
		{
			name:     "ordinary bool result with no error",
			result:   true,
			jsonErr:  nil,
			expected: []byte(`{"jsonrpc":"2.0","result":true,"error":null,"id":1}`),
		},
		{
			name:   "result with error",
			result: nil,
			jsonErr: func() *corejson.RPCError {
				return corejson.NewRPCError(corejson.ErrRPCWalletNotFound,
					"Requested wallet does not exist or is not loaded")
			}(),
			expected: []byte(`{"jsonrpc":"2.0","result":null,"error":{"code":-18,"message":"Requested wallet does not exist or is not loaded"},"id":1}`),
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		marshalled, err := corejson.MarshalResponse(corejson.RpcVersion2,
			testID, test.result, test.jsonErr)
		if err != nil {
			t.Errorf("Test #%d (%s) unexpected error: %v", i,
				test.name, err)
			continue
		}

		if string(marshalled) != string(test.expected) {
			t.Errorf("Test #%d (%s) mismatched result - got %s, "+
				"want %s", i, test.name, marshalled,
				test.expected)
		}
	}
}

// TestRPCErrorEquality ensures node errors compare equal exactly when both the
// code and message match.
func TestRPCErrorEquality(t *testing.T) {
	t.Parallel()

	const msg = "Requested wallet does not exist or is not loaded"
	a := corejson.RPCError{Code: corejson.ErrRPCWalletNotFound, Message: msg}
	b := corejson.RPCError{Code: corejson.ErrRPCWalletNotFound, Message: msg}
	require.True(t, a == b)
	require.True(t, errors.Is(&a, &b))
	require.True(t, errors.Is(&a, b))

	otherCode := corejson.NewRPCError(corejson.ErrRPCWallet, msg)
	require.False(t, errors.Is(&a, otherCode))

	otherMsg := corejson.NewRPCError(corejson.ErrRPCWalletNotFound, "other")
	require.False(t, errors.Is(&a, otherMsg))

	require.False(t, errors.Is(&a, errors.New(msg)))
	require.False(t, errors.Is(&a, (*corejson.RPCError)(nil)))

	wrapped := fmt.Errorf("loadwallet: %w", &a)
	require.True(t, errors.Is(wrapped, b))
	require.True(t, corejson.IsRPCError(wrapped, corejson.ErrRPCWalletNotFound))
	require.False(t, corejson.IsRPCError(wrapped, corejson.ErrRPCMisc))

	require.Equal(t, "-18: "+msg, a.Error())
}

// TestResponseDecoding ensures responses sent by the node decode with the
// result kept raw and the error populated only when present.
func TestResponseDecoding(t *testing.T) {
	t.Parallel()

	var ok corejson.Response
	err := json.Unmarshal([]byte(`{"result":{"name":"w"},"error":null,"id":1}`), &ok)
	require.NoError(t, err)
	require.Nil(t, ok.Error)
	require.JSONEq(t, `{"name":"w"}`, string(ok.Result))

	var failed corejson.Response
	err = json.Unmarshal([]byte(`{"result":null,"error":{"code":-4,"message":"Wallet file verification failed."},"id":1}`), &failed)
	require.NoError(t, err)
	require.NotNil(t, failed.Error)
	require.Equal(t, corejson.ErrRPCWallet, failed.Error.Code)
	require.Equal(t, "Wallet file verification failed.", failed.Error.Message)
}
