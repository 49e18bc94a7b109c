package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/btcsuite/corerpc/rpcclient"
	"github.com/stretchr/testify/require"
)

// TestParseParams checks the conversion of command line arguments.
func TestParseParams(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		args   []string
		stdin  string
		params string
		expErr bool
	}{
		{
			name:   "no arguments",
			params: `[]`,
		},
		{
			name:   "json values",
			args:   []string{"1", "true", `{"minconf":1}`, `["a"]`},
			params: `[1,true,{"minconf":1},["a"]]`,
		},
		{
			name:   "plain strings",
			args:   []string{"bcrt1qaddr", "", "my wallet"},
			params: `["bcrt1qaddr","","my wallet"]`,
		},
		{
			name:   "stdin",
			args:   []string{"-", "-"},
			stdin:  "0200ff\n3\n",
			params: `["0200ff",3]`,
		},
		{
			name:   "stdin exhausted",
			args:   []string{"-"},
			expErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdin := bufio.NewReader(strings.NewReader(tc.stdin))
			params, err := parseParams(tc.args, stdin)
			if tc.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			b, err := json.Marshal(params)
			require.NoError(t, err)
			require.JSONEq(t, tc.params, string(b))
		})
	}
}

// TestFormatResult checks how results are rendered.
func TestFormatResult(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		result string
		spew   bool
		want   string
	}{
		{name: "null", result: `null`, want: ""},
		{name: "number", result: `101`, want: "101"},
		{name: "string", result: `"bcrt1qaddr"`, want: "bcrt1qaddr"},
		{name: "object", result: `{"a":1}`, want: "{\n  \"a\": 1\n}"},
		{name: "array", result: `[1,2]`, want: "[\n  1,\n  2\n]"},
		{name: "spew", result: `true`, spew: true, want: "(bool) true"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := formatResult(json.RawMessage(tc.result), tc.spew)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestDescribeError checks that the failure kind prefixes the message.
func TestDescribeError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "authentication error: Invalid credentials",
		describeError(&rpcclient.AuthError{}))
	require.Equal(t, "error code -18: Requested wallet does not exist "+
		"or is not loaded", describeError(corejson.NewRPCError(
		corejson.ErrRPCWalletNotFound,
		"Requested wallet does not exist or is not loaded")))
	require.Equal(t, "boom", describeError(errors.New("boom")))
}

// TestNormalizeAddress checks the default ports of every network.
func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr                     string
		testNet, regTest, sigNet bool
		want                     string
	}{
		{addr: "localhost", want: "localhost:8332"},
		{addr: "localhost", testNet: true, want: "localhost:18332"},
		{addr: "localhost", regTest: true, want: "localhost:18443"},
		{addr: "localhost", sigNet: true, want: "localhost:38332"},
		{addr: "10.0.0.1:1234", regTest: true, want: "10.0.0.1:1234"},
		{addr: "::1", want: "[::1]:8332"},
	}

	for _, test := range tests {
		got := normalizeAddress(test.addr, test.testNet, test.regTest,
			test.sigNet)
		require.Equal(t, test.want, got)
	}
}

// TestValidateConfig checks the option combinations that are rejected.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cfg := &config{
		RPCServer:  "localhost",
		DebugLevel: "info",
		TestNet:    true,
		RegTest:    true,
	}
	require.Error(t, validateConfig(cfg))

	cfg = &config{
		RPCServer:  "localhost",
		DebugLevel: "loud",
	}
	require.Error(t, validateConfig(cfg))

	cfg = &config{
		RPCServer:  "localhost",
		DebugLevel: "info",
		RPCUser:    "user",
		RPCCookie:  "/tmp/.cookie",
	}
	require.Error(t, validateConfig(cfg))

	cfg = &config{
		RPCServer:   "localhost",
		DebugLevel:  "debug",
		RPCUser:     "user",
		RPCPassword: "pass",
		RegTest:     true,
	}
	require.NoError(t, validateConfig(cfg))
	require.Equal(t, "localhost:18443", cfg.RPCServer)

	connCfg, err := connConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:18443", connCfg.URL)
	require.Equal(t, "user", connCfg.User)
}
