// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandline

import (
	"bytes"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestArgumentsToStringArray checks the bitcoind style argument rendering.
func TestArgumentsToStringArray(t *testing.T) {
	t.Parallel()

	args := map[string]interface{}{
		"regtest":     NoArgumentValue,
		"rpcport":     18443,
		"rpcuser":     "user",
		"datadir":     "/tmp/node",
		"debug":       "",
		"rpcpassword": nil,
	}
	require.Equal(t, []string{
		"-datadir=/tmp/node",
		"-regtest",
		"-rpcport=18443",
		"-rpcuser=user",
	}, ArgumentsToStringArray(args))
}

// TestEnvExecutable checks that the environment variable takes precedence
// over the PATH lookup.
func TestEnvExecutable(t *testing.T) {
	t.Setenv("COMMANDLINE_TEST_EXE", "/opt/bitcoin/bin/bitcoind")

	exe := EnvExecutable{Name: "bitcoind", EnvVar: "COMMANDLINE_TEST_EXE"}
	require.Equal(t, "/opt/bitcoin/bin/bitcoind", exe.Executable())

	missing := EnvExecutable{
		Name:   "no-such-executable-for-sure",
		EnvVar: "COMMANDLINE_TEST_UNSET_EXE",
	}
	require.Equal(t, "no-such-executable-for-sure", missing.Executable())
}

// TestWaitForExit launches `go version` and waits for it.
func TestWaitForExit(t *testing.T) {
	t.Parallel()

	goExe, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go executable not in PATH")
	}

	proc := &ExternalProcess{
		CommandName: goExe,
		Arguments:   []string{"version"},
		WaitForExit: true,
	}
	require.NoError(t, proc.Launch(false))
	require.False(t, proc.IsRunning())
	require.Contains(t, proc.FullConsoleCommand(), "version")

	var log bytes.Buffer
	require.Error(t, proc.stop(&log))
}

// TestStopKillsAfterTimeout interrupts a long running process.
func TestStopKillsAfterTimeout(t *testing.T) {
	t.Parallel()

	sleepExe, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep executable not in PATH")
	}

	proc := &ExternalProcess{
		CommandName: sleepExe,
		Arguments:   []string{"60"},
		StopTimeout: 5 * time.Second,
	}
	require.NoError(t, proc.Launch(false))
	require.True(t, proc.IsRunning())
	require.Error(t, proc.Launch(false))

	var log bytes.Buffer
	require.NoError(t, proc.stop(&log))
	require.False(t, proc.IsRunning())
	require.Contains(t, log.String(), "Stopping process")

	select {
	case <-proc.Exited():
	default:
		t.Fatal("process did not exit")
	}
}
