// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevels(t *testing.T) {
	require.True(t, ValidLogLevel("debug"))
	require.False(t, ValidLogLevel("loud"))

	SetLogLevels("debug")
	for id, logger := range SubsystemLoggers {
		require.Equal(t, btclog.LevelDebug, logger.Level(), id)
	}

	// Unknown subsystems are ignored.
	SetLogLevel("NOPE", "trace")
	SetLogLevel("RPCC", "warn")
	require.Equal(t, btclog.LevelWarn, SubsystemLoggers["RPCC"].Level())

	SetLogLevels("info")
}

func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "corectl.log")
	require.NoError(t, InitLogRotator(logFile))
	defer func() {
		LogRotator.Close()
		LogRotator = nil
	}()

	CtlLog.Info("rotated")
	require.FileExists(t, logFile)
}
