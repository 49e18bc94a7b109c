// Copyright (c) 2023 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"fmt"
	"strconv"
	"strings"
)

// BackendVersion represents the version of the node the client is talking
// to, bucketed by the releases that changed the RPC surface.
type BackendVersion uint8

const (
	// BitcoindPre19 represents a bitcoind version before 0.19.0.
	BitcoindPre19 BackendVersion = iota

	// BitcoindPre22 represents a bitcoind version equal to or greater than
	// 0.19.0 and smaller than 22.0.0.
	BitcoindPre22

	// BitcoindPre24 represents a bitcoind version equal to or greater than
	// 22.0.0 and smaller than 24.0.0.
	BitcoindPre24

	// BitcoindPre25 represents a bitcoind version equal to or greater than
	// 24.0.0 and smaller than 25.0.0.
	BitcoindPre25

	// BitcoindPost25 represents a bitcoind version equal to or greater than
	// 25.0.0.
	BitcoindPost25
)

// String returns a human-readable backend version.
func (b BackendVersion) String() string {
	switch b {
	case BitcoindPre19:
		return "bitcoind 0.19 and below"

	case BitcoindPre22:
		return "bitcoind v0.19.0-v22.0.0"

	case BitcoindPre24:
		return "bitcoind v22.0.0-v24.0.0"

	case BitcoindPre25:
		return "bitcoind v24.0.0-v25.0.0"

	case BitcoindPost25:
		return "bitcoind v25.0.0 and above"

	default:
		return "unknown"
	}
}

// bitcoindVersionPrefix specifies the prefix included in every bitcoind
// version exposed through GetNetworkInfo.
const bitcoindVersionPrefix = "/Satoshi:"

// parseBitcoindVersion parses the bitcoind version from the subversion string
// reported by getnetworkinfo, for example "/Satoshi:25.1.0/" or
// "/Satoshi:0.21.0(comment)/".
func parseBitcoindVersion(subVersion string) (BackendVersion, error) {
	version, ok := strings.CutPrefix(subVersion, bitcoindVersionPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBackendVersion, subVersion)
	}
	if i := strings.IndexAny(version, "/("); i >= 0 {
		version = version[:i]
	}

	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrBackendVersion, subVersion)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBackendVersion, subVersion)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBackendVersion, subVersion)
	}

	switch {
	case major == 0 && minor < 19:
		return BitcoindPre19, nil

	case major < 22:
		return BitcoindPre22, nil

	case major < 24:
		return BitcoindPre24, nil

	case major < 25:
		return BitcoindPre25, nil

	default:
		return BitcoindPost25, nil
	}
}

// BackendVersion queries the node for its version with getnetworkinfo.
// ErrBackendVersion is returned when the node does not identify itself as
// bitcoind.
func (c *Client) BackendVersion() (BackendVersion, error) {
	info, err := c.GetNetworkInfo()
	if err != nil {
		return 0, err
	}

	version, err := parseBitcoindVersion(info.SubVersion)
	if err != nil {
		return 0, err
	}

	log.Debugf("Detected backend version %v (%s)", version, info.SubVersion)
	return version, nil
}
