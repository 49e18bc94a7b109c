// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
)

var (
	portRangeStart = 30000
	portRangeEnd   = 40000
	portLockDir    = filepath.Join(os.TempDir(), "corerpc_port_locks")
)

// ReservePort returns a free local port and takes a lock file for it, so
// concurrently running test binaries never hand the same port to two nodes.
// The port must be returned with ReleasePort.
func ReservePort() (int, error) {
	if err := os.MkdirAll(portLockDir, 0755); err != nil {
		return 0, err
	}

	for port := portRangeStart; port <= portRangeEnd; port++ {
		lockFile := filepath.Join(portLockDir,
			fmt.Sprintf("port_%d.lock", port))

		f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
		if err != nil {
			continue
		}
		f.Close()

		// Verify the port is actually usable.
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			os.Remove(lockFile)
			continue
		}
		l.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no available ports in range %d-%d",
		portRangeStart, portRangeEnd)
}

// ReleasePort removes the lock taken by ReservePort.
func ReleasePort(port int) error {
	lockFile := filepath.Join(portLockDir, fmt.Sprintf("port_%d.lock", port))
	return os.Remove(lockFile)
}
