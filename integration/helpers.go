// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"fmt"
	"os"
	"time"
)

// FileExists returns true when file exists, and false otherwise.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WaitForFile polls until file is created or timeout elapses.
func WaitForFile(file string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for !FileExists(file) {
		if time.Now().After(deadline) {
			return fmt.Errorf("file not found after %v: %v", timeout,
				file)
		}
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}
