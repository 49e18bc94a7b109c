// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"fmt"
	"os"
	"sync/atomic"
)

var isInSelfDestructState atomic.Bool

// ReportTestSetupMalfunction brings attention to a defect of the test setup
// itself, as opposed to a failure of the code under test.  It disposes every
// registered asset and panics.
func ReportTestSetupMalfunction(malfunction error) {
	if malfunction == nil {
		malfunction = fmt.Errorf("no error provided")
	}

	fmt.Fprintln(os.Stderr, malfunction.Error())

	// A Dispose that fails while self destructing must not recurse.
	if !isInSelfDestructState.CompareAndSwap(false, true) {
		return
	}
	forceDisposeLeakyAssets()

	panic(fmt.Sprintf("Test setup malfunction: %v", malfunction))
}

// CheckTestSetupMalfunction reports err when one is present.
func CheckTestSetupMalfunction(err error) {
	if err != nil {
		ReportTestSetupMalfunction(err)
	}
}
