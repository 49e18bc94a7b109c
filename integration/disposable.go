// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"fmt"
	"sync"
)

// LeakyAsset is a handler for disposable assets like bitcoind processes and
// temporary data directories.
type LeakyAsset interface {
	Dispose()
}

// leakyAssets is a stack of the assets created by the test setup.  Assets are
// disposed in reverse order of registration, so a node is stopped before its
// data directory is removed.
type leakyAssets struct {
	mtx    sync.Mutex
	assets []LeakyAsset
}

var leaksList leakyAssets

// indexOf returns the stack position of asset or -1.  The caller must hold
// the mutex.
func (l *leakyAssets) indexOf(asset LeakyAsset) int {
	for i, a := range l.assets {
		if a == asset {
			return i
		}
	}
	return -1
}

// RegisterDisposableAsset registers disposable asset.
// Does not tolerate multiple registrations of the same asset.
func RegisterDisposableAsset(asset LeakyAsset) {
	if asset == nil {
		return
	}

	leaksList.mtx.Lock()
	var err error
	if leaksList.indexOf(asset) != -1 {
		err = fmt.Errorf("LeakyAsset is already registered: %v", asset)
	} else {
		leaksList.assets = append(leaksList.assets, asset)
	}
	leaksList.mtx.Unlock()

	CheckTestSetupMalfunction(err)
}

// DeRegisterDisposableAsset removes disposable asset from the registry.
// Does not tolerate removal of an asset that is not registered.
func DeRegisterDisposableAsset(asset LeakyAsset) {
	leaksList.mtx.Lock()
	var err error
	if i := leaksList.indexOf(asset); i == -1 {
		err = fmt.Errorf("LeakyAsset is not registered: %v", asset)
	} else {
		leaksList.assets = append(leaksList.assets[:i],
			leaksList.assets[i+1:]...)
	}
	leaksList.mtx.Unlock()

	CheckTestSetupMalfunction(err)
}

// VerifyNoAssetsLeaked checks all leaky assets were properly disposed.
// Should be called before test setup exit.
func VerifyNoAssetsLeaked() {
	leaksList.mtx.Lock()
	var err error
	if n := len(leaksList.assets); n != 0 {
		err = fmt.Errorf("incorrect state: %d leaked resources: %v", n,
			leaksList.assets)
	}
	leaksList.mtx.Unlock()

	CheckTestSetupMalfunction(err)
}

// forceDisposeLeakyAssets disposes every registered asset, most recent
// first.  Assets already disposed by an earlier one are skipped.
func forceDisposeLeakyAssets() {
	leaksList.mtx.Lock()
	assets := append([]LeakyAsset(nil), leaksList.assets...)
	leaksList.mtx.Unlock()

	for i := len(assets) - 1; i >= 0; i-- {
		leaksList.mtx.Lock()
		registered := leaksList.indexOf(assets[i]) != -1
		leaksList.mtx.Unlock()

		if registered {
			assets[i].Dispose()
		}
	}

	leaksList.mtx.Lock()
	leaksList.assets = nil
	leaksList.mtx.Unlock()
}
