// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integration

import (
	"os"
	"path/filepath"
)

// TempDirHandler manages a data directory that is removed on disposal.
type TempDirHandler struct {
	target string
}

// NewTempDir returns a handler for the directory targetName below
// targetParent.  Nothing is created until MakeDir is called.
func NewTempDir(targetParent string, targetName string) *TempDirHandler {
	return &TempDirHandler{
		target: filepath.Join(targetParent, targetName),
	}
}

// Dispose removes the directory and deregisters it.
func (t *TempDirHandler) Dispose() {
	err := os.RemoveAll(t.target)
	DeRegisterDisposableAsset(t)
	CheckTestSetupMalfunction(err)
}

// MakeDir creates the directory with all its parents and registers it as a
// leaky asset.
func (t *TempDirHandler) MakeDir() *TempDirHandler {
	CheckTestSetupMalfunction(os.MkdirAll(t.target, 0700))
	RegisterDisposableAsset(t)
	return t
}

// Exists returns true when target exists.
func (t *TempDirHandler) Exists() bool {
	return FileExists(t.target)
}

// Path string of the temp folder.
func (t *TempDirHandler) Path() string {
	return t.target
}

// String returns the path, for the leak report.
func (t *TempDirHandler) String() string {
	return t.target
}
