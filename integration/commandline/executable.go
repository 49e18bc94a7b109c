// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandline

import (
	"os"
	"os/exec"
)

// ExecutablePathProvider wraps class responsible for executable
// path resolution
type ExecutablePathProvider interface {
	// Executable returns full path to an executable target file
	Executable() string
}

// EnvExecutable resolves an executable from an environment variable, falling
// back to a lookup of Name in PATH.
type EnvExecutable struct {
	Name   string
	EnvVar string
}

// Executable returns the path named by EnvVar when it is set.  Otherwise it
// returns the PATH match of Name, or Name itself when there is none.
func (e EnvExecutable) Executable() string {
	if path := os.Getenv(e.EnvVar); path != "" {
		return path
	}
	if path, err := exec.LookPath(e.Name); err == nil {
		return path
	}
	return e.Name
}
