// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package commandline

Provides helpers to run external command-line tools, e.g. the `bitcoind`
executable the integration tests talk to.

Callers are responsible for stopping every process they launch.
*/
package commandline
