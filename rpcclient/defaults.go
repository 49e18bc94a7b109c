// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

// Defaults substituted for optional parameters the caller leaves unset.  These
// are the node's own defaults.
const (
	defaultCheckLevel      = 3
	defaultNetworkHashPsNB = 120
	defaultMinConf         = 1
	defaultMaxConf         = 9999999
	defaultConfTarget      = 10
	defaultListTxCount     = 10
	defaultTargetConfs     = 1
	defaultAllLabels       = "*"
)
