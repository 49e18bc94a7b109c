// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandline

import (
	"fmt"
	"sort"
)

// NoArgumentValue marks an option that is passed without a value, for
// example "-regtest".
var NoArgumentValue interface{} = &struct{}{}

// ArgumentsToStringArray converts a map of options to the single dash
// arguments understood by bitcoind.  Options with a nil or empty string value
// are skipped.  The result is sorted so the same map always produces the same
// command line.
func ArgumentsToStringArray(args map[string]interface{}) []string {
	result := make([]string, 0, len(args))
	for key, value := range args {
		switch value {
		case nil, "":
			continue

		case NoArgumentValue:
			result = append(result, fmt.Sprintf("-%s", key))

		default:
			result = append(result, fmt.Sprintf("-%s=%v", key, value))
		}
	}
	sort.Strings(result)
	return result
}
