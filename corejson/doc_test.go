// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corejson_test

import (
	"go/format"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPackageDocFormatted ensures the package documentation is already in the
// form gofmt prints, with headings and indented examples.
func TestPackageDocFormatted(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("doc.go")
	require.NoError(t, err)

	formatted, err := format.Source(src)
	require.NoError(t, err)
	require.Equal(t, string(formatted), string(src))

	doc := string(src)
	require.Contains(t, doc, "\n# Protocol\n")
	require.Contains(t, doc, "\n# Errors\n")
	require.True(t, strings.Contains(doc, "\n\t{\"jsonrpc\":\"2.0\""),
		"request example is not indented")
}
