// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the client library and the corectl utility.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// semanticBuildAlphabet defines the allowed characters for the build
	// portion of a semantic version string.
	semanticBuildAlphabet = semanticAlphabet + "."

	// appName prefixes the version in the User-Agent header.
	appName = "corerpc"
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease can be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/corerpc/internal/version.PreRelease=foo"'
	// Characters outside semanticAlphabet are dropped.
	PreRelease = "pre"

	// BuildMetadata can be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/corerpc/internal/version.BuildMetadata=foo"'
	// Characters outside semanticBuildAlphabet are dropped.
	BuildMetadata = "dev"
)

// String returns the application version, for example "0.1.0-pre+dev".  The
// pre-release and build parts are omitted when they normalize to nothing.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	if preRelease := NormalizePreRelString(PreRelease); preRelease != "" {
		version += "-" + preRelease
	}
	if build := NormalizeBuildString(BuildMetadata); build != "" {
		version += "+" + build
	}

	return version
}

// UserAgent is the value of the User-Agent header sent with every request.
func UserAgent() string {
	return appName + "/" + String()
}

// normalizeSemString returns str stripped of all characters not in alphabet.
func normalizeSemString(str, alphabet string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(alphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// NormalizePreRelString returns the passed string stripped of all characters
// which are not valid in a pre-release string.
func NormalizePreRelString(str string) string {
	return normalizeSemString(str, semanticAlphabet)
}

// NormalizeBuildString returns the passed string stripped of all characters
// which are not valid in build metadata.
func NormalizeBuildString(str string) string {
	return normalizeSemString(str, semanticBuildAlphabet)
}
