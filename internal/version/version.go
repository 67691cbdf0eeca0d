// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the address tools provided in the same repository.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build portions of a semantic version string.  Build metadata additionally
// allows dots.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease can be overridden during the build process with:
	// '-ldflags "-X github.com/bitcoincoltd/cashaddress/internal/version.PreRelease=foo"'
	PreRelease = "beta"

	// BuildMetadata can be overridden during the build process with:
	// '-ldflags "-X github.com/bitcoincoltd/cashaddress/internal/version.BuildMetadata=foo"'
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).  Invalid characters in
// the pre-release and build strings are dropped.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if preRelease := normalize(PreRelease, semanticAlphabet); preRelease != "" {
		version += "-" + preRelease
	}
	if build := normalize(BuildMetadata, semanticAlphabet+"."); build != "" {
		version += "+" + build
	}
	return version
}

// normalize returns str stripped of all characters not in alphabet.
func normalize(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
