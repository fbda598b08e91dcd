// Package fspolicy decides whether a candidate path may be offered to the
// user: whether an entry exists on a local (non-network) filesystem and
// whether the path falls under a configured forbidden prefix.
package fspolicy

import (
	"os"
	"strings"
)

// Policy is the filesystem oracle consumed by the cleaner. Implementations
// must be safe for concurrent use.
type Policy interface {
	// ExistsLocally reports whether a filesystem entry exists at path and
	// path is not under a network-classified mount excluded by
	// ignoredPrefixes.
	ExistsLocally(path string, ignoredPrefixes []string) bool
	// HasForbiddenPrefix reports whether path falls under any of the
	// given prefixes.
	HasForbiddenPrefix(path string, ignoredPrefixes []string) bool
}

// OS is the Policy backed by the real filesystem.
type OS struct{}

func (OS) ExistsLocally(path string, ignoredPrefixes []string) bool {
	if UnderAnyPrefix(path, ignoredPrefixes) {
		return false
	}
	if isNetworkFilesystem(path) {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (OS) HasForbiddenPrefix(path string, ignoredPrefixes []string) bool {
	return UnderAnyPrefix(path, ignoredPrefixes)
}

// UnderAnyPrefix reports whether path equals or sits below any of the
// prefixes. Matching respects component boundaries: "/mnt/net" covers
// "/mnt/net/x" but not "/mnt/netware".
func UnderAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
