//go:build !linux

package fspolicy

// Network mount classification is only implemented for Linux. Elsewhere
// the ignored-prefix list alone decides what counts as non-local.
func isNetworkFilesystem(string) bool {
	return false
}
