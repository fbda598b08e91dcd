package fspolicy

import "golang.org/x/sys/unix"

// Filesystem magic numbers for network-backed filesystems, from
// linux/magic.h.
const (
	nfsSuperMagic  = 0x6969
	smbSuperMagic  = 0x517b
	smb2SuperMagic = 0xfe534d42
	cifsSuperMagic = 0xff534d42
	codaSuperMagic = 0x73757245
	afsSuperMagic  = 0x5346414f
)

// isNetworkFilesystem classifies the mount backing path by its statfs
// magic number. Probe errors are treated as local; the stat that follows
// fails on its own when the path is unreachable.
func isNetworkFilesystem(path string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return false
	}
	switch uint32(st.Type) {
	case nfsSuperMagic, smbSuperMagic, smb2SuperMagic, cifsSuperMagic, codaSuperMagic, afsSuperMagic:
		return true
	}
	return false
}
