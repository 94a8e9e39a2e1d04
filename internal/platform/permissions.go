package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Chmod applies the permission bits of mode to path; type bits are ignored.
// Windows only honors the owner-write bit (the read-only attribute), so
// there the call is reduced to that bit.
func Chmod(path string, mode fs.FileMode) error {
	perm := mode.Perm()
	if runtime.GOOS == "windows" {
		perm = 0444 | perm&0200
	}
	return os.Chmod(path, perm)
}
