package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beakerx-labs/beakerx-install/internal/branding"
)

// ReleaseDir is the bundle location relative to the executable's directory
// in packaged releases.
var ReleaseDir = filepath.Join("..", "share", "beakerx", "static")

// Locate returns the bundle directory.
//
// Resolution order:
//  1. explicit (the "resources" setting), which must exist if set
//  2. <exe-dir>/../share/beakerx/static (bundled releases)
//  3. ./static in the working directory (developer checkout)
func Locate(explicit string) (Dir, error) {
	if explicit != "" {
		if !isDir(explicit) {
			return Dir{}, fmt.Errorf("resources directory %s does not exist", explicit)
		}
		return Dir{Root: explicit}, nil
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ReleaseDir))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, "static"))
	}

	for _, c := range candidates {
		if isDir(c) {
			return Dir{Root: filepath.Clean(c)}, nil
		}
	}

	return Dir{}, fmt.Errorf("no bundled resources found. Pass --resources or set %s", branding.EnvVar("RESOURCES"))
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
