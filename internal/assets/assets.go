package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/platform"
)

// Names of the installed entries under the destination directory.
const (
	FontsName      = "fonts"
	StylesheetName = "custom.css"
)

// Dest returns the notebook static/custom directory for the given prefix and
// versioned library directory (e.g. "python3.11").
func Dest(prefix, libDir string) string {
	return filepath.Join(prefix, "lib", libDir, "site-packages", "notebook", "static", "custom")
}

// Install replaces <dest>/fonts with the bundled fonts tree and overwrites
// <dest>/custom.css with the bundled stylesheet. A cancelled ctx stops the
// copy between entries and is returned as the error.
func Install(ctx context.Context, res bundle.Resources, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if err := ReplaceTree(ctx, res.Path(bundle.FontsDir), filepath.Join(dest, FontsName)); err != nil {
		return fmt.Errorf("installing fonts: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := copyFile(res.Path(bundle.Stylesheet), filepath.Join(dest, StylesheetName)); err != nil {
		return fmt.Errorf("installing stylesheet: %w", err)
	}

	return nil
}

// ReplaceTree removes dst if it exists, then copies src to dst. The replace
// is not atomic: a failure mid-copy leaves dst partially populated.
func ReplaceTree(ctx context.Context, src, dst string) error {
	// Check the source first so a missing bundle never deletes dst.
	if _, err := os.Stat(src); err != nil {
		return err
	}

	if _, err := os.Lstat(dst); err == nil {
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("removing existing %s: %w", dst, err)
		}
	}

	if err := copyDir(ctx, src, dst); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}

// copyDir recursively copies src to dst, checking ctx before each entry.
func copyDir(ctx context.Context, src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(ctx, srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	// WriteFile keeps the mode of a file it overwrites.
	return platform.Chmod(dst, srcInfo.Mode().Perm())
}
