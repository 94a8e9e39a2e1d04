package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Resource names are slash-separated and relative to the bundle root.
const (
	KernelDir  = "kernel"
	BaseKernel = "base"
	CustomDir  = "custom"
	FontsDir   = "custom/fonts"
	Stylesheet = "custom/custom.css"
)

// Resources is the read-only view of the bundled package data.
type Resources interface {
	// List returns the entries of the named resource directory.
	List(name string) ([]fs.DirEntry, error)

	// ReadText returns the named resource's contents.
	ReadText(name string) (string, error)

	// Path resolves a resource name to a filesystem path. The path is not
	// required to exist (classpath fragments end in a "*" glob).
	Path(name string) string
}

// Dir serves resources from a directory on disk.
type Dir struct {
	Root string
}

var _ Resources = Dir{}

func (d Dir) List(name string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(d.Path(name))
	if err != nil {
		return nil, fmt.Errorf("listing bundled resource %s: %w", name, err)
	}
	return entries, nil
}

func (d Dir) ReadText(name string) (string, error) {
	data, err := os.ReadFile(d.Path(name))
	if err != nil {
		return "", fmt.Errorf("reading bundled resource %s: %w", name, err)
	}
	return string(data), nil
}

func (d Dir) Path(name string) string {
	return filepath.Join(d.Root, filepath.FromSlash(path.Clean(name)))
}
