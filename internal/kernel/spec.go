package kernel

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
)

// PathToken is the placeholder substituted with the classpath in every
// kernel.json template.
const PathToken = "__PATH__"

// SpecFile is the descriptor file name jupyter expects in a kernel spec dir.
const SpecFile = "kernel.json"

// Names returns every entry of the kernel directory except the shared
// "base" entry, in sorted order.
func Names(res bundle.Resources) ([]string, error) {
	entries, err := res.List(bundle.KernelDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if name == bundle.BaseKernel {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LibPath returns the classpath fragment for one kernel's jars.
func LibPath(res bundle.Resources, name string) string {
	return res.Path(path.Join(bundle.KernelDir, name, "lib", "*"))
}

// Classpath joins the base kernel's and the named kernel's library paths
// with the platform path-list separator.
func Classpath(res bundle.Resources, name string) string {
	return strings.Join([]string{
		LibPath(res, bundle.BaseKernel),
		LibPath(res, name),
	}, string(os.PathListSeparator))
}

// Render replaces every PathToken in template with classpath.
func Render(template, classpath string) string {
	return strings.ReplaceAll(template, PathToken, classpath)
}

// RenderSpec loads the named kernel's template and renders it.
func RenderSpec(res bundle.Resources, name string) (string, error) {
	template, err := res.ReadText(path.Join(bundle.KernelDir, name, SpecFile))
	if err != nil {
		return "", fmt.Errorf("loading %s template: %w", name, err)
	}
	return Render(template, Classpath(res, name)), nil
}
