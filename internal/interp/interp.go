// Package interp asks a Python interpreter for its installation prefix and
// version. The prefix is the default asset destination root and the version
// names the lib/pythonX.Y directory the notebook package lives under.
package interp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/beakerx-labs/beakerx-install/internal/runner"
)

// probeScript prints sys.prefix then the X.Y.Z version on separate lines.
const probeScript = "import sys; print(sys.prefix); print('%d.%d.%d' % sys.version_info[:3])"

// Interpreter describes a Python installation.
type Interpreter struct {
	Prefix  string
	Version *semver.Version
}

// LibDir returns the versioned library directory name, e.g. "python3.11".
func (i Interpreter) LibDir() string {
	return fmt.Sprintf("python%d.%d", i.Version.Major(), i.Version.Minor())
}

// Detect runs python and parses its prefix and version.
func Detect(ctx context.Context, r runner.Runner, python string) (Interpreter, error) {
	out, err := r.Output(ctx, python, "-c", probeScript)
	if err != nil {
		return Interpreter{}, fmt.Errorf("probing %s: %w", python, err)
	}
	return parseProbe(out)
}

func parseProbe(out []byte) (Interpreter, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 2 {
		return Interpreter{}, fmt.Errorf("unexpected interpreter probe output %q", string(out))
	}

	v, err := ParseVersion(lines[1])
	if err != nil {
		return Interpreter{}, err
	}
	return Interpreter{Prefix: lines[0], Version: v}, nil
}

// ParseVersion parses a Python version such as "3.11", "3.11.4" or
// "Python 3.11.4" and rejects Python 2.
func ParseVersion(s string) (*semver.Version, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Python"))
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("parsing python version %q: %w", s, err)
	}
	if v.Major() < 3 {
		return nil, fmt.Errorf("python %s is not supported: 3.x required", v)
	}
	return v, nil
}
