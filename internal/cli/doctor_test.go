package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
)

func TestCheckBundle_Healthy(t *testing.T) {
	var out bytes.Buffer
	if n := checkBundle(&out, bundle.Dir{Root: newBundle(t)}); n != 0 {
		t.Errorf("problems = %d, want 0\n%s", n, out.String())
	}
	for _, want := range []string{"[ OK ] kernel python3", "[ OK ] kernel scala", "[ OK ] custom/custom.css"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCheckBundle_Broken(t *testing.T) {
	root := newBundle(t)
	writeFile(t, filepath.Join(root, "kernel", "scala", "kernel.json"), `{"display_name": "Scala"}`)
	if err := os.Remove(filepath.Join(root, "custom", "custom.css")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if n := checkBundle(&out, bundle.Dir{Root: root}); n != 2 {
		t.Errorf("problems = %d, want 2\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "[FAIL] kernel scala") {
		t.Errorf("invalid kernel not reported:\n%s", out.String())
	}
}

func TestCheckBinary(t *testing.T) {
	var out bytes.Buffer
	if n := checkBinary(&out, "definitely-not-a-real-binary-xyz"); n != 1 {
		t.Errorf("missing binary counted %d, want 1", n)
	}
	if !strings.Contains(out.String(), "[MISS]") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCheckBundle_Shipped(t *testing.T) {
	var out bytes.Buffer
	root := filepath.Join("..", "..", "static")
	if n := checkBundle(&out, bundle.Dir{Root: root}); n != 0 {
		t.Errorf("shipped bundle has %d problem(s):\n%s", n, out.String())
	}
}
