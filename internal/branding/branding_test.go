package branding

import (
	"bytes"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "beakerx-install"},
		{"home dir", HomeDir(), ".beakerx"},
		{"env prefix", EnvPrefix(), "BEAKERX"},
		{"extension", ExtensionName(), "beakerx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("python_version"); got != "BEAKERX_PYTHON_VERSION" {
		t.Errorf("EnvVar = %q, want BEAKERX_PYTHON_VERSION", got)
	}
}

func TestEmbeddedKeysAreKnown(t *testing.T) {
	dec := yaml.NewDecoder(bytes.NewReader(rawBranding))
	dec.KnownFields(true)
	var b brand
	if err := dec.Decode(&b); err != nil {
		t.Fatalf("branding.yaml has keys the installer does not read: %v", err)
	}
}
