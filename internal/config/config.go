package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/beakerx-labs/beakerx-install/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each is also read from <ENV_PREFIX>_<KEY>.
const (
	KeyPrefix        = "prefix"
	KeyResources     = "resources"
	KeyJupyter       = "jupyter"
	KeyPython        = "python"
	KeyPythonVersion = "python_version"
	KeyExtension     = "extension"
	KeyVerbose       = "verbose"
)

// Settings is the resolved configuration handed to the install pipeline.
type Settings struct {
	// Prefix is the asset installation root; empty means the interpreter's sys.prefix.
	Prefix string
	// Resources is the bundle directory; empty means auto-locate.
	Resources string
	Jupyter   string
	Python    string
	// PythonVersion (X.Y) skips the interpreter version probe when set.
	PythonVersion string
	Extension     string
	Verbose       bool
}

// Dir returns the path to the config directory (~/.beakerx/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.beakerx/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyJupyter, "jupyter")
	viper.SetDefault(KeyPython, "python3")
	viper.SetDefault(KeyExtension, branding.ExtensionName())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Reset clears all loaded values, flags and defaults.
func Reset() {
	viper.Reset()
}

// Resolve returns the current settings from flags, env, config file and
// defaults, in that order of precedence.
func Resolve() Settings {
	return Settings{
		Prefix:        viper.GetString(KeyPrefix),
		Resources:     viper.GetString(KeyResources),
		Jupyter:       viper.GetString(KeyJupyter),
		Python:        viper.GetString(KeyPython),
		PythonVersion: viper.GetString(KeyPythonVersion),
		Extension:     viper.GetString(KeyExtension),
		Verbose:       viper.GetBool(KeyVerbose),
	}
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	keys := []string{KeyPrefix, KeyResources, KeyJupyter, KeyPython, KeyPythonVersion, KeyExtension, KeyVerbose}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown setting %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
