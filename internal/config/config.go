package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/gp-oxid/oxskel/internal/branding"
	"github.com/gp-oxid/oxskel/internal/skelerr"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised keys.
const (
	KeyVendor       = "vendor"
	KeyLicense      = "license"
	KeyAuthorName   = "author.name"
	KeyAuthorEmail  = "author.email"
	KeyAutoload     = "autoload"
	KeyTemplate     = "template"
	KeyLanguages    = "languages"
	KeyTemplatesDir = "templates_dir"
)

var keys = map[string]string{
	KeyVendor:       "default composer vendor, <vendor>/<name>",
	KeyLicense:      "default composer license",
	KeyAuthorName:   "author name written to composer.json and README.md",
	KeyAuthorEmail:  "author email written to composer.json and README.md",
	KeyAutoload:     "default psr-4 namespace",
	KeyTemplate:     "default module template variant",
	KeyLanguages:    "comma separated shop languages",
	KeyTemplatesDir: "directory overriding the built-in templates",
}

// Keys returns the recognised keys with their descriptions, sorted by key.
func Keys() [][2]string {
	out := make([][2]string, 0, len(keys))
	for k, desc := range keys {
		out = append(out, [2]string{k, desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// Dir returns the path to the config directory (~/.oxskel/). The
// OXSKEL_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.oxskel/config.yaml).
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
// Nested keys map to underscored variables, author.name to OXSKEL_AUTHOR_NAME.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Languages returns the configured shop languages, or nil when unset.
func Languages() []string {
	var out []string
	for _, l := range strings.Split(Get(KeyLanguages), ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := keys[key]; !ok {
		return skelerr.InvalidOption("unknown config key %q", key)
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
