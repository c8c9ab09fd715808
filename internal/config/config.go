// Package config resolves the profile endpoint from the environment, an
// optional TOML file and the built-in default, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvURL overrides the profile endpoint.
	EnvURL = "PROFILEBOX_URL"
	// EnvDebug enables debug logging when set to any non-empty value.
	EnvDebug = "PROFILEBOX_DEBUG"

	DefaultEndpoint = "https://api.profilebox.dev/v1/me"
)

// Source tells where the endpoint came from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

type Config struct {
	Endpoint string
	Source   Source
	Debug    bool
}

// LoadInput carries the lookups Load depends on. A nil Getenv means
// os.Getenv; an empty Path skips the config file.
type LoadInput struct {
	Getenv func(string) string
	Path   string
}

type fileConfig struct {
	Endpoint string `toml:"endpoint"`
}

// DefaultPath returns the config file location under the user config
// directory, or "" when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "profilebox", "config.toml")
}

// Load resolves the configuration. A missing config file is not an error; a
// malformed one, or an endpoint that is not an absolute http(s) URL, is.
func Load(in LoadInput) (Config, error) {
	getenv := in.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Config{
		Endpoint: DefaultEndpoint,
		Source:   SourceDefault,
		Debug:    getenv(EnvDebug) != "",
	}

	if env := strings.TrimSpace(getenv(EnvURL)); env != "" {
		cfg.Endpoint = env
		cfg.Source = SourceEnv
	} else if in.Path != "" {
		fc, err := readFile(in.Path)
		if err != nil {
			return Config{}, err
		}
		if ep := strings.TrimSpace(fc.Endpoint); ep != "" {
			cfg.Endpoint = ep
			cfg.Source = SourceFile
		}
	}

	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return Config{}, fmt.Errorf("endpoint from %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("config file %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return fc, nil
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid URL %q: want an absolute http or https URL", raw)
	}
	return nil
}
