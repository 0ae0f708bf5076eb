package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/svenplb/aegis-core/internal/applog"
)

// BuiltinPatternDir is where the repo's built-in pattern packs live,
// relative to the process's working directory.
const BuiltinPatternDir = "patterns"

// ScannerConfig holds scanner-related settings.
type ScannerConfig struct {
	// PatternPacks lists paths to YAML pattern files loaded via
	// internal/loader, in addition to any built-in packs the caller
	// wires in. Loaded in order; later packs may not redefine an
	// earlier pack's pattern id (see loader.LoadError).
	PatternPacks []string `yaml:"pattern_packs"`
	// Location restricts a scan to patterns tagged with this location;
	// empty means every loaded pattern runs.
	Location string `yaml:"location"`
	// Allowlist is a set of regexes; a match whose text matches any of
	// them is suppressed by the caller before acting on it.
	Allowlist []string `yaml:"allowlist"`
}

// LoggingConfig holds logging-related settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the top-level aegis-core configuration.
type Config struct {
	Scanner ScannerConfig `yaml:"scanner"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load reads a YAML configuration file from path and returns a Config.
// Missing optional fields are filled from DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every allowlist entry compiles and that the log
// level is recognised. Pattern pack files themselves are validated by
// internal/loader.LoadPatterns at load time, not here.
func (c *Config) Validate() error {
	for i, pat := range c.Scanner.Allowlist {
		if _, err := regexp.Compile(pat); err != nil {
			return fmt.Errorf("config: allowlist[%d]: invalid regex: %w", i, err)
		}
	}

	if _, ok := applog.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("config: unknown log level %q (want debug|info|warn|error|silent)", c.Logging.Level)
	}

	return nil
}

// CompileAllowlist compiles the configured allowlist into matchers a
// caller can run a candidate's matched text against.
func (c *Config) CompileAllowlist() ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(c.Scanner.Allowlist))
	for _, pat := range c.Scanner.Allowlist {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("config: allowlist %q: %w", pat, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// BuiltinPatternPacks lists the YAML pattern files under BuiltinPatternDir,
// sorted by name. A missing directory yields no paths rather than an
// error, so running from outside the repo degrades to zero built-in
// patterns instead of failing.
func BuiltinPatternPacks() ([]string, error) {
	entries, err := os.ReadDir(BuiltinPatternDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", BuiltinPatternDir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(BuiltinPatternDir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
