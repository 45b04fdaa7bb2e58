package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"varphi/internal/backend"
)

const manifestName = "varphi.toml"

type manifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Build       buildConfig       `toml:"build"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type buildConfig struct {
	Backend string `toml:"backend"`
	OutDir  string `toml:"out_dir"`
	Jobs    int    `toml:"jobs"`
}

type diagnosticsConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

func defaultConfig() projectConfig {
	return projectConfig{
		Build:       buildConfig{Backend: "json", OutDir: "build"},
		Diagnostics: diagnosticsConfig{Color: "auto", Format: "pretty"},
	}
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest walks up from startDir. Without a manifest the defaults are
// returned with an empty Path.
func loadManifest(startDir string) (*manifest, error) {
	path, ok, err := findManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &manifest{Config: defaultConfig()}, nil
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		return nil, err
	}
	return &manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return projectConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c projectConfig) validate() error {
	if _, err := backend.New(c.Build.Backend); err != nil {
		return fmt.Errorf("[build].backend: %w", err)
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must be >= 0, got %d", c.Build.Jobs)
	}
	if strings.TrimSpace(c.Build.OutDir) == "" {
		return fmt.Errorf("[build].out_dir must not be empty")
	}
	if _, err := readColorMode(c.Diagnostics.Color); err != nil {
		return fmt.Errorf("[diagnostics].color: %w", err)
	}
	if _, err := readDiagFormat(c.Diagnostics.Format); err != nil {
		return fmt.Errorf("[diagnostics].format: %w", err)
	}
	return nil
}

// outDir resolves [build].out_dir against the manifest directory.
func (m *manifest) outDir() string {
	dir := m.Config.Build.OutDir
	if m.Root == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}
