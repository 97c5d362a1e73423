package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	defaultTabWidth = 4
	maxRecentFiles  = 10
)

// RecentFile remembers where the cursor was when a file was last closed.
type RecentFile struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Config holds editor configuration.
type Config struct {
	LineNumbers bool         `json:"line_numbers"`
	TabWidth    int          `json:"tab_width"`
	RecentFiles []RecentFile `json:"recent_files"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LineNumbers: true,
		TabWidth:    defaultTabWidth,
	}
}

// DefaultPath returns ~/.config/svi/config.json.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "svi", "config.json")
}

// LoadFrom reads the config at p. A missing or unparsable file yields the
// defaults; fields absent from the file keep their default values.
func LoadFrom(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), nil
	}
	if cfg.TabWidth < 1 {
		cfg.TabWidth = defaultTabWidth
	}
	return cfg, nil
}

// SaveTo writes the config to p, creating its directory if needed.
func SaveTo(p string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0600); err != nil {
		return err
	}
	FixOwnership(p)
	return nil
}

// AddRecent records f as the most recently edited file, replacing any older
// entry for the same path.
func (c *Config) AddRecent(f RecentFile) {
	out := make([]RecentFile, 0, len(c.RecentFiles)+1)
	out = append(out, f)
	for _, rf := range c.RecentFiles {
		if rf.Path != f.Path {
			out = append(out, rf)
		}
	}
	if len(out) > maxRecentFiles {
		out = out[:maxRecentFiles]
	}
	c.RecentFiles = out
}

// Recent returns the remembered entry for path.
func (c *Config) Recent(path string) (RecentFile, bool) {
	for _, rf := range c.RecentFiles {
		if rf.Path == path {
			return rf, true
		}
	}
	return RecentFile{}, false
}
