package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML field names. Bools are pointers so
// an absent key is distinguishable from an explicit false.
type FileConfig struct {
	Dir          string `toml:"dir"`
	PointerFile  string `toml:"pointer_file"`
	RecordPrefix string `toml:"record_prefix"`
	Codec        string `toml:"codec"`
	KeepRecords  int    `toml:"keep_records"`
	Verbose      *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.protodb/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".protodb", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dir", fc.Dir, &cfg.Dir)
	s.setString("pointer-file", fc.PointerFile, &cfg.PointerFile)
	s.setString("record-prefix", fc.RecordPrefix, &cfg.RecordPrefix)
	s.setString("codec", fc.Codec, &cfg.Codec)
	s.setInt("keep", fc.KeepRecords, &cfg.KeepRecords)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
