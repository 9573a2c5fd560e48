package cliconfig

import (
	"fmt"
	"strconv"
)

// Codec names accepted by the --codec flag.
const (
	CodecGob  = "gob"
	CodecJSON = "json"
)

// Config holds CLI configuration for protodb.
type Config struct {
	// Dir is the directory holding save records and the pointer file.
	Dir string

	// PointerFile is the name of the pointer file under Dir.
	PointerFile string

	// RecordPrefix is prepended to save record filenames.
	RecordPrefix string

	// Codec selects the save record format: "gob" or "json".
	Codec string

	// KeepRecords is how many records the prune command keeps.
	KeepRecords int

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Dir:          "database",
		PointerFile:  "_most_recent_save.txt",
		RecordPrefix: "db_sv_",
		Codec:        CodecGob,
		KeepRecords:  10,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if c.PointerFile == "" {
		return fmt.Errorf("pointer-file is required")
	}
	if c.Codec != CodecGob && c.Codec != CodecJSON {
		return fmt.Errorf("codec must be %q or %q, got %q", CodecGob, CodecJSON, c.Codec)
	}
	if c.KeepRecords < 1 {
		return fmt.Errorf("keep must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value if provided and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Returns error if the string is non-empty but invalid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "1", "true", "0", "false" (case-insensitive); anything else is ignored.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return
	}
	*dst = b
}
