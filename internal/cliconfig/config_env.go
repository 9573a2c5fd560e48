package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PROTODB_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dir", os.Getenv("PROTODB_DIR"), &cfg.Dir)
	s.setString("pointer-file", os.Getenv("PROTODB_POINTER_FILE"), &cfg.PointerFile)
	s.setString("record-prefix", os.Getenv("PROTODB_RECORD_PREFIX"), &cfg.RecordPrefix)
	s.setString("codec", os.Getenv("PROTODB_CODEC"), &cfg.Codec)

	if err := s.setIntFromString("keep", os.Getenv("PROTODB_KEEP_RECORDS"), &cfg.KeepRecords); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("PROTODB_VERBOSE"), &cfg.Verbose)

	return nil
}
