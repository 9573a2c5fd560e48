package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Dir:          "/data/db",
				PointerFile:  "latest.txt",
				RecordPrefix: "snap_",
				Codec:        "json",
				KeepRecords:  5,
				Verbose:      &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Dir:          "/data/db",
				PointerFile:  "latest.txt",
				RecordPrefix: "snap_",
				Codec:        "json",
				KeepRecords:  5,
				Verbose:      true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Dir:   "/config/db",
				Codec: "json",
			},
			changed: map[string]bool{"dir": true},
			initial: Config{
				Dir: "/flag/db",
			},
			expected: Config{
				Dir:   "/flag/db", // unchanged because flag was set
				Codec: "json",
			},
		},
		{
			name:       "empty file config leaves defaults alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial

			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, expected %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
dir = "/data/db"
pointer_file = "latest.txt"
codec = "json"
keep_records = 3
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() unexpected error: %v", err)
	}

	if fc.Dir != "/data/db" {
		t.Errorf("expected dir '/data/db', got %q", fc.Dir)
	}
	if fc.PointerFile != "latest.txt" {
		t.Errorf("expected pointer_file 'latest.txt', got %q", fc.PointerFile)
	}
	if fc.Codec != "json" {
		t.Errorf("expected codec 'json', got %q", fc.Codec)
	}
	if fc.KeepRecords != 3 {
		t.Errorf("expected keep_records 3, got %d", fc.KeepRecords)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Error("expected verbose true")
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("dir = [not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")

	if FileExists(path) {
		t.Error("expected FileExists to be false for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("expected FileExists to be true for present file")
	}
}
