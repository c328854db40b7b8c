package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `
timetable:
  baseStation: Moscow
feed:
  agencyID: RZD
  serviceDate: "20260101"
  incrementality: differential
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadAppConfig_FromFile(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timetable.BaseStation != "Moscow" {
		t.Errorf("baseStation = %q, want Moscow", cfg.Timetable.BaseStation)
	}
	if cfg.Feed.AgencyID != "RZD" || cfg.Feed.ServiceDate != "20260101" {
		t.Errorf("unexpected feed config: %+v", cfg.Feed)
	}
	if cfg.Feed.Incrementality != "differential" {
		t.Errorf("incrementality = %q, want differential", cfg.Feed.Incrementality)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadAppConfig_FirstExistingPathWins(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")
	cfg, err := LoadAppConfig(missing, writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Timetable.BaseStation != "Moscow" {
		t.Errorf("baseStation = %q, want Moscow", cfg.Timetable.BaseStation)
	}
}

func TestLoadAppConfig_MissingFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	_, err := LoadAppConfig()
	if err == nil {
		t.Fatal("Loading non-existent config should return error")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	_, err := LoadAppConfig(writeConfig(t, "invalid: yaml: content: [[["))
	if err == nil {
		t.Fatal("Invalid YAML should return error")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseAppConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "minimal",
			yaml: "timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"20260101\"}\n",
		},
		{
			name:    "missing base station",
			yaml:    "feed: {agencyID: A, serviceDate: \"20260101\"}\n",
			wantErr: true,
		},
		{
			name:    "missing agency",
			yaml:    "timetable: {baseStation: X}\nfeed: {serviceDate: \"20260101\"}\n",
			wantErr: true,
		},
		{
			name:    "bad service date",
			yaml:    "timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"2026-01-01\"}\n",
			wantErr: true,
		},
		{
			name:    "bad incrementality",
			yaml:    "timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"20260101\", incrementality: partial}\n",
			wantErr: true,
		},
		{
			name:    "bad log level",
			yaml:    "timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"20260101\"}\nlog: {level: loud}\n",
			wantErr: true,
		},
		{
			name:    "bad log format",
			yaml:    "timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"20260101\"}\nlog: {format: xml}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppConfig([]byte(tt.yaml))
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParseAppConfig_Defaults(t *testing.T) {
	cfg, err := ParseAppConfig([]byte("timetable: {baseStation: X}\nfeed: {agencyID: A, serviceDate: \"20260101\"}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Feed.Incrementality != "full" {
		t.Errorf("incrementality default = %q, want full", cfg.Feed.Incrementality)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level default = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("log format default = %q, want console", cfg.Log.Format)
	}
}
