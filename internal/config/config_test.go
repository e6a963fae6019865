package config

// Notes:
// - LoadConfig name resolution is tested through the user config directory
//   (XDG_CONFIG_HOME) only; tests that chdir cannot run in parallel and the
//   working-directory lookup shares the same loop.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// TestDefaultConfig - Neutral defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if !cfg.MathEnabled() {
		t.Error("MathEnabled() = false, want true")
	}
	if cfg.Code.Highlight {
		t.Error("Code.Highlight = true, want false")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if d, err := cfg.TimeoutDuration(); d != 0 || err != nil {
		t.Errorf("TimeoutDuration() = %v, %v, want 0, nil", d, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field limits and ranges
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "empty is valid",
			cfg:     Config{},
			wantErr: nil,
		},
		{
			name: "full valid config",
			cfg: Config{
				Input:    InputConfig{DefaultDir: "notes"},
				Output:   OutputConfig{DefaultDir: "out"},
				Document: DocumentConfig{Title: "Report", Author: "Ada"},
				Math:     MathConfig{Enabled: ptr(false)},
				Code:     CodeConfig{Highlight: true, Style: "monokai"},
				Workers:  4,
				Timeout:  "1m",
			},
			wantErr: nil,
		},
		{
			name:    "title counted in characters",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("é", MaxTitleLength)}},
			wantErr: nil,
		},
		{
			name:    "title too long",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("a", MaxTitleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "author too long",
			cfg:     Config{Document: DocumentConfig{Author: strings.Repeat("a", MaxAuthorLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "style too long",
			cfg:     Config{Code: CodeConfig{Style: strings.Repeat("s", MaxStyleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unparsable timeout",
			cfg:     Config{Timeout: "soon"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero timeout",
			cfg:     Config{Timeout: "0s"},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_MathEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enabled *bool
		want    bool
	}{
		{"unset", nil, true},
		{"explicit true", ptr(true), true},
		{"explicit false", ptr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Math: MathConfig{Enabled: tt.enabled}}
			if got := cfg.MathEnabled(); got != tt.want {
				t.Errorf("MathEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Loading from files
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile error = %v", err)
		}
		return p
	}

	valid := write("valid.yaml", `
input:
  defaultDir: notes
document:
  title: Weekly report
  author: Ada
math:
  enabled: false
code:
  highlight: true
  style: dracula
workers: 3
timeout: 45s
`)
	unknown := write("unknown.yaml", "document:\n  subtitle: nope\n")
	broken := write("broken.yaml", "workers: [1\n")
	invalid := write("invalid.yaml", "workers: 99\n")

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(valid)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := &Config{
			Input:    InputConfig{DefaultDir: "notes"},
			Document: DocumentConfig{Title: "Weekly report", Author: "Ada"},
			Math:     MathConfig{Enabled: ptr(false)},
			Code:     CodeConfig{Highlight: true, Style: "dracula"},
			Workers:  3,
			Timeout:  "45s",
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
		if d, _ := cfg.TimeoutDuration(); d != 45*time.Second {
			t.Errorf("TimeoutDuration() = %v, want 45s", d)
		}
	})

	errTests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing file", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"unknown key", unknown, ErrConfigParse},
		{"broken syntax", broken, ErrConfigParse},
		{"out of range", invalid, ErrInvalidValue},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if dir, err := os.UserConfigDir(); err != nil || dir != home {
		t.Skip("user config dir does not follow XDG_CONFIG_HOME on this platform")
	}

	appDir := filepath.Join(home, AppDir)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("MkdirAll error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "team.yml"), []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(absent) error = %v, want %v", err, ErrConfigNotFound)
	}
	if !strings.Contains(err.Error(), filepath.Join(appDir, "absent.yaml")) {
		t.Errorf("error %q does not list the user config path", err)
	}
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if dir, err := os.UserConfigDir(); err != nil || dir != home {
		t.Skip("user config dir does not follow XDG_CONFIG_HOME on this platform")
	}

	want := []string{
		"work.yaml",
		"work.yml",
		filepath.Join(home, AppDir, "work.yaml"),
		filepath.Join(home, AppDir, "work.yml"),
	}
	if diff := cmp.Diff(want, SearchPaths("work")); diff != "" {
		t.Errorf("SearchPaths() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Encode(t *testing.T) {
	t.Parallel()

	cfg := &Config{Document: DocumentConfig{Title: "T"}, Workers: 2}
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for _, want := range []string{"document:", "title: T", "workers: 2"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Encode() = %q, missing %q", data, want)
		}
	}
}
