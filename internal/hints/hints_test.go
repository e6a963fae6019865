package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForTimeout(t *testing.T) {
	t.Parallel()

	hint := ForTimeout()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("ForTimeout() = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "--timeout") {
		t.Errorf("ForTimeout() = %q, want --timeout suggestion", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("/home/ada/.config", "go-md2docx", "work.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains string
		excludes string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"work.yaml", "work.yml", userPath},
			contains: "or create " + userPath,
		},
		{
			name:     "no user path",
			paths:    []string{"work.yaml"},
			contains: "--config",
			excludes: "or create",
		},
		{
			name:     "nil paths",
			paths:    nil,
			contains: "--config",
			excludes: "or create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("ForConfigNotFound() = %q, want %q", hint, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("ForConfigNotFound() = %q, must not contain %q", hint, tt.excludes)
			}
		})
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if hint := ForOutputDirectory(); !strings.Contains(hint, "writable") {
		t.Errorf("ForOutputDirectory() = %q", hint)
	}
}

func TestForHighlightStyle(t *testing.T) {
	t.Parallel()

	if got := ForHighlightStyle(nil); got != "" {
		t.Errorf("ForHighlightStyle(nil) = %q, want empty", got)
	}
	got := ForHighlightStyle([]string{"github", "monokai"})
	if got != "\n  hint: available: github, monokai" {
		t.Errorf("ForHighlightStyle() = %q", got)
	}
}

func TestForMathFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"none", 0, ""},
		{"one", 1, "\n  hint: 1 formula was kept as text; run with --verbose to see the LaTeX errors"},
		{"several", 3, "\n  hint: 3 formulas were kept as text; run with --verbose to see the LaTeX errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForMathFallbacks(tt.n); got != tt.want {
				t.Errorf("ForMathFallbacks(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestForMarkdownExtension(t *testing.T) {
	t.Parallel()

	if hint := ForMarkdownExtension(); !strings.Contains(hint, ".markdown") {
		t.Errorf("ForMarkdownExtension() = %q", hint)
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
