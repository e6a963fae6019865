package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MD2DOCX_CONFIG: config file name or path
	Timeout    time.Duration // MD2DOCX_TIMEOUT: per-document timeout
	InputDir   string        // MD2DOCX_INPUT_DIR: default input directory
	OutputDir  string        // MD2DOCX_OUTPUT_DIR: default output directory
	Title      string        // MD2DOCX_TITLE: document title
	Author     string        // MD2DOCX_AUTHOR: document author
	Math       *bool         // MD2DOCX_MATH: formula conversion on/off
	CodeStyle  string        // MD2DOCX_CODE_STYLE: highlighting style, enables highlighting
	Workers    int           // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":     true,
	"MD2DOCX_TIMEOUT":    true,
	"MD2DOCX_INPUT_DIR":  true,
	"MD2DOCX_OUTPUT_DIR": true,
	"MD2DOCX_TITLE":      true,
	"MD2DOCX_AUTHOR":     true,
	"MD2DOCX_MATH":       true,
	"MD2DOCX_CODE_STYLE": true,
	"MD2DOCX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers, durations and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		InputDir:   os.Getenv("MD2DOCX_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2DOCX_OUTPUT_DIR"),
		Title:      os.Getenv("MD2DOCX_TITLE"),
		Author:     os.Getenv("MD2DOCX_AUTHOR"),
		CodeStyle:  os.Getenv("MD2DOCX_CODE_STYLE"),
	}

	if timeout := os.Getenv("MD2DOCX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if math := os.Getenv("MD2DOCX_MATH"); math != "" {
		if b, err := strconv.ParseBool(math); err == nil {
			cfg.Math = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_AUTOR instead of MD2DOCX_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2DOCX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values; CLI flags are applied
// afterwards by mergeFlags, giving: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Title != "" {
		cfg.Document.Title = env.Title
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
	if env.Math != nil {
		cfg.Math.Enabled = env.Math
	}
	if env.CodeStyle != "" {
		cfg.Code.Highlight = true
		cfg.Code.Style = env.CodeStyle
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
}
