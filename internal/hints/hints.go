// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, config.AppDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHighlightStyle lists the code highlighting styles that can be used.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMathFallbacks explains formulas that were kept as text.
// Returns empty when every formula converted.
func ForMathFallbacks(n int) string {
	if n <= 0 {
		return ""
	}
	noun := "formula was"
	if n > 1 {
		noun = "formulas were"
	}
	return format(fmt.Sprintf("%d %s kept as text; run with --verbose to see the LaTeX errors", n, noun))
}

// ForMarkdownExtension returns a hint for inputs that are not Markdown files.
func ForMarkdownExtension() string {
	return format("input files must end in .md or .markdown")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
