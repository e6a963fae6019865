package md2docx

import (
	"regexp"
	"strings"
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	fenceOpen = regexp.MustCompile("^ {0,3}(```|~~~)")
)

// maxBlankLines is the longest blank-line run kept outside code fences.
// Any blank line between two blocks already yields one spacer paragraph.
const maxBlankLines = 2

// Preprocess normalizes Markdown before tokenization: it strips a leading
// byte order mark, converts line endings to \n and caps runs of blank lines
// outside fenced code.
func Preprocess(content string) string {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return compressBlankLines(content)
}

// compressBlankLines limits consecutive blank lines to maxBlankLines,
// leaving fenced code untouched.
func compressBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	out := lines[:0]
	var fence string
	blank := 0
	for _, line := range lines {
		if m := fenceOpen.FindStringSubmatch(line); m != nil {
			switch {
			case fence == "":
				fence = m[1]
			case m[1] == fence:
				fence = ""
			}
		}
		if fence == "" && strings.TrimSpace(line) == "" {
			blank++
			if blank > maxBlankLines {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
