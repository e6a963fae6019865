// Package inline splits the raw text of a Markdown block into formatting
// spans: plain text, emphasis, inline code and TeX math.
//
// Spans never nest. At each position the first matching pattern wins, in the
// order display math, inline math, bold, italic, code; the leftmost match in
// the text is always taken first.
package inline

import "strings"

// Kind classifies a span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	InlineMath
	DisplayMath
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case InlineMath:
		return "inline-math"
	case DisplayMath:
		return "display-math"
	default:
		return "unknown"
	}
}

// Span is a classified piece of block text.
type Span struct {
	Kind Kind

	// Raw is the source text including delimiters.
	Raw string

	// Content is Raw without delimiters. Math content is trimmed.
	Content string
}

// matcher tries to match a delimited span at the start of s.
// It returns the raw length and the content, or n == 0 when nothing matches.
type matcher struct {
	kind      Kind
	open      string
	close     string
	multiline bool // content may cross line breaks
	noDollar  bool // content may not contain '$'
	nonEmpty  bool // content must have at least one byte
}

var matchers = []matcher{
	{kind: DisplayMath, open: "$$", close: "$$", multiline: true, noDollar: true, nonEmpty: true},
	{kind: InlineMath, open: "$", close: "$", multiline: true, noDollar: true, nonEmpty: true},
	{kind: Bold, open: "**", close: "**"},
	{kind: Italic, open: "*", close: "*"},
	{kind: Italic, open: "_", close: "_"},
	{kind: Code, open: "`", close: "`"},
}

func (m matcher) match(s string) (n int, content string) {
	if !strings.HasPrefix(s, m.open) {
		return 0, ""
	}
	rest := s[len(m.open):]
	end := strings.Index(rest, m.close)
	if end < 0 {
		return 0, ""
	}
	content = rest[:end]
	if m.nonEmpty && content == "" {
		return 0, ""
	}
	if m.noDollar && strings.Contains(content, "$") {
		return 0, ""
	}
	if !m.multiline && strings.ContainsAny(content, lineBreaks) {
		return 0, ""
	}
	return len(m.open) + end + len(m.close), content
}

// lineBreaks are the characters a single-line span cannot contain.
const lineBreaks = "\n\r\u2028\u2029"

// Split returns the spans of text in order. Spans whose raw text is blank,
// and delimiter pairs with nothing between them, are dropped.
func Split(text string) []Span {
	var spans []Span
	emit := func(s Span) {
		if strings.TrimSpace(s.Raw) == "" {
			return
		}
		if s.Kind != Plain && s.Content == "" {
			return
		}
		spans = append(spans, s)
	}

	last := 0
	for i := 0; i < len(text); {
		kind, n, content := matchAt(text[i:])
		if n == 0 {
			i++
			continue
		}
		if i > last {
			emit(Span{Kind: Plain, Raw: text[last:i], Content: text[last:i]})
		}
		if kind == InlineMath || kind == DisplayMath {
			content = strings.TrimSpace(content)
		}
		emit(Span{Kind: kind, Raw: text[i : i+n], Content: content})
		i += n
		last = i
	}
	if last < len(text) {
		emit(Span{Kind: Plain, Raw: text[last:], Content: text[last:]})
	}
	return spans
}

func matchAt(s string) (Kind, int, string) {
	switch s[0] {
	case '$', '*', '_', '`':
	default:
		return Plain, 0, ""
	}
	for _, m := range matchers {
		if n, content := m.match(s); n > 0 {
			return m.kind, n, content
		}
	}
	return Plain, 0, ""
}
