package inline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text is one span",
			input: "Just some words.",
			want:  []Span{{Kind: Plain, Raw: "Just some words.", Content: "Just some words."}},
		},
		{
			name:  "bold between plain",
			input: "Some **bold** text",
			want: []Span{
				{Kind: Plain, Raw: "Some ", Content: "Some "},
				{Kind: Bold, Raw: "**bold**", Content: "bold"},
				{Kind: Plain, Raw: " text", Content: " text"},
			},
		},
		{
			name:  "both italic forms",
			input: "*a* and _b_",
			want: []Span{
				{Kind: Italic, Raw: "*a*", Content: "a"},
				{Kind: Plain, Raw: " and ", Content: " and "},
				{Kind: Italic, Raw: "_b_", Content: "b"},
			},
		},
		{
			name:  "inline code",
			input: "run `go test` now",
			want: []Span{
				{Kind: Plain, Raw: "run ", Content: "run "},
				{Kind: Code, Raw: "`go test`", Content: "go test"},
				{Kind: Plain, Raw: " now", Content: " now"},
			},
		},
		{
			name:  "inline math content is trimmed",
			input: "area $ \\pi r^2 $.",
			want: []Span{
				{Kind: Plain, Raw: "area ", Content: "area "},
				{Kind: InlineMath, Raw: "$ \\pi r^2 $", Content: "\\pi r^2"},
				{Kind: Plain, Raw: ".", Content: "."},
			},
		},
		{
			name:  "display math wins over inline math",
			input: "$$E=mc^2$$",
			want:  []Span{{Kind: DisplayMath, Raw: "$$E=mc^2$$", Content: "E=mc^2"}},
		},
		{
			name:  "display math may span lines",
			input: "$$\na+b\n$$",
			want:  []Span{{Kind: DisplayMath, Raw: "$$\na+b\n$$", Content: "a+b"}},
		},
		{
			name:  "unclosed display falls back to inline after the first dollar",
			input: "$$x$",
			want: []Span{
				{Kind: Plain, Raw: "$", Content: "$"},
				{Kind: InlineMath, Raw: "$x$", Content: "x"},
			},
		},
		{
			name:  "math is matched before emphasis",
			input: "$a*b*c$",
			want:  []Span{{Kind: InlineMath, Raw: "$a*b*c$", Content: "a*b*c"}},
		},
		{
			name:  "underscores inside math are not italic",
			input: "$x_1 + x_2$",
			want:  []Span{{Kind: InlineMath, Raw: "$x_1 + x_2$", Content: "x_1 + x_2"}},
		},
		{
			name:  "lone asterisks pair up as italic",
			input: "2 * 3 and **open",
			want: []Span{
				{Kind: Plain, Raw: "2 ", Content: "2 "},
				{Kind: Italic, Raw: "* 3 and *", Content: " 3 and "},
				{Kind: Plain, Raw: "*open", Content: "*open"},
			},
		},
		{
			name:  "unclosed marker stays plain",
			input: "trailing *open",
			want:  []Span{{Kind: Plain, Raw: "trailing *open", Content: "trailing *open"}},
		},
		{
			name:  "emphasis does not cross lines",
			input: "*one\ntwo*",
			want:  []Span{{Kind: Plain, Raw: "*one\ntwo*", Content: "*one\ntwo*"}},
		},
		{
			name:  "nested emphasis is not supported",
			input: "**bold *italic* bold**",
			want:  []Span{{Kind: Bold, Raw: "**bold *italic* bold**", Content: "bold *italic* bold"}},
		},
		{
			name:  "blank plain spans between matches are dropped",
			input: "**a** *b*",
			want: []Span{
				{Kind: Bold, Raw: "**a**", Content: "a"},
				{Kind: Italic, Raw: "*b*", Content: "b"},
			},
		},
		{
			name:  "empty delimiters are dropped",
			input: "x **** y",
			want: []Span{
				{Kind: Plain, Raw: "x ", Content: "x "},
				{Kind: Plain, Raw: " y", Content: " y"},
			},
		},
		{
			name:  "lone dollar is plain",
			input: "costs $5",
			want:  []Span{{Kind: Plain, Raw: "costs $5", Content: "costs $5"}},
		},
		{
			name:  "malformed latex is still math",
			input: `$\foo{$`,
			want:  []Span{{Kind: InlineMath, Raw: `$\foo{$`, Content: `\foo{`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplit_KeepsNonBlankText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Some **bold** and $x^2$ text.", "Some **bold** and $x^2$ text."},
		{"`a` _b_ *c* $d$ $$e$$", "`a`_b_*c*$d$$$e$$"},
		{"no markup at all", "no markup at all"},
	}
	for _, tt := range tests {
		var raw string
		for _, s := range Split(tt.input) {
			raw += s.Raw
		}
		if raw != tt.want {
			t.Errorf("concatenated spans of %q = %q, want %q", tt.input, raw, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{
		Plain:       "plain",
		Bold:        "bold",
		Italic:      "italic",
		Code:        "code",
		InlineMath:  "inline-math",
		DisplayMath: "display-math",
		Kind(42):    "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
