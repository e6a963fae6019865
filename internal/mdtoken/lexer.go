package mdtoken

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ErrTokenize indicates the Markdown parser failed.
var ErrTokenize = errors.New("markdown tokenization failed")

// minSpaceLines is the shortest blank-line run reported as a Space token.
const minSpaceLines = 1

// Task list markers as they appear in the raw item text.
var taskMarker = regexp.MustCompile(`^\[[ xX]\][ \t]*`)

// Lexer tokenizes Markdown with GitHub Flavored Markdown extensions.
// A Lexer is safe for concurrent use.
type Lexer struct {
	parser parser.Parser
}

// NewLexer creates a Lexer with GFM enabled (tables, strikethrough,
// autolinks, task lists).
func NewLexer() *Lexer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	return &Lexer{parser: md.Parser()}
}

// Lex parses source and returns its top-level block tokens in document order.
func (l *Lexer) Lex(source string) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("%w: %v", ErrTokenize, r)
		}
	}()

	src := []byte(source)
	doc := l.parser.Parse(text.NewReader(src))

	prevStop := -1
	var prev Token
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		start, stop, ok := blockSpan(n)
		if !ok {
			start, stop = nextContentLine(src, max(prevStop, 0))
		}
		if _, fenced := n.(*ast.FencedCodeBlock); fenced {
			stop = closingFence(src, stop)
		}
		if prev != nil && spaceAfter(prev) {
			if blank := maxBlankRun(src, prevStop, start); blank >= minSpaceLines {
				tokens = append(tokens, &Space{Lines: blank})
			}
		}
		prevStop = stop
		prev = blockToken(n, src)
		tokens = append(tokens, prev)
	}
	return tokens, nil
}

// spaceAfter reports whether blank lines following tok are kept as a Space
// token. Headings, rules and HTML blocks absorb their trailing blank lines.
func spaceAfter(tok Token) bool {
	switch tok.(type) {
	case *Heading, *Rule, *Other:
		return false
	default:
		return true
	}
}

func blockToken(n ast.Node, src []byte) Token {
	switch n := n.(type) {
	case *ast.Heading:
		return &Heading{Depth: n.Level, Text: rawText(n, src)}
	case *ast.Paragraph, *ast.TextBlock:
		return &Paragraph{Text: rawText(n, src)}
	case *ast.List:
		return listToken(n, src)
	case *ast.Blockquote:
		bq := &Blockquote{}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			bq.Tokens = append(bq.Tokens, blockToken(c, src))
		}
		return bq
	case *ast.FencedCodeBlock:
		return &Code{Lang: string(n.Language(src)), Text: rawText(n, src)}
	case *ast.CodeBlock:
		return &Code{Text: rawText(n, src)}
	case *ast.ThematicBreak:
		return &Rule{}
	case *east.Table:
		return tableToken(n, src)
	case *ast.HTMLBlock:
		return &Other{Name: "html", Raw: rawText(n, src)}
	default:
		return &Other{Name: n.Kind().String(), Raw: rawText(n, src)}
	}
}

func listToken(n *ast.List, src []byte) *List {
	l := &List{Ordered: n.IsOrdered(), Start: n.Start}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		l.Items = append(l.Items, listItem(item, src))
	}
	return l
}

func listItem(n *ast.ListItem, src []byte) ListItem {
	var item ListItem
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if nested, ok := c.(*ast.List); ok {
			item.Nested = append(item.Nested, listToken(nested, src))
			continue
		}
		if len(parts) == 0 {
			if box, ok := c.FirstChild().(*east.TaskCheckBox); ok {
				item.Task = true
				item.Checked = box.IsChecked
			}
		}
		if s := rawText(c, src); s != "" {
			parts = append(parts, s)
		}
	}
	item.Text = strings.Join(parts, "\n")
	if item.Task {
		item.Text = taskMarker.ReplaceAllString(item.Text, "")
	}
	return item
}

func tableToken(n *east.Table, src []byte) *Table {
	t := &Table{}
	for _, a := range n.Alignments {
		t.Align = append(t.Align, alignment(a))
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			t.Header = cellTexts(row, src)
		case *east.TableRow:
			t.Rows = append(t.Rows, cellTexts(row, src))
		}
	}
	return t
}

func cellTexts(row ast.Node, src []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		s := rawText(c, src)
		if s == "" {
			s = inlineText(c, src)
		}
		cells = append(cells, strings.ReplaceAll(strings.TrimSpace(s), `\|`, "|"))
	}
	return cells
}

func alignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// rawText joins the source lines of a block, inline markup included.
func rawText(n ast.Node, src []byte) string {
	if n.Type() != ast.TypeBlock {
		return ""
	}
	lines := n.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// inlineText collects the text segments under n. Used for cells whose
// source lines were not retained by the parser.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// blockSpan returns the byte range covered by the source lines of n and its
// block descendants, or by the text segments of blocks that keep no lines
// (table cells). ok is false when nothing is found (thematic breaks).
func blockSpan(n ast.Node) (start, stop int, ok bool) {
	start, stop = -1, -1
	extend := func(seg text.Segment) {
		if start < 0 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > stop {
			stop = seg.Stop
		}
	}
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			extend(t.Segment)
			return ast.WalkContinue, nil
		}
		if c.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			extend(lines.At(i))
		}
		return ast.WalkContinue, nil
	})
	return start, stop, start >= 0
}

// nextContentLine returns the range of the first non-blank line after the
// line that contains offset from. Blocks without source lines are located
// this way.
func nextContentLine(src []byte, from int) (start, stop int) {
	from = min(from, len(src))
	if from > 0 && src[from-1] != '\n' {
		i := bytes.IndexByte(src[from:], '\n')
		if i < 0 {
			return len(src), len(src)
		}
		from += i + 1
	}
	for from < len(src) {
		end := len(src)
		if i := bytes.IndexByte(src[from:], '\n'); i >= 0 {
			end = from + i + 1
		}
		if len(bytes.TrimSpace(src[from:end])) > 0 {
			return from, end
		}
		from = end
	}
	return len(src), len(src)
}

// closingFence extends stop over the closing fence of a code block, which is
// not part of its source lines.
func closingFence(src []byte, stop int) int {
	start, end := nextContentLine(src, stop)
	line := bytes.TrimLeft(src[start:end], " ")
	if bytes.HasPrefix(line, []byte("```")) || bytes.HasPrefix(line, []byte("~~~")) {
		return end
	}
	return stop
}

// maxBlankRun returns the longest run of blank lines between the line that
// contains offset from and the line that contains offset to.
func maxBlankRun(src []byte, from, to int) int {
	if from > len(src) {
		from = len(src)
	}
	if to > len(src) {
		to = len(src)
	}
	// Skip the remainder of the line holding the previous block's end.
	if from > 0 && src[from-1] != '\n' {
		i := bytes.IndexByte(src[from:], '\n')
		if i < 0 {
			return 0
		}
		from += i + 1
	}
	// Exclude the prefix of the line holding the next block's start.
	to = bytes.LastIndexByte(src[:to], '\n') + 1
	if to <= from {
		return 0
	}

	var run, longest int
	for _, line := range bytes.SplitAfter(src[from:to], []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
