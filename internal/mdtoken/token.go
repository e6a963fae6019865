// Package mdtoken turns Markdown source into an ordered stream of block
// tokens. Text fields keep the raw inline markup of each block so that a
// later stage can apply its own inline formatting rules.
package mdtoken

// Kind identifies a token variant.
type Kind int

const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindList
	KindBlockquote
	KindCode
	KindRule
	KindTable
	KindSpace
	KindOther
)

var kindNames = map[Kind]string{
	KindHeading:    "heading",
	KindParagraph:  "paragraph",
	KindList:       "list",
	KindBlockquote: "blockquote",
	KindCode:       "code",
	KindRule:       "hr",
	KindTable:      "table",
	KindSpace:      "space",
	KindOther:      "other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a block-level unit. The set of implementations is closed.
type Token interface {
	Kind() Kind
	token()
}

// Heading is an ATX or setext heading.
type Heading struct {
	Depth int
	Text  string
}

// Paragraph is a run of text lines.
type Paragraph struct {
	Text string
}

// List is an ordered or bullet list.
type List struct {
	Ordered bool
	Start   int
	Items   []ListItem
}

// ListItem is one list entry. Nested lists are kept apart from Text.
type ListItem struct {
	Text    string
	Task    bool
	Checked bool
	Nested  []*List
}

// Blockquote holds the tokens of its content.
type Blockquote struct {
	Tokens []Token
}

// Code is a fenced or indented code block.
type Code struct {
	Lang string
	Text string
}

// Rule is a thematic break.
type Rule struct{}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table is a GFM table. Rows may be ragged; consumers normalize widths.
type Table struct {
	Header []string
	Align  []Alignment
	Rows   [][]string
}

// Space marks a run of blank lines between two blocks.
type Space struct {
	Lines int
}

// Other is a block the token model has no variant for (HTML blocks, ...).
type Other struct {
	Name string
	Raw  string
}

func (*Heading) Kind() Kind    { return KindHeading }
func (*Paragraph) Kind() Kind  { return KindParagraph }
func (*List) Kind() Kind       { return KindList }
func (*Blockquote) Kind() Kind { return KindBlockquote }
func (*Code) Kind() Kind       { return KindCode }
func (*Rule) Kind() Kind       { return KindRule }
func (*Table) Kind() Kind      { return KindTable }
func (*Space) Kind() Kind      { return KindSpace }
func (*Other) Kind() Kind      { return KindOther }

func (*Heading) token()    {}
func (*Paragraph) token()  {}
func (*List) token()       {}
func (*Blockquote) token() {}
func (*Code) token()       {}
func (*Rule) token()       {}
func (*Table) token()      {}
func (*Space) token()      {}
func (*Other) token()      {}
