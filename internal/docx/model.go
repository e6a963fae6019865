package docx

// Block is a top-level body element. Only *Paragraph and *Table implement it.
type Block interface {
	isBlock()
}

// Inline is a paragraph child. Only *Run and *Math implement it.
type Inline interface {
	isInline()
}

// Spacing is paragraph spacing in twentieths of a point.
// Line is in 240ths of a line when LineRule is LineAuto.
type Spacing struct {
	Before   int
	After    int
	Line     int
	LineRule LineRule
}

// LineRule controls how Spacing.Line is interpreted.
type LineRule string

const (
	LineAuto    LineRule = "auto"
	LineAtLeast LineRule = "atLeast"
	LineExact   LineRule = "exact"
)

// Indent is paragraph indentation in twips.
type Indent struct {
	Left    int
	Hanging int
}

// Border is one edge of a paragraph, table or cell border.
// Size is in eighths of a point.
type Border struct {
	Style BorderStyle
	Size  int
	Space int
	Color string
}

// BorderStyle is the ST_Border value of an edge.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderSingle BorderStyle = "single"
	BorderDouble BorderStyle = "double"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
)

// ParagraphBorders are the edges of a paragraph. Nil edges are omitted.
type ParagraphBorders struct {
	Top    *Border
	Left   *Border
	Bottom *Border
	Right  *Border
}

// Shading is a background fill. Fill is a 6-hex colour.
type Shading struct {
	Pattern string
	Fill    string
}

// Numbering attaches a paragraph to a numbering instance.
type Numbering struct {
	NumID int
	Level int
}

// Paragraph is a w:p element.
type Paragraph struct {
	Style     string
	Runs      []Inline
	Spacing   *Spacing
	Indent    *Indent
	Borders   *ParagraphBorders
	Shading   *Shading
	Numbering *Numbering
}

func (*Paragraph) isBlock() {}

// Text returns the concatenated text of the paragraph's plain runs.
func (p *Paragraph) Text() string {
	var n int
	for _, r := range p.Runs {
		if run, ok := r.(*Run); ok {
			n += len(run.Text)
		}
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		if run, ok := r.(*Run); ok {
			buf = append(buf, run.Text...)
		}
	}
	return string(buf)
}

// Run is a w:r element. Zero-valued properties inherit from the paragraph style.
// Size is in half-points.
type Run struct {
	Text   string
	Font   string
	Size   int
	Bold   bool
	Italic bool
	Color  string

	// Preserve writes line feeds as w:br and tabs as w:tab.
	Preserve bool
}

func (*Run) isInline() {}

// TableBorders are the edges of a table or a table cell.
type TableBorders struct {
	Top              *Border
	Left             *Border
	Bottom           *Border
	Right            *Border
	InsideHorizontal *Border
	InsideVertical   *Border
}

// Margins are cell margins in twips.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// HeightRule is the ST_HeightRule of a table row.
type HeightRule string

const (
	HeightAuto    HeightRule = "auto"
	HeightAtLeast HeightRule = "atLeast"
	HeightExact   HeightRule = "exact"
)

// VerticalAlign is the vertical alignment of cell content.
type VerticalAlign string

const (
	VAlignTop    VerticalAlign = "top"
	VAlignCenter VerticalAlign = "center"
	VAlignBottom VerticalAlign = "bottom"
)

// Table is a w:tbl element.
type Table struct {
	Rows []*TableRow

	// WidthPct is the table width in percent of the text column.
	WidthPct int
	Borders  *TableBorders

	// ColumnWidths are grid column widths in twips.
	ColumnWidths []int
	Margins      *Margins
}

func (*Table) isBlock() {}

// TableRow is a w:tr element.
type TableRow struct {
	Cells      []*TableCell
	Header     bool
	Height     int
	HeightRule HeightRule
}

// TableCell is a w:tc element.
type TableCell struct {
	Paragraphs []*Paragraph
	WidthPct   int
	Borders    *TableBorders
	Shading    *Shading
	Margins    *Margins
	VAlign     VerticalAlign
}

// ListInstance is one concrete numbering (w:num) used by list paragraphs.
type ListInstance struct {
	NumID   int
	Ordered bool
	Start   int

	// Level is the list level Start applies to.
	Level int
}

// Body is the translated content of a document before assembly.
type Body struct {
	Blocks []Block
	Lists  []ListInstance
}
