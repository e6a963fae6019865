package translate

import "github.com/alnah/go-md2docx/internal/docx"

// Run sizes are in half-points.
const (
	textSize         = 24
	codeBlockSize    = 20
	displayMathSize  = 22
	inlineMathSize   = 24
	mathFallbackTint = "0066CC"
)

const (
	listIndent  = 720
	listHanging = 360
	quoteIndent = 720

	// maxListLevel is the deepest numbering level (0-based).
	maxListLevel = 8
)

func spacing(before, after int) *docx.Spacing {
	return &docx.Spacing{Before: before, After: after}
}

func lineSpacing(before, after int) *docx.Spacing {
	return &docx.Spacing{Before: before, After: after, Line: 300, LineRule: docx.LineAuto}
}

var (
	headingSpacing   = spacing(200, 100)
	paragraphSpacing = lineSpacing(60, 60)
	quoteSpacing     = lineSpacing(60, 60)
	codeSpacing      = lineSpacing(80, 80)
	ruleSpacing      = spacing(120, 120)
	spacerSpacing    = spacing(80, 80)
)

// listItemSpacing gives the first item of a list more room above it.
func listItemSpacing(first bool) *docx.Spacing {
	if first {
		return lineSpacing(80, 40)
	}
	return lineSpacing(40, 40)
}

func quoteBorders() *docx.ParagraphBorders {
	return &docx.ParagraphBorders{
		Left: &docx.Border{Style: docx.BorderSingle, Size: 15, Space: 15, Color: "AAAAAA"},
	}
}

func ruleBorders() *docx.ParagraphBorders {
	return &docx.ParagraphBorders{
		Bottom: &docx.Border{Style: docx.BorderSingle, Size: 1, Space: 1, Color: "AAAAAA"},
	}
}

func codeShading() *docx.Shading {
	return &docx.Shading{Pattern: "clear", Fill: "F5F5F5"}
}

// tableBorders is shared by the table and each of its cells.
func tableBorders() *docx.TableBorders {
	outer := func() *docx.Border {
		return &docx.Border{Style: docx.BorderSingle, Size: 10, Color: "000000"}
	}
	inner := func() *docx.Border {
		return &docx.Border{Style: docx.BorderSingle, Size: 6, Color: "666666"}
	}
	return &docx.TableBorders{
		Top:              outer(),
		Left:             outer(),
		Bottom:           outer(),
		Right:            outer(),
		InsideHorizontal: inner(),
		InsideVertical:   inner(),
	}
}

// Table row layout. Heights are in twips.
type rowLayout struct {
	header  bool
	height  int
	margins docx.Margins
	spacing *docx.Spacing
}

var (
	headerRow = rowLayout{
		header:  true,
		height:  600,
		margins: docx.Margins{Top: 150, Bottom: 150, Left: 150, Right: 150},
		spacing: spacing(120, 120),
	}
	dataRow = rowLayout{
		height:  400,
		margins: docx.Margins{Top: 120, Bottom: 120, Left: 150, Right: 150},
		spacing: spacing(100, 100),
	}
	tableMargins = docx.Margins{Top: 200, Bottom: 200}
)
