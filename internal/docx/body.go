package docx

import (
	"fmt"
	"strings"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsM = "http://schemas.openxmlformats.org/officeDocument/2006/math"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	// pctUnit converts whole percents to fiftieths of a percent (ST_Pct).
	pctUnit = 50
)

// writeDocumentPart writes word/document.xml.
func writeDocumentPart(x *xmlWriter, body Body) error {
	x.header()
	x.start("w:document", "xmlns:w", nsW, "xmlns:m", nsM, "xmlns:r", nsR)
	x.start("w:body")
	for _, b := range body.Blocks {
		if err := writeBlock(x, b); err != nil {
			return err
		}
	}
	writeSection(x)
	x.end("w:body")
	x.end("w:document")
	return x.flush()
}

// writeSection writes the final section properties: US Letter, 1 inch margins.
func writeSection(x *xmlWriter) {
	x.start("w:sectPr")
	x.leaf("w:pgSz", "w:w", "12240", "w:h", "15840")
	x.leaf("w:pgMar",
		"w:top", "1440", "w:right", "1440", "w:bottom", "1440", "w:left", "1440",
		"w:header", "708", "w:footer", "708", "w:gutter", "0")
	x.end("w:sectPr")
}

func writeBlock(x *xmlWriter, b Block) error {
	switch b := b.(type) {
	case *Paragraph:
		return writeParagraph(x, b)
	case *Table:
		return writeTable(x, b)
	default:
		return fmt.Errorf("unsupported block type %T", b)
	}
}

func writeParagraph(x *xmlWriter, p *Paragraph) error {
	x.start("w:p")
	writeParagraphProperties(x, p)
	for _, in := range p.Runs {
		switch in := in.(type) {
		case *Run:
			writeRun(x, in)
		case *Math:
			if err := writeMath(x, in); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported inline type %T", in)
		}
	}
	x.end("w:p")
	return x.err
}

// writeParagraphProperties follows the CT_PPr element order.
func writeParagraphProperties(x *xmlWriter, p *Paragraph) {
	if p.Style == "" && p.Numbering == nil && p.Borders == nil && p.Shading == nil && p.Spacing == nil && p.Indent == nil {
		return
	}
	x.start("w:pPr")
	if p.Style != "" {
		x.val("w:pStyle", p.Style)
	}
	if p.Numbering != nil {
		x.start("w:numPr")
		x.val("w:ilvl", itoa(p.Numbering.Level))
		x.val("w:numId", itoa(p.Numbering.NumID))
		x.end("w:numPr")
	}
	if p.Borders != nil {
		x.start("w:pBdr")
		writeBorder(x, "w:top", p.Borders.Top)
		writeBorder(x, "w:left", p.Borders.Left)
		writeBorder(x, "w:bottom", p.Borders.Bottom)
		writeBorder(x, "w:right", p.Borders.Right)
		x.end("w:pBdr")
	}
	if p.Shading != nil {
		writeShading(x, p.Shading)
	}
	if p.Spacing != nil {
		writeSpacing(x, *p.Spacing)
	}
	if p.Indent != nil {
		writeIndent(x, *p.Indent)
	}
	x.end("w:pPr")
}

func writeSpacing(x *xmlWriter, s Spacing) {
	attrs := []string{"w:before", itoa(s.Before), "w:after", itoa(s.After)}
	if s.Line > 0 {
		rule := s.LineRule
		if rule == "" {
			rule = LineAuto
		}
		attrs = append(attrs, "w:line", itoa(s.Line), "w:lineRule", string(rule))
	}
	x.leaf("w:spacing", attrs...)
}

func writeIndent(x *xmlWriter, ind Indent) {
	attrs := []string{"w:left", itoa(ind.Left)}
	if ind.Hanging > 0 {
		attrs = append(attrs, "w:hanging", itoa(ind.Hanging))
	}
	x.leaf("w:ind", attrs...)
}

func writeBorder(x *xmlWriter, name string, b *Border) {
	if b == nil {
		return
	}
	color := b.Color
	if color == "" {
		color = "auto"
	}
	x.leaf(name,
		"w:val", string(b.Style),
		"w:sz", itoa(b.Size),
		"w:space", itoa(b.Space),
		"w:color", color)
}

func writeShading(x *xmlWriter, s *Shading) {
	pattern := s.Pattern
	if pattern == "" {
		pattern = "clear"
	}
	x.leaf("w:shd", "w:val", pattern, "w:color", "auto", "w:fill", s.Fill)
}

func writeRun(x *xmlWriter, r *Run) {
	x.start("w:r")
	writeRunProperties(x, r.Font, r.Size, r.Bold, r.Italic, r.Color)
	if !r.Preserve {
		x.textElement("w:t", r.Text)
		x.end("w:r")
		return
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			x.leaf("w:br")
		}
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				x.leaf("w:tab")
			}
			if chunk != "" {
				x.textElement("w:t", chunk)
			}
		}
	}
	x.end("w:r")
}

// writeRunProperties follows the CT_RPr element order.
func writeRunProperties(x *xmlWriter, font string, size int, bold, italic bool, color string) {
	if font == "" && size == 0 && !bold && !italic && color == "" {
		return
	}
	x.start("w:rPr")
	if font != "" {
		x.leaf("w:rFonts", "w:ascii", font, "w:hAnsi", font, "w:cs", font, "w:eastAsia", font)
	}
	if bold {
		x.leaf("w:b")
		x.leaf("w:bCs")
	}
	if italic {
		x.leaf("w:i")
		x.leaf("w:iCs")
	}
	if color != "" {
		x.val("w:color", color)
	}
	if size > 0 {
		x.val("w:sz", itoa(size))
		x.val("w:szCs", itoa(size))
	}
	x.end("w:rPr")
}

func writeTable(x *xmlWriter, t *Table) error {
	x.start("w:tbl")
	x.start("w:tblPr")
	if t.WidthPct > 0 {
		x.leaf("w:tblW", "w:w", itoa(t.WidthPct*pctUnit), "w:type", "pct")
	}
	writeTableBorders(x, "w:tblBorders", t.Borders)
	x.leaf("w:tblLayout", "w:type", "fixed")
	if t.Margins != nil {
		writeMargins(x, "w:tblCellMar", t.Margins)
	}
	x.end("w:tblPr")

	x.start("w:tblGrid")
	for _, w := range t.ColumnWidths {
		x.leaf("w:gridCol", "w:w", itoa(w))
	}
	x.end("w:tblGrid")

	for _, row := range t.Rows {
		x.start("w:tr")
		if row.Height > 0 || row.Header {
			x.start("w:trPr")
			if row.Height > 0 {
				rule := row.HeightRule
				if rule == "" {
					rule = HeightAtLeast
				}
				x.leaf("w:trHeight", "w:val", itoa(row.Height), "w:hRule", string(rule))
			}
			if row.Header {
				x.leaf("w:tblHeader")
			}
			x.end("w:trPr")
		}
		for _, cell := range row.Cells {
			if err := writeCell(x, cell); err != nil {
				return err
			}
		}
		x.end("w:tr")
	}
	x.end("w:tbl")
	return x.err
}

func writeCell(x *xmlWriter, c *TableCell) error {
	x.start("w:tc")
	x.start("w:tcPr")
	if c.WidthPct > 0 {
		x.leaf("w:tcW", "w:w", itoa(c.WidthPct*pctUnit), "w:type", "pct")
	}
	writeTableBorders(x, "w:tcBorders", c.Borders)
	if c.Shading != nil {
		writeShading(x, c.Shading)
	}
	if c.Margins != nil {
		writeMargins(x, "w:tcMar", c.Margins)
	}
	if c.VAlign != "" {
		x.val("w:vAlign", string(c.VAlign))
	}
	x.end("w:tcPr")

	// A cell must end with a paragraph.
	if len(c.Paragraphs) == 0 {
		x.leaf("w:p")
	}
	for _, p := range c.Paragraphs {
		if err := writeParagraph(x, p); err != nil {
			return err
		}
	}
	x.end("w:tc")
	return x.err
}

func writeTableBorders(x *xmlWriter, name string, b *TableBorders) {
	if b == nil {
		return
	}
	x.start(name)
	writeBorder(x, "w:top", b.Top)
	writeBorder(x, "w:left", b.Left)
	writeBorder(x, "w:bottom", b.Bottom)
	writeBorder(x, "w:right", b.Right)
	writeBorder(x, "w:insideH", b.InsideHorizontal)
	writeBorder(x, "w:insideV", b.InsideVertical)
	x.end(name)
}

func writeMargins(x *xmlWriter, name string, m *Margins) {
	x.start(name)
	x.leaf("w:top", "w:w", itoa(m.Top), "w:type", "dxa")
	x.leaf("w:left", "w:w", itoa(m.Left), "w:type", "dxa")
	x.leaf("w:bottom", "w:w", itoa(m.Bottom), "w:type", "dxa")
	x.leaf("w:right", "w:w", itoa(m.Right), "w:type", "dxa")
	x.end(name)
}
