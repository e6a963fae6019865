// Package docx assembles a WordprocessingML (.docx) package from a small
// document model: paragraphs with styled runs and Office Math, tables, list
// numbering and a style sheet.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrUnknownList indicates a paragraph that references a list instance the
// body does not declare.
var ErrUnknownList = errors.New("paragraph references undeclared list")

// Application is written to docProps/app.xml.
const Application = "go-md2docx"

// Properties are the package metadata written to docProps/core.xml.
type Properties struct {
	Title   string
	Creator string
	Created time.Time
}

// Document is an assembled, immutable document ready for serialization.
type Document struct {
	body   Body
	styles StyleSheet
	props  Properties
}

// Assemble validates the style sheet and list references and wraps the body
// into a Document.
func Assemble(body Body, styles StyleSheet, props Properties) (*Document, error) {
	if err := styles.Validate(); err != nil {
		return nil, err
	}

	declared := make(map[int]bool, len(body.Lists))
	for _, l := range body.Lists {
		if l.NumID < 1 {
			return nil, fmt.Errorf("%w: invalid numbering id %d", ErrUnknownList, l.NumID)
		}
		if l.Level < 0 || l.Level >= maxListLevels {
			return nil, fmt.Errorf("%w: numbering id %d starts at level %d", ErrUnknownList, l.NumID, l.Level)
		}
		declared[l.NumID] = true
	}
	for i, b := range body.Blocks {
		p, ok := b.(*Paragraph)
		if !ok || p.Numbering == nil {
			continue
		}
		if !declared[p.Numbering.NumID] {
			return nil, fmt.Errorf("%w: block %d uses numbering id %d", ErrUnknownList, i, p.Numbering.NumID)
		}
		if p.Numbering.Level < 0 || p.Numbering.Level >= maxListLevels {
			return nil, fmt.Errorf("%w: block %d uses level %d", ErrUnknownList, i, p.Numbering.Level)
		}
	}

	if props.Created.IsZero() {
		props.Created = time.Now()
	}
	return &Document{body: body, styles: styles, props: props}, nil
}

// Body returns the document content.
func (d *Document) Body() Body {
	return d.body
}

// Bytes serializes the document into a .docx buffer.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the .docx package to w. Part order and content are
// deterministic; only the creation timestamps vary between runs.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name  string
		write func(*xmlWriter) error
	}{
		{partContentTypes, writeContentTypes},
		{partRels, func(x *xmlWriter) error { return writeRelationships(x, packageRelationships()) }},
		{partDocument, func(x *xmlWriter) error { return writeDocumentPart(x, d.body) }},
		{partDocumentRels, func(x *xmlWriter) error { return writeRelationships(x, documentRelationships()) }},
		{partStyles, func(x *xmlWriter) error { return writeStylesPart(x, d.styles) }},
		{partNumbering, func(x *xmlWriter) error { return writeNumberingPart(x, d.styles, d.body.Lists) }},
		{partSettings, writeSettingsPart},
		{partCore, func(x *xmlWriter) error { return writeCorePart(x, d.props) }},
		{partApp, func(x *xmlWriter) error { return writeAppPart(x, Application) }},
	}

	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: d.props.Created,
		})
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", p.name, err)
		}
		if err := p.write(newXMLWriter(fw)); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("closing package: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
