package docx

import (
	"encoding/xml"
	"io"
	"strconv"
)

// xmlWriter emits prefixed WordprocessingML element names verbatim and keeps
// the first error, so part writers can be written without per-call checks.
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func newXMLWriter(w io.Writer) *xmlWriter {
	return &xmlWriter{enc: xml.NewEncoder(w)}
}

func (x *xmlWriter) header() {
	x.token(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8" standalone="yes"`)})
}

// start opens an element. attrs are name/value pairs.
func (x *xmlWriter) start(name string, attrs ...string) {
	if len(attrs)%2 != 0 {
		panic("docx: odd attribute list for " + name)
	}
	el := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i < len(attrs); i += 2 {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: attrs[i]}, Value: attrs[i+1]})
	}
	x.token(el)
}

func (x *xmlWriter) end(name string) {
	x.token(xml.EndElement{Name: xml.Name{Local: name}})
}

// leaf writes an element without children.
func (x *xmlWriter) leaf(name string, attrs ...string) {
	x.start(name, attrs...)
	x.end(name)
}

// val writes <name w:val="v"/>, the most common property shape.
func (x *xmlWriter) val(name, v string) {
	x.leaf(name, "w:val", v)
}

func (x *xmlWriter) text(s string) {
	x.token(xml.CharData(s))
}

// textElement writes a text element that keeps leading and trailing spaces.
func (x *xmlWriter) textElement(name, s string) {
	x.start(name, "xml:space", "preserve")
	x.text(s)
	x.end(name)
}

func (x *xmlWriter) token(t xml.Token) {
	if x.err != nil {
		return
	}
	x.err = x.enc.EncodeToken(t)
}

func (x *xmlWriter) flush() error {
	if x.err != nil {
		return x.err
	}
	return x.enc.Flush()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
