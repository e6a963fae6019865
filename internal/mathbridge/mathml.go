package mathbridge

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
)

// element is a parsed MathML element. Character data is kept only for token
// elements (mi, mn, mo, mtext, ms).
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	text     string
}

func (e *element) attr(name string) string {
	return e.attrs[name]
}

var errMathError = errors.New("math engine reported an error")

// parseMathML decodes s into an element tree rooted at <math>.
func parseMathML(s string) (*element, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	var stack []*element
	var root *element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse mathml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil || root.name != "math" {
		return nil, errors.New("parse mathml: missing <math> root")
	}
	return root, nil
}

// toOMML converts a MathML <math> tree into Office Math nodes.
func toOMML(root *element) ([]docx.MathNode, error) {
	return convertSeq(root.children)
}

// naryChars are the operators rendered as m:nary with the next sibling as
// their operand.
var naryChars = map[string]bool{
	"∑": true, "∏": true, "∐": true, "⋂": true, "⋃": true, "⋀": true,
	"⋁": true, "⨀": true, "⨁": true, "⨂": true, "⨄": true, "⨆": true,
	"∫": true, "∬": true, "∭": true, "⨌": true, "∮": true, "∯": true, "∰": true,
}

// accentChars are over-marks rendered as m:acc.
var accentChars = map[string]bool{
	"^": true, "ˆ": true, "̂": true, "~": true, "˜": true, "̃": true,
	"¯": true, "‾": true, "̄": true, "→": true, "⃗": true, "˙": true,
	"̇": true, "¨": true, "̈": true, "ˇ": true, "̌": true, "´": true,
	"`": true, "˘": true, "⏞": true, "⏟": true,
}

// convertSeq converts siblings. An n-ary operator absorbs the element that
// follows it as its operand.
func convertSeq(els []*element) ([]docx.MathNode, error) {
	var out []docx.MathNode
	for i := 0; i < len(els); i++ {
		nodes, err := convert(els[i])
		if err != nil {
			return nil, err
		}
		if len(nodes) == 1 {
			if n, ok := nodes[0].(*docx.Nary); ok && n.Body == nil && i+1 < len(els) {
				body, err := convert(els[i+1])
				if err != nil {
					return nil, err
				}
				n.Body = body
				i++
			}
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func convert(el *element) ([]docx.MathNode, error) {
	switch el.name {
	case "mi":
		text := strings.TrimSpace(el.text)
		upright := el.attr("mathvariant") == "normal" || len([]rune(text)) > 1
		return textNode(text, upright), nil
	case "mn":
		return textNode(strings.TrimSpace(el.text), false), nil
	case "mo":
		text := strings.TrimSpace(el.text)
		if naryChars[text] {
			return []docx.MathNode{&docx.Nary{Char: text}}, nil
		}
		return textNode(text, true), nil
	case "mtext", "ms":
		return textNode(el.text, true), nil

	case "mrow", "mstyle", "mpadded", "menclose":
		return convertSeq(el.children)
	case "semantics":
		if len(el.children) == 0 {
			return nil, nil
		}
		return convert(el.children[0])
	case "mspace", "mphantom", "annotation", "annotation-xml", "none":
		return nil, nil
	case "merror":
		return nil, errMathError

	case "mfrac":
		args, err := arguments(el, 2)
		if err != nil {
			return nil, err
		}
		lt := strings.TrimSpace(el.attr("linethickness"))
		noBar := lt == "0" || strings.HasPrefix(lt, "0p") || strings.HasPrefix(lt, "0e") || strings.HasPrefix(lt, "0.0")
		return one(&docx.Fraction{Num: args[0], Den: args[1], NoBar: noBar}), nil

	case "msub", "msup", "msubsup":
		return convertScript(el)

	case "msqrt":
		body, err := convertSeq(el.children)
		if err != nil {
			return nil, err
		}
		return one(&docx.Radical{Body: nonNil(body)}), nil
	case "mroot":
		args, err := arguments(el, 2)
		if err != nil {
			return nil, err
		}
		return one(&docx.Radical{Degree: nonNil(args[1]), Body: args[0]}), nil

	case "munder", "mover", "munderover":
		return convertUnderOver(el)

	case "mfenced":
		return convertFenced(el)

	case "mtable":
		return convertTable(el)

	default:
		return nil, fmt.Errorf("unsupported mathml element <%s>", el.name)
	}
}

func textNode(text string, upright bool) []docx.MathNode {
	if text == "" {
		return nil
	}
	return one(&docx.MathText{Text: text, Upright: upright})
}

func one(n docx.MathNode) []docx.MathNode {
	return []docx.MathNode{n}
}

// nonNil turns an absent argument into a present but empty one.
func nonNil(nodes []docx.MathNode) []docx.MathNode {
	if nodes == nil {
		return []docx.MathNode{}
	}
	return nodes
}

// arguments converts the n positional children of a layout element.
func arguments(el *element, n int) ([][]docx.MathNode, error) {
	if len(el.children) != n {
		return nil, fmt.Errorf("<%s> has %d arguments, want %d", el.name, len(el.children), n)
	}
	args := make([][]docx.MathNode, n)
	for i, c := range el.children {
		nodes, err := convert(c)
		if err != nil {
			return nil, err
		}
		args[i] = nodes
	}
	return args, nil
}

// naryBase reports whether the base of a script element is a large operator.
func naryBase(base []docx.MathNode) (*docx.Nary, bool) {
	if len(base) != 1 {
		return nil, false
	}
	n, ok := base[0].(*docx.Nary)
	return n, ok
}

func convertScript(el *element) ([]docx.MathNode, error) {
	want := 2
	if el.name == "msubsup" {
		want = 3
	}
	args, err := arguments(el, want)
	if err != nil {
		return nil, err
	}

	var sub, sup []docx.MathNode
	switch el.name {
	case "msub":
		sub = nonNil(args[1])
	case "msup":
		sup = nonNil(args[1])
	default:
		sub, sup = nonNil(args[1]), nonNil(args[2])
	}

	if n, ok := naryBase(args[0]); ok {
		n.Sub, n.Sup = sub, sup
		return one(n), nil
	}
	return one(&docx.Script{Base: args[0], Sub: sub, Sup: sup}), nil
}

func convertUnderOver(el *element) ([]docx.MathNode, error) {
	want := 2
	if el.name == "munderover" {
		want = 3
	}
	args, err := arguments(el, want)
	if err != nil {
		return nil, err
	}
	base := args[0]

	var under, over []docx.MathNode
	switch el.name {
	case "munder":
		under = nonNil(args[1])
	case "mover":
		over = nonNil(args[1])
	default:
		under, over = nonNil(args[1]), nonNil(args[2])
	}

	if n, ok := naryBase(base); ok {
		n.Sub, n.Sup, n.UnderOver = under, over, true
		return one(n), nil
	}
	if el.name == "mover" && isAccent(el, over) {
		return one(&docx.Accent{Char: over[0].(*docx.MathText).Text, Body: base}), nil
	}

	if under != nil {
		base = one(&docx.Limit{Base: base, Lim: under})
	}
	if over != nil {
		base = one(&docx.Limit{Upper: true, Base: base, Lim: over})
	}
	return base, nil
}

func isAccent(el *element, over []docx.MathNode) bool {
	if len(over) != 1 {
		return false
	}
	t, ok := over[0].(*docx.MathText)
	if !ok {
		return false
	}
	return el.attr("accent") == "true" || accentChars[t.Text]
}

func convertFenced(el *element) ([]docx.MathNode, error) {
	open, close := "(", ")"
	if v, ok := el.attrs["open"]; ok {
		open = v
	}
	if v, ok := el.attrs["close"]; ok {
		close = v
	}
	sep := ","
	if v, ok := el.attrs["separators"]; ok {
		sep = strings.TrimSpace(v)
	}

	var body []docx.MathNode
	for i, c := range el.children {
		if i > 0 && sep != "" {
			body = append(body, &docx.MathText{Text: sep, Upright: true})
		}
		nodes, err := convert(c)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}
	return one(&docx.Delimited{Begin: open, End: close, Body: body}), nil
}

func convertTable(el *element) ([]docx.MathNode, error) {
	m := &docx.Matrix{}
	for _, row := range el.children {
		cells := row.children
		switch row.name {
		case "mtr":
		case "mlabeledtr":
			if len(cells) > 0 {
				cells = cells[1:]
			}
		default:
			return nil, fmt.Errorf("unsupported mathml element <%s> in <mtable>", row.name)
		}
		var out [][]docx.MathNode
		for _, cell := range cells {
			if cell.name != "mtd" {
				return nil, fmt.Errorf("unsupported mathml element <%s> in <%s>", cell.name, row.name)
			}
			nodes, err := convertSeq(cell.children)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes)
		}
		m.Rows = append(m.Rows, out)
	}
	return one(m), nil
}
