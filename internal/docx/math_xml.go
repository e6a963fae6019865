package docx

import "fmt"

func writeMath(x *xmlWriter, m *Math) error {
	if m.Display {
		x.start("m:oMathPara")
	}
	x.start("m:oMath")
	if err := writeMathNodes(x, m.Nodes); err != nil {
		return err
	}
	x.end("m:oMath")
	if m.Display {
		x.end("m:oMathPara")
	}
	return x.err
}

func writeMathNodes(x *xmlWriter, nodes []MathNode) error {
	for _, n := range nodes {
		if err := writeMathNode(x, n); err != nil {
			return err
		}
	}
	return nil
}

// writeMathArg writes a wrapper element such as m:e or m:num. Office Math
// requires these to exist even when empty.
func writeMathArg(x *xmlWriter, name string, nodes []MathNode) error {
	x.start(name)
	if err := writeMathNodes(x, nodes); err != nil {
		return err
	}
	x.end(name)
	return x.err
}

func writeMathNode(x *xmlWriter, n MathNode) error {
	switch n := n.(type) {
	case *MathText:
		x.start("m:r")
		if n.Upright {
			x.start("m:rPr")
			x.leaf("m:sty", "m:val", "p")
			x.end("m:rPr")
		}
		x.start("w:rPr")
		x.leaf("w:rFonts", "w:ascii", FontMath, "w:hAnsi", FontMath)
		x.end("w:rPr")
		x.textElement("m:t", n.Text)
		x.end("m:r")
		return x.err

	case *Fraction:
		x.start("m:f")
		if n.NoBar {
			x.start("m:fPr")
			x.leaf("m:type", "m:val", "noBar")
			x.end("m:fPr")
		}
		if err := writeMathArg(x, "m:num", n.Num); err != nil {
			return err
		}
		if err := writeMathArg(x, "m:den", n.Den); err != nil {
			return err
		}
		x.end("m:f")
		return x.err

	case *Script:
		return writeScript(x, n)

	case *Radical:
		x.start("m:rad")
		if n.Degree == nil {
			x.start("m:radPr")
			x.leaf("m:degHide", "m:val", "1")
			x.end("m:radPr")
		}
		if err := writeMathArg(x, "m:deg", n.Degree); err != nil {
			return err
		}
		if err := writeMathArg(x, "m:e", n.Body); err != nil {
			return err
		}
		x.end("m:rad")
		return x.err

	case *Nary:
		x.start("m:nary")
		x.start("m:naryPr")
		x.leaf("m:chr", "m:val", n.Char)
		loc := "subSup"
		if n.UnderOver {
			loc = "undOvr"
		}
		x.leaf("m:limLoc", "m:val", loc)
		if n.Sub == nil {
			x.leaf("m:subHide", "m:val", "1")
		}
		if n.Sup == nil {
			x.leaf("m:supHide", "m:val", "1")
		}
		x.end("m:naryPr")
		for _, arg := range []struct {
			name  string
			nodes []MathNode
		}{{"m:sub", n.Sub}, {"m:sup", n.Sup}, {"m:e", n.Body}} {
			if err := writeMathArg(x, arg.name, arg.nodes); err != nil {
				return err
			}
		}
		x.end("m:nary")
		return x.err

	case *Accent:
		x.start("m:acc")
		x.start("m:accPr")
		x.leaf("m:chr", "m:val", n.Char)
		x.end("m:accPr")
		if err := writeMathArg(x, "m:e", n.Body); err != nil {
			return err
		}
		x.end("m:acc")
		return x.err

	case *Limit:
		name := "m:limLow"
		if n.Upper {
			name = "m:limUpp"
		}
		x.start(name)
		if err := writeMathArg(x, "m:e", n.Base); err != nil {
			return err
		}
		if err := writeMathArg(x, "m:lim", n.Lim); err != nil {
			return err
		}
		x.end(name)
		return x.err

	case *Delimited:
		x.start("m:d")
		x.start("m:dPr")
		x.leaf("m:begChr", "m:val", n.Begin)
		x.leaf("m:endChr", "m:val", n.End)
		x.end("m:dPr")
		if err := writeMathArg(x, "m:e", n.Body); err != nil {
			return err
		}
		x.end("m:d")
		return x.err

	case *Matrix:
		x.start("m:m")
		for _, row := range n.Rows {
			x.start("m:mr")
			for _, cell := range row {
				if err := writeMathArg(x, "m:e", cell); err != nil {
					return err
				}
			}
			x.end("m:mr")
		}
		x.end("m:m")
		return x.err

	default:
		return fmt.Errorf("unsupported math node %T", n)
	}
}

func writeScript(x *xmlWriter, s *Script) error {
	var name string
	switch {
	case s.Sub != nil && s.Sup != nil:
		name = "m:sSubSup"
	case s.Sup != nil:
		name = "m:sSup"
	default:
		name = "m:sSub"
	}
	x.start(name)
	if err := writeMathArg(x, "m:e", s.Base); err != nil {
		return err
	}
	if s.Sub != nil || s.Sup == nil {
		if err := writeMathArg(x, "m:sub", s.Sub); err != nil {
			return err
		}
	}
	if s.Sup != nil {
		if err := writeMathArg(x, "m:sup", s.Sup); err != nil {
			return err
		}
	}
	x.end(name)
	return x.err
}
