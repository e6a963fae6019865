package docx

// Math is an Office Math object (m:oMath, or m:oMathPara when Display is set).
type Math struct {
	Display bool
	Nodes   []MathNode
}

func (*Math) isInline() {}

// MathNode is an element of an Office Math tree.
type MathNode interface {
	isMathNode()
}

// MathText is an m:r run. Upright text uses the plain (roman) style.
type MathText struct {
	Text    string
	Upright bool
}

// Fraction is m:f.
type Fraction struct {
	Num   []MathNode
	Den   []MathNode
	NoBar bool
}

// Script is m:sSub, m:sSup or m:sSubSup depending on which scripts are set.
type Script struct {
	Base []MathNode
	Sub  []MathNode
	Sup  []MathNode
}

// Radical is m:rad. A nil Degree hides the degree (square root).
type Radical struct {
	Degree []MathNode
	Body   []MathNode
}

// Nary is m:nary, a large operator such as a sum or an integral.
type Nary struct {
	Char string
	Sub  []MathNode
	Sup  []MathNode
	Body []MathNode

	// UnderOver places limits above and below instead of as scripts.
	UnderOver bool
}

// Accent is m:acc.
type Accent struct {
	Char string
	Body []MathNode
}

// Limit is m:limLow, or m:limUpp when Upper is set.
type Limit struct {
	Upper bool
	Base  []MathNode
	Lim   []MathNode
}

// Delimited is m:d.
type Delimited struct {
	Begin string
	End   string
	Body  []MathNode
}

// Matrix is m:m. Each cell holds a node sequence.
type Matrix struct {
	Rows [][][]MathNode
}

func (*MathText) isMathNode()  {}
func (*Fraction) isMathNode()  {}
func (*Script) isMathNode()    {}
func (*Radical) isMathNode()   {}
func (*Nary) isMathNode()      {}
func (*Accent) isMathNode()    {}
func (*Limit) isMathNode()     {}
func (*Delimited) isMathNode() {}
func (*Matrix) isMathNode()    {}
