// Package md2docx converts Markdown documents to Word (DOCX) packages with
// native Office Math equations.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nEuler: $e^{i\\pi} + 1 = 0$",
//	    Title:    "Notes",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// A Converter holds no per-document state and is safe for concurrent use.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (BOM, line endings, blank-line runs)
//  2. Tokenization into block tokens via Goldmark (GFM)
//  3. Block translation: headings, paragraphs, lists, quotes, code, rules
//     and tables become document blocks, with spacer paragraphs between
//     sections
//  4. Inline formatting: bold, italic, code and $...$ / $$...$$ formulas;
//     formulas go through LaTeX to MathML to Office Math
//  5. Assembly of the WordprocessingML package (styles, numbering, core
//     properties)
//
// A formula that cannot be converted never fails the document: it is kept
// as its delimited source in a monospace, tinted run and counted in
// Stats.MathFallbacks.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithTimeout(time.Minute),
//	    md2docx.WithCodeHighlighting("monokai"),
//	    md2docx.WithLogger(slog.Default()),
//	)
//
// WithoutMath keeps every formula as text; WithMathConverter plugs in
// another LaTeX engine.
//
// # Parallel Processing
//
// ConvertAll converts independent documents with bounded concurrency and
// returns results in input order:
//
//	results := conv.ConvertAll(ctx, inputs, 4)
//	for _, r := range results {
//	    if r.Err != nil { ... }
//	}
//
// Finished documents can be handed to a Publisher such as DirPublisher.
package md2docx
