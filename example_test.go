package md2docx_test

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2docx"
)

// Example demonstrates basic markdown to DOCX conversion.
func Example() {
	conv, err := md2docx.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hello World\n\nThis is a test.",
		Title:    "Greeting",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(result.DOCX) > 0 {
		fmt.Println("DOCX generated successfully")
	}
	// Output: DOCX generated successfully
}

// Example_withoutMath demonstrates keeping formulas as source text.
func Example_withoutMath() {
	conv, err := md2docx.NewConverter(md2docx.WithoutMath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "Area: $\\pi r^2$ and $$\\int_0^1 x\\,dx$$",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("formulas kept as text:", result.Stats.MathFallbacks)
	// Output: formulas kept as text: 2
}

// Example_batch demonstrates converting several documents concurrently.
func Example_batch() {
	conv, err := md2docx.NewConverter(md2docx.WithoutMath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inputs := []md2docx.Input{
		{Markdown: "# First"},
		{Markdown: ""},
		{Markdown: "# Third"},
	}
	for _, r := range conv.ConvertAll(context.Background(), inputs, 2) {
		if r.Err != nil {
			fmt.Printf("%d: %v\n", r.Index, r.Err)
			continue
		}
		fmt.Printf("%d: ok\n", r.Index)
	}
	// Output:
	// 0: ok
	// 1: markdown content cannot be empty
	// 2: ok
}

// Example_publish demonstrates writing a document to a directory.
func Example_publish() {
	dir, err := os.MkdirTemp("", "md2docx-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	conv, err := md2docx.NewConverter(md2docx.WithoutMath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := conv.Convert(context.Background(), md2docx.Input{Markdown: "# Minutes"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pub := &md2docx.DirPublisher{Dir: dir}
	if _, err := pub.Publish(context.Background(), "minutes", result.DOCX); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("published minutes.docx")
	// Output: published minutes.docx
}
