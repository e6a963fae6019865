package md2docx

// Notes:
// - Input: tests required markdown and metadata length limits, counted in
//   characters rather than bytes

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInput_Validate - Input Validation
// ---------------------------------------------------------------------------

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "markdown only is valid",
			input:   Input{Markdown: "# x"},
			wantErr: nil,
		},
		{
			name:    "empty markdown",
			input:   Input{Title: "t"},
			wantErr: ErrEmptyMarkdown,
		},
		{
			name:    "title at limit",
			input:   Input{Markdown: "x", Title: strings.Repeat("é", MaxTitleLength)},
			wantErr: nil,
		},
		{
			name:    "title over limit",
			input:   Input{Markdown: "x", Title: strings.Repeat("a", MaxTitleLength+1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "author at limit",
			input:   Input{Markdown: "x", Author: strings.Repeat("ü", MaxAuthorLength)},
			wantErr: nil,
		},
		{
			name:    "author over limit",
			input:   Input{Markdown: "x", Author: strings.Repeat("a", MaxAuthorLength+1)},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
