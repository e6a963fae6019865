package docx

import (
	"errors"
	"fmt"
)

// ErrInvalidStyle indicates a style sheet that cannot be written.
var ErrInvalidStyle = errors.New("invalid style sheet")

// Style identifiers referenced from paragraphs.
const (
	StyleNormal = "Normal"
	StyleCode   = "codeStyle"

	NumberingReference = "default-numbering"
)

// Fonts used by the default style sheet and the translator.
const (
	FontBody = "Arial"
	FontMono = "Courier New"
	FontMath = "Cambria Math"
)

// HeadingStyle returns the style id of a heading level (1-6).
func HeadingStyle(level int) string {
	return fmt.Sprintf("Heading%d", level)
}

// RunStyle is the character formatting of a style.
type RunStyle struct {
	Font  string
	Size  int
	Bold  bool
	Color string
}

// ParagraphStyle is a named paragraph style.
type ParagraphStyle struct {
	ID      string
	Name    string
	BasedOn string
	Next    string
	Level   int // outline level + 1 for headings, 0 otherwise
	Run     RunStyle
	Spacing Spacing
}

// ListLevel is one level of a numbering definition.
type ListLevel struct {
	Format string // decimal, bullet, lowerLetter...
	Text   string // "%1." or a bullet glyph
	Align  string
	Indent Indent
}

// StyleSheet holds the document-wide defaults. It is treated as an immutable
// value: DefaultStyleSheet builds a fresh one for every call.
type StyleSheet struct {
	Body       RunStyle
	Paragraphs []ParagraphStyle

	Ordered []ListLevel
	Bullet  []ListLevel
}

// maxListLevels is the number of levels WordprocessingML allows per list.
const maxListLevels = 9

// DefaultStyleSheet returns the built-in styles: Arial 12pt body, three
// explicit heading presets (4-6 follow the same pattern), a code paragraph
// style and decimal/bullet list definitions.
func DefaultStyleSheet() StyleSheet {
	heading := func(level, size, before, after int) ParagraphStyle {
		return ParagraphStyle{
			ID:      HeadingStyle(level),
			Name:    fmt.Sprintf("heading %d", level),
			BasedOn: StyleNormal,
			Next:    StyleNormal,
			Level:   level,
			Run:     RunStyle{Font: FontBody, Size: size, Bold: true, Color: "000000"},
			Spacing: Spacing{Before: before, After: after, Line: 300, LineRule: LineAuto},
		}
	}

	ss := StyleSheet{
		Body: RunStyle{Font: FontBody, Size: 24},
		Paragraphs: []ParagraphStyle{
			heading(1, 32, 200, 100),
			heading(2, 28, 160, 80),
			heading(3, 24, 120, 60),
			heading(4, 24, 120, 60),
			heading(5, 22, 120, 60),
			heading(6, 22, 120, 60),
			{
				ID:      StyleCode,
				Name:    "Code Style",
				BasedOn: StyleNormal,
				Run:     RunStyle{Font: FontMono, Size: 20},
				Spacing: Spacing{Before: 80, After: 80, Line: 300, LineRule: LineAuto},
			},
		},
	}

	bullets := []string{"●", "○", "■"}
	for i := 0; i < maxListLevels; i++ {
		ind := Indent{Left: 720 * (i + 1), Hanging: 360}
		ss.Ordered = append(ss.Ordered, ListLevel{
			Format: "decimal",
			Text:   fmt.Sprintf("%%%d.", i+1),
			Align:  "start",
			Indent: ind,
		})
		ss.Bullet = append(ss.Bullet, ListLevel{
			Format: "bullet",
			Text:   bullets[i%len(bullets)],
			Align:  "left",
			Indent: ind,
		})
	}
	return ss
}

// Validate checks that every value can be written as WordprocessingML.
func (s StyleSheet) Validate() error {
	if err := validateRun("body", s.Body); err != nil {
		return err
	}
	seen := make(map[string]bool, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		if p.ID == "" {
			return fmt.Errorf("%w: paragraph style with empty id", ErrInvalidStyle)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate style id %q", ErrInvalidStyle, p.ID)
		}
		seen[p.ID] = true
		if err := validateRun(p.ID, p.Run); err != nil {
			return err
		}
	}
	if len(s.Ordered) == 0 || len(s.Ordered) > maxListLevels {
		return fmt.Errorf("%w: ordered list needs 1-%d levels, got %d", ErrInvalidStyle, maxListLevels, len(s.Ordered))
	}
	if len(s.Bullet) == 0 || len(s.Bullet) > maxListLevels {
		return fmt.Errorf("%w: bullet list needs 1-%d levels, got %d", ErrInvalidStyle, maxListLevels, len(s.Bullet))
	}
	return nil
}

func validateRun(owner string, r RunStyle) error {
	if r.Font == "" {
		return fmt.Errorf("%w: %s: font cannot be empty", ErrInvalidStyle, owner)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: %s: size must be positive, got %d", ErrInvalidStyle, owner, r.Size)
	}
	if r.Color != "" && !IsHexColor(r.Color) {
		return fmt.Errorf("%w: %s: invalid colour %q", ErrInvalidStyle, owner, r.Color)
	}
	return nil
}

// IsHexColor reports whether s is a 6-digit hex colour without a leading '#'.
func IsHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
