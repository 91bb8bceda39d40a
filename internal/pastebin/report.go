package pastebin

import "strings"

// Emphasis tags a report value so a Styler can decorate it.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisMissing
	EmphasisKey
	EmphasisDate
	EmphasisPrivacy
	EmphasisName
	EmphasisEmail
	EmphasisTier
)

// Styler decorates text for a given emphasis category.
type Styler interface {
	Style(e Emphasis, text string) string
}

// PlainStyler leaves text untouched.
type PlainStyler struct{}

func (PlainStyler) Style(_ Emphasis, text string) string { return text }

// Field is one labeled line of a report.
type Field struct {
	Label    string
	Value    string
	Emphasis Emphasis
}

// Report is an ordered list of fields rendered one per line.
type Report struct {
	Fields []Field
}

// Render writes "label: value" lines with values aligned one column past
// the widest label.
func (r Report) Render(s Styler) string {
	if s == nil {
		s = PlainStyler{}
	}

	width := 0
	for _, f := range r.Fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	var b strings.Builder
	for _, f := range r.Fields {
		label := f.Label + ":"
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width+2-len(label)))
		b.WriteString(s.Style(f.Emphasis, f.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPasteList renders each paste's report, separated by blank lines.
func RenderPasteList(pastes []PasteSummary, s Styler) string {
	if len(pastes) == 0 {
		return "No pastes found.\n"
	}
	reports := make([]string, len(pastes))
	for i := range pastes {
		reports[i] = pastes[i].Report().Render(s)
	}
	return strings.Join(reports, "\n")
}
