// Package style decorates report values with terminal colors when writing
// to a terminal.
package style

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pastebin-go/internal/pastebin"
)

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var colors = map[pastebin.Emphasis]*color.Color{
	pastebin.EmphasisMissing: enabled(color.Bold, color.FgRed),
	pastebin.EmphasisDate:    enabled(color.FgGreen),
	pastebin.EmphasisPrivacy: enabled(color.FgYellow, color.Underline),
	pastebin.EmphasisKey:     enabled(color.FgMagenta),
	pastebin.EmphasisName:    enabled(color.Bold),
	pastebin.EmphasisEmail:   enabled(color.Underline),
	pastebin.EmphasisTier:    enabled(color.FgGreen),
}

// ColorStyler colors emphasized text.
type ColorStyler struct{}

func (ColorStyler) Style(e pastebin.Emphasis, text string) string {
	c, ok := colors[e]
	if !ok || text == "" {
		return text
	}
	return c.Sprint(text)
}

// New returns a ColorStyler when f is a terminal and color has not been
// turned off with disabled or the NO_COLOR environment variable.
func New(f *os.File, disabled bool) pastebin.Styler {
	if disabled || color.NoColor {
		return pastebin.PlainStyler{}
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return pastebin.PlainStyler{}
	}
	return ColorStyler{}
}
