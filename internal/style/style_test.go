package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"pastebin-go/internal/pastebin"
)

func TestColorStyler_Style(t *testing.T) {
	tests := []struct {
		emphasis pastebin.Emphasis
		want     string
	}{
		{pastebin.EmphasisNone, "v"},
		{pastebin.EmphasisMissing, "\x1b[1;31mv\x1b[0m"},
		{pastebin.EmphasisDate, "\x1b[32mv\x1b[0m"},
		{pastebin.EmphasisPrivacy, "\x1b[33;4mv\x1b[0m"},
		{pastebin.EmphasisKey, "\x1b[35mv\x1b[0m"},
		{pastebin.EmphasisName, "\x1b[1mv\x1b[0m"},
		{pastebin.EmphasisEmail, "\x1b[4mv\x1b[0m"},
		{pastebin.EmphasisTier, "\x1b[32mv\x1b[0m"},
	}

	for _, tt := range tests {
		if got := (ColorStyler{}).Style(tt.emphasis, "v"); got != tt.want {
			t.Errorf("Style(%d, v) = %q, want %q", tt.emphasis, got, tt.want)
		}
	}
}

func TestColorStyler_EmptyText(t *testing.T) {
	if got := (ColorStyler{}).Style(pastebin.EmphasisMissing, ""); got != "" {
		t.Errorf("Style(missing, \"\") = %q, want empty", got)
	}
}

func TestNew(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	t.Run("regular file is plain", func(t *testing.T) {
		if _, ok := New(f, false).(pastebin.PlainStyler); !ok {
			t.Error("New(file) should return PlainStyler")
		}
	})

	t.Run("disabled is plain", func(t *testing.T) {
		if _, ok := New(os.Stdout, true).(pastebin.PlainStyler); !ok {
			t.Error("New(stdout, disabled) should return PlainStyler")
		}
	})

	t.Run("NO_COLOR is plain", func(t *testing.T) {
		saved := color.NoColor
		color.NoColor = true
		t.Cleanup(func() { color.NoColor = saved })

		if _, ok := New(os.Stdout, false).(pastebin.PlainStyler); !ok {
			t.Error("New(stdout) with color.NoColor should return PlainStyler")
		}
	})

	t.Run("colors stay on once chosen", func(t *testing.T) {
		saved := color.NoColor
		color.NoColor = true
		t.Cleanup(func() { color.NoColor = saved })

		if got := (ColorStyler{}).Style(pastebin.EmphasisKey, "k"); got != "\x1b[35mk\x1b[0m" {
			t.Errorf("Style() = %q, want colored output", got)
		}
	})

	t.Run("nil file is plain", func(t *testing.T) {
		if _, ok := New(nil, false).(pastebin.PlainStyler); !ok {
			t.Error("New(nil) should return PlainStyler")
		}
	})
}

func TestRenderWithColor(t *testing.T) {
	r := pastebin.Report{Fields: []pastebin.Field{
		{Label: "key", Value: "abc", Emphasis: pastebin.EmphasisKey},
	}}
	want := "key: \x1b[35mabc\x1b[0m\n"
	if got := r.Render(ColorStyler{}); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
