package pastebin

import "testing"

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "main.go", want: "go"},
		{name: "/tmp/script.PY", want: "python"},
		{name: "notes", want: "text"},
		{name: "archive.tar.gz", want: "text"},
		{name: "config.yml", want: "yaml"},
	}

	for _, tt := range tests {
		if got := FormatForFile(tt.name); got != tt.want {
			t.Errorf("FormatForFile(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTitleForFile(t *testing.T) {
	if got := TitleForFile("/home/user/main.go"); got != "main" {
		t.Errorf("TitleForFile() = %q, want %q", got, "main")
	}
	if got := TitleForFile("README"); got != "README" {
		t.Errorf("TitleForFile() = %q, want %q", got, "README")
	}
}

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		input   string
		want    Expiration
		wantErr bool
	}{
		{input: "", want: ExpireNever},
		{input: "N", want: ExpireNever},
		{input: "10m", want: Expire10Min},
		{input: "1Y", want: Expire1Year},
		{input: "2D", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseExpiration(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseExpiration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseExpiration(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
