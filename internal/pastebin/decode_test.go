package pastebin

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const userDetailsXML = `<user>
<user_name>wiz_kitty</user_name>
<user_format_short>text</user_format_short>
<user_expiration>N</user_expiration>
<user_avatar_url>https://pastebin.com/cache/a/1.jpg</user_avatar_url>
<user_private>1</user_private>
<user_website>https://pastebin.com</user_website>
<user_email>kitty@example.com</user_email>
<user_location>Cyberspace</user_location>
<user_account_type>1</user_account_type>
</user>`

func pasteXMLEntry(key, date string) string {
	return fmt.Sprintf(`<paste>
<paste_key>%s</paste_key>
<paste_date>%s</paste_date>
<paste_title>title %s</paste_title>
<paste_size>2048</paste_size>
<paste_expire_date>0</paste_expire_date>
<paste_private>0</paste_private>
<paste_format_long>JavaScript</paste_format_long>
<paste_format_short>javascript</paste_format_short>
<paste_url>https://pastebin.com/%s</paste_url>
<paste_hits>15</paste_hits>
</paste>
`, key, date, key, key)
}

func TestDecodeAccountInfo(t *testing.T) {
	info, err := DecodeAccountInfo([]byte(userDetailsXML))
	if err != nil {
		t.Fatalf("DecodeAccountInfo() error = %v", err)
	}

	if info.Name != "wiz_kitty" {
		t.Errorf("Name = %q, want %q", info.Name, "wiz_kitty")
	}
	if info.Privacy != PrivacyUnlisted {
		t.Errorf("Privacy = %v, want %v", info.Privacy, PrivacyUnlisted)
	}
	if info.Website.String() != "https://pastebin.com" {
		t.Errorf("Website = %q, want %q", info.Website.String(), "https://pastebin.com")
	}
	if info.Email != "kitty@example.com" {
		t.Errorf("Email = %q, want %q", info.Email, "kitty@example.com")
	}
	if info.Location != "Cyberspace" {
		t.Errorf("Location = %q, want %q", info.Location, "Cyberspace")
	}
	if info.Type != AccountPro {
		t.Errorf("Type = %v, want %v", info.Type, AccountPro)
	}
}

func TestDecodeAccountInfo_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantValue string
		wantErr   error
	}{
		{
			name:      "missing field",
			body:      strings.Replace(userDetailsXML, "<user_email>kitty@example.com</user_email>", "", 1),
			wantField: "user_email",
			wantErr:   ErrMissingField,
		},
		{
			name:      "privacy out of range",
			body:      strings.Replace(userDetailsXML, "<user_private>1</user_private>", "<user_private>7</user_private>", 1),
			wantField: "user_private",
			wantValue: "7",
		},
		{
			name:      "account type not numeric",
			body:      strings.Replace(userDetailsXML, "<user_account_type>1</user_account_type>", "<user_account_type>gold</user_account_type>", 1),
			wantField: "user_account_type",
			wantValue: "gold",
		},
		{
			name: "malformed xml",
			body: "<user><user_name>x</user>",
		},
		{
			name: "wrong root element",
			body: "<paste><paste_key>x</paste_key></paste>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := DecodeAccountInfo([]byte(tt.body))
			if err == nil {
				t.Fatal("DecodeAccountInfo() expected error")
			}
			if info != nil {
				t.Error("DecodeAccountInfo() returned a partial record")
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error type = %T, want *DecodeError", err)
			}
			if de.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", de.Field, tt.wantField)
			}
			if de.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", de.Value, tt.wantValue)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false", tt.wantErr)
			}
		})
	}
}

func TestDecodeAccountInfo_UnknownAccountType(t *testing.T) {
	body := strings.Replace(userDetailsXML, "<user_account_type>1</user_account_type>", "<user_account_type>2</user_account_type>", 1)

	info, err := DecodeAccountInfo([]byte(body))
	if err != nil {
		t.Fatalf("DecodeAccountInfo() error = %v", err)
	}
	if info.Type.Known() {
		t.Errorf("Type.Known() = true for code 2")
	}
	if info.Type.String() != NoAccountType {
		t.Errorf("Type.String() = %q, want %q", info.Type.String(), NoAccountType)
	}
}

func TestDecodePasteList(t *testing.T) {
	body := pasteXMLEntry("0b42rwhf", "1297953260") + pasteXMLEntry("a1b2c3d4", "1297953261")

	pastes, err := DecodePasteList([]byte(body))
	if err != nil {
		t.Fatalf("DecodePasteList() error = %v", err)
	}
	if len(pastes) != 2 {
		t.Fatalf("len(pastes) = %d, want 2", len(pastes))
	}

	first := pastes[0]
	if first.Key != "0b42rwhf" {
		t.Errorf("Key = %q, want %q", first.Key, "0b42rwhf")
	}
	if first.Date.Time().Unix() != 1297953260 {
		t.Errorf("Date = %d, want %d", first.Date.Time().Unix(), 1297953260)
	}
	if first.Title != "title 0b42rwhf" {
		t.Errorf("Title = %q, want %q", first.Title, "title 0b42rwhf")
	}
	if first.Size.String() != "2.00KB" {
		t.Errorf("Size = %q, want %q", first.Size.String(), "2.00KB")
	}
	if first.ExpireDate.Time().Unix() != 0 {
		t.Errorf("ExpireDate = %v, want epoch", first.ExpireDate.Time())
	}
	if first.Privacy != PrivacyPublic {
		t.Errorf("Privacy = %v, want %v", first.Privacy, PrivacyPublic)
	}
	if first.Format != "JavaScript" {
		t.Errorf("Format = %q, want %q", first.Format, "JavaScript")
	}
	if first.URL != "https://pastebin.com/0b42rwhf" {
		t.Errorf("URL = %q, want %q", first.URL, "https://pastebin.com/0b42rwhf")
	}
	if first.Hits != 15 {
		t.Errorf("Hits = %d, want 15", first.Hits)
	}

	if pastes[1].Key != "a1b2c3d4" {
		t.Errorf("second Key = %q, want %q (order must be preserved)", pastes[1].Key, "a1b2c3d4")
	}
}

func TestDecodePasteList_Empty(t *testing.T) {
	for _, body := range []string{"", "   \n", "No pastes found."} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			pastes, err := DecodePasteList([]byte(body))
			if err != nil {
				t.Fatalf("DecodePasteList() error = %v", err)
			}
			if pastes == nil {
				t.Fatal("DecodePasteList() = nil, want empty slice")
			}
			if len(pastes) != 0 {
				t.Errorf("len(pastes) = %d, want 0", len(pastes))
			}
		})
	}
}

func TestDecodePasteList_PaddedTimestamp(t *testing.T) {
	body := pasteXMLEntry("key1", " 1297953260")

	_, err := DecodePasteList([]byte(body))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("DecodePasteList() error = %v, want *DecodeError", err)
	}
	if de.Field != "paste_date" || de.Value != " 1297953260" {
		t.Errorf("DecodeError = %+v, want field paste_date with padded value", de)
	}
}

func TestDecodePasteList_BadEntryFailsWholeList(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		date := "1297953260"
		if i == 3 {
			date = "yesterday"
		}
		b.WriteString(pasteXMLEntry(fmt.Sprintf("key%d", i), date))
	}

	pastes, err := DecodePasteList([]byte(b.String()))
	if err == nil {
		t.Fatal("DecodePasteList() expected error")
	}
	if pastes != nil {
		t.Errorf("DecodePasteList() returned %d pastes alongside the error", len(pastes))
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if de.Entry != 3 {
		t.Errorf("Entry = %d, want 3", de.Entry)
	}
	if de.Field != "paste_date" {
		t.Errorf("Field = %q, want %q", de.Field, "paste_date")
	}
	if de.Value != "yesterday" {
		t.Errorf("Value = %q, want %q", de.Value, "yesterday")
	}

	var ve *ValueError
	if !errors.As(err, &ve) || ve.Kind != "timestamp" {
		t.Errorf("expected wrapped timestamp ValueError, got %v", err)
	}
	if !strings.Contains(err.Error(), "entry 3") {
		t.Errorf("Error() = %q, want mention of entry 3", err.Error())
	}
}

func TestDecodePasteList_MissingField(t *testing.T) {
	body := strings.Replace(pasteXMLEntry("k", "1"), "<paste_hits>15</paste_hits>", "", 1)

	_, err := DecodePasteList([]byte(body))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if de.Entry != 1 || de.Field != "paste_hits" || !errors.Is(err, ErrMissingField) {
		t.Errorf("DecodeError = %+v, want entry 1 missing paste_hits", de)
	}
}

func TestDecodePasteList_MalformedXML(t *testing.T) {
	_, err := DecodePasteList([]byte("<paste><paste_key>x</paste_title></paste>"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if de.Entry != 1 {
		t.Errorf("Entry = %d, want 1", de.Entry)
	}
}

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{body: PermissionDeniedMessage, want: true},
		{body: PermissionDeniedMessage + "\n", want: true},
		{body: "Bad API request, invalid api_dev_key", want: false},
		{body: "hello world", want: false},
	}

	for _, tt := range tests {
		if got := IsPermissionDenied(tt.body); got != tt.want {
			t.Errorf("IsPermissionDenied(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}

func TestParseAPIError(t *testing.T) {
	err := ParseAPIError("Bad API request, invalid api_user_key\n")
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("ParseAPIError() = %v, want *APIError", err)
	}
	if ae.Message != "Bad API request, invalid api_user_key" {
		t.Errorf("Message = %q", ae.Message)
	}

	if err := ParseAPIError("https://pastebin.com/abc"); err != nil {
		t.Errorf("ParseAPIError(url) = %v, want nil", err)
	}
}

func TestDecodeRawText(t *testing.T) {
	const body = "line one\n\tline two\n"
	if got := DecodeRawText([]byte(body)); got != body {
		t.Errorf("DecodeRawText() = %q, want %q", got, body)
	}
}

func TestParseShowPasteError(t *testing.T) {
	tests := []struct {
		body    string
		wantErr bool
	}{
		{"Bad API request, invalid api_user_key\n", true},
		{"Bad API request, invalid api_dev_key", true},
		{"Bad API request, invalid api_option", true},
		{"Bad API request examples from my notes\nline 2", false},
		{"Bad API request, invalid api_user_key and more text", false},
		{"plain paste", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ParseShowPasteError(tt.body)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShowPasteError(%q) error = %v, wantErr %v", tt.body, err, tt.wantErr)
		}
		var apiErr *APIError
		if err != nil && !errors.As(err, &apiErr) {
			t.Errorf("ParseShowPasteError(%q) = %T, want *APIError", tt.body, err)
		}
	}
}
