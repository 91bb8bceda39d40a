package pastebin

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// PermissionDeniedMessage is the body returned by show_paste when the user
// key may not read the paste. Public pastes can still be read from the raw
// endpoint.
const PermissionDeniedMessage = "Bad API request, invalid permission to view this paste or invalid api_paste_key"

const badRequestPrefix = "Bad API request"

// showPasteErrors are the documented show_paste failures other than
// PermissionDeniedMessage. Any other body is paste content.
var showPasteErrors = map[string]bool{
	"Bad API request, invalid api_option":   true,
	"Bad API request, invalid api_dev_key":  true,
	"Bad API request, invalid api_user_key": true,
}

// userXML mirrors the provider's <user> document. Pointers distinguish a
// missing element from an empty one.
type userXML struct {
	XMLName     xml.Name `xml:"user"`
	Name        *string  `xml:"user_name"`
	Private     *string  `xml:"user_private"`
	Website     *string  `xml:"user_website"`
	Email       *string  `xml:"user_email"`
	Location    *string  `xml:"user_location"`
	AccountType *string  `xml:"user_account_type"`
}

// pasteXML mirrors one <paste> element of a paste list.
type pasteXML struct {
	Key        *string `xml:"paste_key"`
	Date       *string `xml:"paste_date"`
	Title      *string `xml:"paste_title"`
	Size       *string `xml:"paste_size"`
	ExpireDate *string `xml:"paste_expire_date"`
	Private    *string `xml:"paste_private"`
	FormatLong *string `xml:"paste_format_long"`
	URL        *string `xml:"paste_url"`
	Hits       *string `xml:"paste_hits"`
}

// fieldDecoder collects the first failure while converting one record.
type fieldDecoder struct {
	entry int
	err   error
}

func (d *fieldDecoder) fail(field, value string, err error) {
	if d.err == nil {
		d.err = &DecodeError{Entry: d.entry, Field: field, Value: value, Err: err}
	}
}

func (d *fieldDecoder) text(field string, v *string) string {
	if v == nil {
		d.fail(field, "", ErrMissingField)
		return ""
	}
	return *v
}

func (d *fieldDecoder) privacy(field string, v *string) Privacy {
	s := d.text(field, v)
	if d.err != nil {
		return 0
	}
	p, err := ParsePrivacy(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return p
}

func (d *fieldDecoder) timestamp(field string, v *string) Timestamp {
	s := d.text(field, v)
	if d.err != nil {
		return Timestamp{}
	}
	ts, err := ParseTimestamp(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return ts
}

func (d *fieldDecoder) size(field string, v *string) ByteSize {
	s := d.text(field, v)
	if d.err != nil {
		return ByteSize{}
	}
	b, err := ParseByteSize(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return b
}

func (d *fieldDecoder) website(field string, v *string) Website {
	s := d.text(field, v)
	if d.err != nil {
		return Website{}
	}
	w, err := ParseWebsite(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return w
}

func (d *fieldDecoder) absoluteURL(field string, v *string) string {
	s := d.text(field, v)
	if d.err != nil {
		return ""
	}
	w, err := ParseWebsite(s)
	if err == nil && !w.Present() {
		err = &ValueError{Kind: "url", Value: s, Reason: "empty"}
	}
	if err != nil {
		d.fail(field, s, err)
		return ""
	}
	return w.String()
}

func (d *fieldDecoder) count(field string, v *string) uint64 {
	s := d.text(field, v)
	if d.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		d.fail(field, s, &ValueError{Kind: "count", Value: s, Reason: "not a non-negative integer"})
	}
	return n
}

func (d *fieldDecoder) accountType(field string, v *string) AccountType {
	s := d.text(field, v)
	if d.err != nil {
		return 0
	}
	t, err := parseAccountType(s)
	if err != nil {
		d.fail(field, s, err)
	}
	return t
}

// DecodeAccountInfo decodes a userdetails response. Elements other than the
// modeled ones are ignored.
func DecodeAccountInfo(data []byte) (*AccountInfo, error) {
	var raw userXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	d := &fieldDecoder{}
	info := &AccountInfo{
		Name:     d.text("user_name", raw.Name),
		Privacy:  d.privacy("user_private", raw.Private),
		Website:  d.website("user_website", raw.Website),
		Email:    d.text("user_email", raw.Email),
		Location: d.text("user_location", raw.Location),
		Type:     d.accountType("user_account_type", raw.AccountType),
	}
	if d.err != nil {
		return nil, d.err
	}
	return info, nil
}

// DecodePasteList decodes a list response: zero or more sibling <paste>
// elements without a root. Order is preserved. The whole decode fails on
// the first malformed entry.
func DecodePasteList(data []byte) ([]PasteSummary, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	pastes := []PasteSummary{}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{Err: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "paste" {
			if err := dec.Skip(); err != nil {
				return nil, &DecodeError{Err: err}
			}
			continue
		}

		entry := len(pastes) + 1
		var raw pasteXML
		if err := dec.DecodeElement(&raw, &se); err != nil {
			return nil, &DecodeError{Entry: entry, Err: err}
		}

		p, err := convertPaste(entry, &raw)
		if err != nil {
			return nil, err
		}
		pastes = append(pastes, p)
	}

	return pastes, nil
}

func convertPaste(entry int, raw *pasteXML) (PasteSummary, error) {
	d := &fieldDecoder{entry: entry}
	p := PasteSummary{
		Key:        d.text("paste_key", raw.Key),
		Date:       d.timestamp("paste_date", raw.Date),
		Title:      d.text("paste_title", raw.Title),
		Size:       d.size("paste_size", raw.Size),
		ExpireDate: d.timestamp("paste_expire_date", raw.ExpireDate),
		Privacy:    d.privacy("paste_private", raw.Private),
		Format:     d.text("paste_format_long", raw.FormatLong),
		URL:        d.absoluteURL("paste_url", raw.URL),
		Hits:       d.count("paste_hits", raw.Hits),
	}
	if d.err != nil {
		return PasteSummary{}, d.err
	}
	return p, nil
}

// DecodeRawText passes a plain-text body through unchanged.
func DecodeRawText(data []byte) string {
	return string(data)
}

// IsPermissionDenied reports whether body is the provider's
// permission-denied message for show_paste.
func IsPermissionDenied(body string) bool {
	return strings.TrimSpace(body) == PermissionDeniedMessage
}

// ParseShowPasteError returns an *APIError when body is exactly one of the
// provider's show_paste error messages, and nil otherwise. Paste content
// that merely starts with the error prefix is not an error.
func ParseShowPasteError(body string) error {
	msg := strings.TrimSpace(body)
	if showPasteErrors[msg] {
		return &APIError{Message: msg}
	}
	return nil
}

// ParseAPIError returns an *APIError when body is a provider error message,
// and nil otherwise.
func ParseAPIError(body string) error {
	msg := strings.TrimSpace(body)
	if strings.HasPrefix(msg, badRequestPrefix) {
		return &APIError{Message: msg}
	}
	return nil
}
