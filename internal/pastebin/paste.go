package pastebin

import "strconv"

// NoTitle is rendered for pastes without a title.
const NoTitle = "<No title>"

// PasteSummary is one entry of a user's paste list.
type PasteSummary struct {
	Key        string
	Date       Timestamp
	Title      string
	Size       ByteSize
	ExpireDate Timestamp
	Privacy    Privacy
	Format     string
	URL        string
	Hits       uint64
}

// Report lays out the paste for display.
func (p *PasteSummary) Report() Report {
	title := Field{Label: "title", Value: p.Title}
	if p.Title == "" {
		title.Value = NoTitle
		title.Emphasis = EmphasisMissing
	}

	return Report{Fields: []Field{
		{Label: "key", Value: p.Key, Emphasis: EmphasisKey},
		{Label: "date", Value: p.Date.String(), Emphasis: EmphasisDate},
		title,
		{Label: "size", Value: p.Size.String()},
		{Label: "expire date", Value: p.ExpireDate.String(), Emphasis: EmphasisDate},
		{Label: "privacy", Value: p.Privacy.String(), Emphasis: EmphasisPrivacy},
		{Label: "format", Value: p.Format},
		{Label: "url", Value: p.URL},
		{Label: "hits", Value: strconv.FormatUint(p.Hits, 10)},
	}}
}

// NewPaste describes a paste to create.
type NewPaste struct {
	Title      string
	Content    string
	Format     string
	Privacy    Privacy
	Expiration Expiration

	// Encrypt armors Content with Passphrase before upload.
	Encrypt    bool
	Passphrase string
}
