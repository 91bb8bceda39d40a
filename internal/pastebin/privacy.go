package pastebin

// Privacy is the visibility tier of a paste or account.
type Privacy int

const (
	PrivacyPublic Privacy = iota
	PrivacyUnlisted
	PrivacyPrivate
)

// ParsePrivacy accepts the numeric wire codes and their lowercase names.
func ParsePrivacy(s string) (Privacy, error) {
	switch s {
	case "0", "public":
		return PrivacyPublic, nil
	case "1", "unlisted":
		return PrivacyUnlisted, nil
	case "2", "private":
		return PrivacyPrivate, nil
	default:
		return 0, &ValueError{Kind: "privacy", Value: s, Reason: "value out of range"}
	}
}

// FormValue returns the code sent as api_paste_private.
func (p Privacy) FormValue() string {
	switch p {
	case PrivacyUnlisted:
		return "1"
	case PrivacyPrivate:
		return "2"
	default:
		return "0"
	}
}

func (p Privacy) String() string {
	switch p {
	case PrivacyPublic:
		return "Public"
	case PrivacyUnlisted:
		return "Unlisted"
	case PrivacyPrivate:
		return "Private"
	default:
		return "Unknown"
	}
}
