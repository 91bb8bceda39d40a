package pastebin

import "strconv"

// AccountType is the provider's account tier code.
type AccountType int8

const (
	AccountNormal AccountType = 0
	AccountPro    AccountType = 1
)

const (
	NoAccountType = "<No account type>"
	NoLocation    = "<No location>"
)

// Known reports whether the code is a tier the client recognises.
func (t AccountType) Known() bool {
	return t == AccountNormal || t == AccountPro
}

func (t AccountType) String() string {
	switch t {
	case AccountNormal:
		return "normal"
	case AccountPro:
		return "pro"
	default:
		return NoAccountType
	}
}

func parseAccountType(s string) (AccountType, error) {
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, &ValueError{Kind: "account type", Value: s, Reason: "not a small integer"}
	}
	return AccountType(n), nil
}

// AccountInfo is one user's account snapshot.
type AccountInfo struct {
	Name     string
	Privacy  Privacy
	Website  Website
	Email    string
	Location string
	Type     AccountType
}

// Report lays out the account for display.
func (a *AccountInfo) Report() Report {
	location := Field{Label: "location", Value: a.Location}
	if a.Location == "" {
		location.Value = NoLocation
		location.Emphasis = EmphasisMissing
	}

	tier := Field{Label: "account type", Value: a.Type.String(), Emphasis: EmphasisTier}
	if !a.Type.Known() {
		tier.Emphasis = EmphasisMissing
	}

	website := Field{Label: "website link", Value: a.Website.String()}
	if !a.Website.Present() {
		website.Emphasis = EmphasisMissing
	}

	return Report{Fields: []Field{
		{Label: "username", Value: a.Name, Emphasis: EmphasisName},
		{Label: "privacy", Value: a.Privacy.String(), Emphasis: EmphasisPrivacy},
		website,
		{Label: "email", Value: a.Email, Emphasis: EmphasisEmail},
		location,
		tier,
	}}
}
