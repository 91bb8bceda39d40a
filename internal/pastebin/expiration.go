package pastebin

import "strings"

// Expiration is a provider expiry code for new pastes.
type Expiration string

const (
	ExpireNever   Expiration = "N"
	Expire10Min   Expiration = "10M"
	Expire1Hour   Expiration = "1H"
	Expire1Day    Expiration = "1D"
	Expire1Week   Expiration = "1W"
	Expire2Weeks  Expiration = "2W"
	Expire1Month  Expiration = "1M"
	Expire6Months Expiration = "6M"
	Expire1Year   Expiration = "1Y"
)

var expirations = []Expiration{
	ExpireNever, Expire10Min, Expire1Hour, Expire1Day, Expire1Week,
	Expire2Weeks, Expire1Month, Expire6Months, Expire1Year,
}

// ParseExpiration accepts one of the provider's expiry codes. An empty
// string means never.
func ParseExpiration(s string) (Expiration, error) {
	if s == "" {
		return ExpireNever, nil
	}
	for _, e := range expirations {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", &ValueError{Kind: "expiration", Value: s, Reason: "expected one of N, 10M, 1H, 1D, 1W, 2W, 1M, 6M, 1Y"}
}

func (e Expiration) FormValue() string { return string(e) }
