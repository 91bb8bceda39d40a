package pastebin

import (
	"strconv"
	"time"
)

// TimestampLayout is used when rendering timestamps in reports.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// Timestamp is an absolute UTC time received as epoch seconds.
type Timestamp struct {
	t time.Time
}

// ParseTimestamp parses a string of decimal digits as seconds since the Unix epoch.
func ParseTimestamp(s string) (Timestamp, error) {
	secs, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return Timestamp{}, &ValueError{Kind: "timestamp", Value: s, Reason: "not a non-negative integer"}
	}
	return Timestamp{t: time.Unix(int64(secs), 0).UTC()}, nil
}

// NewTimestamp wraps t, normalised to UTC with whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.UTC().Truncate(time.Second)}
}

func (ts Timestamp) Time() time.Time { return ts.t }

func (ts Timestamp) String() string {
	return ts.t.Format(TimestampLayout)
}
