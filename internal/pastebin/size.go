package pastebin

import "strconv"

// SizeUnit is a binary-prefix unit. Each unit is 1024 of the previous one.
type SizeUnit int

const (
	UnitB SizeUnit = iota
	UnitKB
	UnitMB
	UnitGB
	UnitTB
)

func (u SizeUnit) String() string {
	switch u {
	case UnitKB:
		return "KB"
	case UnitMB:
		return "MB"
	case UnitGB:
		return "GB"
	case UnitTB:
		return "TB"
	default:
		return "B"
	}
}

// ByteSize is a byte count paired with the largest unit that keeps the
// scaled value below 1024. Scaling stops at TB.
type ByteSize struct {
	bytes  uint64
	scaled float64
	unit   SizeUnit
}

// NewByteSize scales n by repeated division by 1024, starting at UnitB.
func NewByteSize(n uint64) ByteSize {
	scaled := float64(n)
	unit := UnitB
	for scaled >= 1024 && unit < UnitTB {
		scaled /= 1024
		unit++
	}
	return ByteSize{bytes: n, scaled: scaled, unit: unit}
}

// ParseByteSize parses a non-negative decimal byte count.
func ParseByteSize(s string) (ByteSize, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ByteSize{}, &ValueError{Kind: "size", Value: s, Reason: "not a non-negative integer"}
	}
	return NewByteSize(n), nil
}

// Bytes returns the unscaled count.
func (b ByteSize) Bytes() uint64 { return b.bytes }

// Scaled returns the count expressed in Unit.
func (b ByteSize) Scaled() float64 { return b.scaled }

func (b ByteSize) Unit() SizeUnit { return b.unit }

// String renders plain bytes without a decimal point and every larger unit
// with two decimals, e.g. "1023B", "1.00KB".
func (b ByteSize) String() string {
	if b.unit == UnitB {
		return strconv.FormatUint(b.bytes, 10) + b.unit.String()
	}
	return strconv.FormatFloat(b.scaled, 'f', 2, 64) + b.unit.String()
}
