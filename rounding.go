package decround

import (
	"fmt"
	"strings"
)

// RoundingMode selects how digits beyond the requested number of places
// are discarded.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest neighbour.
	// If both neighbours are equidistant, it rounds to the one whose last
	// retained digit is even. This is also known as banker's rounding.
	HalfEven RoundingMode = iota
	// HalfAwayFromZero rounds to the nearest neighbour.
	// If both neighbours are equidistant, it rounds to the one with the larger
	// magnitude. This is the rounding taught in school.
	HalfAwayFromZero
	// HalfTowardZero rounds to the nearest neighbour.
	// If both neighbours are equidistant, it rounds to the one with the smaller
	// magnitude.
	HalfTowardZero
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
	// TowardZero discards extra digits without any adjustment (truncation).
	TowardZero
	// AwayFromZero increases the magnitude whenever a discarded digit is nonzero.
	AwayFromZero
)

var modeNames = [...]string{
	HalfEven:         "half-even",
	HalfAwayFromZero: "half-away-from-zero",
	HalfTowardZero:   "half-toward-zero",
	Ceiling:          "ceiling",
	Floor:            "floor",
	TowardZero:       "toward-zero",
	AwayFromZero:     "away-from-zero",
}

// modeAliases maps alternative spellings used by other decimal libraries
// and by spreadsheets to rounding modes.
var modeAliases = map[string]RoundingMode{
	"bankers":   HalfEven,
	"half-up":   HalfAwayFromZero,
	"half-down": HalfTowardZero,
	"up":        AwayFromZero,
	"down":      TowardZero,
	"truncate":  TowardZero,
}

// IsValid returns true if m is one of the defined rounding modes.
func (m RoundingMode) IsValid() bool {
	return int(m) < len(modeNames)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseRoundingMode converts a name to a rounding mode.
// Names are matched case-insensitively; underscores and spaces are treated as hyphens.
// Besides the names returned by [RoundingMode.String], the following aliases
// are accepted: "bankers", "half-up", "half-down", "up", "down", "truncate".
func ParseRoundingMode(name string) (RoundingMode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for m, n := range modeNames {
		if n == key {
			return RoundingMode(m), nil
		}
	}
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("parsing %q: %w", name, errUnknownRoundingMode)
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, errUnknownRoundingMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// increment reports whether the magnitude of a truncated coefficient has to
// be increased by one.
// neg is the sign of the number, odd is the parity of the truncated coefficient,
// inexact is true if any discarded digit is nonzero, and half compares
// the discarded part with one half of the last retained unit (-1, 0, +1).
func (m RoundingMode) increment(neg, odd, inexact bool, half int) bool {
	if !inexact {
		return false
	}
	switch m {
	case HalfEven:
		return half > 0 || (half == 0 && odd)
	case HalfAwayFromZero:
		return half >= 0
	case HalfTowardZero:
		return half > 0
	case Ceiling:
		return !neg
	case Floor:
		return neg
	case AwayFromZero:
		return true
	}
	return false
}

// Round returns d rounded to the specified number of digits after the
// decimal point using the given rounding mode.
// Negative places round to a power of ten above the decimal point,
// for example, places = -2 rounds to the nearest hundred.
//
// If d has no more than places digits after the decimal point, d is returned
// unchanged, and its scale is not padded.
// Otherwise, the scale of the result is the greater of places and 0.
//
// Round returns an error if:
//   - mode is not a defined rounding mode;
//   - the coefficient of the result would have more than [MaxPrec] digits.
//     This can only happen when places is negative.
func (d Decimal) Round(places int, mode RoundingMode) (Decimal, error) {
	if !mode.IsValid() {
		return Decimal{}, fmt.Errorf("rounding %v to %v place(s): %w", d, places, errUnknownRoundingMode)
	}

	// Special case: nothing to discard
	if places >= d.Scale() {
		return d, nil
	}

	var (
		coef  fint
		scale int
		ok    bool
	)

	// Places below -MaxPrec-1 discard the whole coefficient,
	// exactly like -MaxPrec-1 does.
	p := max(places, -MaxPrec-1)

	// Rounding
	coef = d.coef.rsh(d.Scale()-p, d.IsNeg(), mode)

	// Rescaling
	if p < 0 {
		coef, ok = coef.lsh(-p)
		if !ok {
			return Decimal{}, fmt.Errorf("rounding %v to %v place(s) using %v: %w", d, places, mode, errCoefficientOverflow)
		}
	} else {
		scale = p
	}

	return newDecimal(d.IsNeg(), coef, scale)
}

// Round is the function form of [Decimal.Round].
func Round(d Decimal, places int, mode RoundingMode) (Decimal, error) {
	return d.Round(places, mode)
}

// Trunc returns d with all digits after the specified number of places
// discarded.
// It is equivalent to [Decimal.Round] with [TowardZero], which cannot fail.
func (d Decimal) Trunc(places int) Decimal {
	return d.MustRound(places, TowardZero)
}

// Ceil returns d rounded up towards positive infinity to the specified
// number of places.
// Also see method [Decimal.Floor].
func (d Decimal) Ceil(places int) (Decimal, error) {
	return d.Round(places, Ceiling)
}

// Floor returns d rounded down towards negative infinity to the specified
// number of places.
// Also see method [Decimal.Ceil].
func (d Decimal) Floor(places int) (Decimal, error) {
	return d.Round(places, Floor)
}

// Quantize returns d rounded to the same scale as e.
// The sign and coefficient of e are ignored.
// Like [Decimal.Round], Quantize never pads d with trailing zeros.
func (d Decimal) Quantize(e Decimal, mode RoundingMode) (Decimal, error) {
	return d.Round(e.Scale(), mode)
}
