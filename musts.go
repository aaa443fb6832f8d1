package decround

import "fmt"

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustRound is like [Decimal.Round] but panics if rounding fails.
func (d Decimal) MustRound(places int, mode RoundingMode) Decimal {
	f, err := d.Round(places, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.MustRound(%v, %v) failed: %v", d, places, mode, err))
	}
	return f
}
