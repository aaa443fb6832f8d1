package decround

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Decimal type is a representation of an exact decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the number of digits after the decimal point.
//   - Coefficient: an integer value of the decimal without the decimal point.
//
// For example, a decimal with a coefficient of 12345 and a scale of 2 represents
// the value 123.45.
// The same numerical value can have multiple representations:
// 1, 1.0, and 1.00 are equal, but they have different scales and coefficients.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative
	scale int8 // the number of digits after the decimal point
	coef  fint // the coefficient of the decimal
}

const (
	MaxPrec  = 19      // maximum length of the coefficient in decimal digits
	MaxScale = MaxPrec // maximum number of digits after the decimal point
	maxCoef  = maxFint // maximum absolute value of the coefficient, which is equal to (10^MaxPrec - 1)
)

var (
	// ErrInvalidArgument is the kind of every error caused by malformed input:
	// unparsable strings, unknown rounding modes, scales out of range,
	// non-finite floats.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is the kind of every error caused by a result that cannot
	// be represented with a coefficient of [MaxPrec] digits.
	ErrOverflow = errors.New("overflow")
)

var (
	errCoefficientOverflow = fmt.Errorf("%w: coefficient has more than %v digits", ErrOverflow, MaxPrec)
	errExponentRange       = fmt.Errorf("%w: exponent out of range", ErrOverflow)
	errInvalidDecimal      = fmt.Errorf("%w: invalid decimal", ErrInvalidArgument)
	errScaleRange          = fmt.Errorf("%w: scale out of range", ErrInvalidArgument)
	errNotFinite           = fmt.Errorf("%w: not a finite number", ErrInvalidArgument)
	errUnknownRoundingMode = fmt.Errorf("%w: unknown rounding mode", ErrInvalidArgument)
)

func newDecimal(neg bool, coef fint, scale int) (Decimal, error) {
	switch {
	case scale < 0 || scale > MaxScale:
		return Decimal{}, errScaleRange
	case coef > maxCoef:
		return Decimal{}, errCoefficientOverflow
	}
	if coef == 0 {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: int8(scale)}, nil
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is negative or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	var (
		neg   bool
		ucoef fint
	)
	if coef < 0 {
		neg = true
		ucoef = fint(-(coef + 1)) + 1 // math.MinInt64 has no positive counterpart
	} else {
		ucoef = fint(coef)
	}
	d, err := newDecimal(neg, ucoef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("New(%v, %v) failed: %w", coef, scale, err)
	}
	return d, nil
}

// NewFromInt64 converts an integer to a decimal with a scale of 0.
func NewFromInt64(i int64) Decimal {
	return MustNew(i, 0)
}

// NewFromFloat64 converts a float to a decimal.
// The conversion starts from the shortest decimal representation that
// round-trips to f, which is then rounded half-to-even to [MaxScale]
// digits after the decimal point.
//
// NewFromFloat64 returns an error if:
//   - f is NaN or an infinity;
//   - the integer part of f has more than [MaxPrec] digits.
func NewFromFloat64(f float64) (Decimal, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Decimal{}, fmt.Errorf("converting %v: %w", f, errNotFinite)
	case math.Abs(f) < 1e-20:
		// Less than half of the smallest representable unit.
		return Decimal{}, nil
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse removes leading zeros from the integer part of the input string,
// but maintains trailing zeros in the fractional part to preserve scale.
// Digits beyond [MaxScale] places after the decimal point, and fractional
// digits that do not fit into [MaxPrec] digits of the coefficient, are rounded
// half-to-even.
//
// Parse returns an error if:
//   - the string does not represent a valid decimal number;
//   - the integer part of the result has more than [MaxPrec] digits;
//   - the significand has more than 2 * [MaxPrec] significant digits;
//   - the exponent is less than -2 * [MaxScale] or greater than 2 * [MaxScale].
func Parse(s string) (Decimal, error) {
	n, err := scan(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	d, err := parseFast(n)
	if err != nil {
		d, err = parseSlow(n)
		if err != nil {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
		}
	}
	return d, nil
}

// numeral is a syntactically valid decimal string split into its parts.
type numeral struct {
	neg   bool
	ipart string // integer digits without leading zeros
	fpart string // fractional digits
	exp   int
}

// scale returns the number of digits after the decimal point
// the numeral represents.
func (n numeral) scale() int {
	return len(n.fpart) - n.exp
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func scan(s string) (numeral, error) {
	var (
		n      numeral
		pos    int
		start  int
		width  int
		eneg   bool
		hasexp bool
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		n.neg = s[pos] == '-'
		pos++
	}

	// Integer
	start = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	n.ipart = s[start:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		n.fpart = s[start:pos]
	}

	if n.ipart == "" && n.fpart == "" {
		return numeral{}, fmt.Errorf("no coefficient: %w", errInvalidDecimal)
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		if pos < width && (s[pos] == '-' || s[pos] == '+') {
			eneg = s[pos] == '-'
			pos++
		}
		for pos < width && isDigit(s[pos]) {
			n.exp = n.exp*10 + int(s[pos]-'0')
			if n.exp > 2*MaxScale {
				return numeral{}, errExponentRange
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return numeral{}, fmt.Errorf("no exponent: %w", errInvalidDecimal)
		}
		if eneg {
			n.exp = -n.exp
		}
	}

	if pos != width {
		return numeral{}, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidDecimal)
	}

	// Leading zeros
	for len(n.ipart) > 0 && n.ipart[0] == '0' {
		n.ipart = n.ipart[1:]
	}
	if len(n.ipart)+len(n.fpart) > 2*MaxPrec {
		return numeral{}, errCoefficientOverflow
	}

	return n, nil
}

// parseFast builds the decimal using uint64 arithmetic only.
// It fails if the digits do not fit into a uint64 before rescaling.
func parseFast(n numeral) (Decimal, error) {
	var (
		coef fint
		ok   bool
	)
	for _, part := range [...]string{n.ipart, n.fpart} {
		for i := 0; i < len(part); i++ {
			coef, ok = coef.fsa(1, part[i]-'0')
			if !ok {
				return Decimal{}, errCoefficientOverflow
			}
		}
	}

	scale := n.scale()
	switch {
	case scale < 0:
		coef, ok = coef.lsh(-scale)
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		scale = 0
	case scale > MaxScale:
		coef = coef.rsh(scale-MaxScale, n.neg, HalfEven)
		scale = MaxScale
	}
	return newDecimal(n.neg, coef, scale)
}

// parseSlow builds the decimal using big.Int arithmetic.
// Fractional digits that do not fit into the coefficient are rounded
// half-to-even in a single step.
func parseSlow(n numeral) (Decimal, error) {
	coef := getBint()
	defer putBint(coef)
	coef.setDigits(n.ipart, n.fpart)

	scale := n.scale()
	if scale < 0 {
		coef.lsh(coef, -scale)
		scale = 0
	}

	// Rounding
	shift := min(max(scale-MaxScale, coef.prec()-MaxPrec), scale)
	if shift > 0 {
		coef.rsh(coef, shift, n.neg, HalfEven)
		scale -= shift
	}
	// Rounding carried into a new digit, so the coefficient is now a power of 10.
	if scale > 0 && coef.hasPrec(MaxPrec+1) {
		coef.rsh(coef, 1, n.neg, HalfEven)
		scale--
	}

	if coef.hasPrec(MaxPrec + 1) {
		return Decimal{}, fmt.Errorf("the integer part of a %T can have at most %v digit(s), but it has %v digit(s): %w", Decimal{}, MaxPrec, coef.prec()-scale, errCoefficientOverflow)
	}
	return newDecimal(n.neg, coef.fint(), scale)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var (
		buf   [24]byte
		pos   int
		coef  fint
		scale int
	)

	pos = len(buf) - 1
	coef = d.coef
	scale = d.Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Float64 returns the nearest binary floating-point number rounded
// using the "half to even" rule.
// ok is true if converting f back with [NewFromFloat64] yields a decimal
// equal to d.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, false
	}
	back, err := NewFromFloat64(f)
	if err != nil {
		return f, false
	}
	return f, back.Cmp(d) == 0
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the decimal.
// A smaller precision rounds the decimal half-to-even, a larger one pads it
// with trailing zeros.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	// Rescaling
	tzeros := 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			if p > d.Scale() {
				tzeros = p - d.Scale()
			}
			d = d.MustRound(p, HalfEven)
		}
	}

	// Integer and fractional digits
	intdigs, fracdigs := 0, d.Scale()
	if dprec := d.Prec(); dprec > fracdigs {
		intdigs = dprec - fracdigs
	}
	if d.WithinOne() {
		intdigs++ // leading 0
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 || tzeros > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, tspaces, lzeros := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, width)
	pos := width - 1
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < tzeros; i++ {
		buf[pos] = '0'
		pos--
	}
	coef := d.coef
	for i := 0; i < fracdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}
	for i := 0; i < intdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}
	for i := 0; i < lzeros; i++ {
		buf[pos] = '0'
		pos--
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf[pos] = '-'
		case state.Flag(' '):
			buf[pos] = ' '
		default:
			buf[pos] = '+'
		}
		pos--
	}
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(decround.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns number of digits in the coefficient.
func (d Decimal) Prec() int {
	return d.coef.prec()
}

// Coef returns the coefficient of the decimal.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() uint64 {
	return uint64(d.coef)
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// MinScale returns the smallest scale that d can be rescaled to without rounding.
// Also see method [Decimal.Trim].
func (d Decimal) MinScale() int {
	// Special case: no scale
	if d.Scale() == 0 || d.IsZero() {
		return 0
	}
	// General case
	z := d.coef.ntz()
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// Trim returns d with trailing zeros removed up to the given scale.
// The value of d is never changed, only its representation.
// If scale is less than [Decimal.MinScale], the result has the minimum scale.
func (d Decimal) Trim(scale int) Decimal {
	scale = max(scale, d.MinScale())
	if scale >= d.Scale() {
		return d
	}
	return d.Trunc(scale)
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.coef%pow10[d.Scale()] == 0
}

// WithinOne returns true if -1 < d < 1.
func (d Decimal) WithinOne() bool {
	return d.coef < pow10[d.Scale()]
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	d.neg = !d.neg && d.coef != 0
	return d
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef == 0:
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.coef != 0 && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef == 0
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// The scales of d and e are irrelevant: 1.0 and 1.00 are equal.
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	r, ok := cmpFast(d, e)
	if !ok {
		r = cmpSlow(d, e)
	}
	return r
}

// cmpFast compares d and e of the same sign using uint64 arithmetic.
// It fails if the coefficients cannot be aligned without overflow.
func cmpFast(d, e Decimal) (int, bool) {
	var (
		dcoef, ecoef fint
		ok           bool
	)

	dcoef = d.coef
	ecoef = e.coef

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return 0, false
		}
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return 0, false
		}
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return d.Sign(), true
	case dcoef < ecoef:
		return -e.Sign(), true
	}
	return 0, true
}

// cmpSlow compares d and e of the same sign using big.Int arithmetic.
func cmpSlow(d, e Decimal) int {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)

	dcoef.setFint(d.coef)
	ecoef.setFint(e.coef)

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	}
	return 0
}

// Equal returns true if d and e denote the same number.
// Unlike the == operator, Equal ignores the scale.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// CmpTotal compares representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.Scale() < d.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}
