package decround

import (
	"math/big"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

func (x fint) isOdd() bool {
	return x&1 != 0
}

// rsh (Right Shift) calculates x / 10^shift and rounds the result using mode.
// The sign of the number x belongs to is passed in neg, since directed
// modes depend on it.
func (x fint) rsh(shift int, neg bool, mode RoundingMode) fint {
	// Special cases
	switch {
	case x == 0:
		return 0
	case shift <= 0:
		return x
	case shift >= len(pow10):
		// 10^shift / 2 > maxFint >= x
		if mode.increment(neg, false, true, -1) {
			return 1
		}
		return 0
	}
	// General case
	y := pow10[shift]
	z := x / y
	r := x - z*y // r = x % y
	h := y >> 1  // h = y / 2, which is exact as y is a multiple of 10
	half := 0
	switch {
	case r < h:
		half = -1
	case r > h:
		half = 1
	}
	if mode.increment(neg, z.isOdd(), r != 0, half) {
		z++
	}
	return z
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x fint) ntz() int {
	left, right := 1, x.prec()
	for left < right {
		mid := (left + right) / 2
		if x%pow10[mid] == 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left - 1
}

// bint (Big INTeger) is a wrapper around big.Int.
// It is only used when an input or an aligned coefficient does not fit into fint.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// It covers every shift the parser can request.
var bpow10 = func() [4*MaxPrec + 1]*bint {
	var cache [4*MaxPrec + 1]*bint
	ten := big.NewInt(10)
	for i := range cache {
		z := new(big.Int).Exp(ten, big.NewInt(int64(i)), nil)
		cache[i] = (*bint)(z)
	}
	return cache
}()

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// setDigits sets z to the concatenation of the decimal digit strings.
// Both strings must consist of ASCII digits only.
// Empty strings set z to 0.
func (z *bint) setDigits(ipart, fpart string) {
	if _, ok := (*big.Int)(z).SetString(ipart+fpart, 10); !ok {
		z.setFint(0)
	}
}

// fint converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	f := (*big.Int)(z).Uint64()
	return fint(f)
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(bpow10[0]))
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// bpow returns 10^shift, either from the cache or freshly computed.
// The second result must be passed to putBint when it is not nil.
func bpow(shift int) (y, tmp *bint) {
	if shift < len(bpow10) {
		return bpow10[shift], nil
	}
	tmp = getBint()
	(*big.Int)(tmp).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
	return tmp, tmp
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	y, tmp := bpow(shift)
	if tmp != nil {
		defer putBint(tmp)
	}
	z.mul(x, y)
}

// rsh (Right Shift) calculates z = x / 10^shift and rounds the result
// using mode, see [fint.rsh].
func (z *bint) rsh(x *bint, shift int, neg bool, mode RoundingMode) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setFint(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	y, tmp := bpow(shift)
	if tmp != nil {
		defer putBint(tmp)
	}
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	inexact := r.sign() != 0
	r.dbl(r) // r = r * 2
	if mode.increment(neg, z.isOdd(), inexact, r.cmp(y)) {
		z.inc(z)
	}
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len((*big.Int)(z).String())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// hasPrec checks if z has a given number of digits or more.
// hasPrec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
func (z *bint) hasPrec(prec int) bool {
	// Special cases
	switch {
	case prec < 1:
		return true
	case prec > len(bpow10):
		return len((*big.Int)(z).String()) >= prec
	}
	// General case
	return z.cmp(bpow10[prec-1]) >= 0
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
