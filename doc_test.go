package decround_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/govalues/decround"
)

type Invoice struct {
	Places int                   `json:"places"`
	Mode   decround.RoundingMode `json:"mode"`
	Total  decround.Decimal      `json:"total"`
}

// This example rounds an invoice total read from JSON with the rounding
// settings stored next to it.
func Example_invoice() {
	var inv Invoice
	err := json.Unmarshal([]byte(`{"places": 2, "mode": "half_up", "total": "1234.565"}`), &inv)
	if err != nil {
		panic(err)
	}
	total, err := inv.Total.Round(inv.Places, inv.Mode)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	enc := json.NewEncoder(os.Stdout)
	err = enc.Encode(Invoice{Places: inv.Places, Mode: inv.Mode, Total: total})
	if err != nil {
		panic(err)
	}
	// Output:
	// 1234.57
	// {"places":2,"mode":"half-away-from-zero","total":"1234.57"}
}

// This example rounds a float to three places after the decimal point.
// The binary representation error of the float does not leak into the result.
func Example_float() {
	d, err := decround.NewFromFloat64(2.0004999)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.MustRound(3, decround.HalfAwayFromZero))
	fmt.Println(d.MustRound(3, decround.HalfAwayFromZero).Trim(0))
	// Output:
	// 2.000
	// 2
}

func ExampleRound() {
	d := decround.MustParse("2.345")
	fmt.Println(decround.Round(d, 2, decround.HalfEven))
	fmt.Println(decround.Round(d, 2, decround.HalfAwayFromZero))
	fmt.Println(decround.Round(d, 2, decround.RoundingMode(7)))
	// Output:
	// 2.34 <nil>
	// 2.35 <nil>
	// 0 rounding 2.345 to 2 place(s): invalid argument: unknown rounding mode
}

func ExampleDecimal_Round() {
	d := decround.MustParse("-2.355")
	fmt.Println(d.Round(2, decround.HalfEven))
	fmt.Println(d.Round(2, decround.HalfAwayFromZero))
	fmt.Println(d.Round(2, decround.HalfTowardZero))
	fmt.Println(d.Round(2, decround.Ceiling))
	fmt.Println(d.Round(2, decround.Floor))
	fmt.Println(d.Round(2, decround.TowardZero))
	fmt.Println(d.Round(2, decround.AwayFromZero))
	fmt.Println(d.Round(5, decround.HalfEven))
	// Output:
	// -2.36 <nil>
	// -2.36 <nil>
	// -2.35 <nil>
	// -2.35 <nil>
	// -2.36 <nil>
	// -2.35 <nil>
	// -2.36 <nil>
	// -2.355 <nil>
}

func ExampleDecimal_Round_negativePlaces() {
	d := decround.MustParse("1250")
	fmt.Println(d.Round(-2, decround.HalfEven))
	fmt.Println(d.Round(-2, decround.HalfAwayFromZero))
	fmt.Println(d.Round(-4, decround.AwayFromZero))
	fmt.Println(d.Round(-30, decround.TowardZero))
	e := decround.MustParse("9999999999999999999")
	fmt.Println(e.Round(-1, decround.HalfEven))
	// Output:
	// 1200 <nil>
	// 1300 <nil>
	// 10000 <nil>
	// 0 <nil>
	// 0 rounding 9999999999999999999 to -1 place(s) using half-even: overflow: coefficient has more than 19 digits
}

func ExampleDecimal_MustRound() {
	d := decround.MustParse("0.125")
	fmt.Println(d.MustRound(2, decround.HalfEven))
	fmt.Println(d.MustRound(2, decround.HalfAwayFromZero))
	// Output:
	// 0.12
	// 0.13
}

func ExampleDecimal_Trunc() {
	d := decround.MustParse("-15.679")
	fmt.Println(d.Trunc(2))
	fmt.Println(d.Trunc(0))
	fmt.Println(d.Trunc(-1))
	// Output:
	// -15.67
	// -15
	// -10
}

func ExampleDecimal_Ceil() {
	d := decround.MustParse("-15.679")
	e := decround.MustParse("15.671")
	fmt.Println(d.Ceil(2))
	fmt.Println(e.Ceil(2))
	// Output:
	// -15.67 <nil>
	// 15.68 <nil>
}

func ExampleDecimal_Floor() {
	d := decround.MustParse("-15.671")
	e := decround.MustParse("15.679")
	fmt.Println(d.Floor(2))
	fmt.Println(e.Floor(2))
	// Output:
	// -15.68 <nil>
	// 15.67 <nil>
}

func ExampleDecimal_Quantize() {
	d := decround.MustParse("1.23456")
	e := decround.MustParse("0.001")
	fmt.Println(d.Quantize(e, decround.HalfEven))
	// Output:
	// 1.235 <nil>
}

func ExampleParseRoundingMode() {
	fmt.Println(decround.ParseRoundingMode("half-even"))
	fmt.Println(decround.ParseRoundingMode("HALF_UP"))
	fmt.Println(decround.ParseRoundingMode("bankers"))
	fmt.Println(decround.ParseRoundingMode("sideways"))
	// Output:
	// half-even <nil>
	// half-away-from-zero <nil>
	// half-even <nil>
	// half-even parsing "sideways": invalid argument: unknown rounding mode
}

func ExampleRoundingMode_String() {
	fmt.Println(decround.Floor)
	fmt.Println(decround.RoundingMode(42))
	// Output:
	// floor
	// RoundingMode(42)
}

func ExampleParse() {
	fmt.Println(decround.Parse("-1.230"))
	fmt.Println(decround.Parse("1.5e3"))
	fmt.Println(decround.Parse("0.123456789012345678901"))
	fmt.Println(decround.Parse("1..2"))
	// Output:
	// -1.230 <nil>
	// 1500 <nil>
	// 0.1234567890123456789 <nil>
	// 0 parsing "1..2": invalid character '.': invalid argument: invalid decimal
}

func ExampleNew() {
	fmt.Println(decround.New(-123, 2))
	fmt.Println(decround.New(5, 20))
	// Output:
	// -1.23 <nil>
	// 0 New(5, 20) failed: invalid argument: scale out of range
}

func ExampleNewFromFloat64() {
	fmt.Println(decround.NewFromFloat64(1.005))
	fmt.Println(decround.NewFromFloat64(1e-25))
	// Output:
	// 1.005 <nil>
	// 0 <nil>
}

func ExampleDecimal_Format() {
	d := decround.MustParse("-5.675")
	fmt.Printf("%v\n", d)
	fmt.Printf("%.2f\n", d)
	fmt.Printf("%.5f\n", d)
	fmt.Printf("[%10q]\n", d)
	// Output:
	// -5.675
	// -5.68
	// -5.67500
	// [  "-5.675"]
}

func ExampleDecimal_Cmp() {
	d := decround.MustParse("1.50")
	e := decround.MustParse("1.5")
	fmt.Println(d.Cmp(e), d == e, d.CmpTotal(e))
	// Output:
	// 0 false -1
}
