package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is rendered for every value the provider did not return.
const NotAvailable = "N/A"

const (
	trillion = 1e12
	billion  = 1e9
	million  = 1e6
)

// FormatLargeNumber scales v to T/B/M with two decimals. Values below one
// million are printed as-is and a missing value is N/A.
func FormatLargeNumber(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	x := *v
	switch {
	case x >= trillion:
		return ToFixed(x/trillion, 2) + "T"
	case x >= billion:
		return ToFixed(x/billion, 2) + "B"
	case x >= million:
		return ToFixed(x/million, 2) + "M"
	}
	return NumberString(x)
}

// FormatRatio rounds v to two decimals, or N/A when missing.
func FormatRatio(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return ToFixed(*v, 2)
}

// FormatCount prints an integral count, or N/A when missing.
func FormatCount(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return NumberString(*v)
}

// FormatImpliedChange returns ((target/price)-1)*100 with two decimals and a
// percent sign. Missing inputs propagate as NaN and print "NaN%".
func FormatImpliedChange(target, price *float64) string {
	t, p := math.NaN(), math.NaN()
	if target != nil {
		t = *target
	}
	if price != nil {
		p = *price
	}
	return ToFixed((t/p-1)*100, 2) + "%"
}

// ToFixed formats v with the given number of decimals, rounding the exact
// binary value half away from zero.
func ToFixed(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return NumberString(v)
	}

	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}

	out := d.StringFixed(places)
	if v < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// NumberString prints v with the shortest round-trip digits, switching to
// exponent notation below 1e-6 and from 1e21 on.
func NumberString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// d.ddde±x
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		e := n - 1
		expSign := "+"
		if e < 0 {
			expSign = "-"
			e = -e
		}
		out = digits[:1]
		if k > 1 {
			out += "." + digits[1:]
		}
		out += "e" + expSign + strconv.Itoa(e)
	}
	return sign + out
}
