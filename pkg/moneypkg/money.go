// Package moneypkg provides parsing and formatting of plain money amounts.
package moneypkg

import (
	"encoding/json"
	"errors"
	"math/big"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrNotANumber indicates that the given string is not a finite number.
var ErrNotANumber = errors.New("not a number")

// RupeeSign prefixes every formatted amount.
const RupeeSign = "₹"

// Amounts outside these bounds are not plain numbers.
const (
	MaxSignificantDigits = 30
	MaxExponent          = 308
)

// Parse converts a user supplied string into a decimal amount.
//
// Surrounding whitespace is ignored. Empty strings, NaN, infinities and
// magnitudes beyond 1e308 or below 1e-308 are rejected. The result carries
// no trailing zeros in its coefficient.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrNotANumber
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}

	return normalize(d)
}

// normalize strips trailing zeros from the coefficient of d and checks its
// bounds before any arithmetic scales it by its exponent.
func normalize(d decimal.Decimal) (decimal.Decimal, error) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return decimal.Zero, nil
	}

	digits := strings.TrimPrefix(coef.String(), "-")
	significant := strings.TrimRight(digits, "0")
	exp := int64(d.Exponent()) + int64(len(digits)-len(significant))

	if len(significant) > MaxSignificantDigits ||
		exp < -MaxExponent ||
		exp+int64(len(significant)) > MaxExponent+1 {
		return decimal.Zero, ErrNotANumber
	}

	value, _ := new(big.Int).SetString(significant, 10)
	if coef.Sign() < 0 {
		value.Neg(value)
	}

	return decimal.NewFromBigInt(value, int32(exp)), nil
}

// Input is an amount as sent by clients: either a JSON string or a JSON number.
//
// It keeps the raw text so that Parse decides what is a valid amount.
type Input string

// UnmarshalJSON implements json.Unmarshaler.
func (in *Input) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*in = Input(s)

		return nil
	}

	if string(b) == "null" {
		return nil
	}

	*in = Input(b)

	return nil
}

// ValidAmount validates whether the field holds a parsable amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	_, err := Parse(fl.Field().String())

	return err == nil
}

// Rupees renders d as it is written in log details, e.g. ₹1500.5.
func Rupees(d decimal.Decimal) string {
	return RupeeSign + d.String()
}

// FormatINR renders d with two decimals and Indian digit grouping, e.g. ₹1,23,456.50.
func FormatINR(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	return sign + RupeeSign + groupIndian(intPart) + "." + frac
}

// groupIndian groups the last three digits, then every two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}

	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
