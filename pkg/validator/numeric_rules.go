package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerRegex = regexp.MustCompile(`^[+-]?\d+$`)
	decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// NumericalityConfig validates that a value is a number within optional bounds.
// Nil bounds are not checked; use Bound to take the address of a literal.
type NumericalityConfig struct {
	OnlyInteger          bool
	GreaterThan          *float64
	GreaterThanOrEqualTo *float64
	EqualTo              *float64
	LessThan             *float64
	LessThanOrEqualTo    *float64
	Odd                  bool
	Even                 bool
}

// Bound returns a pointer to v for NumericalityConfig bounds.
func Bound(v float64) *float64 {
	return &v
}

func (NumericalityConfig) Kind() Kind { return KindNumericality }

func (c NumericalityConfig) validate() error {
	if c.Odd && c.Even {
		return errors.New("odd and even are mutually exclusive")
	}
	return nil
}

func (c NumericalityConfig) check(in Input) (failure, bool) {
	raw := strings.TrimSpace(in.Value())

	if c.OnlyInteger && !integerRegex.MatchString(raw) {
		if decimalRegex.MatchString(raw) {
			return failure{key: MsgNotAnInteger}, true
		}
		return failure{key: MsgNotANumber}, true
	}
	if !decimalRegex.MatchString(raw) {
		return failure{key: MsgNotANumber}, true
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return failure{key: MsgNotANumber}, true
	}

	bounds := []struct {
		limit *float64
		key   MessageKey
		ok    func(n, limit float64) bool
	}{
		{c.GreaterThan, MsgGreaterThan, func(n, l float64) bool { return n > l }},
		{c.GreaterThanOrEqualTo, MsgGreaterThanOrEqualTo, func(n, l float64) bool { return n >= l }},
		{c.EqualTo, MsgEqualTo, func(n, l float64) bool { return n == l }},
		{c.LessThan, MsgLessThan, func(n, l float64) bool { return n < l }},
		{c.LessThanOrEqualTo, MsgLessThanOrEqualTo, func(n, l float64) bool { return n <= l }},
	}
	for _, b := range bounds {
		if b.limit != nil && !b.ok(n, *b.limit) {
			return failure{key: b.key, args: []any{formatNumber(*b.limit)}}, true
		}
	}

	if c.Odd || c.Even {
		if n != math.Trunc(n) {
			return failure{key: MsgNotAnInteger}, true
		}
		odd := math.Mod(n, 2) != 0
		if c.Odd && !odd {
			return failure{key: MsgOdd}, true
		}
		if c.Even && odd {
			return failure{key: MsgEven}, true
		}
	}

	return failure{}, false
}

// Numericality validates that a value is numeric.
func Numericality(cfg NumericalityConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}
