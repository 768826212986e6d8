package validator

import (
	"errors"
	"regexp"
)

// FormatConfig checks a value against regular expressions.
// At least one of With and Without is required.
type FormatConfig struct {
	// With must match the value.
	With *regexp.Regexp
	// Without must not match the value.
	Without *regexp.Regexp
}

func (FormatConfig) Kind() Kind { return KindFormat }

func (c FormatConfig) validate() error {
	if c.With == nil && c.Without == nil {
		return errors.New("with or without pattern is required")
	}
	return nil
}

func (c FormatConfig) check(in Input) (failure, bool) {
	v := in.Value()
	if c.With != nil && !c.With.MatchString(v) {
		return failure{key: MsgInvalid}, true
	}
	if c.Without != nil && c.Without.MatchString(v) {
		return failure{key: MsgInvalid}, true
	}
	return failure{}, false
}

// Format validates a value against a pattern. Compile patterns once at setup.
func Format(cfg FormatConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}
