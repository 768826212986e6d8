package validator

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PresenceConfig fails blank values.
type PresenceConfig struct{}

func (PresenceConfig) Kind() Kind      { return KindPresence }
func (PresenceConfig) validate() error { return nil }

func (PresenceConfig) check(in Input) (failure, bool) {
	if in.IsBlank() {
		return failure{key: MsgBlank}, true
	}
	return failure{}, false
}

// Presence validates that a field is not blank.
func Presence(opts ...Option) *Rule {
	return Must(PresenceConfig{}, opts...)
}

// LengthConfig bounds the character count of a value.
// Zero means "not set". Equal Minimum and Maximum behave like Is.
type LengthConfig struct {
	Minimum int
	Maximum int
	Is      int

	// Optional overrides of the catalog messages.
	TooShort    string
	TooLong     string
	WrongLength string
}

func (LengthConfig) Kind() Kind { return KindLength }

func (c LengthConfig) validate() error {
	switch {
	case c.Minimum < 0 || c.Maximum < 0 || c.Is < 0:
		return errors.New("bounds must not be negative")
	case c.Minimum == 0 && c.Maximum == 0 && c.Is == 0:
		return errors.New("one of minimum, maximum or is is required")
	case c.Maximum > 0 && c.Minimum > c.Maximum:
		return errors.New("minimum must not exceed maximum")
	case c.Is > 0 && (c.Minimum > 0 || c.Maximum > 0):
		return errors.New("is cannot be combined with minimum or maximum")
	}
	return nil
}

func (c LengthConfig) check(in Input) (failure, bool) {
	n := characterCount(in.Value())

	exact := c.Is
	if exact == 0 && c.Minimum > 0 && c.Minimum == c.Maximum {
		exact = c.Minimum
	}

	switch {
	case exact > 0:
		if n != exact {
			return failure{key: MsgWrongLength, args: []any{exact}, text: c.WrongLength}, true
		}
	case c.Minimum > 0 && n < c.Minimum:
		return failure{key: MsgTooShort, args: []any{c.Minimum}, text: c.TooShort}, true
	case c.Maximum > 0 && n > c.Maximum:
		return failure{key: MsgTooLong, args: []any{c.Maximum}, text: c.TooLong}, true
	}
	return failure{}, false
}

// characterCount counts user-perceived characters of composed text, so a
// decomposed "é" counts as one.
func characterCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// Length validates the character count of a value.
func Length(cfg LengthConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}

// AcceptanceConfig requires a checkbox-like field to carry the accepted value.
// Accept defaults to "1"; "true" is accepted as well when Accept is unset.
// AllowNull defaults to true so an absent checkbox is not an error.
type AcceptanceConfig struct {
	Accept string
}

func (AcceptanceConfig) Kind() Kind                { return KindAcceptance }
func (AcceptanceConfig) validate() error           { return nil }
func (AcceptanceConfig) defaultOptions(o *Options) { o.AllowNull = true }

func (c AcceptanceConfig) check(in Input) (failure, bool) {
	v := in.Value()
	if c.Accept != "" {
		if v == c.Accept {
			return failure{}, false
		}
		return failure{key: MsgAccepted}, true
	}
	if v == "1" || v == "true" {
		return failure{}, false
	}
	return failure{key: MsgAccepted}, true
}

// Acceptance validates that a terms-of-service style field was accepted.
func Acceptance(cfg AcceptanceConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}

// ConfirmationConfig is registered on the confirmation field and compares it
// with the original field named by Of. Only the confirmation field reports
// the mismatch; the original stays valid.
type ConfirmationConfig struct {
	Of              string
	CaseInsensitive bool
}

func (ConfirmationConfig) Kind() Kind { return KindConfirmation }

func (c ConfirmationConfig) validate() error {
	if c.Of == "" {
		return errors.New("of must name the original field")
	}
	return nil
}

func (c ConfirmationConfig) check(in Input) (failure, bool) {
	original, _ := in.Sibling(c.Of)
	want := ""
	if len(original) > 0 {
		want = original[0]
	}

	got := in.Value()
	if c.CaseInsensitive {
		got, want = fold(got), fold(want)
	}
	if got != want {
		return failure{key: MsgConfirmation}, true
	}
	return failure{}, false
}

// Confirmation validates that a field repeats the value of another field.
func Confirmation(cfg ConfirmationConfig, opts ...Option) *Rule {
	return Must(cfg, opts...)
}
