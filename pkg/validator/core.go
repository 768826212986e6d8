package validator

import (
	"fmt"
	"strings"
)

// Kind names a rule family.
type Kind string

const (
	KindPresence     Kind = "presence"
	KindLength       Kind = "length"
	KindFormat       Kind = "format"
	KindNumericality Kind = "numericality"
	KindInclusion    Kind = "inclusion"
	KindExclusion    Kind = "exclusion"
	KindAcceptance   Kind = "acceptance"
	KindConfirmation Kind = "confirmation"
	KindRemote       Kind = "remote"
	KindCustom       Kind = "custom"
)

// Input is what a rule is evaluated against.
type Input struct {
	// Field is the canonical field name.
	Field string
	// Scope is the form or container the values were read from. Empty means
	// every scope was searched.
	Scope string
	// Values holds every value of the field; multi-valued fields carry more than one.
	Values []string
	// Lookup resolves values of sibling fields in the same scope. May be nil.
	Lookup func(field string) ([]string, bool)
}

// Value returns the first value, or "" for a null input.
func (in Input) Value() string {
	if len(in.Values) == 0 {
		return ""
	}
	return in.Values[0]
}

// IsNull reports whether the field carries no value at all.
func (in Input) IsNull() bool {
	return len(in.Values) == 0
}

// IsBlank reports whether the field is null or every value is whitespace.
func (in Input) IsBlank() bool {
	for _, v := range in.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Sibling returns the values of another field in the same scope.
func (in Input) Sibling(field string) ([]string, bool) {
	if in.Lookup == nil {
		return nil, false
	}
	return in.Lookup(field)
}

// Config is the kind-specific half of a rule. The catalog's *Config structs
// implement it; use CustomConfig to plug in an arbitrary predicate.
type Config interface {
	Kind() Kind
	validate() error
	check(in Input) (failure, bool)
}

// failure describes why a predicate rejected an input.
type failure struct {
	key  MessageKey
	args []any
	text string
}

// optionDefaulter lets a kind change Options defaults before caller options apply.
type optionDefaulter interface {
	defaultOptions(o *Options)
}

// primaryMessage lists kinds with a single failure message. Those get
// Options.Message filled from the catalog when the caller supplied none.
var primaryMessage = map[Kind]MessageKey{
	KindPresence:     MsgBlank,
	KindFormat:       MsgInvalid,
	KindInclusion:    MsgInclusion,
	KindExclusion:    MsgExclusion,
	KindAcceptance:   MsgAccepted,
	KindConfirmation: MsgConfirmation,
}

// Rule is a single registered validation. A *Rule registered for several
// fields is shared: changing its Options affects every field it covers.
// Configure Options before the rule is used concurrently.
type Rule struct {
	Options

	cfg Config
}

// New builds a rule from cfg and applies opts. It returns an error wrapping
// ErrInvalidConfig when cfg is incomplete.
func New(cfg Config, opts ...Option) (*Rule, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, cfg.Kind(), err)
	}

	r := &Rule{cfg: cfg}
	if d, ok := cfg.(optionDefaulter); ok {
		d.defaultOptions(&r.Options)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r.Options)
		}
	}

	if r.Message == "" {
		if key, ok := primaryMessage[cfg.Kind()]; ok {
			r.Message = DefaultMessages.Format(key)
		}
	}

	return r, nil
}

// Must works like New but panics on configuration errors.
// Misconfigured rules are programming errors and should stop page setup.
func Must(cfg Config, opts ...Option) *Rule {
	r, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the rule family.
func (r *Rule) Kind() Kind {
	return r.cfg.Kind()
}

// Config returns the kind-specific configuration.
func (r *Rule) Config() Config {
	return r.cfg
}

// IsRemote reports whether the rule is checked by a server round trip.
func (r *Rule) IsRemote() bool {
	return r.cfg.Kind() == KindRemote
}

// Skip evaluates the guards. The first matching guard wins.
func (r *Rule) Skip(in Input) bool {
	switch {
	case r.AllowBlank && in.IsBlank():
		return true
	case r.AllowNull && in.IsNull():
		return true
	case r.Condition != nil && !r.Condition(in.Field):
		return true
	case r.ConditionInput != nil && !r.ConditionInput(in):
		return true
	case r.Unless != nil && r.Unless(in.Field):
		return true
	case r.UnlessInput != nil && r.UnlessInput(in):
		return true
	}
	return false
}

// Evaluate runs the predicate. It returns the error message and true when the
// input is invalid. Guards are not consulted; call Skip first.
// Remote rules never fail locally.
func (r *Rule) Evaluate(in Input) (string, bool) {
	f, failed := r.cfg.check(in)
	if !failed {
		return "", false
	}
	switch {
	case r.Message != "":
		return r.Message, true
	case f.text != "":
		return f.text, true
	default:
		return DefaultMessages.Format(f.key, f.args...), true
	}
}

// Contribute passes the values of every Include field to add, in order.
// Fields missing from the input's scope are contributed with no values.
func (r *Rule) Contribute(in Input, add func(name string, values []string)) {
	for _, name := range r.Include {
		values, _ := in.Sibling(name)
		add(name, values)
	}
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects field failures and satisfies the error interface.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}
