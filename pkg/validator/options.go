package validator

// Options are the settings shared by every rule kind.
type Options struct {
	// Message replaces the catalog message for any failure of this rule.
	Message string
	// AllowBlank skips the rule when the value is empty or whitespace.
	AllowBlank bool
	// AllowNull skips the rule when the field has no value at all.
	AllowNull bool
	// Condition skips the rule when it returns false for the field name.
	Condition func(field string) bool
	// Unless skips the rule when it returns true for the field name.
	Unless func(field string) bool
	// ConditionInput and UnlessInput work like Condition and Unless but see
	// the whole input, including the scope it was read from.
	ConditionInput func(in Input) bool
	UnlessInput    func(in Input) bool
	// Include lists extra fields whose values are sent along with a remote check.
	Include []string
}

// Option configures rule Options.
type Option func(*Options)

// WithMessage sets the failure message. Empty messages are ignored.
func WithMessage(message string) Option {
	return func(o *Options) {
		if message != "" {
			o.Message = message
		}
	}
}

func AllowBlank() Option {
	return func(o *Options) { o.AllowBlank = true }
}

func AllowNull() Option {
	return func(o *Options) { o.AllowNull = true }
}

// RejectNull turns AllowNull off for kinds that enable it by default.
func RejectNull() Option {
	return func(o *Options) { o.AllowNull = false }
}

// If applies the rule only when cond returns true.
func If(cond func(field string) bool) Option {
	return func(o *Options) { o.Condition = cond }
}

// Unless skips the rule when cond returns true.
func Unless(cond func(field string) bool) Option {
	return func(o *Options) { o.Unless = cond }
}

// IfInput applies the rule only when cond returns true for the input.
func IfInput(cond func(in Input) bool) Option {
	return func(o *Options) { o.ConditionInput = cond }
}

// UnlessInput skips the rule when cond returns true for the input.
func UnlessInput(cond func(in Input) bool) Option {
	return func(o *Options) { o.UnlessInput = cond }
}

// Include sends the values of fields along with a remote check.
func Include(fields ...string) Option {
	return func(o *Options) {
		for _, f := range fields {
			if f != "" {
				o.Include = append(o.Include, f)
			}
		}
	}
}
