package validator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Registration binds one rule to the fields it validates. The same *Rule is
// shared by all Fields.
type Registration struct {
	Fields []string
	Rule   *Rule

	// IfValid and UnlessValid name fields whose local validity gates the
	// rule. The engine turns them into Condition/Unless guards at
	// registration time.
	IfValid     string
	UnlessValid string
}

type ruleSetDocument struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Fields      []string `yaml:"fields"`
	Kind        Kind     `yaml:"kind"`
	Message     string   `yaml:"message"`
	AllowBlank  bool     `yaml:"allow_blank"`
	AllowNull   *bool    `yaml:"allow_null"`
	Include     []string `yaml:"include"`
	IfValid     string   `yaml:"if_valid"`
	UnlessValid string   `yaml:"unless_valid"`

	Minimum     int    `yaml:"minimum"`
	Maximum     int    `yaml:"maximum"`
	Is          int    `yaml:"is"`
	TooShort    string `yaml:"too_short"`
	TooLong     string `yaml:"too_long"`
	WrongLength string `yaml:"wrong_length"`

	With    string `yaml:"with"`
	Without string `yaml:"without"`

	OnlyInteger          bool     `yaml:"only_integer"`
	GreaterThan          *float64 `yaml:"greater_than"`
	GreaterThanOrEqualTo *float64 `yaml:"greater_than_or_equal_to"`
	EqualTo              *float64 `yaml:"equal_to"`
	LessThan             *float64 `yaml:"less_than"`
	LessThanOrEqualTo    *float64 `yaml:"less_than_or_equal_to"`
	Odd                  bool     `yaml:"odd"`
	Even                 bool     `yaml:"even"`

	In              []string `yaml:"in"`
	CaseInsensitive bool     `yaml:"case_insensitive"`

	Accept string `yaml:"accept"`
	Of     string `yaml:"of"`
}

// ParseRuleSet decodes a YAML rule set into registrations, preserving document
// order. Configuration problems are returned, never panicked.
func ParseRuleSet(ctx context.Context, content []byte) ([]Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrRuleSetParsingCancelled, err)
	}

	var doc ruleSetDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}

	regs := make([]Registration, 0, len(doc.Rules))
	for i, entry := range doc.Rules {
		if len(entry.Fields) == 0 {
			return nil, fmt.Errorf("%w: rule %d: fields are required", ErrInvalidRuleSet, i)
		}

		cfg, err := entry.config()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, entry.Kind, err)
		}

		rule, err := New(cfg, entry.options()...)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		regs = append(regs, Registration{
			Fields:      entry.Fields,
			Rule:        rule,
			IfValid:     entry.IfValid,
			UnlessValid: entry.UnlessValid,
		})
	}

	return regs, nil
}

func (s ruleEntry) options() []Option {
	opts := []Option{WithMessage(s.Message), Include(s.Include...)}
	if s.AllowBlank {
		opts = append(opts, AllowBlank())
	}
	if s.AllowNull != nil {
		if *s.AllowNull {
			opts = append(opts, AllowNull())
		} else {
			opts = append(opts, RejectNull())
		}
	}
	return opts
}

func (s ruleEntry) config() (Config, error) {
	switch s.Kind {
	case KindPresence:
		return PresenceConfig{}, nil
	case KindLength:
		return LengthConfig{
			Minimum:     s.Minimum,
			Maximum:     s.Maximum,
			Is:          s.Is,
			TooShort:    s.TooShort,
			TooLong:     s.TooLong,
			WrongLength: s.WrongLength,
		}, nil
	case KindFormat:
		var cfg FormatConfig
		var err error
		if s.With != "" {
			if cfg.With, err = regexp.Compile(s.With); err != nil {
				return nil, errors.Join(ErrInvalidConfig, err)
			}
		}
		if s.Without != "" {
			if cfg.Without, err = regexp.Compile(s.Without); err != nil {
				return nil, errors.Join(ErrInvalidConfig, err)
			}
		}
		return cfg, nil
	case KindNumericality:
		return NumericalityConfig{
			OnlyInteger:          s.OnlyInteger,
			GreaterThan:          s.GreaterThan,
			GreaterThanOrEqualTo: s.GreaterThanOrEqualTo,
			EqualTo:              s.EqualTo,
			LessThan:             s.LessThan,
			LessThanOrEqualTo:    s.LessThanOrEqualTo,
			Odd:                  s.Odd,
			Even:                 s.Even,
		}, nil
	case KindInclusion:
		return InclusionConfig{In: s.In, CaseInsensitive: s.CaseInsensitive}, nil
	case KindExclusion:
		return ExclusionConfig{In: s.In, CaseInsensitive: s.CaseInsensitive}, nil
	case KindAcceptance:
		return AcceptanceConfig{Accept: s.Accept}, nil
	case KindConfirmation:
		return ConfirmationConfig{Of: s.Of, CaseInsensitive: s.CaseInsensitive}, nil
	case KindRemote:
		return RemoteConfig{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
}
