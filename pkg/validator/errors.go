package validator

import "errors"

var (
	// ErrInvalidConfig is returned when a rule is constructed with missing or contradictory options.
	ErrInvalidConfig = errors.New("invalid rule configuration")

	// ErrUnknownKind is returned when a rule set names a kind the catalog does not provide.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrInvalidRuleSet is returned when a rule set document cannot be parsed.
	ErrInvalidRuleSet = errors.New("invalid rule set")

	// ErrRuleSetParsingCancelled is returned when the context ends before parsing starts.
	ErrRuleSetParsingCancelled = errors.New("rule set parsing cancelled")
)
