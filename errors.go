package goodform

import "errors"

var (
	ErrNilRule        = errors.New("rule is nil")
	ErrNoFields       = errors.New("rule must be registered for at least one field")
	ErrEmptyFieldName = errors.New("field name is empty")
	ErrNoTransport    = errors.New("remote rule registered without a transport")
	ErrInvalidRuleSet = errors.New("invalid rule set")
)
