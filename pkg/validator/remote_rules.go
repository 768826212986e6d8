package validator

import "errors"

// RemoteConfig marks a rule as checked by the server. It has no local predicate;
// the engine queues the field instead. Use Include to send extra fields.
type RemoteConfig struct{}

func (RemoteConfig) Kind() Kind                  { return KindRemote }
func (RemoteConfig) validate() error             { return nil }
func (RemoteConfig) check(Input) (failure, bool) { return failure{}, false }

// Remote creates a server-checked rule.
func Remote(opts ...Option) *Rule {
	return Must(RemoteConfig{}, opts...)
}

// Predicate reports a failure message and true when in is invalid.
// An empty message falls back to the catalog's "is invalid".
type Predicate func(in Input) (message string, failed bool)

// CustomConfig plugs an arbitrary predicate into the engine.
type CustomConfig struct {
	Check Predicate
}

func (CustomConfig) Kind() Kind { return KindCustom }

func (c CustomConfig) validate() error {
	if c.Check == nil {
		return errors.New("check predicate is required")
	}
	return nil
}

func (c CustomConfig) check(in Input) (failure, bool) {
	msg, failed := c.Check(in)
	if !failed {
		return failure{}, false
	}
	return failure{key: MsgInvalid, text: msg}, true
}

// Custom creates a rule from a caller-supplied predicate.
func Custom(check Predicate, opts ...Option) *Rule {
	return Must(CustomConfig{Check: check}, opts...)
}
