// Package validator provides the rule catalog a goodform engine evaluates:
// presence, length, format, numericality, inclusion, exclusion, acceptance,
// confirmation, remote and custom checks.
//
// A Rule pairs a kind-specific configuration value with the common Options
// every rule understands (message, blank/null guards, conditions and extra
// parameters for remote checks). Predicates are pure functions of the rule's
// configuration and an Input; they never close over shared mutable state, so a
// single *Rule can be registered for several fields at once.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `numeric_rules.go`, `choice_rules.go`,
// `remote_rules.go`). Every kind has a Config struct with documented defaults
// and a convenience constructor that panics on misconfiguration; New returns
// the error instead.
//
// Core building blocks:
//   - Rule             – shared rule instance: Options + Config
//   - Input            – field name, its values and a sibling lookup
//   - Messages         – default message catalog keyed by MessageKey
//   - ValidationErrors – field/message pairs that satisfy the error interface
//
// # Usage
//
//	presence := validator.Presence()
//	length := validator.Length(validator.LengthConfig{Minimum: 6}, validator.AllowBlank())
//
//	msg, failed := length.Evaluate(validator.Input{Field: "password", Values: []string{"abc"}})
//	// msg == "is too short (minimum is 6 characters)", failed == true
//
// # Guards
//
// Skip reports whether a rule does not apply to an input. Guards are checked
// in order and the first match wins: blank with AllowBlank, null with
// AllowNull, Condition returning false, Unless returning true.
//
// # Rule Sets
//
// ParseRuleSet reads a YAML document describing rules per field so page setup
// can be declared instead of coded:
//
//	rules:
//	  - fields: [email]
//	    kind: presence
//	  - fields: [email]
//	    kind: format
//	    with: '^[^@\s]+@[^@\s]+$'
//	    allow_blank: true
//
// # Error Handling
//
// Configuration errors wrap ErrInvalidConfig and are detected at construction
// time. A failing predicate is not an error: Evaluate returns the message and
// failed=true.
package validator
