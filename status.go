package goodform

import "slices"

// State is the validation state of one field.
type State int

const (
	// StateUnknown means the field has no ResponseMap entry.
	StateUnknown State = iota
	// StatePending means a remote check is outstanding. It is never final.
	StatePending
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Status is a ResponseMap entry: a state plus either the valid message or
// the ordered error messages.
type Status struct {
	State   State
	Message string
	Errors  []string
}

// Pending returns the in-flight status.
func Pending() Status {
	return Status{State: StatePending}
}

// Valid returns a passing status carrying message, which may be empty.
func Valid(message string) Status {
	return Status{State: StateValid, Message: message}
}

// Invalid returns a failing status carrying messages in order.
func Invalid(messages ...string) Status {
	return Status{State: StateInvalid, Errors: slices.Clone(messages)}
}

func (s Status) IsValid() bool   { return s.State == StateValid }
func (s Status) IsPending() bool { return s.State == StatePending }
func (s Status) IsInvalid() bool { return s.State == StateInvalid }

// Class returns the CSS class a renderer applies for the status:
// "loading", "valid" or "error". Unknown yields "".
func (s Status) Class() string {
	switch s.State {
	case StatePending:
		return "loading"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "error"
	default:
		return ""
	}
}

// Messages returns the errors of an invalid status, or the valid message
// as a single element when it is set.
func (s Status) Messages() []string {
	if s.State == StateInvalid {
		return slices.Clone(s.Errors)
	}
	if s.Message != "" {
		return []string{s.Message}
	}
	return nil
}

// Outcome is the result of validating one field.
type Outcome struct {
	Field string
	// Found is false when the field has no value source; nothing was validated.
	Found bool
	// Queued is true when the field was added to the pending batch by this call.
	Queued bool
	// Status is the field's ResponseMap entry after the call.
	Status Status
	// Flight is the round trip started by this call, if any.
	Flight *Flight
}

// Valid reports whether the field is known to be valid now. A field that is
// pending or only queued is not valid yet; a found field without any entry
// had no applicable rules and counts as valid.
func (o Outcome) Valid() bool {
	if !o.Found {
		return false
	}
	switch o.Status.State {
	case StateValid:
		return true
	case StateUnknown:
		return !o.Queued
	default:
		return false
	}
}

// Pending reports whether the field awaits a remote result.
func (o Outcome) Pending() bool {
	return o.Status.State == StatePending || (o.Queued && o.Status.State == StateUnknown)
}
