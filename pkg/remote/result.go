package remote

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Result is the server's verdict for one field.
type Result struct {
	// Errors is non-empty when the field is invalid.
	Errors []string
	// Message is an optional custom valid message.
	Message string
}

// Valid returns a passing result. An empty message leaves the choice of valid
// message to the caller.
func Valid(message string) Result {
	return Result{Message: message}
}

// Invalid returns a failing result carrying messages in order.
func Invalid(messages ...string) Result {
	return Result{Errors: messages}
}

// IsValid reports whether the result carries no errors.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// UnmarshalJSON accepts null, a string, an array of strings or any other
// JSON value. Null, "", [] and false are valid with no message; a non-empty
// array of strings is invalid; any other value is valid and its text becomes
// the message.
func (r *Result) UnmarshalJSON(data []byte) error {
	*r = Result{}

	raw := bytes.TrimSpace(data)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		return nil
	case raw[0] == '"':
		return json.Unmarshal(raw, &r.Message)
	case raw[0] == '[':
		var messages []string
		if err := json.Unmarshal(raw, &messages); err == nil {
			if len(messages) > 0 {
				r.Errors = messages
			}
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		r.Message = string(raw)
		return nil
	default:
		r.Message = string(raw)
		return nil
	}
}

// MarshalJSON writes the inverse of UnmarshalJSON: the errors array when
// invalid, the message string when set, null otherwise.
func (r Result) MarshalJSON() ([]byte, error) {
	switch {
	case len(r.Errors) > 0:
		return json.Marshal(r.Errors)
	case r.Message != "":
		return json.Marshal(r.Message)
	default:
		return []byte("null"), nil
	}
}

// String is a compact rendering for logs.
func (r Result) String() string {
	if r.IsValid() {
		if r.Message == "" {
			return "valid"
		}
		return "valid: " + r.Message
	}
	return "invalid: " + strings.Join(r.Errors, "; ")
}

// Results maps field names to their verdicts.
type Results map[string]Result
