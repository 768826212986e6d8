package validator

import (
	"fmt"
	"strconv"
)

// MessageKey identifies an entry of the message catalog.
type MessageKey string

const (
	MsgBlank                MessageKey = "blank"
	MsgTooShort             MessageKey = "too_short"
	MsgTooLong              MessageKey = "too_long"
	MsgWrongLength          MessageKey = "wrong_length"
	MsgInvalid              MessageKey = "invalid"
	MsgNotANumber           MessageKey = "not_a_number"
	MsgNotAnInteger         MessageKey = "not_an_integer"
	MsgGreaterThan          MessageKey = "greater_than"
	MsgGreaterThanOrEqualTo MessageKey = "greater_than_or_equal_to"
	MsgEqualTo              MessageKey = "equal_to"
	MsgLessThan             MessageKey = "less_than"
	MsgLessThanOrEqualTo    MessageKey = "less_than_or_equal_to"
	MsgOdd                  MessageKey = "odd"
	MsgEven                 MessageKey = "even"
	MsgInclusion            MessageKey = "inclusion"
	MsgExclusion            MessageKey = "exclusion"
	MsgAccepted             MessageKey = "accepted"
	MsgConfirmation         MessageKey = "confirmation"
)

// Messages maps message keys to fmt templates.
type Messages map[MessageKey]string

// DefaultMessages is the catalog rules fall back to when no message was supplied.
// Replace entries during setup, before any rule is constructed.
var DefaultMessages = Messages{
	MsgBlank:                "can't be blank",
	MsgTooShort:             "is too short (minimum is %d characters)",
	MsgTooLong:              "is too long (maximum is %d characters)",
	MsgWrongLength:          "is the wrong length (should be %d characters)",
	MsgInvalid:              "is invalid",
	MsgNotANumber:           "is not a number",
	MsgNotAnInteger:         "must be an integer",
	MsgGreaterThan:          "must be greater than %s",
	MsgGreaterThanOrEqualTo: "must be greater than or equal to %s",
	MsgEqualTo:              "must be equal to %s",
	MsgLessThan:             "must be less than %s",
	MsgLessThanOrEqualTo:    "must be less than or equal to %s",
	MsgOdd:                  "must be odd",
	MsgEven:                 "must be even",
	MsgInclusion:            "is not included in the list",
	MsgExclusion:            "is reserved",
	MsgAccepted:             "must be accepted",
	MsgConfirmation:         "doesn't match confirmation",
}

// Format renders the template stored under key with args.
// Unknown keys render the generic "invalid" message.
func (m Messages) Format(key MessageKey, args ...any) string {
	tmpl, ok := m[key]
	if !ok {
		tmpl = m[MsgInvalid]
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
