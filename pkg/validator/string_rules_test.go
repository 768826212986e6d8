package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/goodform/pkg/validator"
)

func TestPresence(t *testing.T) {
	t.Parallel()

	rule := validator.Presence()

	t.Run("passes for non-empty string", func(t *testing.T) {
		_, failed := rule.Evaluate(input("email", "test@example.com"))
		assert.False(t, failed)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		msg, failed := rule.Evaluate(input("email", "   "))
		assert.True(t, failed)
		assert.Equal(t, "can't be blank", msg)
	})

	t.Run("fails for null", func(t *testing.T) {
		_, failed := rule.Evaluate(input("email"))
		assert.True(t, failed)
	})
}

func TestLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     validator.LengthConfig
		value   string
		failed  bool
		message string
	}{
		{"minimum met", validator.LengthConfig{Minimum: 6}, "secret", false, ""},
		{"too short", validator.LengthConfig{Minimum: 6}, "abc", true, "is too short (minimum is 6 characters)"},
		{"too long", validator.LengthConfig{Maximum: 3}, "abcd", true, "is too long (maximum is 3 characters)"},
		{"exact", validator.LengthConfig{Is: 4}, "1234", false, ""},
		{"wrong length", validator.LengthConfig{Is: 4}, "123", true, "is the wrong length (should be 4 characters)"},
		{"equal bounds yield wrong length", validator.LengthConfig{Minimum: 6, Maximum: 6}, "12345", true, "is the wrong length (should be 6 characters)"},
		{"range ok", validator.LengthConfig{Minimum: 2, Maximum: 4}, "abc", false, ""},
		{"custom too short", validator.LengthConfig{Minimum: 6, TooShort: "needs more"}, "a", true, "needs more"},
		{"multi-byte counts characters", validator.LengthConfig{Maximum: 3}, "日本語", false, ""},
		{"decomposed accent counts once", validator.LengthConfig{Is: 1}, "e\u0301", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, failed := validator.Length(tt.cfg).Evaluate(input("password", tt.value))
			assert.Equal(t, tt.failed, failed)
			assert.Equal(t, tt.message, msg)
		})
	}

	t.Run("allow blank skips bounds", func(t *testing.T) {
		rule := validator.Length(validator.LengthConfig{Minimum: 6}, validator.AllowBlank())
		assert.True(t, rule.Skip(input("password", "")))
	})

	t.Run("explicit message overrides every failure", func(t *testing.T) {
		rule := validator.Length(validator.LengthConfig{Minimum: 2, Maximum: 3}, validator.WithMessage("bad size"))
		msg, _ := rule.Evaluate(input("code", "a"))
		assert.Equal(t, "bad size", msg)
		msg, _ = rule.Evaluate(input("code", "abcd"))
		assert.Equal(t, "bad size", msg)
	})

	t.Run("rejects contradictory bounds", func(t *testing.T) {
		_, err := validator.New(validator.LengthConfig{Minimum: 5, Maximum: 2})
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		_, err = validator.New(validator.LengthConfig{Is: 2, Minimum: 1})
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		_, err = validator.New(validator.LengthConfig{Minimum: -1})
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
	})
}

func TestAcceptance(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		rule := validator.Acceptance(validator.AcceptanceConfig{})
		assert.True(t, rule.AllowNull)
		assert.True(t, rule.Skip(input("terms")))

		_, failed := rule.Evaluate(input("terms", "1"))
		assert.False(t, failed)
		_, failed = rule.Evaluate(input("terms", "true"))
		assert.False(t, failed)

		msg, failed := rule.Evaluate(input("terms", "0"))
		assert.True(t, failed)
		assert.Equal(t, "must be accepted", msg)
	})

	t.Run("custom accepted value", func(t *testing.T) {
		rule := validator.Acceptance(validator.AcceptanceConfig{Accept: "yes"})
		_, failed := rule.Evaluate(input("terms", "yes"))
		assert.False(t, failed)
		_, failed = rule.Evaluate(input("terms", "1"))
		assert.True(t, failed)
	})

	t.Run("reject null", func(t *testing.T) {
		rule := validator.Acceptance(validator.AcceptanceConfig{}, validator.RejectNull())
		assert.False(t, rule.Skip(input("terms")))
	})
}

func TestConfirmation(t *testing.T) {
	t.Parallel()

	lookup := func(values map[string]string) func(string) ([]string, bool) {
		return func(field string) ([]string, bool) {
			v, ok := values[field]
			if !ok {
				return nil, false
			}
			return []string{v}, true
		}
	}

	rule := validator.Confirmation(validator.ConfirmationConfig{Of: "password"})

	t.Run("mismatch fails on the confirmation field", func(t *testing.T) {
		msg, failed := rule.Evaluate(validator.Input{
			Field:  "password_confirmation",
			Values: []string{"different"},
			Lookup: lookup(map[string]string{"password": "secret"}),
		})
		assert.True(t, failed)
		assert.Equal(t, "doesn't match confirmation", msg)
	})

	t.Run("match passes", func(t *testing.T) {
		_, failed := rule.Evaluate(validator.Input{
			Field:  "password_confirmation",
			Values: []string{"secret"},
			Lookup: lookup(map[string]string{"password": "secret"}),
		})
		assert.False(t, failed)
	})

	t.Run("case insensitive", func(t *testing.T) {
		ci := validator.Confirmation(validator.ConfirmationConfig{Of: "email", CaseInsensitive: true})
		_, failed := ci.Evaluate(validator.Input{
			Field:  "email_confirmation",
			Values: []string{"USER@EXAMPLE.COM"},
			Lookup: lookup(map[string]string{"email": "user@example.com"}),
		})
		assert.False(t, failed)
	})

	t.Run("missing original compares with empty", func(t *testing.T) {
		_, failed := rule.Evaluate(input("password_confirmation", ""))
		assert.False(t, failed)
		_, failed = rule.Evaluate(input("password_confirmation", "x"))
		assert.True(t, failed)
	})
}
