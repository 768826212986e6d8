package goodform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/fields"
	"github.com/dmitrymomot/goodform/pkg/remote"
	"github.com/dmitrymomot/goodform/pkg/validator"
)

func TestValidateFieldLocal(t *testing.T) {
	t.Parallel()

	t.Run("local rules settle synchronously", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "name", "")

		e, rec := newEngine(t, src, goodform.WithValidMessage("ok"))
		e.MustRegister(validator.Presence(), "name")

		out := e.ValidateField(context.Background(), "name")
		assert.True(t, out.Found)
		assert.False(t, out.Queued)
		assert.Nil(t, out.Flight)
		assert.False(t, out.Valid())
		assert.Equal(t, goodform.Invalid("can't be blank"), out.Status)
		assert.Equal(t, []goodform.Status{goodform.Invalid("can't be blank")}, rec.ForField("name"))

		src.Set("", "name", "Ann")
		out = e.ValidateField(context.Background(), "name")
		assert.True(t, out.Valid())
		assert.Equal(t, goodform.Valid("ok"), out.Status)
	})

	t.Run("allow blank skips the rule", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "bio", "   ")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Length(validator.LengthConfig{Minimum: 3}, validator.AllowBlank()), "bio")

		assert.True(t, e.ValidateField(context.Background(), "bio").Valid())

		src.Set("", "bio", "ab")
		out := e.ValidateField(context.Background(), "bio")
		assert.Equal(t, []string{"is too short (minimum is 3 characters)"}, out.Status.Errors)
	})

	t.Run("errors accumulate in registration order", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "name", "")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Presence(), "name")
		e.MustRegister(validator.Length(validator.LengthConfig{Minimum: 3}), "name")

		out := e.ValidateField(context.Background(), "name")
		assert.Equal(t, []string{
			"can't be blank",
			"is too short (minimum is 3 characters)",
		}, out.Status.Errors)
	})

	t.Run("equal bounds report the wrong length", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "pin", "12345")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Length(validator.LengthConfig{Minimum: 6, Maximum: 6}), "pin")

		out := e.ValidateField(context.Background(), "pin")
		assert.Equal(t, []string{"is the wrong length (should be 6 characters)"}, out.Status.Errors)

		src.Set("", "pin", "123456")
		assert.True(t, e.ValidateField(context.Background(), "pin").Valid())
	})

	t.Run("confirmation errors on the confirming field only", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "password", "secret1")
		src.Set("", "password_confirmation", "secret2")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Presence(), "password")
		e.MustRegister(validator.Confirmation(validator.ConfirmationConfig{Of: "password"}), "password_confirmation")

		assert.False(t, e.ValidateAll(context.Background(), ""))

		password, _ := e.Status("password")
		assert.True(t, password.IsValid())
		confirmation, _ := e.Status("password_confirmation")
		assert.Equal(t, []string{"doesn't match confirmation"}, confirmation.Errors)
	})

	t.Run("missing field changes nothing", func(t *testing.T) {
		t.Parallel()

		tr := &fakeTransport{}
		e, rec := newEngine(t, fields.NewSource(), goodform.WithTransport(tr))
		e.MustRegister(validator.Remote(), "email")

		out := e.ValidateField(context.Background(), "email")
		assert.False(t, out.Found)
		assert.False(t, out.Valid())
		assert.Empty(t, tr.Batches())
		assert.Zero(t, rec.Len())
	})

	t.Run("null value is not missing", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "terms")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Acceptance(validator.AcceptanceConfig{}), "terms")
		e.MustRegister(validator.Presence(), "terms")

		out := e.ValidateField(context.Background(), "terms")
		assert.True(t, out.Found)
		assert.Equal(t, []string{"can't be blank"}, out.Status.Errors)
	})

	t.Run("field without rules is valid", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "comment", "hi")

		e, rec := newEngine(t, src)
		out := e.ValidateField(context.Background(), "comment")
		assert.True(t, out.Valid())
		assert.Zero(t, rec.Len())
	})

	t.Run("scopes and references", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("signup", "email", "")
		src.Set("newsletter", "email", "me@example.com")

		e, _ := newEngine(t, src)
		e.MustRegister(validator.Presence(), "email")

		ref := fields.Name("email")
		assert.False(t, e.ValidateRef(context.Background(), ref).Valid(), "first scope wins")
		assert.False(t, e.ValidateRef(context.Background(), ref, goodform.InScope("signup")).Valid())
		assert.True(t, e.ValidateRef(context.Background(), ref, goodform.InScope("newsletter")).Valid())
		assert.False(t, e.ValidateRef(context.Background(), nil).Found)
	})
}

func TestValidateFieldRemote(t *testing.T) {
	t.Parallel()

	t.Run("remote takes precedence over local", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "email", "")

		tr := &fakeTransport{respond: answer(remote.Results{"email": remote.Invalid("is taken")})}
		e, rec := newEngine(t, src, goodform.WithTransport(tr))
		e.MustRegister(validator.Remote(), "email")
		e.MustRegister(validator.Presence(), "email")

		out := e.ValidateField(context.Background(), "email")
		assert.True(t, out.Queued)
		assert.True(t, out.Pending())
		assert.False(t, out.Valid())
		require.NotNil(t, out.Flight)
		require.NoError(t, out.Flight.Wait(context.Background()))

		st, _ := e.Status("email")
		assert.Equal(t, []string{"is taken"}, st.Errors, "presence never ran")
		assert.Equal(t, []goodform.Status{goodform.Pending(), goodform.Invalid("is taken")}, rec.ForField("email"))
	})

	t.Run("guarded remote rule falls back to local", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "email", "")

		tr := &fakeTransport{}
		e, _ := newEngine(t, src, goodform.WithTransport(tr))
		e.MustRegister(validator.Remote(validator.AllowBlank()), "email")
		e.MustRegister(validator.Presence(), "email")

		out := e.ValidateField(context.Background(), "email")
		assert.False(t, out.Queued)
		assert.Equal(t, []string{"can't be blank"}, out.Status.Errors)
		assert.Empty(t, tr.Batches())
	})

	t.Run("only local skips remote rules", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "email", "me@example.com")

		tr := &fakeTransport{}
		e, _ := newEngine(t, src, goodform.WithTransport(tr))
		e.MustRegister(validator.Remote(), "email")
		e.MustRegister(validator.Presence(), "email")

		out := e.ValidateField(context.Background(), "email", goodform.OnlyLocal())
		assert.True(t, out.Valid())
		assert.Empty(t, tr.Batches())
	})

	t.Run("include params travel with the field", func(t *testing.T) {
		t.Parallel()

		src := fields.NewSource()
		src.Set("", "zip", "10115")
		src.Set("", "country", "DE")

		tr := &fakeTransport{}
		e, _ := newEngine(t, src, goodform.WithTransport(tr))
		e.MustRegister(validator.Remote(validator.Include("country", "region")), "zip")

		out := e.ValidateField(context.Background(), "zip")
		require.NoError(t, out.Flight.Wait(context.Background()))

		batches := tr.Batches()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"zip"}, batches[0].Fields)
		assert.Equal(t, []remote.Param{
			{Name: "country", Values: []string{"DE"}},
			{Name: "region"},
		}, batches[0].Params)
		assert.Equal(t, "zip=10115&country=DE&region=", batches[0].Query())
	})
}

func TestValidateLocalOnly(t *testing.T) {
	t.Parallel()

	src := fields.NewSource()
	src.Set("", "name", "")
	src.Set("", "email", "me@example.com")

	tr := &fakeTransport{}
	e, rec := newEngine(t, src, goodform.WithTransport(tr))
	e.MustRegister(validator.Presence(), "name", "email")
	e.MustRegister(validator.Remote(), "email")

	assert.False(t, e.ValidateLocalOnly(context.Background(), "name"))
	assert.True(t, e.ValidateLocalOnly(context.Background(), "email"))
	assert.False(t, e.ValidateLocalOnly(context.Background(), "missing"))

	assert.Empty(t, e.Responses())
	assert.Empty(t, tr.Batches())
	assert.Zero(t, rec.Len())
}
