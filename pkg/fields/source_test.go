package fields_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform/pkg/fields"
)

func TestSource(t *testing.T) {
	t.Parallel()

	src := fields.NewSource()
	src.Set("signup", "email", "a@b.com")
	src.Set("signup", "tags")
	src.Set("login", "email", "c@d.com")
	src.Set("login", "password", "")

	t.Run("scoped lookup", func(t *testing.T) {
		v, ok := src.Values("login", "email")
		require.True(t, ok)
		assert.Equal(t, []string{"c@d.com"}, v)
	})

	t.Run("unscoped lookup uses first scope", func(t *testing.T) {
		v, ok := src.Values("", "email")
		require.True(t, ok)
		assert.Equal(t, []string{"a@b.com"}, v)

		v, ok = src.Values("", "password")
		require.True(t, ok)
		assert.Equal(t, []string{""}, v)
	})

	t.Run("null differs from missing", func(t *testing.T) {
		v, ok := src.Values("signup", "tags")
		assert.True(t, ok)
		assert.Empty(t, v)

		_, ok = src.Values("signup", "password")
		assert.False(t, ok)
		_, ok = src.Values("checkout", "email")
		assert.False(t, ok)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		v, _ := src.Values("signup", "email")
		v[0] = "changed"
		again, _ := src.Values("signup", "email")
		assert.Equal(t, []string{"a@b.com"}, again)
	})

	t.Run("scopes keep insertion order", func(t *testing.T) {
		assert.Equal(t, []string{"signup", "login"}, src.Scopes())
	})
}

func TestSourceMutations(t *testing.T) {
	t.Parallel()

	src := fields.FromValues("", url.Values{"a": {"1"}, "b": {"2", "3"}})

	v, ok := src.Values("", "b")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "3"}, v)

	src.Set("", "a", "4")
	v, _ = src.Values("", "a")
	assert.Equal(t, []string{"4"}, v)

	src.Delete("", "a")
	_, ok = src.Values("", "a")
	assert.False(t, ok)

	src.Delete("nope", "a")

	var zero fields.Source
	zero.Set("", "x", "y")
	v, ok = zero.Values("", "x")
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, v)
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded body with query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/signup?ref=ad", strings.NewReader("email=a%40b.com&tags=go&tags=web"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		src, err := fields.FromRequest(req, "signup")
		require.NoError(t, err)

		v, _ := src.Values("signup", "email")
		assert.Equal(t, []string{"a@b.com"}, v)
		v, _ = src.Values("signup", "tags")
		assert.Equal(t, []string{"go", "web"}, v)
		v, _ = src.Values("signup", "ref")
		assert.Equal(t, []string{"ad"}, v)
	})

	t.Run("multipart", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("username", "alice"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/signup", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		src, err := fields.FromRequest(req, "")
		require.NoError(t, err)
		v, ok := src.Values("", "username")
		require.True(t, ok)
		assert.Equal(t, []string{"alice"}, v)
	})

	t.Run("query only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check?username=bob", nil)
		src, err := fields.FromRequest(req, "")
		require.NoError(t, err)
		v, _ := src.Values("", "username")
		assert.Equal(t, []string{"bob"}, v)
	})

	t.Run("unsupported body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"a":1}`))
		req.Header.Set("Content-Type", "application/json")
		_, err := fields.FromRequest(req, "")
		assert.ErrorIs(t, err, fields.ErrUnsupportedMediaType)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("a=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := fields.FromRequest(req, "")
		assert.ErrorIs(t, err, fields.ErrInvalidForm)
	})
}

func TestName(t *testing.T) {
	t.Parallel()

	var ref fields.Named = fields.Name("email")
	assert.Equal(t, "email", ref.FieldName())
}
