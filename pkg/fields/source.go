package fields

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"sync"
)

// defaultMaxMemory matches net/http's multipart default.
const defaultMaxMemory = 32 << 20

// Source is a scoped store of field values. Safe for concurrent use.
type Source struct {
	mu     sync.RWMutex
	scopes []string
	values map[string]url.Values
}

// NewSource returns an empty source.
func NewSource() *Source {
	return &Source{values: make(map[string]url.Values)}
}

// FromValues returns a source holding values under scope.
func FromValues(scope string, values url.Values) *Source {
	s := NewSource()
	s.SetAll(scope, values)
	return s
}

// FromRequest parses the request form into a source under scope. Query
// parameters are included, as with http.Request.Form.
func FromRequest(r *http.Request, scope string) (*Source, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.Join(ErrUnsupportedMediaType, err)
		}
		switch mediaType {
		case "multipart/form-data":
			if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
				return nil, errors.Join(ErrInvalidForm, err)
			}
			return FromValues(scope, r.Form), nil
		case "application/x-www-form-urlencoded":
		default:
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
			}
		}
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.Join(ErrInvalidForm, err)
	}
	return FromValues(scope, r.Form), nil
}

// Set stores values for field in scope, replacing previous values. Calling
// Set without values marks the field present but null.
func (s *Source) Set(scope, field string, values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scope(scope)[field] = append([]string{}, values...)
}

// SetAll stores every field of values in scope.
func (s *Source) SetAll(scope string, values url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst := s.scope(scope)
	for field, v := range values {
		dst[field] = append([]string{}, v...)
	}
}

// Delete removes field from scope so it becomes missing.
func (s *Source) Delete(scope, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[scope]; ok {
		delete(v, field)
	}
}

// Values returns a copy of the field's values. With an empty scope the first
// scope holding the field wins.
func (s *Source) Values(scope, field string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if scope != "" {
		return lookup(s.values[scope], field)
	}
	for _, name := range s.scopes {
		if v, ok := lookup(s.values[name], field); ok {
			return v, true
		}
	}
	return nil, false
}

// Scopes returns scope names in insertion order.
func (s *Source) Scopes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.scopes)
}

func (s *Source) scope(name string) url.Values {
	if s.values == nil {
		s.values = make(map[string]url.Values)
	}
	v, ok := s.values[name]
	if !ok {
		v = make(url.Values)
		s.values[name] = v
		s.scopes = append(s.scopes, name)
	}
	return v
}

func lookup(values url.Values, field string) ([]string, bool) {
	v, ok := values[field]
	if !ok {
		return nil, false
	}
	return append([]string{}, v...), true
}
