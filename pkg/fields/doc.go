// Package fields resolves form field values for validation.
//
// A Source stores values per scope, where a scope names one form or container
// on the page. Looking a field up with an empty scope searches every scope in
// the order they were added. A field that was never set is "missing", which is
// different from a field present with no values ("null") or with only an empty
// string ("blank").
//
//	src := fields.NewSource()
//	src.Set("signup", "email", "a@b.com")
//	src.Set("signup", "tags")          // present, null
//
//	src.Values("signup", "email")      // ["a@b.com"], true
//	src.Values("", "tags")             // [], true
//	src.Values("login", "email")       // nil, false
//
// FromRequest builds a Source from a submitted form, URL-encoded or multipart.
//
// Named is the reference form of a field: anything exposing FieldName can be
// passed where the engine accepts a field reference.
package fields
