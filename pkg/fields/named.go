package fields

// Named is a reference to a field that exposes its canonical name.
type Named interface {
	FieldName() string
}

// Name is a literal field name used as a reference.
type Name string

func (n Name) FieldName() string { return string(n) }
