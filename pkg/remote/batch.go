package remote

import (
	"net/url"
	"slices"

	"github.com/google/uuid"
)

// Param is an extra query parameter contributed by a rule's Include list.
type Param struct {
	Name   string
	Values []string
}

// Batch is the set of remote checks accumulated since the last flush.
type Batch struct {
	// ID correlates the round trip in logs and is sent as X-Batch-ID.
	ID string
	// Fields lists queued field names in queue order.
	Fields []string
	// Values maps each queued field to the values sent for it.
	Values map[string][]string
	// Params are appended after the field values, in contribution order.
	Params []Param
}

// NewBatch returns an empty batch with a fresh ID.
func NewBatch() *Batch {
	return &Batch{
		ID:     uuid.NewString(),
		Values: make(map[string][]string),
	}
}

// Add queues a field. Adding a field twice keeps its first position and
// replaces its values.
func (b *Batch) Add(field string, values []string) {
	if b.Values == nil {
		b.Values = make(map[string][]string)
	}
	if _, ok := b.Values[field]; !ok {
		b.Fields = append(b.Fields, field)
	}
	b.Values[field] = slices.Clone(values)
}

// AddParam appends an extra parameter.
func (b *Batch) AddParam(name string, values []string) {
	b.Params = append(b.Params, Param{Name: name, Values: slices.Clone(values)})
}

// Has reports whether field is queued.
func (b *Batch) Has(field string) bool {
	_, ok := b.Values[field]
	return ok
}

// Len returns the number of queued fields.
func (b *Batch) Len() int {
	return len(b.Fields)
}

// IsEmpty reports whether no field is queued. Params alone do not make a
// batch worth sending.
func (b *Batch) IsEmpty() bool {
	return len(b.Fields) == 0
}

// Query encodes the batch: one name=value pair per value of every field in
// queue order, multi-valued fields repeating the key, followed by params.
// A field or param without values is sent once with an empty value.
func (b *Batch) Query() string {
	var q queryBuilder
	for _, field := range b.Fields {
		q.add(field, b.Values[field])
	}
	for _, p := range b.Params {
		q.add(p.Name, p.Values)
	}
	return q.String()
}

// queryBuilder keeps insertion order, which url.Values.Encode does not.
type queryBuilder struct {
	buf []byte
}

func (q *queryBuilder) add(name string, values []string) {
	if len(values) == 0 {
		values = []string{""}
	}
	for _, v := range values {
		if len(q.buf) > 0 {
			q.buf = append(q.buf, '&')
		}
		q.buf = append(q.buf, url.QueryEscape(name)...)
		q.buf = append(q.buf, '=')
		q.buf = append(q.buf, url.QueryEscape(v)...)
	}
}

func (q *queryBuilder) String() string {
	return string(q.buf)
}
