package goodform

import (
	"context"

	"github.com/dmitrymomot/goodform/pkg/fields"
	"github.com/dmitrymomot/goodform/pkg/remote"
	"github.com/dmitrymomot/goodform/pkg/validator"
)

type dispatchKind int

const (
	dispatchLocal dispatchKind = iota
	dispatchRemote
)

// ValidateField validates one field.
//
// Unless Defer is given the ResponseMap is reset first and the pending batch
// is flushed afterwards. Remote rules take precedence: local rules only run
// when no remote rule queued the field. A field missing from the value
// source yields an Outcome with Found false and changes nothing.
func (e *Engine) ValidateField(ctx context.Context, name string, opts ...CallOption) Outcome {
	o := newCallOptions(opts)
	out := Outcome{Field: name}
	if name == "" {
		return out
	}

	if !o.deferred {
		e.Reset()
	}

	values, ok := e.source.Values(o.scope, name)
	if !ok {
		return out
	}
	out.Found = true

	in := e.input(o.scope, name, values)
	if !o.onlyLocal {
		out.Queued = e.queueField(dispatchRemote, in)
	}
	if !out.Queued {
		e.queueField(dispatchLocal, in)
	}

	if !o.deferred {
		_, out.Flight = e.flush(ctx, o.silent)
	}

	out.Status, _ = e.Status(name)
	return out
}

// ValidateRef validates the field ref names.
func (e *Engine) ValidateRef(ctx context.Context, ref fields.Named, opts ...CallOption) Outcome {
	if ref == nil {
		return Outcome{}
	}
	return e.ValidateField(ctx, ref.FieldName(), opts...)
}

// ValidateAll validates every registered field found in scope with a single
// round trip and reports whether every known field is valid. Fields with
// remote rules are dispatched first so a stale local entry never hides a
// remote check. The result is false while a round trip is in flight.
func (e *Engine) ValidateAll(ctx context.Context, scope string, opts ...CallOption) bool {
	o := newCallOptions(opts)
	e.Reset()

	e.mu.Lock()
	remoteFields := e.remote.fields()
	localFields := e.local.fields()
	e.mu.Unlock()

	call := []CallOption{Defer(), InScope(scope)}
	if o.onlyLocal {
		call = append(call, OnlyLocal())
	}

	if !o.onlyLocal {
		for _, name := range remoteFields {
			e.ValidateField(ctx, name, call...)
		}
	}
	for _, name := range localFields {
		if e.known(name) {
			continue
		}
		e.ValidateField(ctx, name, call...)
	}

	valid, _ := e.flush(ctx, o.silent)
	return valid
}

// ValidateLocalOnly runs the local rules of name without touching the
// ResponseMap or the Presenter and reports whether they all pass. It is meant
// for rule guards. A missing field is reported as not valid.
func (e *Engine) ValidateLocalOnly(ctx context.Context, name string, opts ...CallOption) bool {
	o := newCallOptions(opts)

	values, ok := e.source.Values(o.scope, name)
	if !ok {
		return false
	}
	messages, _ := e.evaluate(e.input(o.scope, name, values))
	return len(messages) == 0
}

// known reports whether field already has an entry or waits in the batch.
func (e *Engine) known(field string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.responses.has(field) || e.batch.Has(field)
}

func (e *Engine) input(scope, name string, values []string) validator.Input {
	return validator.Input{
		Field:  name,
		Scope:  scope,
		Values: values,
		Lookup: func(field string) ([]string, bool) {
			return e.source.Values(scope, field)
		},
	}
}

// queueField dispatches one field to the rules of kind. For remote it reports
// whether the field was added to the pending batch; for local it reports
// whether any rule was evaluated.
//
// Rules run without the engine lock held, so guards may call back into the
// engine.
func (e *Engine) queueField(kind dispatchKind, in validator.Input) bool {
	if kind == dispatchRemote {
		return e.enqueue(in)
	}

	messages, evaluated := e.evaluate(in)
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.rulesLocked(dispatchLocal, in.Field); !ok {
		return false
	}

	errs := messages
	if prev, ok := e.responses.get(in.Field); ok && prev.State == StateInvalid {
		errs = append(prev.Errors, messages...)
	}
	if len(errs) > 0 {
		e.responses.set(in.Field, Invalid(errs...))
	} else {
		e.responses.set(in.Field, Valid(e.validMessageFor(in.Field)))
	}
	return evaluated
}

func (e *Engine) enqueue(in validator.Input) bool {
	e.mu.Lock()
	rules, _ := e.rulesLocked(dispatchRemote, in.Field)
	e.mu.Unlock()

	var (
		params   []remote.Param
		enqueued bool
	)
	for _, rule := range rules {
		if rule.Skip(in) {
			continue
		}
		enqueued = true
		rule.Contribute(in, func(name string, values []string) {
			params = append(params, remote.Param{Name: name, Values: values})
		})
	}
	if !enqueued {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.batch.Add(in.Field, in.Values)
	for _, p := range params {
		e.batch.AddParam(p.Name, p.Values)
	}
	return true
}

// evaluate runs the local rules of in.Field in registration order and
// collects failure messages.
func (e *Engine) evaluate(in validator.Input) (messages []string, evaluated bool) {
	e.mu.Lock()
	rules, _ := e.rulesLocked(dispatchLocal, in.Field)
	e.mu.Unlock()

	for _, rule := range rules {
		if rule.Skip(in) {
			continue
		}
		evaluated = true
		if msg, failed := rule.Evaluate(in); failed {
			messages = append(messages, msg)
		}
	}
	return messages, evaluated
}

func (e *Engine) rulesLocked(kind dispatchKind, field string) ([]*validator.Rule, bool) {
	table := &e.local
	if kind == dispatchRemote {
		table = &e.remote
	}
	rules := table.get(field)
	return rules, len(rules) > 0
}
