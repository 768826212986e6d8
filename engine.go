package goodform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/goodform/pkg/fields"
	"github.com/dmitrymomot/goodform/pkg/logger"
	"github.com/dmitrymomot/goodform/pkg/remote"
	"github.com/dmitrymomot/goodform/pkg/validator"
)

// Engine owns the rule registry, the ResponseMap and the pending batch of one
// form session. Safe for concurrent use.
type Engine struct {
	source       ValueSource
	transport    Transport
	presenter    Presenter
	logger       *slog.Logger
	validMessage string
	onFailure    FailureHandler

	mu            sync.Mutex
	local         ruleTable
	remote        ruleTable
	validMessages map[string]string
	responses     responseMap
	batch         *remote.Batch
	gates         gateGraph

	inflight int
	idle     chan struct{} // closed when inflight drops to zero
}

// New creates an engine. Without WithSource it reads from an empty
// fields.Source; without WithTransport only local rules can be registered.
func New(opts ...Option) *Engine {
	e := &Engine{
		source:        fields.NewSource(),
		logger:        logger.Discard(),
		validMessages: make(map[string]string),
		batch:         remote.NewBatch(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.logger = e.logger.With(logger.Component("goodform"))
	return e
}

// Register attaches rule to every field in fields. The same *Rule is shared by
// all of them. Remote rules go to the remote table, all others to the local one.
func (e *Engine) Register(rule *validator.Rule, fields ...string) error {
	if rule == nil {
		return ErrNilRule
	}
	if len(fields) == 0 {
		return ErrNoFields
	}
	if slices.Contains(fields, "") {
		return ErrEmptyFieldName
	}
	if rule.IsRemote() && e.transport == nil {
		return ErrNoTransport
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	table := &e.local
	if rule.IsRemote() {
		table = &e.remote
	}
	for _, field := range fields {
		table.add(field, rule)
	}
	return nil
}

// MustRegister works like Register but panics on error.
func (e *Engine) MustRegister(rule *validator.Rule, fields ...string) {
	if err := e.Register(rule, fields...); err != nil {
		panic(err)
	}
}

// RegisterSet registers parsed rule set entries in order. IfValid and
// UnlessValid become guards backed by ValidateLocalOnly in the scope being
// validated. Guards of local rules may not form a cycle; nothing is
// registered when they do.
func (e *Engine) RegisterSet(regs []validator.Registration) error {
	gates := make(map[string][]string)
	for i, reg := range regs {
		if reg.Rule == nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidRuleSet, i, ErrNilRule)
		}
		if reg.Rule.IsRemote() {
			continue
		}
		for _, field := range reg.Fields {
			for _, other := range []string{reg.IfValid, reg.UnlessValid} {
				if other != "" {
					gates[field] = append(gates[field], other)
				}
			}
		}
	}

	e.mu.Lock()
	if field, ok := e.gates.cycle(gates); ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: guard cycle through %q", ErrInvalidRuleSet, field)
	}
	for field, others := range gates {
		e.gates.add(field, others...)
	}
	e.mu.Unlock()

	for i, reg := range regs {
		if reg.IfValid != "" {
			other := reg.IfValid
			reg.Rule.ConditionInput = func(in validator.Input) bool {
				return e.ValidateLocalOnly(context.Background(), other, InScope(in.Scope))
			}
		}
		if reg.UnlessValid != "" {
			other := reg.UnlessValid
			reg.Rule.UnlessInput = func(in validator.Input) bool {
				return e.ValidateLocalOnly(context.Background(), other, InScope(in.Scope))
			}
		}
		if err := e.Register(reg.Rule, reg.Fields...); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidRuleSet, i, err)
		}
	}
	return nil
}

// LoadRuleSet parses a YAML rule set and registers it.
func (e *Engine) LoadRuleSet(ctx context.Context, content []byte) error {
	regs, err := validator.ParseRuleSet(ctx, content)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to parse rule set", logger.Error(err))
		return errors.Join(ErrInvalidRuleSet, err)
	}
	if err := e.RegisterSet(regs); err != nil {
		e.logger.ErrorContext(ctx, "failed to register rule set", logger.Error(err))
		return err
	}
	return nil
}

// SetValidMessage overrides the valid message of one field.
func (e *Engine) SetValidMessage(field, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validMessages[field] = message
}

// Rules returns the local and remote rules registered for field.
func (e *Engine) Rules(field string) (local, remote []*validator.Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.local.get(field), e.remote.get(field)
}

// Status returns the ResponseMap entry of field.
func (e *Engine) Status(field string) (Status, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.responses.get(field)
}

// Responses returns a copy of the ResponseMap.
func (e *Engine) Responses() map[string]Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]Status, len(e.responses.order))
	for _, fs := range e.responses.snapshot() {
		out[fs.field] = fs.status
	}
	return out
}

// Errors returns the failures currently in the ResponseMap, in entry order.
func (e *Engine) Errors() validator.ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs validator.ValidationErrors
	for _, fs := range e.responses.snapshot() {
		for _, msg := range fs.status.Errors {
			errs.Add(fs.field, msg)
		}
	}
	return errs
}

// Reset clears the ResponseMap. The pending batch is left alone.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responses.reset()
}

// validMessageFor must be called with e.mu held.
func (e *Engine) validMessageFor(field string) string {
	if msg, ok := e.validMessages[field]; ok {
		return msg
	}
	return e.validMessage
}

func (e *Engine) report(statuses []fieldStatus) {
	if e.presenter == nil {
		return
	}
	for _, fs := range statuses {
		e.presenter.Report(fs.field, fs.status)
	}
}

// ruleTable maps field names to rules in registration order.
type ruleTable struct {
	order []string
	rules map[string][]*validator.Rule
}

func (t *ruleTable) add(field string, rule *validator.Rule) {
	if t.rules == nil {
		t.rules = make(map[string][]*validator.Rule)
	}
	if _, ok := t.rules[field]; !ok {
		t.order = append(t.order, field)
	}
	t.rules[field] = append(t.rules[field], rule)
}

func (t *ruleTable) get(field string) []*validator.Rule {
	return slices.Clone(t.rules[field])
}

func (t *ruleTable) fields() []string {
	return slices.Clone(t.order)
}

// gateGraph records which fields a field's rule set guards validate.
type gateGraph map[string][]string

func (g *gateGraph) add(field string, others ...string) {
	if len(others) == 0 {
		return
	}
	if *g == nil {
		*g = make(gateGraph)
	}
	for _, other := range others {
		if !slices.Contains((*g)[field], other) {
			(*g)[field] = append((*g)[field], other)
		}
	}
}

// cycle reports a field on a cycle of g merged with extra.
func (g gateGraph) cycle(extra map[string][]string) (string, bool) {
	edges := func(field string) []string {
		return append(slices.Clone(g[field]), extra[field]...)
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)

	var visit func(field string) (string, bool)
	visit = func(field string) (string, bool) {
		switch state[field] {
		case visiting:
			return field, true
		case done:
			return "", false
		}
		state[field] = visiting
		for _, next := range edges(field) {
			if found, ok := visit(next); ok {
				return found, true
			}
		}
		state[field] = done
		return "", false
	}

	starts := make([]string, 0, len(g)+len(extra))
	for field := range g {
		starts = append(starts, field)
	}
	for field := range extra {
		starts = append(starts, field)
	}
	slices.Sort(starts)
	for _, field := range starts {
		if found, ok := visit(field); ok {
			return found, true
		}
	}
	return "", false
}

type fieldStatus struct {
	field  string
	status Status
}

// responseMap keeps entries in the order fields were first set.
type responseMap struct {
	order   []string
	entries map[string]Status
}

func (m *responseMap) get(field string) (Status, bool) {
	st, ok := m.entries[field]
	if ok {
		st.Errors = slices.Clone(st.Errors)
	}
	return st, ok
}

func (m *responseMap) has(field string) bool {
	_, ok := m.entries[field]
	return ok
}

func (m *responseMap) set(field string, st Status) {
	if m.entries == nil {
		m.entries = make(map[string]Status)
	}
	if _, ok := m.entries[field]; !ok {
		m.order = append(m.order, field)
	}
	m.entries[field] = st
}

func (m *responseMap) reset() {
	m.order = nil
	m.entries = nil
}

func (m *responseMap) snapshot() []fieldStatus {
	out := make([]fieldStatus, 0, len(m.order))
	for _, field := range m.order {
		st := m.entries[field]
		st.Errors = slices.Clone(st.Errors)
		out = append(out, fieldStatus{field: field, status: st})
	}
	return out
}

// allValid reports whether every entry is valid. Pending entries are not.
func (m *responseMap) allValid() bool {
	for _, st := range m.entries {
		if st.State != StateValid {
			return false
		}
	}
	return true
}
