// Package goodform orchestrates form field validation.
//
// An Engine holds rules registered against field names, evaluates local rules
// synchronously, batches remote rules into one server round trip per flush,
// and reports every field's Status to a Presenter.
//
// # Registering rules
//
// Rules come from pkg/validator. A rule registered for several fields is one
// shared instance:
//
//	engine := goodform.New(
//		goodform.WithSource(source),
//		goodform.WithTransport(client),
//		goodform.WithPresenter(presenter.NewRecorder()),
//	)
//
//	engine.MustRegister(validator.Presence(), "name", "email")
//	engine.MustRegister(validator.Length(validator.LengthConfig{Minimum: 6}, validator.AllowBlank()), "password")
//	engine.MustRegister(validator.Remote(validator.Include("email")), "username")
//
// Rule sets can also be loaded from YAML with LoadRuleSet.
//
// # Validating
//
// ValidateField validates one field. Local-only fields are settled when it
// returns. Remote fields are reported pending and the call returns before the
// server answers; Outcome.Flight waits for the answer.
//
//	out := engine.ValidateField(ctx, "username")
//	if out.Pending() {
//		_ = out.Flight.Wait(ctx)
//	}
//
// ValidateAll validates every registered field in a scope with one round trip.
// Defer queues work without flushing, so several calls share a batch:
//
//	engine.ValidateField(ctx, "username", goodform.Defer())
//	engine.ValidateField(ctx, "email", goodform.Defer())
//	engine.Flush(ctx)
//
// ValidateLocalOnly is a silent local check for use inside rule guards:
//
//	validator.Presence(validator.If(func(string) bool {
//		return engine.ValidateLocalOnly(ctx, "country")
//	}))
//
// # Failures
//
// Invalid values are data: they end up in the ResponseMap and the Presenter,
// never as returned errors. A failed round trip leaves its fields pending;
// WithFailureHandler is told about it. Misconfigured rules fail at
// registration time.
//
// # Concurrency
//
// The engine is safe for concurrent use. Rules and presenters run without the
// engine lock held. Overlapping flushes are allowed: each round trip merges
// into the ResponseMap that is current when it settles, so callers that need
// consistent results should not overlap non-deferred calls on the same fields.
package goodform
