package main

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/fields"
	"github.com/dmitrymomot/goodform/pkg/logger"
	"github.com/dmitrymomot/goodform/pkg/presenter"
	"github.com/dmitrymomot/goodform/pkg/remote"
)

//go:embed signup.yaml
var signupRules []byte

// formScope is the fields.Source scope of the signup form.
const formScope = "signup"

type app struct {
	log       *slog.Logger
	cfg       goodform.Config
	transport goodform.Transport
	checks    *remote.Handler
	registry  *prometheus.Registry
}

func newApp(log *slog.Logger, cfg goodform.Config) (*app, error) {
	a := &app{
		log:      log,
		cfg:      cfg,
		checks:   remote.NewHandler(remote.WithHandlerLogger(log)),
		registry: prometheus.NewRegistry(),
	}

	users := newAccounts()
	a.checks.Handle("email", users.checkEmail)
	a.checks.Handle("username", users.checkUsername)

	client, err := cfg.NewClient(
		remote.WithLogger(log),
		remote.WithMetrics(remote.NewMetrics(a.registry)),
	)
	if err != nil {
		return nil, err
	}
	if client != nil {
		a.transport = client
	} else {
		a.transport = localTransport{handler: a.checks}
	}
	return a, nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthcheck)
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	r.Method(http.MethodGet, "/validate", a.checks)

	r.Route("/signup", func(r chi.Router) {
		r.Post("/", a.submit)
		r.Post("/live", a.live)
		r.Post("/live/{field}", a.live)
	})
	return r
}

// newEngine builds a per-request engine over src. Rule sets are parsed per
// engine because if_valid guards are bound to the engine that owns them.
func (a *app) newEngine(r *http.Request, src *fields.Source, p goodform.Presenter) (*goodform.Engine, error) {
	e := goodform.New(
		goodform.WithSource(src),
		goodform.WithTransport(a.transport),
		goodform.WithPresenter(p),
		goodform.WithLogger(a.log),
		goodform.WithValidMessage(a.cfg.ValidMessage),
	)
	if err := e.LoadRuleSet(r.Context(), signupRules); err != nil {
		return nil, err
	}
	return e, nil
}

// live streams status patches for one field, or for the whole form when no
// field is named, until every round trip has settled.
func (a *app) live(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	src, err := fields.FromRequest(r, formScope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	patches := presenter.NewDataStar(sse, presenter.WithDataStarLogger(a.log))

	e, err := a.newEngine(r, src, presenter.Multi(patches, presenter.NewLogger(a.log)))
	if err != nil {
		a.log.ErrorContext(ctx, "build validation engine", logger.Error(err))
		return
	}

	if field := chi.URLParam(r, "field"); field != "" {
		e.ValidateField(ctx, field, goodform.InScope(formScope))
	} else {
		e.ValidateAll(ctx, formScope)
	}

	if err := e.Wait(ctx); err != nil {
		a.log.DebugContext(ctx, "client left before validation settled", logger.Error(err))
	}
}

// submit validates the whole form silently and answers with the failures.
func (a *app) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	src, err := fields.FromRequest(r, formScope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := a.newEngine(r, src, nil)
	if err != nil {
		a.log.ErrorContext(ctx, "build validation engine", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	e.ValidateAll(ctx, formScope, goodform.Silent())
	if err := e.Wait(ctx); err != nil {
		return
	}

	errs := e.Errors()
	pending := make([]string, 0)
	for field, st := range e.Responses() {
		if st.IsPending() {
			pending = append(pending, field)
		}
	}

	status := http.StatusOK
	switch {
	case len(pending) > 0:
		status = http.StatusServiceUnavailable
	case len(errs) > 0:
		status = http.StatusUnprocessableEntity
	}

	body := make(map[string][]string, len(errs))
	for _, field := range errs.Fields() {
		body[field] = errs.Get(field)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"errors": body, "pending": pending}); err != nil {
		a.log.ErrorContext(ctx, "write response", logger.Error(err))
	}
}
