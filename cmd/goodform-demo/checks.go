package main

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/goodform/pkg/remote"
)

// accounts is the in-memory user directory the demo checks against.
type accounts struct {
	mu        sync.RWMutex
	emails    []string
	usernames []string
}

func newAccounts() *accounts {
	return &accounts{
		emails:    []string{"taken@example.com", "admin@example.com"},
		usernames: []string{"admin", "root", "support"},
	}
}

func (a *accounts) checkEmail(_ context.Context, values []string, _ url.Values) remote.Result {
	email := strings.ToLower(strings.TrimSpace(first(values)))

	a.mu.RLock()
	defer a.mu.RUnlock()
	if slices.Contains(a.emails, email) {
		return remote.Invalid("has already been taken")
	}
	return remote.Result{}
}

func (a *accounts) checkUsername(_ context.Context, values []string, query url.Values) remote.Result {
	username := strings.ToLower(strings.TrimSpace(first(values)))
	if username == "" {
		return remote.Invalid("can't be blank")
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if slices.Contains(a.usernames, username) {
		return remote.Invalid("has already been taken")
	}
	if local, _, ok := strings.Cut(query.Get("email"), "@"); ok && strings.EqualFold(local, username) {
		return remote.Invalid("must differ from your email address")
	}
	return remote.Valid("is available")
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// localTransport answers batches with an in-process handler, for running the
// demo without a separate validation service.
type localTransport struct {
	handler *remote.Handler
}

func (t localTransport) Check(ctx context.Context, batch remote.Batch) (remote.Results, error) {
	query, err := url.ParseQuery(batch.Query())
	if err != nil {
		return nil, err
	}
	return t.handler.Check(ctx, query), nil
}
