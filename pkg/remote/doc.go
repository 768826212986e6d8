// Package remote implements the wire protocol for server-checked validation.
//
// A Batch collects the values of every field queued for a remote check plus
// the extra parameters contributed by the rules' Include lists. The Client
// sends it as one GET request with the values URL-encoded in the query string
// and decodes the JSON object the server answers with:
//
//	{"email": null, "username": ["has already been taken"], "zip": "looks good"}
//
// Each entry is interpreted by Result: null or an empty value means valid, a
// non-empty array of strings means invalid with those messages, and anything
// else means valid with the value used verbatim as the message.
//
// # Client
//
//	client, err := remote.NewClient("https://example.com/validate",
//		remote.WithTimeout(5*time.Second),
//		remote.WithMetrics(remote.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	results, err := client.Check(ctx, batch)
//
// Retries are off by default. WithMaxRetries together with a BackoffStrategy
// turns them on; 4xx responses other than 408, 425 and 429 are never retried.
// A CircuitBreaker shared between checks stops hammering an endpoint that keeps
// failing.
//
// # Handler
//
// Handler serves the same protocol for Go backends. Register a Checker per
// field; requested fields without a checker are left out of the answer, so
// Include parameters are never reported back as fields.
//
//	h := remote.NewHandler()
//	h.Handle("username", func(ctx context.Context, values []string, query url.Values) remote.Result {
//		if taken(values) {
//			return remote.Invalid("has already been taken")
//		}
//		return remote.Valid("")
//	})
//	router.Get("/validate", h.ServeHTTP)
//
// # Errors
//
// Transport failures wrap ErrRequestFailed, and additionally ErrTimeout,
// ErrPermanentFailure or ErrCircuitOpen where they apply. Undecodable bodies
// wrap ErrInvalidResponse.
package remote
