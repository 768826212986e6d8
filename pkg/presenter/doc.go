// Package presenter provides goodform.Presenter implementations.
//
// Recorder keeps an in-memory log of reports and is meant for tests and for
// server-side callers that render statuses themselves. DataStar streams one
// status element patch per report over a datastar SSE connection. Logger
// writes each report to slog, and Multi fans a report out to several
// presenters.
//
//	sse := datastar.NewSSE(w, r)
//	engine := goodform.New(
//		goodform.WithPresenter(presenter.Multi(
//			presenter.NewDataStar(sse),
//			presenter.NewLogger(log),
//		)),
//	)
//
// Status elements are addressed by ElementID, which turns a field name such
// as "user[email]" into "user_email_status".
package presenter
