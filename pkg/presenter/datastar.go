package presenter

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/logger"
)

// Renderer builds the element patched for a field status. The root element's
// id selects the element to morph unless a selector option is given.
type Renderer func(field string, status goodform.Status) templ.Component

// DataStarOption configures a DataStar presenter.
type DataStarOption func(*DataStar)

// WithRenderer replaces StatusElement as the patched component.
func WithRenderer(render Renderer) DataStarOption {
	return func(d *DataStar) {
		if render != nil {
			d.render = render
		}
	}
}

// WithPatchOptions adds datastar patch options (mode, selector, view transitions)
// to every patch.
func WithPatchOptions(opts ...datastar.PatchElementOption) DataStarOption {
	return func(d *DataStar) {
		d.opts = append(d.opts, opts...)
	}
}

// WithDataStarLogger sets the logger used for failed patches.
func WithDataStarLogger(log *slog.Logger) DataStarOption {
	return func(d *DataStar) {
		if log != nil {
			d.log = log
		}
	}
}

// DataStar patches one status element per report into the page over SSE.
// Reports may arrive from the goroutine that settles a round trip, so writes
// to the stream are serialized.
type DataStar struct {
	mu     sync.Mutex
	sse    *datastar.ServerSentEventGenerator
	render Renderer
	opts   []datastar.PatchElementOption
	log    *slog.Logger
	err    error
}

// NewDataStar creates a presenter writing to sse.
func NewDataStar(sse *datastar.ServerSentEventGenerator, opts ...DataStarOption) *DataStar {
	d := &DataStar{
		sse:    sse,
		render: StatusElement,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(logger.Component("presenter.datastar"))
	return d
}

// Report implements goodform.Presenter. After the first write error the
// stream is considered closed and later reports are dropped.
func (d *DataStar) Report(field string, status goodform.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return
	}
	if err := d.sse.PatchElementTempl(d.render(field, status), d.opts...); err != nil {
		d.err = err
		d.log.Warn("patch field status",
			logger.Field(field),
			logger.State(status.State.String()),
			logger.Error(err),
		)
	}
}

// Err returns the first error returned by the stream, if any.
func (d *DataStar) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// StatusElement renders the default status element:
//
//	<span id="user_email_status" class="field-status error">is taken</span>
//
// Invalid statuses list their errors separated by ", ". Valid statuses show
// the valid message, pending ones render empty.
func StatusElement(field string, status goodform.Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "field-status"
		if c := status.Class(); c != "" {
			class += " " + c
		}

		var b strings.Builder
		b.WriteString(`<span id="`)
		b.WriteString(templ.EscapeString(ElementID(field)))
		b.WriteString(`" class="`)
		b.WriteString(templ.EscapeString(class))
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(strings.Join(status.Messages(), ", ")))
		b.WriteString(`</span>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
