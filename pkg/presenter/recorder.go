package presenter

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/goodform"
)

// Entry is one recorded report.
type Entry struct {
	Field  string
	Status goodform.Status
}

// Recorder stores reports in arrival order. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	notify  chan struct{}
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{notify: make(chan struct{}, 1)}
}

// Report implements goodform.Presenter.
func (r *Recorder) Report(field string, status goodform.Status) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Field: field, Status: status})
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// Reports returns a copy of every recorded report.
func (r *Recorder) Reports() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// ForField returns the statuses reported for field, oldest first.
func (r *Recorder) ForField(field string) []goodform.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []goodform.Status
	for _, e := range r.entries {
		if e.Field == field {
			out = append(out, e.Status)
		}
	}
	return out
}

// Last returns the most recent status reported for field.
func (r *Recorder) Last(field string) (goodform.Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Field == field {
			return r.entries[i].Status, true
		}
	}
	return goodform.Status{}, false
}

// Len returns the number of recorded reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops every recorded report.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Notify returns a channel that receives after reports arrive. Signals
// coalesce, so a receiver must re-check the recorded state.
func (r *Recorder) Notify() <-chan struct{} {
	return r.notify
}
