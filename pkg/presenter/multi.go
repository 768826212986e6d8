package presenter

import "github.com/dmitrymomot/goodform"

type multi []goodform.Presenter

// Multi returns a presenter that forwards every report to each of ps in order.
// Nil presenters are skipped.
func Multi(ps ...goodform.Presenter) goodform.Presenter {
	out := make(multi, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multi) Report(field string, status goodform.Status) {
	for _, p := range m {
		p.Report(field, status)
	}
}
