package presenter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform"
	"github.com/dmitrymomot/goodform/pkg/presenter"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	t.Run("keeps arrival order", func(t *testing.T) {
		t.Parallel()

		rec := presenter.NewRecorder()
		rec.Report("email", goodform.Pending())
		rec.Report("name", goodform.Valid(""))
		rec.Report("email", goodform.Invalid("is taken"))

		reports := rec.Reports()
		require.Len(t, reports, 3)
		assert.Equal(t, "email", reports[0].Field)
		assert.True(t, reports[0].Status.IsPending())
		assert.Equal(t, "name", reports[1].Field)

		assert.Equal(t, []goodform.Status{goodform.Pending(), goodform.Invalid("is taken")}, rec.ForField("email"))

		last, ok := rec.Last("email")
		require.True(t, ok)
		assert.Equal(t, []string{"is taken"}, last.Errors)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		rec := presenter.NewRecorder()
		_, ok := rec.Last("missing")
		assert.False(t, ok)
		assert.Empty(t, rec.ForField("missing"))
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		rec := presenter.NewRecorder()
		rec.Report("email", goodform.Valid(""))
		rec.Reset()
		assert.Zero(t, rec.Len())
	})

	t.Run("notifies", func(t *testing.T) {
		t.Parallel()

		rec := presenter.NewRecorder()
		rec.Report("email", goodform.Valid(""))
		rec.Report("email", goodform.Valid(""))

		select {
		case <-rec.Notify():
		default:
			t.Fatal("expected a notification")
		}
	})

	t.Run("concurrent reports", func(t *testing.T) {
		t.Parallel()

		rec := presenter.NewRecorder()
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec.Report("email", goodform.Pending())
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, rec.Len())
	})
}

func TestMulti(t *testing.T) {
	t.Parallel()

	first := presenter.NewRecorder()
	second := presenter.NewRecorder()

	var calls []string
	fn := goodform.PresenterFunc(func(field string, _ goodform.Status) {
		calls = append(calls, field)
	})

	p := presenter.Multi(first, nil, second, fn)
	p.Report("email", goodform.Invalid("is taken"))

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, []string{"email"}, calls)
}
