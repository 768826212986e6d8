package remote_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform/pkg/remote"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		backoff  remote.ExponentialBackoff
		attempts []int
		want     []time.Duration
	}{
		{
			name:     "defaults",
			backoff:  remote.ExponentialBackoff{},
			attempts: []int{1, 2, 3, 6},
			want: []time.Duration{
				200 * time.Millisecond,
				400 * time.Millisecond,
				800 * time.Millisecond,
				5 * time.Second,
			},
		},
		{
			name: "custom multiplier with cap",
			backoff: remote.ExponentialBackoff{
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     time.Second,
				Multiplier:      3,
			},
			attempts: []int{1, 2, 3, 4},
			want: []time.Duration{
				100 * time.Millisecond,
				300 * time.Millisecond,
				900 * time.Millisecond,
				time.Second,
			},
		},
		{
			name:     "non-positive attempt",
			backoff:  remote.ExponentialBackoff{},
			attempts: []int{0, -1},
			want:     []time.Duration{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, len(tt.attempts), len(tt.want), "test setup error")

			for i, attempt := range tt.attempts {
				assert.Equal(t, tt.want[i], tt.backoff.NextInterval(attempt), "attempt %d", attempt)
			}
		})
	}
}

func TestExponentialBackoffJitter(t *testing.T) {
	t.Parallel()

	backoff := remote.ExponentialBackoff{InitialInterval: time.Second, MaxInterval: time.Minute, JitterFactor: 0.5}

	for range 20 {
		interval := backoff.NextInterval(3)
		assert.GreaterOrEqual(t, interval, 2*time.Second)
		assert.LessOrEqual(t, interval, 6*time.Second)
	}
}

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	backoff := remote.FixedBackoff{Interval: 50 * time.Millisecond}
	assert.Equal(t, time.Duration(0), backoff.NextInterval(0))
	assert.Equal(t, 50*time.Millisecond, backoff.NextInterval(1))
	assert.Equal(t, 50*time.Millisecond, backoff.NextInterval(10))
}

func TestDefaultBackoffStrategy(t *testing.T) {
	t.Parallel()

	eb, ok := remote.DefaultBackoffStrategy().(remote.ExponentialBackoff)
	require.True(t, ok)
	assert.Equal(t, 200*time.Millisecond, eb.InitialInterval)
	assert.Equal(t, 5*time.Second, eb.MaxInterval)
	assert.Equal(t, float64(2), eb.Multiplier)
	assert.Equal(t, 0.1, eb.JitterFactor)
}
