package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("broker unavailable")

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(cfg Config) (*CircuitBreaker, *clock) {
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker("test", cfg)
	cb.now = clk.now
	cb.resetWindow(clk.now())
	return cb, clk
}

func fail() error    { return errUnavailable }
func succeed() error { return nil }

func TestCircuitBreaker_Closed(t *testing.T) {
	cb, _ := newTestBreaker(Config{Timeout: 30 * time.Second})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(Config{Timeout: 30 * time.Second})

	for i := 0; i < 4; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errUnavailable)
	}
	assert.Equal(t, StateClosed, cb.State(), "4次失败不应熔断")

	assert.ErrorIs(t, cb.Execute(fail), errUnavailable)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断时不应调用实际函数")
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	trip := func(c Counts) bool { return c.ConsecutiveFailures >= 2 }

	t.Run("探测成功恢复CLOSED", func(t *testing.T) {
		cb, clk := newTestBreaker(Config{Timeout: 10 * time.Second, ReadyToTrip: trip})
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)
		require.Equal(t, StateOpen, cb.State())

		clk.advance(10 * time.Second)
		assert.Equal(t, StateHalfOpen, cb.State())

		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败回到OPEN", func(t *testing.T) {
		cb, clk := newTestBreaker(Config{Timeout: 10 * time.Second, ReadyToTrip: trip})
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)

		clk.advance(11 * time.Second)
		assert.ErrorIs(t, cb.Execute(fail), errUnavailable)
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("半开状态限制探测数", func(t *testing.T) {
		cb, clk := newTestBreaker(Config{Timeout: time.Second, ReadyToTrip: trip, MaxRequests: 1})
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)
		clk.advance(time.Second)

		// 探测请求执行期间，第二个请求被拒绝
		err := cb.Execute(func() error {
			assert.ErrorIs(t, cb.Execute(succeed), ErrOpenState)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_IntervalResetsCounts(t *testing.T) {
	cb, clk := newTestBreaker(Config{Interval: time.Minute, Timeout: time.Second})

	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	clk.advance(2 * time.Minute)
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State(), "窗口过期后连续失败重新计数")
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	cfg := Config{
		Timeout:     time.Second,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	}
	cb, clk := newTestBreaker(cfg)

	_ = cb.Execute(fail)
	clk.advance(time.Second)
	_ = cb.Execute(succeed)

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, transitions)
}
