package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/circuitbreaker"
)

type sent struct {
	key string
	msg interface{}
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []sent
	err  error

	// 调用时ctx的状态,Publish返回后ctx会被发布器取消
	ctxErrs      []error
	hasDeadlines []bool
}

func (f *fakePublisher) Publish(ctx context.Context, key string, msg interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, hasDeadline := ctx.Deadline()
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	f.hasDeadlines = append(f.hasDeadlines, hasDeadline)
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{key: key, msg: msg})
	return nil
}

func testEvent(eventType string) book.Event {
	b := &book.Book{ID: 1, Title: "Dune", Category: "Fiction", Price: 12.5}
	return book.NewEvent(eventType, b, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestCatalogPublisher_Publish(t *testing.T) {
	fake := &fakePublisher{}
	p := NewCatalogPublisher(fake)

	p.Publish(context.Background(), testEvent(book.EventCreated))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, "book.created", fake.sent[0].key)
	assert.Equal(t, testEvent(book.EventCreated), fake.sent[0].msg)
}

func TestCatalogPublisher_DetachedFromRequestCancel(t *testing.T) {
	fake := &fakePublisher{}
	p := NewCatalogPublisher(fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Publish(ctx, testEvent(book.EventDeleted))

	require.Len(t, fake.ctxErrs, 1)
	assert.NoError(t, fake.ctxErrs[0], "请求取消不影响发布")
	assert.True(t, fake.hasDeadlines[0], "发布带超时")
	assert.Len(t, fake.sent, 1)
}

func TestCatalogPublisher_BreakerOpens(t *testing.T) {
	fake := &fakePublisher{err: errors.New("connection refused")}
	var transitions []circuitbreaker.State
	p := newCatalogPublisher(fake, circuitbreaker.Config{
		Timeout:     time.Hour,
		ReadyToTrip: func(c circuitbreaker.Counts) bool { return c.ConsecutiveFailures >= 2 },
		OnStateChange: func(_ string, _, to circuitbreaker.State) {
			transitions = append(transitions, to)
		},
	})

	t.Run("失败不panic也不向上返回", func(t *testing.T) {
		p.Publish(context.Background(), testEvent(book.EventUpdated))
		p.Publish(context.Background(), testEvent(book.EventUpdated))
	})

	t.Run("熔断后不再调用Broker", func(t *testing.T) {
		require.Equal(t, []circuitbreaker.State{circuitbreaker.StateOpen}, transitions)

		p.Publish(context.Background(), testEvent(book.EventUpdated))
		assert.Len(t, fake.ctxErrs, 2)
	})
}
