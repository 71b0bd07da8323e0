package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"msgdesk/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(EventSelectionChanged, rec.handle)

	b.Publish(domain.SelectionChangedEvent{NewID: 1})
	b.Publish(domain.QueryChangedEvent{Term: "ignored"})
	b.Publish(domain.SelectionChangedEvent{OldID: 1, NewID: 2})

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	events := rec.snapshot()
	assert.Equal(t, domain.SelectionChangedEvent{NewID: 1}, events[0])
	assert.Equal(t, domain.SelectionChangedEvent{OldID: 1, NewID: 2}, events[1])
}

func TestUnsubscribe(t *testing.T) {
	b := New(zap.NewNop())

	kept := &recorder{}
	dropped := &recorder{}
	b.Subscribe(EventQueryChanged, kept.handle)
	unsubscribe := b.Subscribe(EventQueryChanged, dropped.handle)
	unsubscribe()

	b.Publish(domain.QueryChangedEvent{Term: "x"})
	b.Close()

	assert.Len(t, kept.snapshot(), 1)
	assert.Empty(t, dropped.snapshot())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New(zap.NewNop())

	rec := &recorder{}
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, rec.handle)

	b.Publish(domain.ErrorEvent{Message: "first"})
	b.Publish(domain.ErrorEvent{Message: "second"})
	b.Close()

	assert.Len(t, rec.snapshot(), 2)
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New(nil)
	rec := &recorder{}
	b.Subscribe(EventMessagesLoaded, rec.handle)
	b.Close()
	b.Close()

	b.Publish(domain.MessagesLoadedEvent{Count: 3})
	assert.Empty(t, rec.snapshot())
}
