package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
	"msgdesk/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func newService(t *testing.T) (*Service, *recordingBus) {
	t.Helper()
	store, err := directory.NewStore([]domain.Message{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	})
	require.NoError(t, err)
	bus := &recordingBus{}
	return NewService(directory.NewSelection(store), bus), bus
}

func TestSelectPublishesChange(t *testing.T) {
	s, bus := newService(t)

	require.NoError(t, s.Select(1))
	require.NoError(t, s.Select(2))
	require.NoError(t, s.Select(2))

	assert.True(t, s.IsSelected(2))
	assert.False(t, s.IsSelected(1))
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SelectionChangedEvent{NewID: 1},
		eventbus.SelectionChangedEvent{OldID: 1, NewID: 2, HadPrevious: true},
	}, bus.events, "reselecting the same id is silent")
}

func TestSelectIDZeroFromEmpty(t *testing.T) {
	store, err := directory.NewStore([]domain.Message{{ID: 0, Name: "Zero"}, {ID: 1, Name: "One"}})
	require.NoError(t, err)
	bus := &recordingBus{}
	s := NewService(directory.NewSelection(store), bus)

	require.NoError(t, s.Select(0))
	require.NoError(t, s.Select(0))
	require.NoError(t, s.Select(1))

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SelectionChangedEvent{OldID: 0, NewID: 0},
		eventbus.SelectionChangedEvent{OldID: 0, NewID: 1, HadPrevious: true},
	}, bus.events)
}

func TestSelectUnknownKeepsPrevious(t *testing.T) {
	s, bus := newService(t)
	require.NoError(t, s.Select(1))

	err := s.Select(99)
	require.ErrorIs(t, err, domain.ErrNotFound)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Alice", current.Name)
	assert.Len(t, bus.events, 1)
}

func TestClear(t *testing.T) {
	s, bus := newService(t)

	s.Clear()
	assert.Empty(t, bus.events, "clearing nothing is silent")

	require.NoError(t, s.Select(2))
	s.Clear()
	assert.False(t, s.HasSelection())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, eventbus.SelectionClearedEvent{PreviousID: 2}, bus.events[len(bus.events)-1])
}
