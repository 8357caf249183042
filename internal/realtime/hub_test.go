package realtime

import (
	"sync"
	"testing"

	"github.com/linskybing/gigboard/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesRoomSubscribersOnly(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe(RoomKey(1))
	b := hub.Subscribe(RoomKey(1))
	other := hub.Subscribe(RoomKey(2))
	defer a.Cancel()
	defer b.Cancel()
	defer other.Cancel()

	n := hub.Publish(RoomKey(1), message.Message{ID: 7, ProposalID: 1, Content: "hi"})
	assert.Equal(t, 2, n)

	assert.Equal(t, uint(7), (<-a.C).ID)
	assert.Equal(t, uint(7), (<-b.C).ID)
	select {
	case m := <-other.C:
		t.Fatalf("unexpected message in other room: %+v", m)
	default:
	}
}

func TestCancelClosesAndDetaches(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(RoomKey(3))
	require.Equal(t, 1, hub.Subscribers(RoomKey(3)))

	sub.Cancel()
	sub.Cancel()

	_, open := <-sub.C
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers(RoomKey(3)))
	assert.Equal(t, 0, hub.Publish(RoomKey(3), message.Message{ID: 1}))
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHubWithBuffer(1)
	slow := hub.Subscribe(RoomKey(4))
	defer slow.Cancel()

	assert.Equal(t, 1, hub.Publish(RoomKey(4), message.Message{ID: 1}))
	assert.Equal(t, 0, hub.Publish(RoomKey(4), message.Message{ID: 2}))
	assert.Equal(t, uint(1), (<-slow.C).ID)
}

func TestConcurrentPublishAndCancel(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		sub := hub.Subscribe(RoomKey(5))
		go func() {
			defer wg.Done()
			hub.Publish(RoomKey(5), message.Message{ID: 1})
		}()
		go func() {
			defer wg.Done()
			sub.Cancel()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, hub.Subscribers(RoomKey(5)))
}
