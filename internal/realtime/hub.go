// Package realtime fans newly stored chat messages out to the viewers of a
// room. Delivery is best effort: a subscriber that falls behind loses live
// events and is expected to re-read history.
package realtime

import (
	"fmt"
	"log"
	"sync"

	"github.com/linskybing/gigboard/internal/domain/message"
)

const defaultBuffer = 32

// RoomKey is the room name for a proposal.
func RoomKey(proposalID uint) string {
	return fmt.Sprintf("proposal:%d", proposalID)
}

type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Subscription]struct{}
	buffer int
}

func NewHub() *Hub {
	return NewHubWithBuffer(defaultBuffer)
}

func NewHubWithBuffer(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		rooms:  make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscription is a live feed of one room. C is closed after Cancel.
type Subscription struct {
	C <-chan message.Message

	ch   chan message.Message
	hub  *Hub
	room string
	once sync.Once
}

func (h *Hub) Subscribe(room string) *Subscription {
	ch := make(chan message.Message, h.buffer)
	sub := &Subscription{C: ch, ch: ch, hub: h, room: room}

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.rooms[room]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.rooms[room] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Cancel detaches the subscription and closes C. Safe to call twice.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if subs, ok := s.hub.rooms[s.room]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.rooms, s.room)
			}
		}
		close(s.ch)
	})
}

// Publish hands msg to every current subscriber of room without blocking and
// returns how many received it.
func (h *Hub) Publish(room string, msg message.Message) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for sub := range h.rooms[room] {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			log.Printf("[chat] dropping message %d for slow subscriber in %s", msg.ID, room)
		}
	}
	return delivered
}

// Subscribers returns the number of live subscriptions in room.
func (h *Hub) Subscribers(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
