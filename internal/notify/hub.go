package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
)

const subscriberBuffer = 16

// Subscriber receives the events of one room until it is cancelled.
type Subscriber struct {
	ID     string
	Room   string
	Events chan domain.RoomEvent
	once   sync.Once
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.Events) })
}

// Hub fans room events out to subscribers in this process. Delivery is best
// effort: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*Subscriber
	log   *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		rooms: make(map[string]map[string]*Subscriber),
		log:   log,
	}
}

func (h *Hub) Subscribe(room string) (*Subscriber, func()) {
	sub := &Subscriber{
		ID:     uuid.NewString(),
		Room:   room,
		Events: make(chan domain.RoomEvent, subscriberBuffer),
	}

	h.mu.Lock()
	subs, ok := h.rooms[room]
	if !ok {
		subs = make(map[string]*Subscriber)
		h.rooms[room] = subs
	}
	subs[sub.ID] = sub
	h.mu.Unlock()

	return sub, func() { h.unsubscribe(sub) }
}

// Publish delivers event to the room's subscribers. A room deletion is
// delivered and its subscriptions closed under one write lock, so a room
// re-created under the same name keeps its new subscribers.
func (h *Hub) Publish(event domain.RoomEvent) {
	if event.Type == domain.EventRoomDeleted {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.deliver(event)
		for _, sub := range h.rooms[event.Room] {
			sub.close()
		}
		delete(h.rooms, event.Room)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(event)
}

func (h *Hub) deliver(event domain.RoomEvent) {
	for _, sub := range h.rooms[event.Room] {
		select {
		case sub.Events <- event:
		default:
			h.log.Debug("dropping room event",
				slog.String("subscriber", sub.ID),
				slog.String("room", event.Room),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

// Channels are closed only under the write lock so Publish never sends on a
// closed channel.
func (h *Hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.rooms[sub.Room]; ok {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(h.rooms, sub.Room)
		}
	}
	sub.close()
}
