package notify

import (
	"testing"

	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToRoomSubscribersOnly(t *testing.T) {
	hub := NewHub(nil)
	daily, cancelDaily := hub.Subscribe("daily")
	defer cancelDaily()
	other, cancelOther := hub.Subscribe("other")
	defer cancelOther()

	hub.Publish(domain.NewRoomEvent(domain.EventParticipantJoined, "daily", "bob"))

	select {
	case ev := <-daily.Events:
		assert.Equal(t, domain.EventParticipantJoined, ev.Type)
		assert.Equal(t, "bob", ev.Username)
	default:
		t.Fatal("expected event for daily subscriber")
	}

	select {
	case ev := <-other.Events:
		t.Fatalf("unexpected event %v", ev)
	default:
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub(nil)
	sub, cancel := hub.Subscribe("daily")
	defer cancel()

	for range subscriberBuffer + 5 {
		hub.Publish(domain.NewRoomEvent(domain.EventJoinRequested, "daily", "bob"))
	}

	assert.Len(t, sub.Events, subscriberBuffer)
}

func TestHubClosesSubscriptionsWhenRoomDeleted(t *testing.T) {
	hub := NewHub(nil)
	sub, cancel := hub.Subscribe("daily")

	hub.Publish(domain.NewRoomEvent(domain.EventRoomDeleted, "daily", ""))

	ev, ok := <-sub.Events
	require.True(t, ok)
	assert.Equal(t, domain.EventRoomDeleted, ev.Type)

	_, ok = <-sub.Events
	assert.False(t, ok)

	assert.NotPanics(t, cancel)
}

func TestHubDeletionLeavesLaterSubscribersOpen(t *testing.T) {
	hub := NewHub(nil)
	old, _ := hub.Subscribe("daily")

	hub.Publish(domain.NewRoomEvent(domain.EventRoomDeleted, "daily", ""))

	fresh, cancel := hub.Subscribe("daily")
	defer cancel()
	hub.Publish(domain.NewRoomEvent(domain.EventParticipantJoined, "daily", "bob"))

	ev, ok := <-old.Events
	require.True(t, ok)
	assert.Equal(t, domain.EventRoomDeleted, ev.Type)
	_, ok = <-old.Events
	assert.False(t, ok)

	select {
	case ev, ok = <-fresh.Events:
		require.True(t, ok)
		assert.Equal(t, domain.EventParticipantJoined, ev.Type)
	default:
		t.Fatal("subscriber of the re-created room missed an event")
	}
}
