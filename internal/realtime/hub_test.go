// MentorHive | 2026
// hub_test.go

package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(hub *Hub) *Client {
	return &Client{
		hub:   hub,
		send:  make(chan []byte, sendBufferSize),
		rooms: make(map[string]struct{}),
	}
}

func TestInitOnce(t *testing.T) {
	reset()
	t.Cleanup(reset)

	_, err := Get()
	assert.ErrorIs(t, err, ErrNotInitialized)

	hub, err := Init(testLogger())
	require.NoError(t, err)
	require.NotNil(t, hub)

	got, err := Get()
	require.NoError(t, err)
	assert.Same(t, hub, got)

	_, err = Init(testLogger())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestJoinAndLeave(t *testing.T) {
	hub := newHub(testLogger())
	c := testClient(hub)

	hub.join(c, "doubt-1")
	hub.join(c, "junior-space")
	assert.Equal(t, 1, hub.RoomSize("doubt-1"))
	assert.Equal(t, 1, hub.RoomSize("junior-space"))
	assert.Equal(t, 2, hub.RoomCount())

	hub.leave(c, "doubt-1")
	assert.Equal(t, 0, hub.RoomSize("doubt-1"))
	// Empty rooms are garbage collected.
	assert.Equal(t, 1, hub.RoomCount())
}

func TestRemoveClearsAllRooms(t *testing.T) {
	hub := newHub(testLogger())
	c := testClient(hub)
	other := testClient(hub)

	hub.join(c, "doubt-1")
	hub.join(c, "doubt-2")
	hub.join(c, "junior-space")
	hub.join(other, "junior-space")

	hub.remove(c)

	assert.Empty(t, c.rooms)
	assert.Equal(t, 0, hub.RoomSize("doubt-1"))
	assert.Equal(t, 0, hub.RoomSize("doubt-2"))
	assert.Equal(t, 1, hub.RoomSize("junior-space"))
}

func TestBroadcastReachesRoomMembersOnly(t *testing.T) {
	hub := newHub(testLogger())
	member := testClient(hub)
	outsider := testClient(hub)

	hub.join(member, "doubt-1")
	hub.join(outsider, "doubt-2")

	hub.Broadcast("doubt-1", "new-comment", map[string]string{"id": "c1"})

	select {
	case raw := <-member.send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "doubt-1", event.Room)
		assert.Equal(t, "new-comment", event.Event)
	default:
		t.Fatal("expected member to receive the event")
	}

	select {
	case <-outsider.send:
		t.Fatal("outsider must not receive events for other rooms")
	default:
	}
}

func TestBroadcastSkipsSlowConsumers(t *testing.T) {
	hub := newHub(testLogger())
	slow := &Client{
		hub:   hub,
		send:  make(chan []byte), // unbuffered and never drained
		rooms: make(map[string]struct{}),
	}
	hub.join(slow, "doubt-1")

	// Must not block.
	hub.Broadcast("doubt-1", "new-comment", nil)
}

func TestClientMessageHandling(t *testing.T) {
	hub := newHub(testLogger())
	c := testClient(hub)

	c.handle(clientMessage{Type: "join-doubt", DoubtID: "42"})
	assert.Equal(t, 1, hub.RoomSize("doubt-42"))

	c.handle(clientMessage{Type: "join-junior-space"})
	assert.Equal(t, 1, hub.RoomSize("junior-space"))

	c.handle(clientMessage{Type: "leave-doubt", DoubtID: "42"})
	assert.Equal(t, 0, hub.RoomSize("doubt-42"))

	c.handle(clientMessage{Type: "leave-junior-space"})
	assert.Equal(t, 0, hub.RoomSize("junior-space"))

	// join-doubt without an id is ignored.
	c.handle(clientMessage{Type: "join-doubt"})
	assert.Equal(t, 0, hub.RoomCount())

	// Unknown message types are ignored.
	c.handle(clientMessage{Type: "shout"})
	assert.Equal(t, 0, hub.RoomCount())
}
