package live

import (
	"encoding/json"
	"testing"
	"time"

	"thochu/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: RoomCheckins,
	}
	hub.register <- client

	visitor := models.Visitor{TemporaryAddress: "Khách sạn Biển Xanh"}
	visitor.FullName = "Nguyen Van A"
	hub.BroadcastCheckin(visitor)

	select {
	case got := <-client.Send:
		var ev Event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if ev.Action != "checkin" || ev.Visitor.FullName != "Nguyen Van A" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestBroadcastAfterStopReturns(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	returned := make(chan struct{})
	go func() {
		hub.BroadcastCheckin(models.Visitor{})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(1 * time.Second):
		t.Fatal("broadcast blocked after hub stop")
	}
}

func TestHubSkipsOtherRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	other := &Client{Send: make(chan []byte, 1), Room: "elsewhere"}
	hub.register <- other

	hub.BroadcastCheckin(models.Visitor{})

	select {
	case <-other.Send:
		t.Fatal("client outside the checkins room received the event")
	case <-time.After(100 * time.Millisecond):
	}
}
