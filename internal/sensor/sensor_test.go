package sensor

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestReadingNullAlpha(t *testing.T) {
	var r Reading
	if err := json.Unmarshal([]byte(`{"alpha":null,"beta":null,"gamma":null}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.HasAlpha() {
		t.Fatalf("null alpha reported as present")
	}
	a, b, g := r.Angles()
	if a != 0 || b != 0 || g != 0 {
		t.Fatalf("missing angles: got %v %v %v, want zeros", a, b, g)
	}
}

func TestReadingZeroAlphaIsFalsy(t *testing.T) {
	if NewReading(0, 45, 0, 0).HasAlpha() {
		t.Fatalf("zero alpha reported as present")
	}
	if !NewReading(12.5, 45, 0, 90).HasAlpha() {
		t.Fatalf("valid alpha reported as missing")
	}
}

func TestPushDropsOldestWhenFull(t *testing.T) {
	f := NewFeed(2)
	f.Push(NewReading(1, 0, 0, 0))
	f.Push(NewReading(2, 0, 0, 0))
	f.Push(NewReading(3, 0, 0, 0))

	var got []float64
	n := f.Drain(func(r Reading) { got = append(got, *r.Alpha) })
	if n != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("drain: got %v, want [2 3]", got)
	}
	if f.Dropped() != 1 {
		t.Fatalf("dropped: got %d, want 1", f.Dropped())
	}
	if f.Drain(func(Reading) {}) != 0 {
		t.Fatalf("queue not empty after drain")
	}
}

func TestWebsocketReadingsReachQueue(t *testing.T) {
	f := NewFeed(16)
	server := httptest.NewServer(f.Handler())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/orientation"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket server: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"alpha":30,"beta":80,"gamma":-5,"orientation":90}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	var got []Reading
	for len(got) == 0 && time.Now().Before(deadline) {
		f.Drain(func(r Reading) { got = append(got, r) })
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) != 1 {
		t.Fatalf("readings: got %d, want 1", len(got))
	}
	a, b, g := got[0].Angles()
	if a != 30 || b != 80 || g != -5 || got[0].ScreenOrientation != 90 {
		t.Fatalf("reading: got %v %v %v %v", a, b, g, got[0].ScreenOrientation)
	}
}

func TestSenderPageServed(t *testing.T) {
	f := NewFeed(1)
	server := httptest.NewServer(f.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type: got %q", ct)
	}
}
