package sensor

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Feed accepts websocket connections from phones and queues their orientation
// readings. The render loop drains the queue once per frame, so readings are only
// ever applied on the main thread.
type Feed struct {
	upgrader websocket.Upgrader
	readings chan Reading
	dropped  atomic.Uint64
	clients  atomic.Int32
}

// NewFeed returns a feed buffering up to buffer readings between frames.
func NewFeed(buffer int) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	return &Feed{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		readings: make(chan Reading, buffer),
	}
}

// Handler serves the sender page at / and the websocket at /orientation.
func (f *Feed) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(senderPage))
	})
	mux.HandleFunc("/orientation", f.handleWS)
	return mux
}

// Serve listens on addr until ctx is cancelled.
func (f *Feed) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Printf("orientation feed listening on http://%s/", ln.Addr())

	srv := &http.Server{Handler: f.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (f *Feed) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("orientation feed: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	f.clients.Add(1)
	defer f.clients.Add(-1)

	for {
		var rd Reading
		if err := conn.ReadJSON(&rd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("orientation feed: read error: %v", err)
			}
			return
		}
		f.Push(rd)
	}
}

// Push queues a reading without blocking. When the queue is full the oldest
// reading is discarded; only the newest orientation matters.
func (f *Feed) Push(rd Reading) {
	for {
		select {
		case f.readings <- rd:
			return
		default:
		}
		select {
		case <-f.readings:
			f.dropped.Add(1)
		default:
		}
	}
}

// Drain hands every queued reading to fn in arrival order and returns the count.
func (f *Feed) Drain(fn func(Reading)) int {
	n := 0
	for {
		select {
		case rd := <-f.readings:
			fn(rd)
			n++
		default:
			return n
		}
	}
}

// Dropped returns how many readings were discarded because the queue was full.
func (f *Feed) Dropped() uint64 {
	return f.dropped.Load()
}

// Clients returns the number of connected senders.
func (f *Feed) Clients() int {
	return int(f.clients.Load())
}

const senderPage = `<!doctype html>
<html><head><meta name="viewport" content="width=device-width,initial-scale=1">
<title>cube-rain orientation</title></head>
<body style="font:16px sans-serif;background:#000;color:#ccc">
<p id="s">connecting...</p>
<script>
var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/orientation");
var s = document.getElementById("s");
ws.onopen = function() { s.textContent = "streaming orientation"; };
ws.onclose = function() { s.textContent = "disconnected"; };
window.addEventListener("deviceorientation", function(e) {
	if (ws.readyState !== 1) return;
	ws.send(JSON.stringify({alpha: e.alpha, beta: e.beta, gamma: e.gamma,
		orientation: (screen.orientation && screen.orientation.angle) || window.orientation || 0}));
}, true);
</script></body></html>
`
