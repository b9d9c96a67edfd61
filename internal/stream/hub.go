// Package stream broadcasts rendered grids to browser clients over
// WebSocket and relays their control messages.
package stream

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/gogpu/asciicam"
)

// writeTimeout bounds a single frame write to one client.
const writeTimeout = 2 * time.Second

// ErrClosed is returned by Draw after Close.
var ErrClosed = errors.New("stream: hub closed")

// ControlFunc handles a control message from a client.
type ControlFunc func(ControlMessage)

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithControl sets the handler for client control messages. Without one,
// client messages are read and discarded.
func WithControl(fn ControlFunc) HubOption {
	return func(h *Hub) {
		h.control = fn
	}
}

// WithOriginPatterns sets the origins allowed to connect. The default
// allows only same-origin clients.
func WithOriginPatterns(patterns ...string) HubOption {
	return func(h *Hub) {
		h.origins = patterns
	}
}

// client is one connected browser. send holds at most the latest frame.
type client struct {
	conn *websocket.Conn
	send chan FrameMessage
}

// Hub is an asciicam.Renderer that fans each grid out to every connected
// WebSocket client. Slow clients drop frames rather than delay others.
type Hub struct {
	control ControlFunc
	origins []string

	mu      sync.RWMutex
	clients map[*client]struct{}
	last    *FrameMessage
	closed  bool
}

// NewHub creates a hub with no clients.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{clients: make(map[*client]struct{})}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the request to a WebSocket and serves the client until
// it disconnects or the hub closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		asciicam.Logger().Warn("stream: websocket accept failed", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	c := &client{conn: conn, send: make(chan FrameMessage, 1)}
	if !h.add(c) {
		_ = conn.Close(websocket.StatusGoingAway, "hub closed")
		return
	}
	defer h.remove(c)

	log := asciicam.Logger().With("remote", r.RemoteAddr)
	log.Info("stream: client connected")
	defer log.Info("stream: client disconnected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go h.writeLoop(ctx, cancel, c)

	for {
		var msg ControlMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			log.Debug("stream: read ended", "error", err)
			return
		}
		if h.control != nil {
			h.control(msg)
		}
	}
}

// writeLoop sends queued frames to c until ctx is done or a write fails.
func (h *Hub) writeLoop(ctx context.Context, cancel context.CancelFunc, c *client) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, c.conn, msg)
			wcancel()
			if err != nil {
				asciicam.Logger().Warn("stream: dropping client", "error", err)
				return
			}
		}
	}
}

// Draw implements asciicam.Renderer. It queues g for every client without
// blocking; a client still sending the previous frame gets only the newest.
// The frame is kept and sent to clients that connect later.
func (h *Hub) Draw(g *asciicam.Grid) error {
	msg := NewFrameMessage(g)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.last = &msg
	for c := range h.clients {
		offer(c.send, msg)
	}
	return nil
}

// offer puts msg on ch, replacing any frame still queued.
func offer(ch chan FrameMessage, msg FrameMessage) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client. Later connections are refused and Draw
// returns ErrClosed.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c.conn)
		delete(h.clients, c)
	}
	h.mu.Unlock()

	// The close handshake waits on each peer, so run it outside the lock.
	var wg sync.WaitGroup
	for _, conn := range conns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		}()
	}
	wg.Wait()
	return nil
}

// add registers c and queues the last drawn frame for it.
func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		offer(c.send, *h.last)
	}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}
