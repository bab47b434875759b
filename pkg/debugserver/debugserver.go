// Package debugserver is an optional, read-only relay of BREAK/DPRINT
// diagnostics over WebSocket, so a remote client can watch a running guest
// program instead of tailing stderr.
package debugserver

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"ipp23/pkg/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server broadcasts engine.Events to every connected WebSocket client. The
// single-threaded interpreter never blocks on it: the function returned by
// Sink only enqueues onto a buffered channel drained by a background
// goroutine per client.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan engine.Event
	http    *http.Server
}

// Start launches the debug server listening on addr and returns it
// immediately; the HTTP server runs on its own goroutine.
func Start(addr string) (*Server, error) {
	s := &Server{clients: make(map[*websocket.Conn]chan engine.Event)}
	mux := http.NewServeMux()
	mux.HandleFunc("/debug", s.handleUpgrade)
	s.http = &http.Server{Addr: addr, Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("debugserver: serve error: %v", err)
		}
	}()
	return s, nil
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ch := make(chan engine.Event, 64)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for ev := range ch {
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}()
}

// Sink returns an engine.Sink that broadcasts every event to connected
// clients, dropping it (never blocking the interpreter) if a client's
// buffer is full.
func (s *Server) Sink() engine.Sink {
	return func(ev engine.Event) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, ch := range s.clients {
			select {
			case ch <- ev:
			default:
				// Slow client: drop rather than block the guest program.
			}
		}
	}
}

// Close stops the HTTP server and disconnects all clients.
func (s *Server) Close() error {
	s.mu.Lock()
	for conn, ch := range s.clients {
		close(ch)
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]chan engine.Event)
	s.mu.Unlock()
	return s.http.Close()
}
