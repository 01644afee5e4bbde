package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	tankworld "github.com/mbolaris/tankworld"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type snapshotHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newSnapshotHub() *snapshotHub {
	return &snapshotHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *snapshotHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *snapshotHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

func (h *snapshotHub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// serveSnapshots runs an HTTP server exposing a /snapshot websocket that
// receives the world's JSON-encoded snapshot on a fixed cadence. It never
// mutates the world — purely an observer, per spec.md §6's read-only
// export contract.
func serveSnapshots(w *tankworld.World, addr string) {
	hub := newSnapshotHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/snapshot", func(wr http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(wr, r, nil)
		if err != nil {
			return
		}
		hub.add(conn)
		defer hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			data, err := json.Marshal(w.Snapshot())
			if err != nil {
				continue
			}
			hub.broadcast(data)
		}
	}()

	log.Printf("tankworld: serving snapshots on ws://%s/snapshot", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Println("tankworld: websocket server stopped:", err)
	}
}
