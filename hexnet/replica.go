package hexnet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/milk9111/bosshex/hex"
)

const replicaAnnouncements = 32

// Replica mirrors the authority's hex state. It never rolls or runs hazards
// itself; it only reports what the authority last published.
type Replica struct {
	conn *websocket.Conn

	mu  sync.RWMutex
	set *hex.ActiveSet
	err error

	announcements chan hex.Announcement
	done          chan struct{}
}

// Dial connects to a hub at a ws:// URL.
func Dial(ctx context.Context, url string) (*Replica, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("hexnet: dial %s: %w", url, err)
	}
	r := &Replica{
		conn:          conn,
		announcements: make(chan hex.Announcement, replicaAnnouncements),
		done:          make(chan struct{}),
	}
	go r.readLoop()
	return r, nil
}

func (r *Replica) readLoop() {
	defer close(r.done)
	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("hexnet: discarding malformed message: %v", err)
			continue
		}

		switch msg.Type {
		case TypeHexState:
			r.mu.Lock()
			r.set = msg.Set
			r.mu.Unlock()
		case TypeAnnounce:
			if msg.Announcement == nil {
				continue
			}
			select {
			case r.announcements <- *msg.Announcement:
			default:
			}
		}
	}
}

// Current returns a copy of the last published set, nil before the first one
// arrives or when the authority has no boss engaged.
func (r *Replica) Current() *hex.ActiveSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.set == nil || !r.set.HasAny() {
		return nil
	}
	return r.set.Clone()
}

// Announcements delivers the authority's announcements. Old ones are dropped
// when the reader falls behind.
func (r *Replica) Announcements() <-chan hex.Announcement {
	return r.announcements
}

// Done is closed when the connection ends.
func (r *Replica) Done() <-chan struct{} {
	return r.done
}

func (r *Replica) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *Replica) Close() error {
	return r.conn.Close()
}
