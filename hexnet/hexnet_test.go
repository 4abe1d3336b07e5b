package hexnet

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/bosshex/hex"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *Replica {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r, err := Dial(ctx, url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestReplicaReceivesLastStateOnConnect(t *testing.T) {
	hub, url := startHub(t)

	set := hex.NewActiveSet()
	set.Flashy = hex.TimeLimit
	set.TimeLimitTicks = 1200
	set.TimeLimitTotal = 1200
	hub.PublishState(set)

	r := dial(t, url)
	eventually(t, "initial state", func() bool { return r.Current() != nil })

	got := r.Current()
	if got.Flashy != hex.TimeLimit || got.TimeLimitTicks != 1200 {
		t.Fatalf("unexpected replica state %+v", got)
	}

	// the copy is the replica's own
	got.TimeLimitTicks = 0
	if r.Current().TimeLimitTicks != 1200 {
		t.Fatalf("Current leaked the internal set")
	}
}

func TestReplicaFollowsUpdatesAndAnnouncements(t *testing.T) {
	hub, url := startHub(t)
	r := dial(t, url)
	eventually(t, "subscription", func() bool { return hub.Subscribers() == 1 })

	if r.Current() != nil {
		t.Fatalf("expected no state before the first publish")
	}

	hub.Announce(hex.Announcement{Text: "Gravity shifts!", Color: hex.ColorPurple})
	select {
	case a := <-r.Announcements():
		if a.Text != "Gravity shifts!" || a.Color != hex.ColorPurple {
			t.Fatalf("unexpected announcement %+v", a)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no announcement received")
	}

	set := hex.NewActiveSet()
	set.Constraint = hex.PacifistHealer
	set.PacifistHealer = 2
	hub.PublishState(set)
	eventually(t, "pacifist state", func() bool {
		cur := r.Current()
		return cur != nil && cur.PacifistHealer == 2
	})

	// an empty set means nothing is engaged
	hub.PublishState(nil)
	eventually(t, "cleared state", func() bool { return r.Current() == nil })
}

func TestHubCloseEndsReplicas(t *testing.T) {
	hub, url := startHub(t)
	r := dial(t, url)
	eventually(t, "subscription", func() bool { return hub.Subscribers() == 1 })

	hub.Close()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("replica still connected after hub close")
	}
	if r.Err() == nil {
		t.Fatalf("expected the replica to report why it stopped")
	}
	if hub.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", hub.Subscribers())
	}
}
