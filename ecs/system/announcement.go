package system

import (
	"log"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/hex"
)

const (
	recentAnnouncements = 6
	defaultStateEvery   = 30
)

// Broadcaster receives what remote participants need to see.
type Broadcaster interface {
	Announce(a hex.Announcement)
	PublishState(set *hex.ActiveSet)
}

// AnnouncementSystem drains the world's events at the end of a tick. It logs
// them, keeps the latest announcements for the HUD and forwards hex traffic
// to the broadcaster. The active set is republished periodically so replicas
// can follow the counters.
type AnnouncementSystem struct {
	source      HexSource
	broadcaster Broadcaster
	every       int

	frame  int
	recent []hex.Announcement
}

func NewAnnouncementSystem(source HexSource, broadcaster Broadcaster, every int) *AnnouncementSystem {
	if every <= 0 {
		every = defaultStateEvery
	}
	return &AnnouncementSystem{source: source, broadcaster: broadcaster, every: every}
}

func (s *AnnouncementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.frame++

	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventHexAnnounce:
			a, ok := evt.Data.(hex.Announcement)
			if !ok {
				continue
			}
			log.Printf("hex: %s", a.Text)
			s.Push(a)
			if s.broadcaster != nil {
				s.broadcaster.Announce(a)
			}
		case ecs.EventHexRolled:
			if set, ok := evt.Data.(*hex.ActiveSet); ok && s.broadcaster != nil {
				s.broadcaster.PublishState(set)
			}
		case ecs.EventParticipantDied:
			log.Printf("death: %v", evt.Data)
		case ecs.EventBossDefeated:
			log.Printf("encounter: boss type %v defeated", evt.Data)
		}
	}

	if s.broadcaster != nil && s.source != nil && s.frame%s.every == 0 {
		s.broadcaster.PublishState(currentSet(s.source).Clone())
	}
}

// Push records an announcement for the HUD. Replicas feed remote
// announcements in here.
func (s *AnnouncementSystem) Push(a hex.Announcement) {
	s.recent = append(s.recent, a)
	if len(s.recent) > recentAnnouncements {
		s.recent = s.recent[len(s.recent)-recentAnnouncements:]
	}
}

// Recent returns the latest announcements, oldest first.
func (s *AnnouncementSystem) Recent() []hex.Announcement {
	if s == nil {
		return nil
	}
	return append([]hex.Announcement(nil), s.recent...)
}
