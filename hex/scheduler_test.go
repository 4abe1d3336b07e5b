package hex

import (
	"math"
	"reflect"
	"testing"
)

type fakeHost struct {
	auth          bool
	roster        Roster
	kills         map[int]string
	flips         map[int]int
	announcements []Announcement
	meteors       []MeteorSpawn
}

func newFakeHost(n int) *fakeHost {
	return &fakeHost{auth: true, roster: roster(n), kills: map[int]string{}, flips: map[int]int{}}
}

func (h *fakeHost) Authoritative() bool { return h.auth }
func (h *fakeHost) Roster() Roster      { return append(Roster(nil), h.roster...) }
func (h *fakeHost) FlipGravity(id int)  { h.flips[id]++ }
func (h *fakeHost) Announce(a Announcement) {
	h.announcements = append(h.announcements, a)
}
func (h *fakeHost) SpawnMeteor(m MeteorSpawn) { h.meteors = append(h.meteors, m) }

func (h *fakeHost) Kill(id, damage int, reason string) {
	h.kills[id] = reason
	for i := range h.roster {
		if h.roster[i].ID == id && damage > 0 {
			h.roster[i].Dead = true
		}
	}
}

func TestTimeLimitCountdown(t *testing.T) {
	tun := DefaultTuning()
	set := NewActiveSet()
	set.Flashy = TimeLimit
	Prime(set, tun)

	host := newFakeHost(3)
	host.roster[2].Dead = true
	s := NewScheduler(tun, NewRand(1), nil)

	for i := 0; i < set.TimeLimitTotal-1; i++ {
		s.Advance(set, host)
		if len(host.kills) != 0 {
			t.Fatalf("kill before expiry at advance %d", i+1)
		}
	}
	if TimeLimitStateOf(set) != TimeLimitCounting {
		t.Fatalf("expected counting one tick before expiry")
	}
	s.Advance(set, host)
	if set.TimeLimitTicks != 0 || TimeLimitStateOf(set) != TimeLimitExpired {
		t.Fatalf("expected expiry after %d advances, ticks=%d", set.TimeLimitTotal, set.TimeLimitTicks)
	}

	want := []string{"2 minutes remaining!", "1 minute remaining!", "30 seconds remaining!", "10 seconds!"}
	var got []string
	for _, a := range host.announcements {
		got = append(got, a.Text)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected alerts %v, got %v", want, got)
	}

	if len(host.kills) != 2 || host.kills[0] != "pa ran out of time." {
		t.Fatalf("expected the two standing participants killed, got %v", host.kills)
	}

	// already dead participants are not killed twice
	s.Advance(set, host)
	if len(host.kills) != 2 {
		t.Fatalf("expiry should be idempotent, got %v", host.kills)
	}
}

func TestAdvanceRespectsAuthority(t *testing.T) {
	tun := DefaultTuning()
	set := NewActiveSet()
	set.Flashy = TimeLimit
	Prime(set, tun)

	host := newFakeHost(2)
	host.auth = false
	s := NewScheduler(tun, NewRand(1), nil)
	for i := 0; i < 10; i++ {
		s.Advance(set, host)
	}
	if set.TimeLimitTicks != set.TimeLimitTotal {
		t.Fatalf("replicas must not advance the countdown")
	}
}

func TestGravityFlip(t *testing.T) {
	tun := DefaultTuning()

	t.Run("never_before_minimum", func(t *testing.T) {
		set := NewActiveSet()
		for i := 1; i < tun.GravityMinTicks; i++ {
			if TickGravity(set, tun, constRand{n: 0}) {
				t.Fatalf("flipped at %d, before minimum %d", i, tun.GravityMinTicks)
			}
		}
		if !TickGravity(set, tun, constRand{n: 0}) {
			t.Fatalf("a zero roll at the minimum should flip")
		}
		if set.GravityFlipTicks != 0 {
			t.Fatalf("flip should reset the accumulator")
		}
	})

	t.Run("forced_cap", func(t *testing.T) {
		capped := tun
		capped.GravityMaxTicks = tun.GravityMinTicks + 10
		set := NewActiveSet()
		set.Flashy = UnstableGravity
		Prime(set, capped)
		never := constRand{n: 1}
		flipped := 0
		for i := 0; i < capped.GravityMaxTicks; i++ {
			if TickGravity(set, capped, never) {
				flipped = i + 1
				break
			}
		}
		if flipped != capped.GravityMaxTicks {
			t.Fatalf("expected forced flip at %d, got %d", capped.GravityMaxTicks, flipped)
		}
	})

	t.Run("flips_every_valid_participant", func(t *testing.T) {
		set := NewActiveSet()
		set.Flashy = UnstableGravity
		set.GravityFlipTicks = tun.GravityMinTicks
		host := newFakeHost(3)
		host.roster[1].Active = false
		s := NewScheduler(tun, constRand{n: 0}, nil)
		s.Advance(set, host)
		if host.flips[0] != 1 || host.flips[2] != 1 || host.flips[1] != 0 {
			t.Fatalf("unexpected flips %v", host.flips)
		}
		if len(host.announcements) != 1 || host.announcements[0].Text != "Gravity shifts!" {
			t.Fatalf("expected one announcement, got %v", host.announcements)
		}
	})
}

func TestEngagementIntensity(t *testing.T) {
	if EngagementIntensity(0) <= EngagementIntensity(45) {
		t.Fatalf("entrance spike should beat t=45: %v vs %v", EngagementIntensity(0), EngagementIntensity(45))
	}
	for s := 0.0; s < 600; s += 0.25 {
		if v := EngagementIntensity(s); v < 0.5 {
			t.Fatalf("intensity %v below floor at %v", v, s)
		}
	}
	// t=0: base 1, waves 0, entrance 6
	if v := EngagementIntensity(0); math.Abs(v-7) > 1e-9 {
		t.Fatalf("expected 7 at t=0, got %v", v)
	}
}

func TestClusterCount(t *testing.T) {
	tests := []struct {
		name     string
		expected float64
		roll     float64
		want     int
	}{
		{"zero", 0, 0, 0},
		{"fraction_hit", 0.4, 0.39, 1},
		{"fraction_miss", 0.4, 0.4, 0},
		{"whole_plus_miss", 2.45, 0.9, 2},
		{"whole_plus_hit", 2.45, 0.1, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClusterCount(tc.expected, constRand{f: tc.roll}); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestScheduleWindowDeterministic(t *testing.T) {
	tun := DefaultTuning()
	targets := roster(4)
	a := ScheduleWindow(1, targets, tun, NewRand(99), nil)
	b := ScheduleWindow(1, targets, tun, NewRand(99), nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("equal seeds should schedule equal windows:\n%v\n%v", a, b)
	}
	// intensity 7 at t=0 -> 2.45 expected clusters
	if len(a) < 2 || len(a) > 3 {
		t.Fatalf("expected 2 or 3 clusters at fight start, got %d", len(a))
	}
	for _, c := range a {
		if c.SpawnTick < 1 || c.SpawnTick >= 1+tun.MeteorWindowTicks {
			t.Fatalf("spawn tick %d outside window", c.SpawnTick)
		}
		if math.Abs(c.BaseAngleDeg) > 60 || math.Abs(c.OffsetX) > 800 {
			t.Fatalf("cluster outside arc or spread: %+v", c)
		}
	}
	if got := ScheduleWindow(1, nil, tun, NewRand(99), nil); len(got) != 0 {
		t.Fatalf("no targets means no clusters, got %v", got)
	}
}

func TestExpandCluster(t *testing.T) {
	tun := DefaultTuning()
	target := Participant{ID: 3, Active: true, X: 100, Y: 500}
	// 0.5 rolls centre every jitter, speed lands on 16
	spawns := ExpandCluster(ScheduledCluster{Target: 3, OffsetX: 50}, target, tun, constRand{f: 0.5})
	if len(spawns) != 5 {
		t.Fatalf("expected 5 meteors, got %d", len(spawns))
	}
	for i, m := range spawns {
		wantY := 500 - 700 - float64(i)*40
		if math.Abs(m.X-150) > 1e-9 || math.Abs(m.Y-wantY) > 1e-9 {
			t.Fatalf("meteor %d at (%v,%v), want (150,%v)", i, m.X, m.Y, wantY)
		}
		if math.Abs(m.VX) > 1e-9 || math.Abs(m.VY-16) > 1e-9 {
			t.Fatalf("meteor %d velocity (%v,%v), want (0,16)", i, m.VX, m.VY)
		}
		if m.Damage != 30 || m.Target != 3 {
			t.Fatalf("unexpected meteor %+v", m)
		}
	}

	// full sideways jitter turns the aim by the full degree, against the jitter
	edge := ExpandCluster(ScheduledCluster{BaseAngleDeg: 10}, target, tun, constRand{f: 0.999999})
	for _, m := range edge {
		if m.AngleDeg >= 10 || m.AngleDeg < 9 {
			t.Fatalf("expected aim nudged below 10 degrees, got %v", m.AngleDeg)
		}
	}
}

func TestMeteorSchedulerRetargets(t *testing.T) {
	tun := DefaultTuning()
	set := NewActiveSet()
	set.Flashy = MeteorShower
	host := newFakeHost(2)
	s := NewScheduler(tun, NewRand(5), nil)

	s.Advance(set, host)
	pending := s.Pending()
	if len(pending) == 0 {
		t.Fatalf("expected clusters scheduled on the first tick")
	}
	before := len(host.meteors)

	// everyone scheduled as a target dies, one newcomer stays
	for i := range host.roster {
		host.roster[i].Dead = true
	}
	host.roster = append(host.roster, Participant{ID: 7, Name: "late", Active: true, X: 10, Y: 10})

	for i := 0; i < tun.MeteorWindowTicks; i++ {
		s.Advance(set, host)
	}
	later := host.meteors[before:]
	if len(later) == 0 {
		t.Fatalf("expected the scheduled clusters to spawn, got %d meteors", len(later))
	}
	for _, m := range later {
		if m.Target != 7 {
			t.Fatalf("expected retarget to the living participant, got %d", m.Target)
		}
	}
	if set.FightTicks != tun.MeteorWindowTicks+1 {
		t.Fatalf("expected %d fight ticks, got %d", tun.MeteorWindowTicks+1, set.FightTicks)
	}
}

func TestMeteorSchedulerDropsWithoutTargets(t *testing.T) {
	tun := DefaultTuning()
	set := NewActiveSet()
	set.Flashy = MeteorShower
	host := newFakeHost(1)
	s := NewScheduler(tun, NewRand(5), nil)
	s.Advance(set, host)
	host.roster[0].Dead = true
	for i := 0; i < tun.MeteorWindowTicks*2; i++ {
		s.Advance(set, host)
	}
	if len(s.Pending()) != 0 {
		t.Fatalf("due clusters without targets should be dropped")
	}
}

func TestSchedulerForgetsOldEncounter(t *testing.T) {
	tun := DefaultTuning()
	first := NewActiveSet()
	first.Flashy = MeteorShower
	host := newFakeHost(2)
	s := NewScheduler(tun, NewRand(5), nil)
	s.Advance(first, host)
	if len(s.Pending()) == 0 {
		t.Fatalf("expected pending clusters")
	}
	other := NewActiveSet()
	other.Flashy = Blackout
	s.Advance(other, host)
	if len(s.Pending()) != 0 {
		t.Fatalf("switching encounters should drop queued clusters")
	}
}

func TestSchedulerRestartsReengagedSet(t *testing.T) {
	tun := DefaultTuning()
	host := newFakeHost(2)
	s := NewScheduler(tun, NewRand(5), nil)

	fight := NewActiveSet()
	fight.Flashy = MeteorShower
	fight.FightTicks = 50
	s.Advance(fight, host)
	if fight.FightTicks != 51 {
		t.Fatalf("first engagement should keep existing counters, got %d fight ticks", fight.FightTicks)
	}
	for i := 0; i < 10; i++ {
		s.Advance(fight, host)
	}

	// boss leaves, the idle empty set runs for a while, then the boss returns
	for i := 0; i < 3; i++ {
		s.Advance(NewActiveSet(), host)
	}
	s.Advance(fight, host)
	if fight.FightTicks != 1 {
		t.Fatalf("re-engagement should restart the fight clock, got %d fight ticks", fight.FightTicks)
	}
	if fight.Flashy != MeteorShower {
		t.Fatalf("re-engagement dropped the hex: %v", fight.Flashy)
	}
}

func TestMeteorSchedulerDeterministicOverFight(t *testing.T) {
	tun := DefaultTuning()
	run := func() (*Scheduler, *fakeHost) {
		set := NewActiveSet()
		set.Flashy = MeteorShower
		host := newFakeHost(3)
		s := NewScheduler(tun, NewRand(42), nil)
		for i := 0; i < 400; i++ {
			s.Advance(set, host)
		}
		return s, host
	}

	sa, ha := run()
	sb, hb := run()
	if len(ha.meteors) == 0 {
		t.Fatalf("expected meteors over the fight")
	}
	if !reflect.DeepEqual(ha.meteors, hb.meteors) {
		t.Fatalf("same seed produced different meteors: %d vs %d", len(ha.meteors), len(hb.meteors))
	}
	if !reflect.DeepEqual(sa.Pending(), sb.Pending()) {
		t.Fatalf("same seed left different queues")
	}
}
