package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/bosshex/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, dead) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, dead) {
				t.Fatalf("second destroy should report false")
			}
			reused := CreateEntity(w)
			if reused.id() != dead.id() || reused == dead {
				t.Fatalf("expected id reuse with new generation, got %v after %v", reused, dead)
			}
			if IsAlive(w, dead) {
				t.Fatalf("stale handle must stay dead after id reuse")
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	tests := []struct {
		name string
		err  error
		run  func() error
	}{
		{"invalid_kind", component.ErrInvalidComponentKind, func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }},
		{"nil_value", component.ErrNilComponent, func() error { return Add[int](w, e, kind, nil) }},
		{"dead_entity", component.ErrEntityNotAlive, func() error {
			dead := CreateEntity(w)
			DestroyEntity(w, dead)
			return Add(w, dead, kind, intPtr(1))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestComponentsFollowEntity(t *testing.T) {
	w := NewWorld()
	health := component.NewComponent[int]()
	name := component.NewComponent[string]()

	e := CreateEntity(w)
	if err := Add(w, e, health.Kind(), intPtr(10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	label := "boss"
	if err := Add(w, e, name.Kind(), &label); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	v, ok := Get(w, e, health.Kind())
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}
	*v = 4
	if v2, _ := Get(w, e, health.Kind()); *v2 != 4 {
		t.Fatalf("expected pointer semantics, got %d", *v2)
	}

	if !Remove(w, e, name.Kind()) || Has(w, e, name.Kind()) {
		t.Fatalf("expected name removed")
	}
	if Remove(w, e, name.Kind()) {
		t.Fatalf("second remove should report false")
	}

	DestroyEntity(w, e)
	if Count(w, health.Kind()) != 0 {
		t.Fatalf("destroy should drop components, count=%d", Count(w, health.Kind()))
	}
}

func TestForEachVariants(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	e4 := CreateEntity(w)

	// e2 holds all four kinds, e3 three, e1 and e4 only one each.
	for _, add := range []struct {
		e    Entity
		kind component.ComponentKind[int]
	}{
		{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e2, kd}, {e3, ka}, {e3, kb}, {e3, kc}, {e4, kd},
	} {
		if err := Add(w, add.e, add.kind, intPtr(int(add.e.id()))); err != nil {
			t.Fatal(err)
		}
	}

	count := func(run func(func(Entity))) []Entity {
		var res []Entity
		run(func(e Entity) { res = append(res, e) })
		return res
	}

	tests := []struct {
		name string
		want int
		run  func(func(Entity))
	}{
		{"one", 3, func(f func(Entity)) { ForEach(w, ka, func(e Entity, _ *int) { f(e) }) }},
		{"two", 2, func(f func(Entity)) { ForEach2(w, ka, kb, func(e Entity, _, _ *int) { f(e) }) }},
		{"three", 2, func(f func(Entity)) { ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { f(e) }) }},
		{"four", 1, func(f func(Entity)) { ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { f(e) }) }},
		{"missing_store", 0, func(f func(Entity)) {
			ForEach2(w, ka, component.NewComponentKind[int](), func(e Entity, _, _ *int) { f(e) })
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(tc.run); len(got) != tc.want {
				t.Fatalf("expected %d entities, got %v", tc.want, got)
			}
		})
	}

	t.Run("destroy_during_iteration", func(t *testing.T) {
		visited := 0
		ForEach(w, ka, func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e2)
		})
		if IsAlive(w, e2) {
			t.Fatalf("expected e2 destroyed")
		}
		if visited < 2 {
			t.Fatalf("expected iteration to continue, visited=%d", visited)
		}
		if first, ok := First(w, kd); !ok || first != e4 {
			t.Fatalf("expected e4 as first kd holder, got %v ok=%v", first, ok)
		}
	})
}

func TestSchedulerAndEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "a")
			w.Events().Push(Event{Type: EventHexAnnounce, Data: "hello"})
		}),
		nil,
		SystemFunc(func(w *World) {
			order = append(order, "b")
		}),
	)
	s.Update(w)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be skipped")
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Data != "hello" {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("drain should empty the queue")
	}
}
