package ecs

import "github.com/milk9111/bosshex/ecs/component"

// World owns entities, component stores, and the event queue.
type World struct {
	nextID entityID
	gens   []generation
	alive  []bool
	free   []entityID
	count  int

	stores map[component.ComponentID]componentStore
	events EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

func (w *World) create() Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.gens[id-1])
}

func (w *World) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

func (w *World) destroy(e Entity) bool {
	if !w.isAlive(e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.remove(id)
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if existing, ok := w.stores[kind.ID()]; ok {
		typed, _ := existing.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
