package ecs

import "github.com/milk9111/pinkball/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// ForEach visits every live entity carrying kind, in creation order.
// Entities destroyed by fn during the walk are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return
	}
	for _, e := range Entities(w) {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.Get(e.id()).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := w.store(kb.ID(), false)
	if sb.Len() == 0 {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := sb.Get(e.id()).(*B); ok {
			fn(e, a, b)
		}
	})
}

// First returns the oldest live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	for _, e := range w.entities.alive {
		if s.Has(e.id()) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many live entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.store(kind.ID(), false).Len()
}
