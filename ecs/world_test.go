package ecs

import (
	"testing"

	"github.com/milk9111/pinkball/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
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
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestEntitySlotReuse(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	if !DestroyEntity(w, a) {
		t.Fatal("destroy failed")
	}
	b := CreateEntity(w)
	if a == b {
		t.Fatalf("reused slot must carry a new generation, got %v twice", a)
	}
	if IsAlive(w, a) {
		t.Fatalf("stale handle %v reported alive", a)
	}
	if !IsAlive(w, b) {
		t.Fatalf("new handle %v not alive", b)
	}
	if IsAlive(w, 0) {
		t.Fatal("zero entity must never be alive")
	}
}

func TestEntitiesCreationOrder(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	DestroyEntity(w, e2)
	e4 := CreateEntity(w)

	got := Entities(w)
	want := []Entity{e1, e3, e4}
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entity %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
					if Count(w, h2.Kind()) != 2 {
						t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
					}
				},
				teardown: func() bool { return Remove(w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3.Kind()) },
			},
			{
				name:  "replace_existing",
				setup: func() error { return Add(w, e2, h1.Kind(), intPtr(1)) },
				check: func(t *testing.T) {
					if err := Add(w, e2, h1.Kind(), intPtr(2)); err != nil {
						t.Fatal(err)
					}
					v, _ := Get(w, e2, h1.Kind())
					if *v != 2 || Count(w, h1.Kind()) != 1 {
						t.Fatalf("expected replaced value 2 and count 1, got %d count=%d", *v, Count(w, h1.Kind()))
					}
				},
				teardown: func() bool { return Remove(w, e2, h1.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("add_errors", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		e := CreateEntity(w)

		if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
			t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
		}
		if err := Add[int](w, e, h.Kind(), nil); err != component.ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		DestroyEntity(w, e)
		if err := Add(w, e, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(7)); err != nil {
			t.Fatal(err)
		}
		DestroyEntity(w, e)
		if _, ok := Get(w, e, h.Kind()); ok {
			t.Fatal("dead entity must not return components")
		}
		if Count(w, h.Kind()) != 0 {
			t.Fatalf("expected empty store, got %d", Count(w, h.Kind()))
		}
		reused := CreateEntity(w)
		if Has(w, reused, h.Kind()) {
			t.Fatal("reused slot inherited a component")
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("creation_order_after_swap_remove", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		var ents []Entity
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			ents = append(ents, e)
			if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}
		// Swap-remove reorders the dense array; iteration must not follow it.
		Remove(w, ents[0], h.Kind())
		if err := Add(w, ents[0], h.Kind(), intPtr(0)); err != nil {
			t.Fatal(err)
		}

		var got []int
		ForEach(w, h.Kind(), func(_ Entity, v *int) { got = append(got, *v) })
		for i, v := range got {
			if v != i {
				t.Fatalf("expected creation order 0..3, got %v", got)
			}
		}
	})

	t.Run("destroy_during_walk", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		Add(w, e1, h.Kind(), intPtr(1))
		Add(w, e2, h.Kind(), intPtr(2))

		visited := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			visited++
			if e == e1 {
				DestroyEntity(w, e2)
			}
		})
		if visited != 1 {
			t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
		}
	})
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("b")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, stringPtr("c")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h.Kind()); ok {
		t.Fatal("expected no entity in empty world")
	}
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	Add(w, e2, h.Kind(), intPtr(2))
	Add(w, e1, h.Kind(), intPtr(1))

	got, ok := First(w, h.Kind())
	if !ok || got != e1 {
		t.Fatalf("expected oldest entity %v, got %v ok=%v", e1, got, ok)
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Push(Event{Type: "a"})
	q.Push(Event{Type: "b"})
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("expected FIFO order, got %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatal("expected queue empty after drain")
	}

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: "x"})
	if nilQueue.Len() != 0 {
		t.Fatal("nil queue must stay empty")
	}
}
