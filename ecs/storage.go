package ecs

// entityStore tracks slot generations, free slots and the live set in
// creation order. Iteration order matters for gameplay: collision and draw
// passes walk entities in the order a level created them.
type entityStore struct {
	gens  []generation
	free  []entityID
	alive []Entity
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens))
	}
	e := makeEntity(id, s.gens[id-1])
	s.alive = append(s.alive, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	for i, live := range s.alive {
		if live == e {
			s.alive = append(s.alive[:i], s.alive[i+1:]...)
			break
		}
	}
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

func (s *entityStore) snapshot() []Entity {
	out := make([]Entity, len(s.alive))
	copy(out, s.alive)
	return out
}
