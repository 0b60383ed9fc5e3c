package engine

import (
	"sync"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
)

// ProjectileStore owns the live projectiles of one engine
// Iteration follows spawn order; ids are monotonic for the store's lifetime
type ProjectileStore struct {
	mu     sync.RWMutex
	owner  core.Signature
	nextID uint64
	items  map[uint64]*component.ProjectileComponent
	order  []uint64
}

// NewProjectileStore creates an empty store stamping owner on every projectile
func NewProjectileStore(owner core.Signature) *ProjectileStore {
	return &ProjectileStore{
		owner:  owner,
		nextID: 1,
		items:  make(map[uint64]*component.ProjectileComponent),
		order:  make([]uint64, 0, 32),
	}
}

// Spawn assigns id and owner, stores the projectile and returns the id
func (s *ProjectileStore) Spawn(p component.ProjectileComponent) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	p.Owner = s.owner
	s.nextID++
	s.items[p.ID] = &p
	s.order = append(s.order, p.ID)
	return p.ID
}

// Get returns a copy of the projectile
func (s *ProjectileStore) Get(id uint64) (component.ProjectileComponent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return component.ProjectileComponent{}, false
	}
	return *p, true
}

// Set overwrites a live projectile, false if it was already removed
func (s *ProjectileStore) Set(p component.ProjectileComponent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[p.ID]
	if !ok {
		return false
	}
	p.Owner = s.owner
	*cur = p
	return true
}

// Remove deletes by id; absent ids are a no-op
func (s *ProjectileStore) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether id is live
func (s *ProjectileStore) Has(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

// IDs returns live ids in spawn order
func (s *ProjectileStore) IDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint64, len(s.order))
	copy(out, s.order)
	return out
}

// All returns copies of live projectiles in spawn order
func (s *ProjectileStore) All() []component.ProjectileComponent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]component.ProjectileComponent, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// Count returns the number of live projectiles
func (s *ProjectileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Clear removes every projectile; the id counter keeps running
func (s *ProjectileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.items)
	s.order = s.order[:0]
}

// Owner returns the signature stamped on spawned projectiles
func (s *ProjectileStore) Owner() core.Signature { return s.owner }
