package presets

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory preset directory. There is deliberately no
// persistence behind it; a seed file may populate it at boot and changes
// live only for the process lifetime.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]Preset
	order []string
}

func NewStore() *Store {
	return &Store{byID: make(map[string]Preset)}
}

// Seed loads presets in bulk, assigning IDs where the seed file omits them.
func (s *Store) Seed(list []Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, preset := range list {
		if preset.ID == "" {
			preset.ID = uuid.NewString()
		}
		if _, exists := s.byID[preset.ID]; !exists {
			s.order = append(s.order, preset.ID)
		}
		s.byID[preset.ID] = preset
	}
}

// List returns presets in insertion order.
func (s *Store) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Store) Get(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	preset, ok := s.byID[id]
	return preset, ok
}

func (s *Store) Create(preset Preset) Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	preset.ID = uuid.NewString()
	s.byID[preset.ID] = preset
	s.order = append(s.order, preset.ID)
	return preset
}

func (s *Store) Update(id string, preset Preset) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return Preset{}, ErrNotFound
	}
	preset.ID = id
	s.byID[id] = preset
	return preset, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
