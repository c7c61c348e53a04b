package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/justsurfingit/job-tracker/internal/models"
)

// MemoryStore keeps applications in process memory for the lifetime of the
// server. Order is most recent first.
type MemoryStore struct {
	mu     sync.RWMutex
	apps   []models.Application
	nextID uint64
}

// NewMemoryStore seeds the store with apps in the given order. New IDs start
// above the largest numeric seed ID so they never collide with it.
func NewMemoryStore(seed []models.Application) *MemoryStore {
	s := &MemoryStore{
		apps:   make([]models.Application, 0, len(seed)),
		nextID: 1,
	}
	for _, app := range seed {
		s.apps = append(s.apps, app.Clone())
		if n, err := strconv.ParseUint(app.ID, 10, 64); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Application, len(s.apps))
	for i, app := range s.apps {
		out[i] = app.Clone()
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Application{}, models.ErrNotFound
	}
	return s.apps[i].Clone(), nil
}

// Add assigns the next ID and puts the application at the head of the list.
// Duplicate company/position pairs are allowed.
func (s *MemoryStore) Add(_ context.Context, newApp models.NewApplication) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := newApp.WithID(strconv.FormatUint(s.nextID, 10)).Clone()
	s.nextID++

	s.apps = append([]models.Application{app}, s.apps...)
	return app.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, app models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(app.ID)
	if i < 0 {
		return models.Application{}, models.ErrNotFound
	}
	s.apps[i] = app.Clone()
	return app.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.ErrNotFound
	}
	s.apps = append(s.apps[:i], s.apps[i+1:]...)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

func (s *MemoryStore) indexOf(id string) int {
	for i := range s.apps {
		if s.apps[i].ID == id {
			return i
		}
	}
	return -1
}
