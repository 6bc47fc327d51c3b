package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridhunt/gridhunt/internal/model"
	"github.com/gridhunt/gridhunt/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	dictionaryWords []string
	solves          map[model.SolveID]*model.SolveRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		solves: make(map[model.SolveID]*model.SolveRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}

// Solve history operations

func (s *Storage) SaveSolve(ctx context.Context, solve *model.SolveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solves[solve.ID] = solve
	return nil
}

func (s *Storage) GetSolve(ctx context.Context, id model.SolveID) (*model.SolveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	solve, ok := s.solves[id]
	if !ok {
		return nil, model.ErrSolveNotFound
	}
	return solve, nil
}

func (s *Storage) ListSolves(ctx context.Context) ([]*model.SolveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	solves := make([]*model.SolveRecord, 0, len(s.solves))
	for _, solve := range s.solves {
		solves = append(solves, solve)
	}
	// Newest first
	sort.Slice(solves, func(i, j int) bool {
		return solves[i].CreatedAt.After(solves[j].CreatedAt)
	})
	return solves, nil
}

func (s *Storage) DeleteSolve(ctx context.Context, id model.SolveID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.solves, id)
	return nil
}
