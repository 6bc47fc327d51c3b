package storage

import (
	"context"

	"github.com/gridhunt/gridhunt/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Solve history operations
	SaveSolve(ctx context.Context, solve *model.SolveRecord) error
	GetSolve(ctx context.Context, id model.SolveID) (*model.SolveRecord, error)
	ListSolves(ctx context.Context) ([]*model.SolveRecord, error)
	DeleteSolve(ctx context.Context, id model.SolveID) error
}
