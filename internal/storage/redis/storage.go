package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridhunt/gridhunt/internal/model"
	"github.com/gridhunt/gridhunt/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, dictionaryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDictionaryNotLoaded
		}
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, dictionaryKey(), data, 0).Err()
}

// Solve history operations

func (s *Storage) SaveSolve(ctx context.Context, solve *model.SolveRecord) error {
	data, err := json.Marshal(solve)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, solveKey(solve.ID), data, s.cfg.SolveTTL).Err(); err != nil {
		return err
	}
	return s.client.SAdd(ctx, solveIndexKey(), string(solve.ID)).Err()
}

func (s *Storage) GetSolve(ctx context.Context, id model.SolveID) (*model.SolveRecord, error) {
	data, err := s.client.Get(ctx, solveKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSolveNotFound
		}
		return nil, err
	}

	var solve model.SolveRecord
	if err := json.Unmarshal(data, &solve); err != nil {
		return nil, err
	}
	return &solve, nil
}

func (s *Storage) ListSolves(ctx context.Context) ([]*model.SolveRecord, error) {
	ids, err := s.client.SMembers(ctx, solveIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	solves := make([]*model.SolveRecord, 0, len(ids))
	for _, id := range ids {
		solve, err := s.GetSolve(ctx, model.SolveID(id))
		if err != nil {
			if errors.Is(err, model.ErrSolveNotFound) {
				// Record expired; drop it from the index
				_ = s.client.SRem(ctx, solveIndexKey(), id).Err()
				continue
			}
			return nil, err
		}
		solves = append(solves, solve)
	}

	// Newest first
	sort.Slice(solves, func(i, j int) bool {
		return solves[i].CreatedAt.After(solves[j].CreatedAt)
	})
	return solves, nil
}

func (s *Storage) DeleteSolve(ctx context.Context, id model.SolveID) error {
	if err := s.client.Del(ctx, solveKey(id)).Err(); err != nil {
		return err
	}
	return s.client.SRem(ctx, solveIndexKey(), string(id)).Err()
}
