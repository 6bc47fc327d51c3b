package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gridhunt/gridhunt/internal/storage"
)

// Service provides prefix and whole-word dictionary lookups backed by a
// prefix tree. The tree is immutable once built; a load constructs a
// fresh tree and swaps it in under the write lock, so any number of
// concurrent solves can query while no load is in flight.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu        sync.RWMutex
	root      *node
	wordCount int
	loaded    bool
}

// New creates a new dictionary Service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
		root:    &node{},
	}
}

// LoadFromStorage loads dictionary words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.LoadWords(words)
	return nil
}

// LoadFromFile loads dictionary words from a file, one word per line.
// A missing file is not an error: the dictionary comes up empty and
// every solve simply finds no words.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("dictionary file missing, starting with empty dictionary",
				slog.String("path", path))
			s.LoadWords(nil)
			return nil
		}
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Cache the word list in storage; a cache failure only costs the
	// next LoadFromStorage, not this load.
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		s.logger.Warn("could not cache dictionary words",
			slog.String("error", err.Error()))
	}

	s.LoadWords(words)
	return nil
}

// LoadWords builds a fresh tree from the given words and swaps it in
func (s *Service) LoadWords(words []string) {
	root := &node{}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		root.insert(lower)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	s.wordCount = len(seen)
	s.loaded = true
}

// HasPrefix reports whether some dictionary word starts with s,
// including s itself being a word. Never errors: out-of-alphabet or
// unknown input is simply false.
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.hasPrefix(strings.ToLower(prefix))
}

// IsWord reports whether s is exactly a complete dictionary word
func (s *Service) IsWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.isWord(strings.ToLower(word))
}

// IsLoaded returns whether a load has completed
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of distinct words loaded
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordCount
}

// Interface for dependency injection
type ServiceInterface interface {
	HasPrefix(prefix string) bool
	IsWord(word string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string)
}

var _ ServiceInterface = (*Service)(nil)
