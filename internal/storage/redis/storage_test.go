package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/gridhunt/gridhunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *StorageSuite) TestDictionaryWordsRoundTrip() {
	words := []string{"cat", "car", "art"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	got, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, got)
}

func (s *StorageSuite) TestDictionaryWordsWhenUnset() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSolveRoundTrip() {
	solve := &model.SolveRecord{
		ID:        "abc",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Grid:      [][]string{{"c", "a"}, {"a", "t"}},
		Words: []model.Word{
			{Text: "cat", Path: []model.Position{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 1, Row: 1}}},
		},
	}
	s.Require().NoError(s.storage.SaveSolve(s.ctx, solve))

	got, err := s.storage.GetSolve(s.ctx, "abc")
	s.Require().NoError(err)
	s.Equal(solve, got)
}

func (s *StorageSuite) TestGetSolveNotFound() {
	_, err := s.storage.GetSolve(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSolveNotFound)
}

func (s *StorageSuite) TestSolvesHaveTTL() {
	s.Require().NoError(s.storage.SaveSolve(s.ctx, &model.SolveRecord{ID: "ttl"}))
	s.Greater(s.mini.TTL(solveKey("ttl")), time.Duration(0))
}

func (s *StorageSuite) TestListSolvesNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []model.SolveID{"first", "second", "third"} {
		s.Require().NoError(s.storage.SaveSolve(s.ctx, &model.SolveRecord{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	solves, err := s.storage.ListSolves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(solves, 3)
	s.Equal(model.SolveID("third"), solves[0].ID)
}

func (s *StorageSuite) TestListSolvesPrunesExpired() {
	s.Require().NoError(s.storage.SaveSolve(s.ctx, &model.SolveRecord{ID: "keep"}))
	s.Require().NoError(s.storage.SaveSolve(s.ctx, &model.SolveRecord{ID: "expire"}))

	// Simulate TTL expiry of one record
	s.mini.Del(solveKey("expire"))

	solves, err := s.storage.ListSolves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(solves, 1)
	s.Equal(model.SolveID("keep"), solves[0].ID)

	// The stale index entry is gone
	s.False(s.mini.Exists(solveKey("expire")))
	members, err := s.mini.SMembers(solveIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{"keep"}, members)
}

func (s *StorageSuite) TestDeleteSolve() {
	s.Require().NoError(s.storage.SaveSolve(s.ctx, &model.SolveRecord{ID: "gone"}))
	s.Require().NoError(s.storage.DeleteSolve(s.ctx, "gone"))

	_, err := s.storage.GetSolve(s.ctx, "gone")
	s.ErrorIs(err, model.ErrSolveNotFound)
}
