package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type WriteSuite struct {
	suite.Suite
}

func TestWriteSuite(t *testing.T) {
	suite.Run(t, new(WriteSuite))
}

func (s *WriteSuite) TestJSON() {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"count": 3})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.JSONEq(`{"count":3}`, rec.Body.String())
}

func (s *WriteSuite) TestJSONMarshalFailureIsCleanError() {
	rec := httptest.NewRecorder()
	// channels cannot be marshaled
	JSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *WriteSuite) TestNoContent() {
	rec := httptest.NewRecorder()
	NoContent(rec)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}
