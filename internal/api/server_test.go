package api

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ServerSuite struct {
	suite.Suite
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) TestDefaultConfigBindsLoopback() {
	cfg := DefaultServerConfig()
	s.Equal("127.0.0.1", cfg.Host)
	s.Equal(8080, cfg.Port)
	s.Greater(cfg.ShutdownTimeout, time.Duration(0))
}

func (s *ServerSuite) TestAddr() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := DefaultServerConfig()
	cfg.Port = 9191

	server := NewServer(http.NotFoundHandler(), cfg, logger)
	s.Equal("127.0.0.1:9191", server.Addr())
}
