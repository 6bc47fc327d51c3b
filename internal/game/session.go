package game

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/gridhunt/gridhunt/internal/capture"
	"github.com/gridhunt/gridhunt/internal/model"
	"github.com/gridhunt/gridhunt/internal/pointer"
	"github.com/gridhunt/gridhunt/internal/services/classifier"
	"github.com/gridhunt/gridhunt/internal/services/motion"
	"github.com/gridhunt/gridhunt/internal/services/solver"
)

// startButton is the absolute pointer position of the in-game start
// button at the reference window size
var startButton = pointer.Point{X: 70, Y: 245}

const (
	// gridSize is the board dimension of the target game
	gridSize = 4

	settleDelay = 50 * time.Millisecond
	boardDelay  = 1 * time.Second
	wordDelay   = 100 * time.Millisecond
)

// Config holds per-session settings
type Config struct {
	// Window is the screen region of the game window
	Window image.Rectangle
}

// Session runs one automated round: start the game, read the board,
// solve it, and trace every found word with the pointer.
type Session struct {
	cfg        Config
	logger     *slog.Logger
	pointer    *pointer.Client
	classifier *classifier.Service
	solver     *solver.Service
	mapper     *motion.Mapper
	frame      capture.Frame
}

// NewSession creates a game session
func NewSession(
	cfg Config,
	ptr *pointer.Client,
	cls *classifier.Service,
	slv *solver.Service,
	mapper *motion.Mapper,
	frame capture.Frame,
	logger *slog.Logger,
) *Session {
	return &Session{
		cfg:        cfg,
		logger:     logger,
		pointer:    ptr,
		classifier: cls,
		solver:     slv,
		mapper:     mapper,
		frame:      frame,
	}
}

// Run plays one full round
func (s *Session) Run(ctx context.Context) error {
	if err := s.pointer.MoveAbsolute(startButton, true); err != nil {
		return err
	}
	time.Sleep(settleDelay)

	if err := s.pointer.Click(); err != nil {
		return err
	}
	time.Sleep(settleDelay)

	// Park the pointer so it isn't blocking the board
	if err := s.pointer.Normalize(); err != nil {
		return err
	}
	time.Sleep(boardDelay)

	grid, err := s.ReadBoard()
	if err != nil {
		return err
	}

	words := s.solver.FindAllWords(grid)
	s.logger.Info("board solved",
		slog.Int("words", len(words)))

	return s.traceWords(ctx, words)
}

// ReadBoard captures the window and classifies the board into a grid
func (s *Session) ReadBoard() (*model.Grid, error) {
	img, err := s.frame(s.cfg.Window)
	if err != nil {
		return nil, err
	}
	return ReadBoardImage(img, s.classifier)
}

// ReadBoardImage classifies a full-window frame into a character grid.
// Exposed separately so saved screenshots can be solved offline.
func ReadBoardImage(frame image.Image, cls *classifier.Service) (*model.Grid, error) {
	board := capture.CropBoard(capture.Binarize(frame))
	tiles := capture.SplitTiles(board, gridSize, gridSize)
	return cls.ClassifyGrid(tiles)
}

// traceWords drags the pointer through each word's tile path,
// re-anchoring at the grid origin before every word
func (s *Session) traceWords(ctx context.Context, words []model.Word) error {
	ox, oy := s.mapper.Origin()
	anchor := pointer.Point{X: int32(ox), Y: int32(oy)}

	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.logger.Info("tracing word", slog.String("word", word.Text))

		if err := s.pointer.MoveAbsolute(anchor, true); err != nil {
			return err
		}
		time.Sleep(settleDelay)

		deltas := s.mapper.PathToDeltas(word.Path)
		points := make([]pointer.Point, len(deltas))
		for i, d := range deltas {
			points[i] = pointer.Point{X: int32(d.DX), Y: int32(d.DY)}
		}

		if err := s.pointer.MoveGroup(points); err != nil {
			return err
		}
		time.Sleep(wordDelay)
	}

	s.logger.Info("round complete", slog.Int("words", len(words)))
	return nil
}
