package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gridhunt/gridhunt/internal/services/classifier"
	"github.com/gridhunt/gridhunt/internal/services/dictionary"
	"github.com/gridhunt/gridhunt/internal/services/motion"
	"github.com/gridhunt/gridhunt/internal/services/solver"
	"github.com/gridhunt/gridhunt/internal/storage"
	"github.com/gridhunt/gridhunt/internal/storage/memory"
	redisstorage "github.com/gridhunt/gridhunt/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	DictionaryService *dictionary.Service
	SolverService     *solver.Service
	ClassifierService *classifier.Service
	MotionMapper      *motion.Mapper
}

// Config holds configuration for the application factory
type Config struct {
	// GlyphDir is the reference glyph directory (optional; without it
	// the classifier has an empty catalog and only pre-classified
	// grids can be solved)
	GlyphDir string
	// MotionConfig overrides the grid screen geometry (optional)
	MotionConfig *motion.Config
	// Logger is the application logger (optional)
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisConfig holds Redis settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var catalog *classifier.Catalog
	if cfg.GlyphDir != "" {
		catalog = classifier.LoadCatalog(cfg.GlyphDir, logger)
	} else {
		catalog = classifier.NewCatalog(nil)
	}

	motionCfg := motion.DefaultConfig()
	if cfg.MotionConfig != nil {
		motionCfg = *cfg.MotionConfig
	}

	dictService := dictionary.New(store, logger)

	return &App{
		Storage:           store,
		DictionaryService: dictService,
		SolverService:     solver.New(dictService),
		ClassifierService: classifier.New(catalog),
		MotionMapper:      motion.New(motionCfg),
	}, nil
}
