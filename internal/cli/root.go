package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridhunt/gridhunt/internal/config"
	"github.com/gridhunt/gridhunt/internal/factory"
	redisstorage "github.com/gridhunt/gridhunt/internal/storage/redis"
)

var (
	cfg     config.Config
	logger  *slog.Logger
	verbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = config.Load()

	rootCmd := &cobra.Command{
		Use:   "gridhunt",
		Short: "Automated solver for grid word-hunt puzzles",
		Long: `gridhunt reads a letter board from a mirrored device window, finds
every dictionary word reachable by a path of adjacent tiles, and traces
the words in-game through a networked pointer server.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}

	// Global flags (env: GRIDHUNT_*)
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "Word list file")
	rootCmd.PersistentFlags().StringVar(&cfg.GlyphDir, "glyphs", cfg.GlyphDir, "Reference glyph directory")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (storage=redis)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newEvalCmd())

	return rootCmd
}

// buildApp wires the application from the effective config
func buildApp() (*factory.App, error) {
	fcfg := factory.Config{
		GlyphDir:    cfg.GlyphDir,
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		fcfg.RedisConfig = &redisCfg
	}

	return factory.New(fcfg)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
