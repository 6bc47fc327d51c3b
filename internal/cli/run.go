package cli

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/gridhunt/gridhunt/internal/capture"
	"github.com/gridhunt/gridhunt/internal/game"
	"github.com/gridhunt/gridhunt/internal/pointer"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Play one automated round against the live game",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			if err := app.DictionaryService.LoadFromFile(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			addr := fmt.Sprintf("%s:%d", cfg.PointerHost, cfg.PointerPort)
			ptr, err := pointer.Dial(cmd.Context(), addr, logger)
			if err != nil {
				return err
			}
			defer ptr.Close()

			if err := ptr.Normalize(); err != nil {
				return err
			}

			window := image.Rect(
				cfg.WindowX, cfg.WindowY,
				cfg.WindowX+cfg.ScreenWidth, cfg.WindowY+cfg.ScreenHeight,
			)

			session := game.NewSession(
				game.Config{Window: window},
				ptr,
				app.ClassifierService,
				app.SolverService,
				app.MotionMapper,
				capture.Screen,
				logger,
			)

			return session.Run(cmd.Context())
		},
	}
}
