package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gridhunt/gridhunt/internal/api"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local solve API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			if err := app.DictionaryService.LoadFromFile(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:            logger,
				DictionaryService: app.DictionaryService,
				SolverService:     app.SolverService,
				Storage:           app.Storage,
			})

			serverCfg := api.DefaultServerConfig()
			serverCfg.Port = cfg.ListenPort
			server := api.NewServer(router, serverCfg, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				if err := server.Shutdown(context.Background()); err != nil {
					return err
				}
			}

			logger.Info("server stopped", slog.String("addr", server.Addr()))
			return nil
		},
	}
}
