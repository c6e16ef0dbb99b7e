package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"roomescape/cmd/bootstrap"
	"roomescape/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const migrateTimeout = 2 * time.Minute

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "roomescape",
		Short:         "Room escape reservation API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand starts the server.
		RunE: serve.RunE,
	}
	root.AddCommand(serve)
	root.AddCommand(newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(func() *gin.Engine {
					return gin.New()
				}),
				fx.Invoke(bootstrap.StartServer),
			)

			if err := app.Start(context.Background()); err != nil {
				return fmt.Errorf("failed to start application: %w", err)
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application cleanly", "error", err)
			}

			slog.Info("application stopped")
			return nil
		},
	}
}

func newMigrateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Migration.Dir = dir
			}

			absDir, err := filepath.Abs(cfg.Migration.Dir)
			if err != nil {
				return fmt.Errorf("failed to resolve migrations dir: %w", err)
			}

			client, err := atlasexec.NewClient(absDir, cfg.Migration.AtlasPath)
			if err != nil {
				return fmt.Errorf("failed to create atlas client: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
				URL:    cfg.DB.BuildDSN(),
				DirURL: "file://" + absDir,
			})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			slog.Info("migrations applied", "count", len(res.Applied), "dir", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (overrides MIGRATIONS_DIR)")
	return cmd
}
