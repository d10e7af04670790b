package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"reel.dev/internal/handlers"
	"reel.dev/internal/services"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the project API and the built site",
		Long: `serve loads the content file and serves the normalized projects under
/api next to the built site directory, both below the configured path prefix.
With --watch the content file is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, watch)
		},
	}
	cmd.Flags().String("addr", "", "address to listen on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload content when the file changes")
	a.bind("server_addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) runServe(ctx context.Context, watch bool) error {
	projectService, err := services.NewProjectService(a.fs, a.cfg.ContentPath, a.log)
	if err != nil {
		return err
	}

	if watch {
		watcher := services.NewContentWatcher(a.cfg.ContentPath, projectService, a.log)
		if err := watcher.Start(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              a.cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(a.cfg, projectService, a.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("serving", "addr", a.cfg.ServerAddr, "prefix", a.cfg.PathPrefix, "site", a.cfg.SiteDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
