package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dreamware/swatch/internal/render"
	"github.com/dreamware/swatch/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the swatch web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", ":8080", "address to listen on")
	cmd.Flags().String("templates", "", "directory with index.html, color_block.html and message.html (default: embedded)")
	bindFlag(a.v, "addr", cmd.Flags(), "addr")
	bindFlag(a.v, "templates.dir", cmd.Flags(), "templates")

	return cmd
}

// runServe runs the server until ctx is cancelled or SIGINT/SIGTERM arrives,
// then shuts it down within the configured timeout.
func (a *app) runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	renderer, err := render.New(a.cfg.Templates.Dir)
	if err != nil {
		return err
	}
	srv := web.NewServer(a.cfg.Addr, renderer, a.logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serverErr:
		if err != nil {
			a.logger.Error("server error", "error", err)
		}
		return err
	case sig := <-stop:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("error during shutdown", "error", err)
		return err
	}
	return <-serverErr
}
