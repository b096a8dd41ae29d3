package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/thumbor-tools-mcp/internal/logging"
	"github.com/ironsheep/thumbor-tools-mcp/internal/transport"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the URL, srcset and img builders over HTTP",
		Long: `serve starts an HTTP API:

  POST /api/v1/url          {"src": ..., "options": {...}}  -> {"url": ...}
  POST /api/v1/srcset       adds "breakpoints"              -> {"src", "srcset", "candidates"}
  POST /api/v1/img          adds "lazy", "attributes"       -> text/html
  GET  /api/v1/breakpoints  configured ladder
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.HTTP.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (default: http.port)")
	return cmd
}

// serve runs the HTTP API until ctx is cancelled, then drains connections.
func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	gin.SetMode(cfg.HTTP.Mode)

	handler := transport.NewImageHandler(a.renderer, cfg.Lazy)
	router := transport.InitRoutes(handler, log.Logger, cfg.HTTP.RequestTimeout)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	logging.Startup(log.Logger, "thumbor serve", Version, map[string]string{
		"addr":      srv.Addr,
		"mode":      cfg.HTTP.Mode,
		"serverURL": cfg.ServerURL,
		"signed":    strconv.FormatBool(cfg.SecurityKey != ""),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
