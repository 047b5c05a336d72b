package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/espalier-ui/espalier"
	fileadapter "github.com/espalier-ui/espalier/internal/adapters/file"
	htmladapter "github.com/espalier-ui/espalier/internal/adapters/html"
	httpadapter "github.com/espalier-ui/espalier/internal/adapters/http"
	redisadapter "github.com/espalier-ui/espalier/internal/adapters/redis"
	"github.com/espalier-ui/espalier/internal/cli"
	"github.com/espalier-ui/espalier/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP transformation server",
	Long:  `Starts the transformation pipeline in server mode, exposing a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") {
			cfg.Listen, _ = cmd.Flags().GetString("listen")
		}

		logger := cli.NewLogger(debug, cfg.LogJSON)

		var cache ports.TransformCache
		switch {
		case cfg.Redis.Addr != "":
			opts := []redisadapter.Option{redisadapter.WithTTL(cfg.Redis.TTL)}
			if cfg.Redis.Prefix != "" {
				opts = append(opts, redisadapter.WithPrefix(cfg.Redis.Prefix))
			}
			cache = redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
			logger.Info("Transform cache enabled (redis)", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		case cfg.CacheDir != "":
			cache = fileadapter.New(cfg.CacheDir)
			logger.Info("Transform cache enabled (filesystem)", "dir", cfg.CacheDir)
		}

		codec := htmladapter.NewCodec()
		serverOpts := []httpadapter.Option{
			httpadapter.WithVersion(espalier.Version),
			httpadapter.WithLogger(logger),
		}
		if cache != nil {
			serverOpts = append(serverOpts, httpadapter.WithCache(cache))
		}
		server := httpadapter.NewServer(codec, codec, cfg.Transform, serverOpts...)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Espalier Server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("Espalier Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
}
