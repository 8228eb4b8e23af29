package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelgrid/overlaykit/internal/server"
	"github.com/pixelgrid/overlaykit/pkg/cache"
	"github.com/pixelgrid/overlaykit/pkg/profile"
)

// shutdownTimeout bounds graceful shutdown after the context is canceled.
const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string // listen address
	cacheBackend string // plan cache backend: memory, file, redis, or none
	redisAddr    string // redis address when --cache=redis
	storeBackend string // profile store backend: file, mongo, or none
	profileDir   string // profile directory when --store=file
	mongoURI     string // connection string when --store=mongo
}

// serveCommand creates the serve command for running the HTTP placement
// service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:         ":8080",
		cacheBackend: "memory",
		storeBackend: "file",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP placement service",
		Long: `Serve placement and plan computation over HTTP, with optional profile
storage and plan caching backends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServer(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", opts.cacheBackend, "plan cache backend: memory, file, redis, or none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address (host:port) for --cache=redis")
	cmd.Flags().StringVar(&opts.storeBackend, "store", opts.storeBackend, "profile store backend: file, mongo, or none")
	cmd.Flags().StringVar(&opts.profileDir, "profile-dir", "", "profile directory for --store=file (default ~/.config/overlaykit/profiles)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string for --store=mongo")

	return cmd
}

func (c *CLI) runServer(ctx context.Context, opts serveOpts) error {
	planCache, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer planCache.Close()

	store, err := newServeStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	if store != nil {
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				c.Logger.Warn("Failed to close profile store", "error", err)
			}
		}()
	}

	srv := server.New(server.Config{
		Logger: c.Logger,
		Cache:  planCache,
		Store:  store,
	})
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	c.Logger.Info("Placement service listening", "addr", opts.addr, "cache", opts.cacheBackend, "store", opts.storeBackend)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.cacheBackend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (expected memory, file, redis, or none)", opts.cacheBackend)
	}
}

func newServeStore(ctx context.Context, opts serveOpts) (profile.Store, error) {
	switch opts.storeBackend {
	case "file":
		return profile.NewFileStore(opts.profileDir)
	case "mongo":
		return profile.NewMongoStore(ctx, profile.MongoConfig{URI: opts.mongoURI})
	case "none":
		// The server disables the profile routes without a store.
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected file, mongo, or none)", opts.storeBackend)
	}
}
