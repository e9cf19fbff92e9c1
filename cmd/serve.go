package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindweave/internal/chat"
	"github.com/abhisek/mindweave/internal/llm"
	"github.com/abhisek/mindweave/internal/mapgen"
	"github.com/abhisek/mindweave/internal/questions"
	"github.com/abhisek/mindweave/internal/server"
	"github.com/abhisek/mindweave/internal/session"
	"github.com/abhisek/mindweave/internal/store"
)

const (
	defaultAddr     = ":8000"
	purgeInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MINDWEAVE_ADDR, default :8000)")
	serveCmd.Flags().String("origins", "", "Comma-separated CORS origin whitelist (overrides MINDWEAVE_ORIGINS, default all)")
	serveCmd.Flags().Duration("session-ttl", 24*time.Hour, "Idle time before a session is expired")
}

// runServe builds the full dependency graph and serves until
// interrupted. Also the root command's action, so flag lookups fall
// back to env and defaults when the serve flags are absent.
func runServe(cmd *cobra.Command) error {
	// Missing .env is fine; real deployments use the environment.
	_ = godotenv.Load()

	log := newLogger(os.Getenv("MINDWEAVE_LOG_LEVEL"), os.Getenv("MINDWEAVE_LOG_FORMAT"), os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	log.Info("llm provider ready", "model", provider.ModelID())

	sessions := session.NewMemoryStore()
	srv := server.New(
		sessions,
		questions.New(provider, questions.DefaultConfig()),
		mapgen.New(provider, mapgen.DefaultConfig()),
		chat.New(provider, chat.DefaultConfig()),
		server.Options{
			AllowedOrigins: allowedOrigins(cmd),
			EventRepo:      eventRepo,
			Logger:         log,
		},
	)

	sessionTTL := 24 * time.Hour
	if f := cmd.Flags().Lookup("session-ttl"); f != nil {
		sessionTTL, _ = cmd.Flags().GetDuration("session-ttl")
	}
	go srv.PurgeIdleLoop(ctx, purgeInterval, sessionTTL)

	httpSrv := &http.Server{
		Addr:              listenAddr(cmd),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpSrv.Addr, "db", dbPath)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func listenAddr(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if a := os.Getenv("MINDWEAVE_ADDR"); a != "" {
		return a
	}
	// PORT alone is common on PaaS deployments.
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return defaultAddr
}

func allowedOrigins(cmd *cobra.Command) []string {
	raw := ""
	if f := cmd.Flags().Lookup("origins"); f != nil {
		raw = f.Value.String()
	}
	if raw == "" {
		raw = os.Getenv("MINDWEAVE_ORIGINS")
	}
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
