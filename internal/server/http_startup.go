package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"searchfind/internal/ai"
	"searchfind/internal/common"
	"searchfind/internal/config"
	"searchfind/internal/observability"
)

const defaultShutdownTimeout = 30 * time.Second

// Start builds the analysis components and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	if err := s.initialize(om); err != nil {
		return err
	}
	defer s.closeAIService()

	if err := s.startWatchers(); err != nil {
		return err
	}
	defer s.stopWatchers()

	httpServer := s.setupHTTPServer()

	s.displayServerInfo()

	return s.startWithGracefulShutdown(ctx, httpServer)
}

// initializeObservability sets up observability components
func (s *Server) initializeObservability() (*observability.Manager, error) {
	om, err := observability.NewManager(s.AppConfig.Observability, s.Version,
		observability.WithLogger(s.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	return om, nil
}

// shutdownObservability handles observability cleanup
func (s *Server) shutdownObservability(om *observability.Manager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown observability")
	}
}

// initialize loads the catalog and builds the toolkit the handlers serve from
func (s *Server) initialize(om *observability.Manager) error {
	s.obs = om

	if s.AppConfig.Interview.UseAI && s.aiService == nil {
		service, err := ai.NewService(&s.AppConfig.AI, s.Logger, ai.WithObservability(om))
		if err != nil {
			return err
		}
		s.aiService = service
	}

	cat, err := common.LoadCatalog(s.AppConfig.Catalog.Path)
	if err != nil {
		return err
	}
	s.toolkit.Store(s.buildToolkit(cat))
	s.Logger.Info("Reference catalog loaded",
		"path", s.AppConfig.Catalog.Path,
		"skills", cat.Stats().Skills)
	return nil
}

func (s *Server) toolkitOptions() common.ToolkitOptions {
	opts := common.ToolkitOptions{
		Logger:        s.Logger,
		Observability: s.obs,
	}
	if s.aiService != nil {
		opts.Provider = s.aiService
	}
	return opts
}

// closeAIService releases the AI provider, if one was created
func (s *Server) closeAIService() {
	if s.aiService == nil {
		return
	}
	if err := s.aiService.Close(); err != nil {
		s.Logger.LogError(err, "Failed to close AI service")
	}
}

// startWatchers starts catalog hot reload and Vault key rotation when configured
func (s *Server) startWatchers() error {
	if s.AppConfig.Catalog.Watch && s.AppConfig.Catalog.Path != "" {
		watcher, err := NewCatalogWatcher(s.AppConfig.Catalog.Path, s.reloadCatalog, s.Logger)
		if err != nil {
			return fmt.Errorf("failed to create catalog watcher: %w", err)
		}
		if s.AppConfig.Catalog.DebounceDelay > 0 {
			watcher.SetDebounceDelay(s.AppConfig.Catalog.DebounceDelay)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start catalog watcher: %w", err)
		}
		s.catalogWatcher = watcher
	}

	vault := s.AppConfig.Vault
	if vault.Enabled && vault.PollInterval > 0 && vault.Secrets.APIKeys != "" {
		client, err := config.NewVaultClient(vault, s.Logger)
		if err != nil {
			return fmt.Errorf("failed to create vault client: %w", err)
		}
		watcher := NewVaultWatcher(client, vault.Secrets.APIKeys, vault.PollInterval, s.rotateAPIKeys, s.Logger)
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start vault watcher: %w", err)
		}
		s.vaultWatcher = watcher
	}
	return nil
}

// stopWatchers stops any running watchers
func (s *Server) stopWatchers() {
	if s.catalogWatcher != nil {
		if err := s.catalogWatcher.Stop(); err != nil {
			s.Logger.LogError(err, "Failed to stop catalog watcher")
		}
	}
	if s.vaultWatcher != nil {
		if err := s.vaultWatcher.Stop(); err != nil {
			s.Logger.LogError(err, "Failed to stop vault watcher")
		}
	}
}

// setupHTTPServer creates and configures the HTTP server
func (s *Server) setupHTTPServer() *http.Server {
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}
}

// startWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func (s *Server) startWithGracefulShutdown(ctx context.Context, server *http.Server) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		s.Logger.Info("Starting HTTP server",
			"address", server.Addr,
			"tls_enabled", s.TLSConfig.Enabled())

		var err error
		if s.TLSConfig.Enabled() {
			err = server.ListenAndServeTLS(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either cancellation or a server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.Logger.Info("Received shutdown signal, starting graceful shutdown")
		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown handles the graceful shutdown process
func (s *Server) performGracefulShutdown(server *http.Server) error {
	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Clean up rate limiter if enabled
	s.cleanupRateLimiter()

	// Attempt graceful shutdown of HTTP server
	s.Logger.Info("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown server gracefully, forcing close")
		return server.Close()
	}

	s.Logger.Info("Server shutdown completed successfully")
	return nil
}

// cleanupRateLimiter cleans up the rate limiter resources
func (s *Server) cleanupRateLimiter() {
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
		s.Logger.Info("Rate limiter cleaned up")
	}
}
