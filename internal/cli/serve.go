package cli

import (
	"github.com/spf13/cobra"

	"searchfind/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP matching API",
	Long: `Start an HTTP server exposing the matching operations as JSON endpoints.

Available endpoints:
- POST /extract, /validate: Document extraction and classification
- POST /match, /rank, /suggest, /qualify: Resume to job matching
- POST /interview, /interview/guidance: Interview preparation
- GET /health: Health check including catalog and AI model status
- GET /stats: Server statistics and rate limiting info

Set server.tls.certFile and server.tls.keyFile to serve HTTPS. With
--watch, edits to the --catalog file are picked up without a restart.`,
	RunE: runServe,
}

var serveFlags struct {
	port  string
	host  string
	watch bool
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.port, "port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveFlags.host, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().BoolVar(&serveFlags.watch, "watch", false, "Reload the catalog file when it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	if serveFlags.port != "" {
		cfg.Server.Port = serveFlags.port
	}
	if serveFlags.host != "" {
		cfg.Server.Host = serveFlags.host
	}
	if serveFlags.watch {
		cfg.Catalog.Watch = true
	}

	srv := server.NewServer(cfg, server.ServerConfigFrom(cfg, Version), logger)
	return srv.Start(cmd.Context())
}
