package cli

import (
	"context"
	"fmt"

	"searchfind/internal/ai"
	"searchfind/internal/common"
	"searchfind/internal/config"
	"searchfind/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var (
	configFile  string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "searchfind",
	Short: "Match resumes to jobs and explain the result",
	Long: `SearchFind extracts skills, experience, education and location from resumes
and job descriptions, scores how well a candidate fits a job, ranks candidates,
and produces improvement suggestions and interview questions. All analysis is
rule based and runs locally; AI is only used to add interview questions when
interview.useAI is enabled.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadRuntime reads the configuration and attaches it and the logger to the
// command context, making them available to all subcommands
func loadRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	logger, err := errors.New(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := config.ApplyVaultSecrets(cfg, logger); err != nil {
		return fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	logger.Debug("Starting searchfind",
		"version", Version,
		"command", cmd.Name(),
		"log_level", cfg.App.LogLevel,
		"catalog", cfg.Catalog.Path)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	cmd.SetContext(ctx)
	return nil
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// addOutputFlags registers the output flags shared by every analysis command
func addOutputFlags(cmd *cobra.Command, cc *common.CommandConfig) {
	cmd.Flags().StringVarP(&cc.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&cc.OutputFormat, "format", "f", "", "Output format: json, yaml, text, or markdown")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.OutputFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// prepareOutput applies the configured defaults and validates the format
func prepareOutput(cmd *cobra.Command, cc *common.CommandConfig) error {
	cfg := getConfigFromContext(cmd.Context())
	// Apply default format if not specified
	if cc.OutputFormat == "" {
		cc.OutputFormat = cfg.App.DefaultFormat
	}
	cc.MaxFileSize = cfg.App.MaxFileSize
	return common.ValidateOutputFormat(cc.OutputFormat, cfg.App.SupportedFormats)
}

// newToolkit builds the analysis components for one CLI invocation. The
// returned function releases the AI client, if one was created.
func newToolkit(cmd *cobra.Command) (*common.Toolkit, func(), error) {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	cat, err := common.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}

	fp := common.NewFileProcessor(cfg.App.MaxFileSize, logger)
	opts := common.ToolkitOptions{
		Logger: logger,
		Loader: fp.ReadDocument,
	}

	release := func() {}
	if cfg.Interview.UseAI {
		service, err := ai.NewService(&cfg.AI, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create AI service: %w", err)
		}
		opts.Provider = service
		release = func() {
			if err := service.Close(); err != nil {
				logger.Warn("Failed to close AI service", "error", err.Error())
			}
		}
	}

	return common.NewToolkit(cat, cfg, opts), release, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./config.yaml, $HOME/.searchfind/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML file extending the built-in skill catalog")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(qualifyCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
