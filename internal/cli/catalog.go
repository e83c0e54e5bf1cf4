package cli

import (
	"context"
	"fmt"

	"searchfind/internal/catalog"
	"searchfind/internal/common"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the reference catalog in use",
	Long: `Show how many skills, job titles, industries, stopwords and entity patterns
the reference catalog holds. With --catalog the built-in catalog is extended
by the given YAML file; set "replace: true" in that file to replace it instead.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &catalogConfig)
	},
	RunE: runCatalog,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Write the effective catalog as YAML",
	Long: `Write the effective catalog (built-in data merged with --catalog) as YAML.
The output is a valid --catalog file and a starting point for customisation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogExport,
}

var catalogConfig common.CommandConfig

func init() {
	addOutputFlags(catalogCmd, &catalogConfig)
	catalogCmd.AddCommand(catalogExportCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	loadInput := func(_ *common.FileProcessor, _ []string) (*catalog.Catalog, error) {
		return common.LoadCatalog(cfg.Catalog.Path)
	}

	statsOperation := func(_ context.Context, c *catalog.Catalog) (catalog.Stats, error) {
		return c.Stats(), nil
	}

	if err := common.RunCommand(cmd.Context(), logger, catalogConfig, args, loadInput, statsOperation, nil); err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	c, err := common.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	raw, err := catalog.Marshal(c.Data())
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if len(args) == 0 {
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	}
	fp := common.NewFileProcessor(cfg.App.MaxFileSize, logger)
	if err := fp.WriteFile(args[0], string(raw)); err != nil {
		return err
	}
	logger.Info("Catalog exported", "file", args[0], "skills", c.Stats().Skills)
	return nil
}
