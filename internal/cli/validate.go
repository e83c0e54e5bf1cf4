package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [document-file]",
	Short: "Detect the document type and check resume completeness",
	Long: `Classify a document as resume, cover letter, job description or other,
report the confidence, and for resumes list missing essential sections and
the completeness score. Documents under 20 words are rejected as empty.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &validateConfig)
	},
	RunE: runValidate,
}

var validateConfig common.CommandConfig

func init() {
	addOutputFlags(validateCmd, &validateConfig)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	loadInput := func(fp *common.FileProcessor, args []string) (string, error) {
		return fp.ReadDocument(args[0])
	}

	logDetails := func(text string, cfg common.CommandConfig) {
		logger.Info("Starting document validation",
			"chars", len(text),
			"output_format", cfg.OutputFormat)
	}

	validateOperation := func(ctx context.Context, text string) (types.ValidationResult, error) {
		return toolkit.Validate(ctx, text), nil
	}

	if err := common.RunCommand(cmd.Context(), logger, validateConfig, args, loadInput, validateOperation, logDetails); err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	return nil
}
