package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [resume-file] [job-file]",
	Short: "Suggest resume improvements for a job",
	Long: `Match a resume against a job and turn the gaps into prioritised
suggestions: critical, important, recommended, formatting and long term.
Also reports ATS compatibility, missing keywords and, for weaker matches,
a focused resume outline.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &suggestConfig)
	},
	RunE: runSuggest,
}

var suggestConfig common.CommandConfig

func init() {
	addOutputFlags(suggestCmd, &suggestConfig)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	logDetails := func(input resumeJobInput, cfg common.CommandConfig) {
		logger.Info("Starting suggestion generation",
			"resume_chars", len(input.resume),
			"job_title", input.job.Title,
			"output_format", cfg.OutputFormat)
	}

	suggestOperation := func(ctx context.Context, input resumeJobInput) (types.SuggestionReport, error) {
		return toolkit.Suggest(ctx, input.resume, input.job)
	}

	if err := common.RunCommand(cmd.Context(), logger, suggestConfig, args, loadResumeAndJob, suggestOperation, logDetails); err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}
	return nil
}
