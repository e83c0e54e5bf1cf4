package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-file]",
	Short: "Score how well a resume fits a job",
	Long: `Score a resume against a job on skills, experience, education, job title
and location, combine them into an overall score and tier, and list
recommendations for the gaps.

The job file is a JSON or YAML listing (title, description, requirements,
skillsRequired, location ...) or a plain document whose first line is the title.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &matchConfig)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	addOutputFlags(matchCmd, &matchConfig)
}

// resumeJobInput is the input of the commands that compare one resume with one job
type resumeJobInput struct {
	resume string
	job    *types.JobListing
}

func loadResumeAndJob(fp *common.FileProcessor, args []string) (resumeJobInput, error) {
	if len(args) != 2 {
		return resumeJobInput{}, fmt.Errorf("expected 2 file paths, got %d", len(args))
	}
	resume, err := fp.ReadDocument(args[0])
	if err != nil {
		return resumeJobInput{}, err
	}
	job, err := fp.ReadJobListing(args[1])
	if err != nil {
		return resumeJobInput{}, err
	}
	return resumeJobInput{resume: resume, job: job}, nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	logDetails := func(input resumeJobInput, cfg common.CommandConfig) {
		logger.Info("Starting match",
			"resume_chars", len(input.resume),
			"job_title", input.job.Title,
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input resumeJobInput) (types.MatchResult, error) {
		return toolkit.Match(ctx, input.resume, input.job)
	}

	if err := common.RunCommand(cmd.Context(), logger, matchConfig, args, loadResumeAndJob, matchOperation, logDetails); err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Match completed successfully")
	return nil
}
