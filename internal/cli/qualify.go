package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var qualifyCmd = &cobra.Command{
	Use:   "qualify [resume-file] [jobs-file]",
	Short: "Check which jobs a resume qualifies for",
	Long: `Check one resume against one or more jobs and summarise each outcome:
match percentage and tier, up to three missing requirements, up to three
strengths and application suggestions.

The jobs file holds a single JSON/YAML listing or a list of them. Jobs without
an id are numbered job-1, job-2 ... in file order.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &qualifyConfig)
	},
	RunE: runQualify,
}

var qualifyConfig common.CommandConfig

func init() {
	addOutputFlags(qualifyCmd, &qualifyConfig)
}

type qualifyInput struct {
	resume string
	jobs   []types.JobListing
}

func runQualify(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	loadInput := func(fp *common.FileProcessor, args []string) (qualifyInput, error) {
		resume, err := fp.ReadDocument(args[0])
		if err != nil {
			return qualifyInput{}, err
		}
		jobs, err := fp.ReadJobListings(args[1])
		if err != nil {
			return qualifyInput{}, err
		}
		return qualifyInput{resume: resume, jobs: jobs}, nil
	}

	logDetails := func(input qualifyInput, cfg common.CommandConfig) {
		logger.Info("Starting qualification check",
			"resume_chars", len(input.resume),
			"jobs", len(input.jobs),
			"output_format", cfg.OutputFormat)
	}

	// A single job prints one summary, several print a map keyed by job ID
	qualifyOperation := func(ctx context.Context, input qualifyInput) (any, error) {
		if len(input.jobs) == 1 {
			return toolkit.Qualify(ctx, input.resume, &input.jobs[0]), nil
		}
		return toolkit.QualifyMany(ctx, input.resume, input.jobs)
	}

	if err := common.RunCommand(cmd.Context(), logger, qualifyConfig, args, loadInput, qualifyOperation, logDetails); err != nil {
		return fmt.Errorf("failed to check qualifications: %w", err)
	}
	return nil
}
