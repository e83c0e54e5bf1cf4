package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/interview"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [job-file] [resume-file]",
	Short: "Generate interview questions for a job",
	Long: `Generate technical, behavioral and company questions for a job from the
built-in templates. With a resume the questions mention the candidate's own
skills and previous roles. The same job, resume and interview.seed always
produce the same questions.

When interview.useAI is enabled, additional questions are requested from the
configured Gemini model; if that fails the template questions are still returned.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &interviewConfig)
	},
	RunE: runInterview,
}

var guidanceCmd = &cobra.Command{
	Use:   "guidance [question-type] [question]",
	Short: "Show how to answer a kind of interview question",
	Long: `Show an answer framework (STAR for behavioral questions), tips and dos and
don'ts for a question type: technical, behavioral, company or difficult.
Passing the question itself adds tips specific to it.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &guidanceConfig)
	},
	RunE: runGuidance,
}

var (
	interviewConfig common.CommandConfig
	guidanceConfig  common.CommandConfig
)

func init() {
	addOutputFlags(interviewCmd, &interviewConfig)
	addOutputFlags(guidanceCmd, &guidanceConfig)
	interviewCmd.AddCommand(guidanceCmd)
}

type interviewInput struct {
	job    *types.JobListing
	resume string
}

func runInterview(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	loadInput := func(fp *common.FileProcessor, args []string) (interviewInput, error) {
		job, err := fp.ReadJobListing(args[0])
		if err != nil {
			return interviewInput{}, err
		}
		input := interviewInput{job: job}
		if len(args) > 1 {
			if input.resume, err = fp.ReadDocument(args[1]); err != nil {
				return interviewInput{}, err
			}
		}
		return input, nil
	}

	logDetails := func(input interviewInput, cfg common.CommandConfig) {
		logger.Info("Starting interview question generation",
			"job_title", input.job.Title,
			"personalised", input.resume != "",
			"output_format", cfg.OutputFormat)
	}

	interviewOperation := func(ctx context.Context, input interviewInput) (types.InterviewQuestions, error) {
		return toolkit.Interview(ctx, input.job, input.resume)
	}

	if err := common.RunCommand(cmd.Context(), logger, interviewConfig, args, loadInput, interviewOperation, logDetails); err != nil {
		return fmt.Errorf("failed to generate interview questions: %w", err)
	}
	return nil
}

func runGuidance(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	loadInput := func(_ *common.FileProcessor, args []string) ([]string, error) {
		return append(args, ""), nil
	}

	guidanceOperation := func(_ context.Context, args []string) (types.AnswerGuidance, error) {
		return interview.Guidance(args[0], args[1]), nil
	}

	if err := common.RunCommand(cmd.Context(), logger, guidanceConfig, args, loadInput, guidanceOperation, nil); err != nil {
		return fmt.Errorf("failed to build answer guidance: %w", err)
	}
	return nil
}
