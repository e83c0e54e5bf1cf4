package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [job-file] [candidates-file]",
	Short: "Rank candidates for a job",
	Long: `Score every candidate against one job and order them best first.

The candidates file is a JSON or YAML list of {id, name, resumeText} or
{id, name, resumePath}; relative resume paths are resolved against the
candidates file. Candidates whose resume cannot be read are listed as skipped.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &rankConfig)
	},
	RunE: runRank,
}

var (
	rankConfig common.CommandConfig
	rankTop    int
)

func init() {
	addOutputFlags(rankCmd, &rankConfig)
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Only output the best N candidates (0 = all)")
}

type rankInput struct {
	job        *types.JobListing
	candidates []types.Candidate
}

func runRank(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	loadInput := func(fp *common.FileProcessor, args []string) (rankInput, error) {
		job, err := fp.ReadJobListing(args[0])
		if err != nil {
			return rankInput{}, err
		}
		candidates, err := fp.ReadCandidates(args[1])
		if err != nil {
			return rankInput{}, err
		}
		return rankInput{job: job, candidates: candidates}, nil
	}

	logDetails := func(input rankInput, cfg common.CommandConfig) {
		logger.Info("Starting candidate ranking",
			"job_title", input.job.Title,
			"candidates", len(input.candidates),
			"output_format", cfg.OutputFormat)
	}

	rankOperation := func(ctx context.Context, input rankInput) (types.Ranking, error) {
		ranking, err := toolkit.Rank(ctx, input.job, input.candidates)
		if err != nil {
			return ranking, err
		}
		if rankTop > 0 && len(ranking.Matches) > rankTop {
			ranking.Matches = ranking.Matches[:rankTop]
		}
		return ranking, nil
	}

	if err := common.RunCommand(cmd.Context(), logger, rankConfig, args, loadInput, rankOperation, logDetails); err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}
	return nil
}
