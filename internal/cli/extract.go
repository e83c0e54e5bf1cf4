package cli

import (
	"context"
	"fmt"

	"searchfind/internal/common"
	"searchfind/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [document-file]",
	Short: "Extract skills, experience, education and contacts from a document",
	Long: `Extract the structured view of a resume, job description or cover letter:
sections, skills split into technical and soft, experience and education
entries, location and contact details.

Supported inputs: .txt, .md, .pdf, .docx and .html. Use "-" to read plain text
from standard input.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareOutput(cmd, &extractConfig)
	},
	RunE: runExtract,
}

var (
	extractConfig common.CommandConfig
	extractKind   string
)

func init() {
	addOutputFlags(extractCmd, &extractConfig)
	extractCmd.Flags().StringVarP(&extractKind, "kind", "k", "resume", "Document kind: resume, job_description, or cover_letter")
}

type extractInput struct {
	text string
	kind types.DocumentKind
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	kind, err := common.ParseKind(extractKind)
	if err != nil {
		return err
	}

	toolkit, release, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	defer release()

	loadInput := func(fp *common.FileProcessor, args []string) (extractInput, error) {
		text, err := fp.ReadDocument(args[0])
		return extractInput{text: text, kind: kind}, err
	}

	logDetails := func(input extractInput, cfg common.CommandConfig) {
		logger.Info("Starting extraction",
			"kind", input.kind,
			"chars", len(input.text),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, input extractInput) (types.ExtractedDocument, error) {
		return toolkit.Extract(ctx, input.text, input.kind)
	}

	if err := common.RunCommand(cmd.Context(), logger, extractConfig, args, loadInput, extractOperation, logDetails); err != nil {
		return fmt.Errorf("failed to extract document: %w", err)
	}
	return nil
}
