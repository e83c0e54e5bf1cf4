package common

import (
	"context"
	"fmt"
	"time"

	"searchfind/internal/errors"
)

// LoadInputFunc builds the operation input from the command arguments.
type LoadInputFunc[Input any] func(fp *FileProcessor, args []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is a generic function signature for any analysis operation.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, error)

// RunCommand encapsulates the common logic for file-based CLI commands:
// read inputs, run the operation, format and write the result.
func RunCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	loadInput LoadInputFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	if logger == nil {
		logger = errors.NopLogger()
	}
	fileProcessor := NewFileProcessor(cmdConfig.MaxFileSize, logger)
	outputHandler := NewOutputHandler(logger)

	// Fail before doing any work if the output cannot be written
	if err := fileProcessor.ValidateOutputFile(cmdConfig.OutputFile); err != nil {
		return err
	}

	input, err := loadInput(fileProcessor, args)
	if err != nil {
		if _, ok := errors.As(err); ok {
			return err
		}
		return fmt.Errorf("failed to load input: %w", err)
	}

	if logDetails != nil {
		logDetails(input, cmdConfig)
	}

	start := time.Now()
	result, err := operation(ctx, input)
	if err != nil {
		return err
	}
	logger.Debug("Operation finished", "duration_ms", time.Since(start).Milliseconds())

	return outputHandler.HandleOutput(result, cmdConfig)
}
