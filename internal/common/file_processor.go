package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"searchfind/internal/document"
	"searchfind/internal/errors"
	"searchfind/internal/types"
	"searchfind/internal/utils"
)

// StdinName is the file argument that reads from standard input
const StdinName = "-"

// FileProcessor handles common file operations
type FileProcessor struct {
	reader *document.Reader
	logger *errors.Logger
}

// NewFileProcessor creates a file processor whose documents may be at most maxSize bytes
func NewFileProcessor(maxSize int64, logger *errors.Logger) *FileProcessor {
	if logger == nil {
		logger = errors.NopLogger()
	}
	return &FileProcessor{
		reader: document.NewReader(maxSize, logger),
		logger: logger,
	}
}

// Reader returns the document reader, for callers that load resumes lazily
func (fp *FileProcessor) Reader() *document.Reader {
	return fp.reader
}

// ReadDocument reads a resume or job description and converts it to plain text
func (fp *FileProcessor) ReadDocument(filename string) (string, error) {
	if filename == StdinName {
		return fp.reader.ReadAll("stdin.txt", os.Stdin)
	}
	if err := utils.ValidateInputFile(filename); err != nil {
		return "", errors.NewValidationError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Invalid file %s", filename), err)
	}
	if !utils.IsDocumentFile(filename) {
		fp.logger.Warn("Unrecognised file extension, sniffing content", "filename", filename)
	}
	return fp.reader.ReadFile(filename)
}

// ReadDocuments reads several documents in order
func (fp *FileProcessor) ReadDocuments(filenames ...string) ([]string, error) {
	contents := make([]string, len(filenames))
	for i, filename := range filenames {
		content, err := fp.ReadDocument(filename)
		if err != nil {
			return nil, err // Error already wrapped by ReadDocument
		}
		contents[i] = content
	}
	return contents, nil
}

// ReadJobListing reads a job from a JSON or YAML record. Any other document
// is taken as a free-text posting whose first line is the title.
func (fp *FileProcessor) ReadJobListing(filename string) (*types.JobListing, error) {
	if !utils.IsStructuredFile(filename) {
		text, err := fp.ReadDocument(filename)
		if err != nil {
			return nil, err
		}
		job := JobFromText(text)
		return &job, nil
	}

	var job types.JobListing
	if err := fp.decode(filename, &job); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("Invalid job listing in %s", filename), err)
	}
	return &job, nil
}

// ReadJobListings reads a list of jobs, accepting a single record as a list of one
func (fp *FileProcessor) ReadJobListings(filename string) ([]types.JobListing, error) {
	jobs, err := decodeList[types.JobListing](fp, filename)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, errors.NewValidationError(errors.ErrCodeValidationFailed,
				fmt.Sprintf("Invalid job listing #%d in %s", i+1, filename), err)
		}
		if jobs[i].ID == "" {
			jobs[i].ID = fmt.Sprintf("job-%d", i+1)
		}
	}
	return jobs, nil
}

// ReadCandidates reads candidate profiles. Relative resume paths are resolved
// against the directory of the candidates file.
func (fp *FileProcessor) ReadCandidates(filename string) ([]types.Candidate, error) {
	candidates, err := decodeList[types.Candidate](fp, filename)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(filename)
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, errors.NewValidationError(errors.ErrCodeValidationFailed,
				fmt.Sprintf("Invalid candidate #%d in %s", i+1, filename), err)
		}
		if p := candidates[i].ResumePath; p != "" && !filepath.IsAbs(p) {
			candidates[i].ResumePath = filepath.Join(base, p)
		}
	}
	return candidates, nil
}

// JobFromText builds a listing from a plain-text posting
func JobFromText(text string) types.JobListing {
	title := "Untitled Position"
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			title = strings.TrimLeft(line, "# ")
			break
		}
	}
	return types.JobListing{Title: title, Description: text}
}

func (fp *FileProcessor) readRaw(filename string) ([]byte, error) {
	if err := utils.ValidateInputFile(filename); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Invalid file %s", filename), err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Cannot read file: %s", filename), err)
	}
	return data, nil
}

func (fp *FileProcessor) decode(filename string, out any) error {
	data, err := fp.readRaw(filename)
	if err != nil {
		return err
	}
	if utils.GetFileExtension(filename) == ".json" {
		err = json.Unmarshal(data, out)
	} else {
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Cannot parse %s", filename), err)
	}
	return nil
}

func decodeList[T any](fp *FileProcessor, filename string) ([]T, error) {
	var items []T
	if err := fp.decode(filename, &items); err != nil {
		// Not a list: accept a single record
		var item T
		if err := fp.decode(filename, &item); err != nil {
			return nil, err
		}
		items = []T{item}
	}
	if len(items) == 0 {
		return nil, errors.NewInputMissingError(fmt.Sprintf("entries in %s", filename))
	}
	return items, nil
}

// WriteFile writes content to a file with directory creation
func (fp *FileProcessor) WriteFile(filename, content string) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		err := os.MkdirAll(dir, 0750)
		if err != nil {
			return errors.NewIOError("DIRECTORY_CREATE_FAILED",
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}

	err := os.WriteFile(filename, []byte(content), 0600)
	if err != nil {
		return errors.NewIOError("FILE_WRITE_FAILED",
			fmt.Sprintf("Cannot write file: %s", filename), err)
	}

	return nil
}

// ValidateOutputFile validates output file path
func (fp *FileProcessor) ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil // stdout is valid
	}

	if err := utils.ValidateOutputFile(filename); err != nil {
		return errors.NewValidationError("INVALID_OUTPUT_FILE",
			fmt.Sprintf("Invalid output file: %s", filename), err)
	}

	return nil
}
