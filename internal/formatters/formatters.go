package formatters

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"searchfind/internal/catalog"
	"searchfind/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("yaml", "any", &YAMLFormatter{})

	for _, s := range []style{plainText, markdown} {
		registry.RegisterFormatter(s.name, "ExtractedDocument", newRenderer(s, "ExtractedDocument", renderExtracted))
		registry.RegisterFormatter(s.name, "ValidationResult", newRenderer(s, "ValidationResult", renderValidation))
		registry.RegisterFormatter(s.name, "MatchResult", newRenderer(s, "MatchResult", renderMatch))
		registry.RegisterFormatter(s.name, "Ranking", newRenderer(s, "Ranking", renderRanking))
		registry.RegisterFormatter(s.name, "SuggestionReport", newRenderer(s, "SuggestionReport", renderSuggestions))
		registry.RegisterFormatter(s.name, "Qualification", newRenderer(s, "Qualification", renderQualification))
		registry.RegisterFormatter(s.name, "Qualifications", newRenderer(s, "Qualifications", renderQualifications))
		registry.RegisterFormatter(s.name, "InterviewQuestions", newRenderer(s, "InterviewQuestions", renderInterview))
		registry.RegisterFormatter(s.name, "AnswerGuidance", newRenderer(s, "AnswerGuidance", renderGuidance))
		registry.RegisterFormatter(s.name, "CatalogStats", newRenderer(s, "CatalogStats", renderCatalogStats))
	}

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats in sorted order
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ExtractedDocument:
		return "ExtractedDocument"
	case types.ValidationResult:
		return "ValidationResult"
	case types.MatchResult:
		return "MatchResult"
	case types.Ranking:
		return "Ranking"
	case types.SuggestionReport:
		return "SuggestionReport"
	case types.Qualification:
		return "Qualification"
	case map[string]types.Qualification:
		return "Qualifications"
	case types.InterviewQuestions:
		return "InterviewQuestions"
	case types.AnswerGuidance:
		return "AnswerGuidance"
	case catalog.Stats:
		return "CatalogStats"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData) + "\n", nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// YAMLFormatter renders any data type as YAML using its JSON field names
type YAMLFormatter struct{}

func (yf *YAMLFormatter) Format(data any) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(jsonData, &generic); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (yf *YAMLFormatter) SupportedType() string {
	return "any"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
