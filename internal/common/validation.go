package common

import (
	"fmt"
	"slices"
	"strings"

	"searchfind/internal/errors"
	"searchfind/internal/formatters"
)

// OutputFormats lists the formats the CLI can emit: the registry's formats,
// narrowed to app.supportedFormats when that list is set.
func OutputFormats(configured []string) []string {
	registered := formatters.GlobalRegistry.GetSupportedFormats()
	if len(configured) == 0 {
		return registered
	}
	out := make([]string, 0, len(registered))
	for _, f := range registered {
		if slices.Contains(configured, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateOutputFormat rejects formats that have no formatter or that the
// configuration disallows. Matching is case sensitive.
func ValidateOutputFormat(format string, configured []string) error {
	allowed := OutputFormats(configured)
	if slices.Contains(allowed, format) {
		return nil
	}
	return errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
		fmt.Sprintf("unsupported output format %q (use %s)", format, strings.Join(allowed, ", ")), nil)
}
