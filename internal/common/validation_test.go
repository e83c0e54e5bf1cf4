package common

import (
	"strings"
	"testing"

	"searchfind/internal/errors"
)

func TestOutputFormats(t *testing.T) {
	tests := []struct {
		name       string
		configured []string
		want       string
	}{
		{"no restriction gives every registered format", nil, "json,markdown,text,yaml"},
		{"configured list narrows the registry", []string{"yaml", "json"}, "json,yaml"},
		{"unknown configured formats are ignored", []string{"json", "xml"}, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(OutputFormats(tt.configured), ",")
			if got != tt.want {
				t.Errorf("OutputFormats(%v) = %s, want %s", tt.configured, got, tt.want)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	all := []string{"json", "yaml", "text", "markdown"}

	tests := []struct {
		name       string
		format     string
		configured []string
		wantErr    bool
	}{
		{"json", "json", all, false},
		{"yaml", "yaml", all, false},
		{"text", "text", all, false},
		{"markdown", "markdown", all, false},
		{"no formatter for xml", "xml", all, true},
		{"no formatter even when configured", "csv", []string{"json", "csv"}, true},
		{"registered but not configured", "yaml", []string{"json"}, true},
		{"case sensitive", "JSON", all, true},
		{"empty format", "", all, true},
		{"empty configuration allows registered formats", "markdown", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.configured)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
				}
				return
			}
			appErr, ok := errors.As(err)
			if !ok {
				t.Fatalf("ValidateOutputFormat(%q) = %v, want an AppError", tt.format, err)
			}
			if appErr.Code != errors.ErrCodeUnsupportedFormat {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeUnsupportedFormat)
			}
			if !errors.IsCallerError(err) {
				t.Error("an unsupported format should be a caller error")
			}
		})
	}
}

func TestValidateOutputFormatListsAllowedFormats(t *testing.T) {
	err := ValidateOutputFormat("xml", []string{"json", "text"})
	if err == nil || !strings.Contains(err.Error(), "use json, text") {
		t.Errorf("error should list the allowed formats, got %v", err)
	}
}
