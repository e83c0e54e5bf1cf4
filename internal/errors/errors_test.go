package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewInputMissingError("job listing"),
			want: "INPUT_MISSING: no job listing provided",
		},
		{
			name: "with cause",
			err:  NewIOError(ErrCodeFileReadFailed, "cannot read resume", fmt.Errorf("permission denied")),
			want: "FILE_READ_FAILED: cannot read resume (caused by: permission denied)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAs_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("matching: %w", NewInvalidDocumentError("not a resume", 12))

	appErr, ok := As(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if appErr.Code != ErrCodeInvalidDocument {
		t.Errorf("Code = %s, want %s", appErr.Code, ErrCodeInvalidDocument)
	}
	if appErr.Context["confidence"] != 12 {
		t.Errorf("confidence context = %v, want 12", appErr.Context["confidence"])
	}
	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("plain error should not be an AppError")
	}
}

func TestIsCallerError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{NewInputMissingError("resume"), true},
		{NewEmptyDocumentError("empty"), true},
		{NewValidationError(ErrCodeValidationFailed, "bad", nil), true},
		{NewAIError(ErrCodeAIServiceFailed, "down", nil), false},
		{fmt.Errorf("plain"), false},
	}
	for _, tt := range tests {
		if got := IsCallerError(tt.err); got != tt.want {
			t.Errorf("IsCallerError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestLogger_LogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, slog.LevelDebug)

	logger.LogError(NewInputMissingError("resume"), "match failed", "request_id", "abc")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	checks := map[string]any{
		"msg":        "match failed",
		"error_code": ErrCodeInputMissing,
		"error_type": string(ErrorTypeInput),
		"input":      "resume",
		"request_id": "abc",
	}
	for key, want := range checks {
		if record[key] != want {
			t.Errorf("record[%q] = %v, want %v", key, record[key], want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
