package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"searchfind/internal/common"
	"searchfind/internal/errors"
	"searchfind/internal/interview"
	"searchfind/internal/types"
)

const tracerName = "searchfind.api"

// validatable is implemented by request types with struct tag validation
type validatable interface {
	Validate() error
}

// operationFunc runs one API operation against the current toolkit
type operationFunc[Req, Resp any] func(ctx context.Context, tk *common.Toolkit, req *Req) (Resp, error)

// jsonEndpoint decodes and validates a Req, runs op inside a span and
// writes the result. Caller errors map to 400 and anything else to 500.
func jsonEndpoint[Req, Resp any](s *Server, name string, op operationFunc[Req, Resp]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.obs.Tracer(tracerName).Start(r.Context(), "api."+name)
		defer span.End()
		span.SetAttributes(
			attribute.String("operation", name),
			attribute.String("request.id", requestID(ctx)),
		)

		var req Req
		if err := parseJSONRequest(r, &req); err != nil {
			recordSpanError(span, err, "validation")
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if v, ok := any(&req).(validatable); ok {
			if err := v.Validate(); err != nil {
				recordSpanError(span, err, "validation")
				writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
				return
			}
		}

		result, err := op(ctx, s.Toolkit(), &req)
		if err != nil {
			s.writeOperationError(w, span, name, err)
			return
		}

		span.SetAttributes(attribute.Bool("success", true))
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) extractHandler() http.HandlerFunc {
	return jsonEndpoint(s, "extract", func(ctx context.Context, tk *common.Toolkit, req *types.ExtractRequest) (types.ExtractedDocument, error) {
		kind, err := common.ParseKind(req.Kind)
		if err != nil {
			return types.ExtractedDocument{}, err
		}
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("request.kind", string(kind)),
			attribute.Int("request.text_length", len(req.Text)),
		)
		return tk.Extract(ctx, req.Text, kind)
	})
}

func (s *Server) validateHandler() http.HandlerFunc {
	return jsonEndpoint(s, "validate", func(ctx context.Context, tk *common.Toolkit, req *types.ValidateRequest) (types.ValidationResult, error) {
		result := tk.Validate(ctx, req.Text)
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("document.type", string(result.DocumentType)),
			attribute.Bool("document.valid", result.Valid),
		)
		return result, nil
	})
}

func (s *Server) matchHandler() http.HandlerFunc {
	return jsonEndpoint(s, "match", func(ctx context.Context, tk *common.Toolkit, req *types.MatchRequest) (types.MatchResult, error) {
		result, err := tk.Match(ctx, req.ResumeText, req.Job)
		if err == nil {
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Int("match.score", result.OverallScore),
				attribute.String("match.tier", string(result.Tier)),
			)
		}
		return result, err
	})
}

func (s *Server) rankHandler() http.HandlerFunc {
	return jsonEndpoint(s, "rank", func(ctx context.Context, tk *common.Toolkit, req *types.RankRequest) (types.Ranking, error) {
		ranking, err := tk.Rank(ctx, req.Job, req.Candidates)
		if err == nil {
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Int("rank.candidates", len(req.Candidates)),
				attribute.Int("rank.ranked", len(ranking.Matches)),
			)
		}
		return ranking, err
	})
}

func (s *Server) suggestHandler() http.HandlerFunc {
	return jsonEndpoint(s, "suggest", func(ctx context.Context, tk *common.Toolkit, req *types.MatchRequest) (types.SuggestionReport, error) {
		return tk.Suggest(ctx, req.ResumeText, req.Job)
	})
}

func (s *Server) qualifyHandler() http.HandlerFunc {
	return jsonEndpoint(s, "qualify", func(ctx context.Context, tk *common.Toolkit, req *types.QualifyRequest) (map[string]types.Qualification, error) {
		for i := range req.Jobs {
			if req.Jobs[i].ID == "" {
				req.Jobs[i].ID = fmt.Sprintf("job-%d", i+1)
			}
		}
		return tk.QualifyMany(ctx, req.ResumeText, req.Jobs)
	})
}

func (s *Server) interviewHandler() http.HandlerFunc {
	return jsonEndpoint(s, "interview", func(ctx context.Context, tk *common.Toolkit, req *types.InterviewRequest) (types.InterviewQuestions, error) {
		questions, err := tk.Interview(ctx, req.Job, req.ResumeText)
		if err == nil {
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.String("interview.source", questions.Source),
				attribute.Bool("interview.personalised", req.ResumeText != ""),
			)
		}
		return questions, err
	})
}

func (s *Server) guidanceHandler() http.HandlerFunc {
	return jsonEndpoint(s, "interview_guidance", func(_ context.Context, _ *common.Toolkit, req *types.GuidanceRequest) (types.AnswerGuidance, error) {
		return interview.Guidance(req.QuestionType, req.Question), nil
	})
}

// writeOperationError maps an operation failure to a status code
func (s *Server) writeOperationError(w http.ResponseWriter, span trace.Span, operation string, err error) {
	if errors.IsCallerError(err) {
		recordSpanError(span, err, "validation")
		appErr, _ := errors.As(err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: appErr.Message,
			Code:    appErr.Code,
		})
		return
	}

	recordSpanError(span, err, "processing")
	s.Logger.LogError(err, "API operation failed", "operation", operation)
	status := http.StatusInternalServerError
	if stderrors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	writeErrorResponse(w, fmt.Sprintf("Failed to %s", operation), err.Error(), status)
}

func recordSpanError(span trace.Span, err error, errorType string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("error.type", errorType))
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeJSON writes v with the given status
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// Headers are already sent, so an encoding failure can only be dropped
	_ = json.NewEncoder(w).Encode(v)
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   error,
		Message: message,
	})
}
