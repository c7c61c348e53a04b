package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/job-tracker/internal/dtos"
	"github.com/justsurfingit/job-tracker/internal/metrics"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/validation"
	"github.com/tidwall/gjson"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

var (
	// ErrGeneration wraps any failure of the hosted model call.
	ErrGeneration = errors.New("text generation failed")
	// ErrUnexpectedOutput means the model answered with something that does
	// not match the expected output schema.
	ErrUnexpectedOutput = errors.New("unexpected model output")
	ErrGeminiKeyMissing = errors.New("GEMINI_API_KEY is empty")
)

// Completer turns a prompt into model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LangChainCompleter calls a langchaingo model in JSON mode.
type LangChainCompleter struct {
	Model llms.Model
}

func (c *LangChainCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.Model, prompt, llms.WithJSONMode())
}

// UnavailableCompleter stands in for the model when none is configured.
// Every call fails with ErrGeneration.
type UnavailableCompleter struct {
	Reason string
}

func (c UnavailableCompleter) Complete(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrGeneration, c.Reason)
}

// NewGeminiCompleter initializes the Gemini client
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*LangChainCompleter, error) {
	if apiKey == "" {
		return nil, ErrGeminiKeyMissing
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LangChainCompleter{Model: llm}, nil
}

type LLMService struct {
	Client Completer
	Logger *zap.Logger
}

func NewLLMService(client Completer, logger *zap.Logger) *LLMService {
	return &LLMService{
		Client: client,
		Logger: logger,
	}
}

const summaryPrompt = `Summarize the following job application details:

Company: %s
Position: %s
Date Applied: %s
Link to Job Posting: %s
Application Status: %s

Provide a concise summary highlighting key information for quick review.

### OUTPUT SCHEMA:
{"summary": "A concise summary of the job application details."}

Format the output as valid JSON only. Do not wrap the output in markdown code blocks.
`

const keyDatesPrompt = `You are an AI assistant helping to extract key dates from job application details.

Given the following job application details, extract the application date, interview date, offer date, and rejection date if they exist. Return the dates in ISO format (YYYY-MM-DD). If a date is not explicitly mentioned, leave the field out. Do not guess.

### OUTPUT SCHEMA:
{
    "applicationDate": "The date the application was submitted (ISO format)",
    "interviewDate": "The date of the interview, if any (ISO format)",
    "offerDate": "The date the job offer was extended, if any (ISO format)",
    "rejectionDate": "The date the application was rejected, if any (ISO format)"
}

Format the output as valid JSON only. Do not wrap the output in markdown code blocks.

### APPLICATION DETAILS:
%s
`

// Summarize validates the request and asks the model for a short summary.
func (s *LLMService) Summarize(ctx context.Context, req dtos.SummarizeRequest) (dtos.SummaryResult, error) {
	if err := validation.Validate(req); err != nil {
		return dtos.SummaryResult{}, err
	}

	prompt := fmt.Sprintf(summaryPrompt,
		req.Company, req.Position, req.DateApplied, req.LinkToJobPosting, req.ApplicationStatus)
	raw, err := s.complete(ctx, "summarize", prompt)
	if err != nil {
		return dtos.SummaryResult{}, err
	}

	out := stripCodeFence(raw)
	if !gjson.Valid(out) || !gjson.Parse(out).IsObject() {
		return dtos.SummaryResult{}, fmt.Errorf("%w: summary is not a JSON object", ErrUnexpectedOutput)
	}
	summary := gjson.Get(out, "summary")
	if summary.Type != gjson.String {
		return dtos.SummaryResult{}, fmt.Errorf("%w: summary must be a string", ErrUnexpectedOutput)
	}
	return dtos.SummaryResult{Summary: strings.TrimSpace(summary.String())}, nil
}

// DetermineKeyDates extracts the application milestones mentioned in free text.
// Dates the text does not mention come back nil.
func (s *LLMService) DetermineKeyDates(ctx context.Context, req dtos.DateExtractionRequest) (dtos.KeyDates, error) {
	if err := validation.Validate(req); err != nil {
		return dtos.KeyDates{}, err
	}

	raw, err := s.complete(ctx, "key_dates", fmt.Sprintf(keyDatesPrompt, req.ApplicationDetails))
	if err != nil {
		return dtos.KeyDates{}, err
	}
	return parseKeyDates(stripCodeFence(raw))
}

func (s *LLMService) complete(ctx context.Context, op, prompt string) (string, error) {
	start := time.Now()
	resp, err := s.Client.Complete(ctx, prompt)
	metrics.ObserveExternalCall("llm", op, err, time.Since(start))
	if err != nil {
		s.Logger.Error("model call failed", zap.String("op", op), zap.Error(err))
		if errors.Is(err, ErrGeneration) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return resp, nil
}

func parseKeyDates(out string) (dtos.KeyDates, error) {
	if !gjson.Valid(out) || !gjson.Parse(out).IsObject() {
		return dtos.KeyDates{}, fmt.Errorf("%w: dates are not a JSON object", ErrUnexpectedOutput)
	}

	var dates dtos.KeyDates
	fields := []struct {
		key string
		dst **string
	}{
		{"applicationDate", &dates.ApplicationDate},
		{"interviewDate", &dates.InterviewDate},
		{"offerDate", &dates.OfferDate},
		{"rejectionDate", &dates.RejectionDate},
	}
	for _, f := range fields {
		v := gjson.Get(out, f.key)
		switch v.Type {
		case gjson.Null:
			// absent or explicit null: not mentioned
		case gjson.String:
			d, err := normalizeDate(v.String())
			if err != nil {
				return dtos.KeyDates{}, fmt.Errorf("%w: %s: %v", ErrUnexpectedOutput, f.key, err)
			}
			if d != "" {
				*f.dst = &d
			}
		default:
			return dtos.KeyDates{}, fmt.Errorf("%w: %s must be a string", ErrUnexpectedOutput, f.key)
		}
	}
	return dates, nil
}

// normalizeDate accepts a plain date or a full RFC 3339 timestamp and returns
// the YYYY-MM-DD form. Blank input means the date was not found.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t.Format(models.DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("%q is not an ISO date", s)
	}
	return t.Format(models.DateLayout), nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag, whatever its case
	if tag, rest, ok := strings.Cut(s, "\n"); ok && !strings.ContainsAny(tag, "{[") {
		s = rest
	} else if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
