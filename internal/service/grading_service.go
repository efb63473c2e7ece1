package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/gemini"
	"github.com/rs/zerolog/log"
)

const (
	defaultSummary      = "Evaluation complete."
	defaultStrengths    = "Answer shows general understanding."
	defaultImprovements = "Review the model answer for details."
	notAvailable        = "N/A"
)

// GradingRequest is the context sent to the model for one answer.
type GradingRequest struct {
	Transcript    string
	ModelAnswer   string
	MarkingScheme string
	MaxMark       float64
	Principles    string
}

// GradingResult always carries a usable mark and feedback. When Err is set
// the fields hold the zero-mark fallback.
type GradingResult struct {
	MarkGained   float64
	Summary      string
	Strengths    string
	Improvements string
	Err          error
}

func (r GradingResult) Failed() bool { return r.Err != nil }

type GradingService interface {
	Grade(ctx context.Context, req GradingRequest) GradingResult
}

type gradingService struct {
	model   gemini.Generator
	timeout time.Duration
}

func NewGradingService(client *genai.Client, cfg *config.Config) GradingService {
	return newGradingService(gemini.NewModel(client, cfg.Gemini.Model, true), cfg.Gemini.Timeout)
}

func newGradingService(model gemini.Generator, timeout time.Duration) *gradingService {
	return &gradingService{model: model, timeout: timeout}
}

func (s *gradingService) Grade(ctx context.Context, req GradingRequest) GradingResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := gemini.Generate(ctx, s.model, genai.Text(buildGradingPrompt(req)))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("grading timed out after %s: %w", s.timeout, err)
		}
		log.Error().Err(err).Msg("Gemini API error during grading")
		return gradingFallback(err)
	}

	result, err := parseGradingResponse(raw, req.MaxMark)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse grading response")
		return gradingFallback(err)
	}
	return result
}

func gradingFallback(err error) GradingResult {
	return GradingResult{
		MarkGained:   0,
		Summary:      "An error occurred during AI evaluation: " + err.Error(),
		Strengths:    notAvailable,
		Improvements: notAvailable,
		Err:          err,
	}
}

func buildGradingPrompt(req GradingRequest) string {
	maxMark := strconv.FormatFloat(req.MaxMark, 'f', -1, 64)

	var sb strings.Builder
	sb.WriteString("You are an expert academic evaluator. Your task is to grade a student's answer based on a strict marking scheme and overall principles.\n\n")
	sb.WriteString("--- CONTEXT ---\n")
	sb.WriteString("Maximum Possible Mark: " + maxMark + "\n")
	sb.WriteString(fmt.Sprintf("Overall Marking Principles for this test: %q\n", req.Principles))
	sb.WriteString(fmt.Sprintf("Model Answer (the ideal response for this question): %q\n", req.ModelAnswer))
	sb.WriteString(fmt.Sprintf("Marking Scheme (specific points for this question): %q\n\n", req.MarkingScheme))
	sb.WriteString("--- STUDENT'S RESPONSE ---\n")
	sb.WriteString(fmt.Sprintf("%q\n\n", req.Transcript))
	sb.WriteString("--- INSTRUCTIONS ---\n")
	sb.WriteString("1. First, consider the Overall Marking Principles. If the principles are empty, ignore this step.\n")
	sb.WriteString("2. Compare the student's response to the Model Answer and the Marking Scheme.\n")
	sb.WriteString("3. Calculate the mark gained. It MUST be a number between 0 and " + maxMark + ".\n")
	sb.WriteString("4. Write a brief summary of the evaluation.\n")
	sb.WriteString("5. Identify specific strengths where the answer aligns with the marking scheme.\n")
	sb.WriteString("6. Identify specific improvement points where the answer is lacking or incorrect.\n\n")
	sb.WriteString("--- OUTPUT FORMAT ---\n")
	sb.WriteString("Respond with a single valid JSON object and nothing else. It must have exactly these keys:\n")
	sb.WriteString(`{"mark_gained": 8.5, "summary": "...", "strengths": "...", "improvements": "..."}`)
	sb.WriteString("\n")
	return sb.String()
}

// stripCodeFence removes a Markdown fence such as ```json ... ``` around the
// payload.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func parseGradingResponse(raw string, maxMark float64) (GradingResult, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return GradingResult{}, fmt.Errorf("invalid JSON in model response: %w", err)
	}
	if payload == nil {
		return GradingResult{}, errors.New("model response is not a JSON object")
	}

	return GradingResult{
		MarkGained:   clampMark(coerceMark(payload["mark_gained"]), maxMark),
		Summary:      textField(payload, "summary", defaultSummary),
		Strengths:    textField(payload, "strengths", defaultStrengths),
		Improvements: textField(payload, "improvements", defaultImprovements),
	}, nil
}

// coerceMark accepts a JSON number or a numeric string; anything else is 0.
func coerceMark(v interface{}) float64 {
	var f float64
	switch m := v.(type) {
	case float64:
		f = m
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func clampMark(mark, maxMark float64) float64 {
	if mark < 0 {
		return 0
	}
	if maxMark > 0 && mark > maxMark {
		return maxMark
	}
	return mark
}

func textField(payload map[string]interface{}, key, fallback string) string {
	switch v := payload[key].(type) {
	case nil:
		return fallback
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}
