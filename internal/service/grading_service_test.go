package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/scriptmark/internal/gemini"
)

func TestParseGradingResponse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		max  float64
		want GradingResult
	}{
		{
			name: "plain object",
			raw:  `{"mark_gained": 8.5, "summary": "Good", "strengths": "ATP", "improvements": "Krebs"}`,
			max:  10,
			want: GradingResult{MarkGained: 8.5, Summary: "Good", Strengths: "ATP", Improvements: "Krebs"},
		},
		{
			name: "json fence",
			raw:  "```json\n{\"mark_gained\": 4, \"summary\": \"s\", \"strengths\": \"a\", \"improvements\": \"b\"}\n```",
			max:  10,
			want: GradingResult{MarkGained: 4, Summary: "s", Strengths: "a", Improvements: "b"},
		},
		{
			name: "bare fence",
			raw:  "```{\"mark_gained\": 2}```",
			max:  5,
			want: GradingResult{MarkGained: 2, Summary: defaultSummary, Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "numeric string",
			raw:  `{"mark_gained": " 7.5 "}`,
			max:  10,
			want: GradingResult{MarkGained: 7.5, Summary: defaultSummary, Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "missing mark",
			raw:  `{"summary": "x"}`,
			max:  10,
			want: GradingResult{MarkGained: 0, Summary: "x", Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "non numeric mark",
			raw:  `{"mark_gained": "eight", "summary": "x"}`,
			max:  10,
			want: GradingResult{MarkGained: 0, Summary: "x", Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "object mark",
			raw:  `{"mark_gained": {"value": 3}}`,
			max:  10,
			want: GradingResult{MarkGained: 0, Summary: defaultSummary, Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "above maximum",
			raw:  `{"mark_gained": 14}`,
			max:  10,
			want: GradingResult{MarkGained: 10, Summary: defaultSummary, Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "negative",
			raw:  `{"mark_gained": -3}`,
			max:  10,
			want: GradingResult{MarkGained: 0, Summary: defaultSummary, Strengths: defaultStrengths, Improvements: defaultImprovements},
		},
		{
			name: "list feedback",
			raw:  `{"mark_gained": 1, "strengths": ["one", "two"]}`,
			max:  3,
			want: GradingResult{MarkGained: 1, Summary: defaultSummary, Strengths: "one\ntwo", Improvements: defaultImprovements},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseGradingResponse(c.raw, c.max)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestParseGradingResponseRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"", "the answer is good", "[1,2]", "null", "```json\n```"} {
		if _, err := parseGradingResponse(raw, 10); err == nil {
			t.Fatalf("parse(%q) succeeded, want error", raw)
		}
	}
}

func TestGradeSuccess(t *testing.T) {
	gen := &stubGenerator{text: `{"mark_gained": 6, "summary": "ok", "strengths": "s", "improvements": "i"}`}
	svc := newGradingService(gen, time.Second)

	got := svc.Grade(context.Background(), GradingRequest{
		Transcript:    "The mitochondria is the powerhouse of the cell",
		ModelAnswer:   "Mitochondria produce ATP",
		MarkingScheme: "ATP: 5",
		MaxMark:       10,
	})
	if got.Failed() || got.MarkGained != 6 || got.Summary != "ok" {
		t.Fatalf("unexpected result %+v", got)
	}
	if gen.calls != 1 {
		t.Fatalf("calls = %d, want a single attempt", gen.calls)
	}
}

func TestGradeFallbacks(t *testing.T) {
	cases := []struct {
		name string
		gen  gemini.Generator
	}{
		{"remote error", &stubGenerator{err: errors.New("quota exceeded")}},
		{"malformed json", &stubGenerator{text: "mark: ten"}},
		{"empty response", &stubGenerator{text: "   "}},
		{"no client", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := newGradingService(c.gen, time.Second).Grade(context.Background(), GradingRequest{MaxMark: 10})
			if !got.Failed() {
				t.Fatal("expected a failed result")
			}
			if got.MarkGained != 0 || got.Strengths != "N/A" || got.Improvements != "N/A" {
				t.Fatalf("fallback fields wrong: %+v", got)
			}
			if !strings.HasPrefix(got.Summary, "An error occurred during AI evaluation: ") {
				t.Fatalf("summary = %q", got.Summary)
			}
		})
	}
}

func TestGradeTimeoutIsFailure(t *testing.T) {
	got := newGradingService(&stubGenerator{block: true}, 20*time.Millisecond).Grade(context.Background(), GradingRequest{MaxMark: 10})
	if !got.Failed() || !strings.Contains(got.Summary, "timed out") {
		t.Fatalf("got %+v, want timeout failure", got)
	}
}

func TestGradingPromptEmbedsContext(t *testing.T) {
	gen := &stubGenerator{text: `{"mark_gained": 1}`}
	newGradingService(gen, 0).Grade(context.Background(), GradingRequest{
		Transcript:    "student words",
		ModelAnswer:   "model words",
		MarkingScheme: "scheme words",
		MaxMark:       7.5,
		Principles:    "be strict",
	})
	prompt := string(gen.parts[0].(genai.Text))
	for _, want := range []string{"student words", "model words", "scheme words", "be strict", "Maximum Possible Mark: 7.5", "mark_gained"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
