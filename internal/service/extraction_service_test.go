package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/scriptmark/config"
)

func newExtractor(engine *stubEngine, timeout time.Duration) TextExtractionService {
	cfg := &config.Config{}
	cfg.OCR.MaxDimension = 2400
	cfg.OCR.Timeout = timeout
	return NewTextExtractionService(engine, cfg)
}

func TestExtractResults(t *testing.T) {
	cases := []struct {
		name   string
		engine *stubEngine
		failed bool
		stored string
	}{
		{"transcript", &stubEngine{text: "The mitochondria is the powerhouse of the cell"}, false, "The mitochondria is the powerhouse of the cell"},
		{"no text detected", &stubEngine{text: ""}, false, ""},
		{"engine error", &stubEngine{err: errors.New("permission denied")}, true, "OCR Failed: permission denied"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := newExtractor(c.engine, time.Second).Extract(context.Background(), pngImage(t))
			if res.Failed() != c.failed || res.Stored() != c.stored {
				t.Fatalf("got failed=%v stored=%q", res.Failed(), res.Stored())
			}
		})
	}
}

func TestExtractEmptyImageFailsWithoutCallingEngine(t *testing.T) {
	engine := &stubEngine{text: "x"}
	res := newExtractor(engine, time.Second).Extract(context.Background(), nil)
	if !res.Failed() || engine.calls != 0 {
		t.Fatalf("failed=%v calls=%d", res.Failed(), engine.calls)
	}
}

func TestExtractTimeout(t *testing.T) {
	res := newExtractor(&stubEngine{block: true}, 20*time.Millisecond).Extract(context.Background(), pngImage(t))
	if !res.Failed() || !strings.Contains(res.Stored(), "timed out") {
		t.Fatalf("stored=%q, want timeout sentinel", res.Stored())
	}
	if !strings.HasPrefix(res.Stored(), "OCR Failed: ") {
		t.Fatalf("stored=%q, want OCR sentinel prefix", res.Stored())
	}
}
