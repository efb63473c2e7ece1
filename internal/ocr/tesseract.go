package ocr

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// TesseractEngine shells out to a local tesseract binary. Handwriting quality
// is poor compared to the cloud engines; it exists for offline development.
type TesseractEngine struct {
	Lang string
}

func NewTesseractEngine(languages []string) *TesseractEngine {
	lang := "eng"
	if len(languages) > 0 {
		lang = strings.Join(languages, "+")
	}
	return &TesseractEngine{Lang: lang}
}

func (t *TesseractEngine) Name() string { return "tesseract" }

func (t *TesseractEngine) Recognize(ctx context.Context, image []byte, _ string) (string, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return "", errors.New("tesseract not found in PATH")
	}
	f, err := os.CreateTemp("", "scan-*.img")
	if err != nil {
		return "", err
	}
	defer func() { f.Close(); os.Remove(f.Name()) }()
	if _, err := f.Write(image); err != nil {
		return "", err
	}

	args := []string{f.Name(), "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	cmd := exec.CommandContext(ctx, "tesseract", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errors.New(strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
