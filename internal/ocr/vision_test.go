package ocr

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/genproto/googleapis/rpc/status"
)

type fakeAnnotator struct {
	resp *visionpb.BatchAnnotateImagesResponse
	err  error
	last *visionpb.BatchAnnotateImagesRequest
}

func (f *fakeAnnotator) BatchAnnotateImages(_ context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	f.last = req
	return f.resp, f.err
}

func (f *fakeAnnotator) Close() error { return nil }

func TestVisionEngineRecognize(t *testing.T) {
	fa := &fakeAnnotator{resp: &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{
			FullTextAnnotation: &visionpb.TextAnnotation{Text: "The mitochondria is the powerhouse of the cell\n"},
		}},
	}}
	e := &VisionEngine{client: fa, languages: []string{"en"}}

	got, err := e.Recognize(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got != "The mitochondria is the powerhouse of the cell" {
		t.Fatalf("got %q", got)
	}
	req := fa.last.GetRequests()[0]
	if req.GetFeatures()[0].GetType() != visionpb.Feature_DOCUMENT_TEXT_DETECTION {
		t.Fatalf("feature = %v", req.GetFeatures()[0].GetType())
	}
	if hints := req.GetImageContext().GetLanguageHints(); len(hints) != 1 || hints[0] != "en" {
		t.Fatalf("language hints = %v", hints)
	}
}

func TestVisionEngineNoTextIsEmpty(t *testing.T) {
	fa := &fakeAnnotator{resp: &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{}},
	}}
	got, err := (&VisionEngine{client: fa}).Recognize(context.Background(), []byte("img"), "")
	if err != nil || got != "" {
		t.Fatalf("got %q, %v; want empty text and no error", got, err)
	}
}

func TestVisionEngineErrors(t *testing.T) {
	boom := errors.New("unavailable")
	if _, err := (&VisionEngine{client: &fakeAnnotator{err: boom}}).Recognize(context.Background(), nil, ""); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}

	fa := &fakeAnnotator{resp: &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{Error: &status.Status{Code: 3, Message: "bad image"}}},
	}}
	if _, err := (&VisionEngine{client: fa}).Recognize(context.Background(), nil, ""); err == nil {
		t.Fatal("per-image error must be reported")
	}
}
