package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

type imageAnnotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// VisionEngine runs Google Cloud Vision document text detection, which is
// tuned for dense and handwritten text.
type VisionEngine struct {
	client    imageAnnotator
	languages []string
}

func NewVisionEngine(ctx context.Context, credentialsFile string, languages []string) (*VisionEngine, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionEngine{client: client, languages: languages}, nil
}

func (e *VisionEngine) Name() string { return "vision" }

func (e *VisionEngine) Close() error { return e.client.Close() }

func (e *VisionEngine) Recognize(ctx context.Context, image []byte, _ string) (string, error) {
	req := &visionpb.AnnotateImageRequest{
		Image:    &visionpb.Image{Content: image},
		Features: []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}},
	}
	if len(e.languages) > 0 {
		req.ImageContext = &visionpb.ImageContext{LanguageHints: e.languages}
	}
	resp, err := e.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{req},
	})
	if err != nil {
		return "", err
	}
	if len(resp.GetResponses()) == 0 {
		return "", errors.New("vision returned no responses")
	}
	r := resp.GetResponses()[0]
	if st := r.GetError(); st != nil && st.GetMessage() != "" {
		return "", fmt.Errorf("vision: %s", st.GetMessage())
	}
	return strings.TrimSpace(r.GetFullTextAnnotation().GetText()), nil
}
