package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/service"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/lshigami/scriptmark/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedExtractor struct{ text string }

func (f fixedExtractor) Extract(context.Context, []byte) service.ExtractionResult {
	return service.ExtractionResult{Text: f.text}
}

type recordingGrader struct {
	got []service.GradingRequest
}

func (g *recordingGrader) Grade(_ context.Context, req service.GradingRequest) service.GradingResult {
	g.got = append(g.got, req)
	return service.GradingResult{MarkGained: 6, Summary: "Mostly right", Strengths: "ATP", Improvements: "Respiration"}
}

type server struct {
	router *gin.Engine
	fx     testutil.Fixture
	grader *recordingGrader
	blobs  *storage.FSStore
}

func newServer(t *testing.T) *server {
	t.Helper()
	db := testutil.NewDB(t)
	blobs, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	cfg.Server.MaxUploadMB = 1

	s := &server{router: gin.New(), fx: testutil.Seed(t, db), grader: &recordingGrader{}, blobs: blobs}
	evaluation := service.NewEvaluationService(
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewStudentRepository(db),
		blobs,
		fixedExtractor{text: "Mitochondria make ATP"},
		s.grader,
	)
	api := s.router.Group("/api")
	NewAnswerController(evaluation, cfg).RegisterRoutes(api)
	NewMediaController(blobs).RegisterRoutes(s.router)
	return s
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func (s *server) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) upload(t *testing.T, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("question", fmt.Sprint(s.fx.Question.ID))
	mw.WriteField("student", fmt.Sprint(s.fx.Student.ID))
	if withImage {
		fw, err := mw.CreateFormFile("uploaded_image", "scan.png")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(pngBytes(t))
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/answers/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestUploadAnswer(t *testing.T) {
	s := newServer(t)

	w := s.upload(t, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload = %d %s", w.Code, w.Body)
	}
	created := decode[dto.AnswerUploadResponse](t, w)
	if created.IsEvaluated || created.Revision != 1 || !strings.HasPrefix(created.UploadedImage, service.MediaPrefix+"student_answers/") {
		t.Fatalf("unexpected upload response: %+v", created)
	}

	w = s.upload(t, true)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate upload = %d, want 409", w.Code)
	}
	if msg := decode[dto.ErrorResponse](t, w); msg.Message == "" {
		t.Fatal("conflict should carry a message")
	}

	media := s.do(httptest.NewRequest(http.MethodGet, created.UploadedImage, nil))
	if media.Code != http.StatusOK || media.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("media = %d %q", media.Code, media.Header().Get("Content-Type"))
	}
	if !bytes.Equal(media.Body.Bytes(), pngBytes(t)) {
		t.Fatal("media body differs from upload")
	}
}

func TestUploadAnswerRequiresImage(t *testing.T) {
	s := newServer(t)
	if w := s.upload(t, false); w.Code != http.StatusBadRequest {
		t.Fatalf("upload without image = %d, want 400", w.Code)
	}
}

func TestFindAnswer(t *testing.T) {
	s := newServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/answers/find?question=1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("find without student = %d, want 400", w.Code)
	}
	path := fmt.Sprintf("/api/answers/find/?question=%d&student=%d", s.fx.Question.ID, s.fx.Student.ID)
	if w := s.do(httptest.NewRequest(http.MethodGet, path, nil)); w.Code != http.StatusNotFound {
		t.Fatalf("find before upload = %d, want 404", w.Code)
	}

	s.upload(t, true)
	w = s.do(httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("find = %d %s", w.Code, w.Body)
	}
	got := decode[dto.AnswerResponse](t, w)
	if got.Student.ID != s.fx.Student.ID || got.Question.ID != s.fx.Question.ID {
		t.Fatalf("find returned %+v", got)
	}
}

func TestRunOCRAndMarking(t *testing.T) {
	s := newServer(t)
	id := decode[dto.AnswerUploadResponse](t, s.upload(t, true)).ID

	w := s.do(httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/answers/%d/run-ocr", id), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("run-ocr = %d %s", w.Code, w.Body)
	}
	afterOCR := decode[dto.AnswerResponse](t, w)
	if afterOCR.OCRText == nil || *afterOCR.OCRText != "Mitochondria make ATP" || afterOCR.Revision != 2 {
		t.Fatalf("after ocr: %+v", afterOCR)
	}

	// An empty body grades the stored transcript.
	w = s.do(httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/answers/%d/run-marking/", id), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("run-marking = %d %s", w.Code, w.Body)
	}
	if got := s.grader.got[0].Transcript; got != "Mitochondria make ATP" {
		t.Fatalf("graded transcript %q", got)
	}

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/answers/%d/run-marking", id),
		strings.NewReader(`{"corrected_text":"Mitochondria make ATP by respiration"}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req)
	if w.Code != http.StatusOK {
		t.Fatalf("run-marking corrected = %d %s", w.Code, w.Body)
	}
	graded := decode[dto.AnswerResponse](t, w)
	if !graded.IsEvaluated || graded.MarkGained != 6 || graded.Revision != 4 {
		t.Fatalf("graded: %+v", graded)
	}
	if graded.OCRText == nil || *graded.OCRText != "Mitochondria make ATP by respiration" {
		t.Fatalf("corrected text not stored: %v", graded.OCRText)
	}
	if graded.AISummary == nil || *graded.AISummary != "Mostly right" {
		t.Fatalf("summary = %v", graded.AISummary)
	}
}

func TestRunMarkingRejectsMalformedJSON(t *testing.T) {
	s := newServer(t)
	id := decode[dto.AnswerUploadResponse](t, s.upload(t, true)).ID
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/answers/%d/run-marking", id), strings.NewReader(`{"corrected_text":`))
	req.Header.Set("Content-Type", "application/json")
	if w := s.do(req); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body = %d, want 400", w.Code)
	}
	if len(s.grader.got) != 0 {
		t.Fatal("grader must not run on a rejected request")
	}
}

func TestAnswerNotFound(t *testing.T) {
	s := newServer(t)
	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/answers/99"},
		{http.MethodPost, "/api/answers/99/run-ocr"},
		{http.MethodPost, "/api/answers/99/run-marking"},
		{http.MethodDelete, "/api/answers/99/"},
		{http.MethodGet, "/media/student_answers/missing.png"},
	} {
		if w := s.do(httptest.NewRequest(r.method, r.path, nil)); w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", r.method, r.path, w.Code)
		}
	}
}

func TestDeleteAnswer(t *testing.T) {
	s := newServer(t)
	created := decode[dto.AnswerUploadResponse](t, s.upload(t, true))

	if w := s.do(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/answers/%d", created.ID), nil)); w.Code != http.StatusNoContent {
		t.Fatalf("delete = %d", w.Code)
	}
	if w := s.do(httptest.NewRequest(http.MethodGet, created.UploadedImage, nil)); w.Code != http.StatusNotFound {
		t.Fatalf("image after delete = %d, want 404", w.Code)
	}
	list := decode[[]dto.AnswerResponse](t, s.do(httptest.NewRequest(http.MethodGet, "/api/answers", nil)))
	if len(list) != 0 {
		t.Fatalf("list after delete has %d answers", len(list))
	}
}
