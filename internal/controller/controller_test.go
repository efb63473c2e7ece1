package controller

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("answer 3: %w", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("pair exists: %w", service.ErrConflict), http.StatusConflict},
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrNoImage, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusFor(c.err); got != c.want {
			t.Errorf("StatusFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestRouteAcceptsTrailingSlash(t *testing.T) {
	r := gin.New()
	Route(r, http.MethodGet, "/things/", func(ctx *gin.Context) { ctx.Status(http.StatusTeapot) })

	for _, path := range []string{"/things", "/things/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusTeapot {
			t.Errorf("GET %s = %d, want 418", path, w.Code)
		}
	}
}

func TestParseID(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(ctx *gin.Context) {
		if id, ok := ParseID(ctx, "id"); ok {
			ctx.String(http.StatusOK, "%d", id)
		}
	})
	cases := map[string]int{
		"/items/12":  http.StatusOK,
		"/items/0":   http.StatusBadRequest,
		"/items/abc": http.StatusBadRequest,
		"/items/-4":  http.StatusBadRequest,
	}
	for path, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != want {
			t.Errorf("GET %s = %d, want %d", path, w.Code, want)
		}
	}
}

func TestOptionalUintQuery(t *testing.T) {
	r := gin.New()
	var got *uint
	var gotErr error
	r.GET("/", func(ctx *gin.Context) { got, gotErr = OptionalUintQuery(ctx, "test") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != nil || gotErr != nil {
		t.Fatalf("absent: got %v, %v", got, gotErr)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?test=7", nil))
	if got == nil || *got != 7 {
		t.Fatalf("test=7: got %v, %v", got, gotErr)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?test=x", nil))
	if !errors.Is(gotErr, service.ErrValidation) {
		t.Fatalf("test=x: err = %v, want ErrValidation", gotErr)
	}
}

func TestFormFile(t *testing.T) {
	var upload *service.FileUpload
	var uploadErr error
	r := gin.New()
	r.POST("/", func(ctx *gin.Context) { upload, uploadErr = FormFile(ctx, "doc", 8) })

	send := func(content []byte) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		if content != nil {
			fw, _ := mw.CreateFormFile("doc", "a.pdf")
			fw.Write(content)
		} else {
			mw.WriteField("name", "x")
		}
		mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	send(nil)
	if upload != nil || uploadErr != nil {
		t.Fatalf("missing part: got %v, %v", upload, uploadErr)
	}
	send([]byte("tiny"))
	if uploadErr != nil || upload == nil || string(upload.Data) != "tiny" || upload.Filename != "a.pdf" {
		t.Fatalf("small part: got %+v, %v", upload, uploadErr)
	}
	send([]byte("far too large"))
	if !errors.Is(uploadErr, service.ErrValidation) {
		t.Fatalf("large part: err = %v, want ErrValidation", uploadErr)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if upload != nil || uploadErr != nil {
		t.Fatalf("json body: got %v, %v", upload, uploadErr)
	}
}
