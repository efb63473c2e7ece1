package grading

import (
	"bufio"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
)

// MediaController streams stored uploads back to the frontend.
type MediaController struct {
	blobs storage.BlobStore
}

func NewMediaController(blobs storage.BlobStore) *MediaController {
	return &MediaController{blobs: blobs}
}

func (c *MediaController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/media/*key", c.ServeMedia)
}

// ServeMedia godoc
// @Summary Download an uploaded file
// @Tags Media
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /media/{key} [get]
func (c *MediaController) ServeMedia(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("key"), "/")
	rc, err := c.blobs.Get(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "File not found"})
			return
		}
		log.Error().Err(err).Str("key", key).Msg("Failed to read media")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read file", Details: []string{err.Error()}})
		return
	}
	defer rc.Close()

	body := bufio.NewReaderSize(rc, 512)
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		head, _ := body.Peek(512)
		contentType = ocr.SniffContentType(head)
	}
	ctx.Header("Content-Type", contentType)
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, body); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Media stream interrupted")
	}
}
