// Package controller holds the helpers shared by the HTTP handlers.
package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrNoImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err with the status StatusFor picks. Internal errors
// are logged.
func RespondError(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// RespondBindError reports a request that failed binding or validation.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: []string{err.Error()}})
}

// ParseID reads a positive integer path parameter, answering 400 when it is
// malformed.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(id), true
}

// OptionalUintQuery returns nil when the parameter is absent.
func OptionalUintQuery(ctx *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a positive integer", service.ErrValidation, name)
	}
	id := uint(v)
	return &id, nil
}

// FormFile reads an optional multipart file. It returns nil when the part is
// missing and an error when the part exceeds maxBytes.
func FormFile(ctx *gin.Context, field string, maxBytes int64) (*service.FileUpload, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %s", service.ErrValidation, field, err.Error())
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", service.ErrValidation, field, maxBytes)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	return &service.FileUpload{Filename: header.Filename, Data: data}, nil
}

// Route registers handler for path both with and without a trailing slash.
func Route(group gin.IRoutes, method, path string, handler gin.HandlerFunc) {
	trimmed := strings.TrimSuffix(path, "/")
	group.Handle(method, trimmed, handler)
	group.Handle(method, trimmed+"/", handler)
}
