package grading

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type AnswerController struct {
	evaluationService service.EvaluationService
	maxUpload         int64
}

func NewAnswerController(evaluationService service.EvaluationService, cfg *config.Config) *AnswerController {
	return &AnswerController{evaluationService: evaluationService, maxUpload: cfg.Server.MaxUploadMB << 20}
}

func (c *AnswerController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/answers")
	controller.Route(g, http.MethodGet, "", c.ListAnswers)
	controller.Route(g, http.MethodPost, "", c.UploadAnswer)
	controller.Route(g, http.MethodGet, "/find", c.FindAnswer)
	controller.Route(g, http.MethodGet, "/:id", c.GetAnswer)
	controller.Route(g, http.MethodDelete, "/:id", c.DeleteAnswer)
	controller.Route(g, http.MethodPost, "/:id/run-ocr", c.RunOCR)
	controller.Route(g, http.MethodPost, "/:id/run-marking", c.RunMarking)
}

// UploadAnswer godoc
// @Summary Upload a handwritten answer
// @Description Creates the single answer of a student to a question. A second upload for the same pair is rejected.
// @Tags Answers
// @Accept multipart/form-data
// @Produce json
// @Param question formData int true "Question ID"
// @Param student formData int true "Student ID"
// @Param uploaded_image formData file true "Answer image"
// @Success 201 {object} dto.AnswerUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Question or student not found"
// @Failure 409 {object} dto.ErrorResponse "Answer already exists"
// @Router /answers/ [post]
func (c *AnswerController) UploadAnswer(ctx *gin.Context) {
	var req dto.UploadAnswerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	image, err := controller.FormFile(ctx, "uploaded_image", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid uploaded_image")
		return
	}
	resp, err := c.evaluationService.Upload(ctx.Request.Context(), req, image)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to upload answer")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RunOCR godoc
// @Summary Extract the answer's text
// @Description Runs handwriting recognition on the stored image. A recognition failure is stored as an "OCR Failed: ..." transcript with ocr_status=failed.
// @Tags Answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "No image found for this answer"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Answer modified concurrently"
// @Failure 500 {object} dto.ErrorResponse
// @Router /answers/{id}/run-ocr/ [post]
func (c *AnswerController) RunOCR(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.evaluationService.RunOCR(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "OCR failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RunMarking godoc
// @Summary Grade the answer
// @Description Grades corrected_text when given, otherwise the stored transcript. A grading failure is stored as a zero mark with grading_status=failed.
// @Tags Answers
// @Accept json
// @Produce json
// @Param id path int true "Answer ID"
// @Param body body dto.RunMarkingRequest false "Corrected transcript"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Answer modified concurrently"
// @Router /answers/{id}/run-marking/ [post]
func (c *AnswerController) RunMarking(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	req, err := bindRunMarking(ctx)
	if err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.evaluationService.RunMarking(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "AI marking failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// bindRunMarking accepts an empty body, JSON, or a form with corrected_text.
func bindRunMarking(ctx *gin.Context) (dto.RunMarkingRequest, error) {
	var req dto.RunMarkingRequest
	ct := ctx.ContentType()
	if strings.HasPrefix(ct, "multipart/") || ct == "application/x-www-form-urlencoded" {
		if text, ok := ctx.GetPostForm("corrected_text"); ok {
			req.CorrectedText = &text
		}
		return req, nil
	}
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return req, nil
	}
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// FindAnswer godoc
// @Summary Find the answer of a student to a question
// @Tags Answers
// @Produce json
// @Param question query int true "Question ID"
// @Param student query int true "Student ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Both student and question parameters are required"
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/find/ [get]
func (c *AnswerController) FindAnswer(ctx *gin.Context) {
	questionID, err := controller.OptionalUintQuery(ctx, "question")
	if err != nil {
		controller.RespondError(ctx, err, "Invalid question parameter")
		return
	}
	studentID, err := controller.OptionalUintQuery(ctx, "student")
	if err != nil {
		controller.RespondError(ctx, err, "Invalid student parameter")
		return
	}
	var q, s uint
	if questionID != nil {
		q = *questionID
	}
	if studentID != nil {
		s = *studentID
	}
	resp, err := c.evaluationService.Find(ctx.Request.Context(), q, s)
	if err != nil {
		controller.RespondError(ctx, err, "Answer lookup failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListAnswers godoc
// @Summary List answers
// @Tags Answers
// @Produce json
// @Param question query int false "Question ID"
// @Param student query int false "Student ID"
// @Param test query int false "Test ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /answers/ [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	var query dto.AnswerListQuery
	var err error
	if query.QuestionID, err = controller.OptionalUintQuery(ctx, "question"); err != nil {
		controller.RespondError(ctx, err, "Invalid question filter")
		return
	}
	if query.StudentID, err = controller.OptionalUintQuery(ctx, "student"); err != nil {
		controller.RespondError(ctx, err, "Invalid student filter")
		return
	}
	if query.TestID, err = controller.OptionalUintQuery(ctx, "test"); err != nil {
		controller.RespondError(ctx, err, "Invalid test filter")
		return
	}
	answers, err := c.evaluationService.List(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve answers")
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetAnswer godoc
// @Summary Get an answer with its evaluation
// @Tags Answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/{id}/ [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.evaluationService.Get(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteAnswer godoc
// @Summary Delete an answer and its image
// @Tags Answers
// @Param id path int true "Answer ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/{id}/ [delete]
func (c *AnswerController) DeleteAnswer(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.evaluationService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete answer")
		return
	}
	ctx.Status(http.StatusNoContent)
}
