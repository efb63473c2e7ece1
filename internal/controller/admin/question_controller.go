package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
	maxUpload       int64
}

func NewQuestionController(questionService service.QuestionService, cfg *config.Config) *QuestionController {
	return &QuestionController{questionService: questionService, maxUpload: cfg.Server.MaxUploadMB << 20}
}

func (c *QuestionController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/questions")
	controller.Route(g, http.MethodGet, "", c.ListQuestions)
	controller.Route(g, http.MethodPost, "", c.CreateQuestion)
	controller.Route(g, http.MethodGet, "/:id", c.GetQuestion)
	controller.Route(g, http.MethodPut, "/:id", c.UpdateQuestion)
	controller.Route(g, http.MethodDelete, "/:id", c.DeleteQuestion)
}

// ListQuestions godoc
// @Summary List questions ordered by number
// @Tags Questions
// @Produce json
// @Param test query int false "Only questions of this test"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/ [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	testID, err := controller.OptionalUintQuery(ctx, "test")
	if err != nil {
		controller.RespondError(ctx, err, "Invalid test filter")
		return
	}
	questions, err := c.questionService.GetAllQuestions(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Accepts JSON, or a multipart form with an optional question_image.
// @Tags Questions
// @Accept json,mpfd
// @Produce json
// @Param test formData int true "Test ID"
// @Param q_number formData int true "Question number, unique within the test"
// @Param description formData string false "Question text"
// @Param max_mark formData int false "Maximum mark (default 10)"
// @Param model_answer formData string true "Model answer"
// @Param marking_scheme formData string true "Marking scheme"
// @Param question_image formData file false "Question image"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Question number already used"
// @Router /questions/ [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	image, err := controller.FormFile(ctx, "question_image", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid question_image")
		return
	}
	resp, err := c.questionService.CreateQuestion(ctx.Request.Context(), req, image)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/ [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags Questions
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/ [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	image, err := controller.FormFile(ctx, "question_image", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid question_image")
		return
	}
	resp, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req, image)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary Delete a question and its answers
// @Tags Questions
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/ [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}
