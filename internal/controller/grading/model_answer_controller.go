package grading

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type ModelAnswerController struct {
	modelAnswerService service.ModelAnswerService
	maxUpload          int64
}

func NewModelAnswerController(modelAnswerService service.ModelAnswerService, cfg *config.Config) *ModelAnswerController {
	return &ModelAnswerController{modelAnswerService: modelAnswerService, maxUpload: cfg.Server.MaxUploadMB << 20}
}

func (c *ModelAnswerController) RegisterRoutes(api *gin.RouterGroup) {
	controller.Route(api, http.MethodPost, "/generate-model-answer", c.GenerateModelAnswer)
}

// GenerateModelAnswer godoc
// @Summary Draft a model answer with AI
// @Description Generation errors are returned as the model_answer text. An unreadable image is ignored.
// @Tags Model Answers
// @Accept json,mpfd
// @Produce json
// @Param description formData string true "Question text"
// @Param marking_scheme formData string true "Marking scheme"
// @Param question_image formData file false "Question image"
// @Success 200 {object} dto.GenerateModelAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Description and marking scheme are required"
// @Failure 500 {object} dto.ErrorResponse "Failed to handle image upload"
// @Router /generate-model-answer/ [post]
func (c *ModelAnswerController) GenerateModelAnswer(ctx *gin.Context) {
	var req dto.GenerateModelAnswerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	image, err := controller.FormFile(ctx, "question_image", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid question_image")
		return
	}
	resp, err := c.modelAnswerService.Generate(ctx.Request.Context(), req, image)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to generate model answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
