package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type MarkingPrincipleController struct {
	principleService service.MarkingPrincipleService
	maxUpload        int64
}

func NewMarkingPrincipleController(principleService service.MarkingPrincipleService, cfg *config.Config) *MarkingPrincipleController {
	return &MarkingPrincipleController{principleService: principleService, maxUpload: cfg.Server.MaxUploadMB << 20}
}

func (c *MarkingPrincipleController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/marking-principles")
	controller.Route(g, http.MethodGet, "", c.ListPrinciples)
	controller.Route(g, http.MethodPost, "", c.CreatePrinciple)
	controller.Route(g, http.MethodGet, "/:id", c.GetPrinciple)
	controller.Route(g, http.MethodPut, "/:id", c.UpdatePrinciple)
	controller.Route(g, http.MethodDelete, "/:id", c.DeletePrinciple)
}

// ListPrinciples godoc
// @Summary List marking principles
// @Tags Marking Principles
// @Produce json
// @Success 200 {array} dto.MarkingPrincipleResponse
// @Router /marking-principles/ [get]
func (c *MarkingPrincipleController) ListPrinciples(ctx *gin.Context) {
	principles, err := c.principleService.GetAllPrinciples(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve marking principles")
		return
	}
	ctx.JSON(http.StatusOK, principles)
}

// CreatePrinciple godoc
// @Summary Upload a marking principle
// @Description The PDF text is extracted once and used as grading context for every test that references the principle.
// @Tags Marking Principles
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Unique name"
// @Param pdf_file formData file true "Principle document"
// @Success 201 {object} dto.MarkingPrincipleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already used"
// @Router /marking-principles/ [post]
func (c *MarkingPrincipleController) CreatePrinciple(ctx *gin.Context) {
	var req dto.MarkingPrincipleRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	pdf, err := controller.FormFile(ctx, "pdf_file", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid pdf_file")
		return
	}
	resp, err := c.principleService.CreatePrinciple(ctx.Request.Context(), req, pdf)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create marking principle")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetPrinciple godoc
// @Summary Get a marking principle
// @Tags Marking Principles
// @Produce json
// @Param id path int true "Marking principle ID"
// @Success 200 {object} dto.MarkingPrincipleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /marking-principles/{id}/ [get]
func (c *MarkingPrincipleController) GetPrinciple(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.principleService.GetPrinciple(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve marking principle")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdatePrinciple godoc
// @Summary Rename a marking principle or replace its document
// @Tags Marking Principles
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Marking principle ID"
// @Param name formData string true "Unique name"
// @Param pdf_file formData file false "Replacement document"
// @Success 200 {object} dto.MarkingPrincipleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /marking-principles/{id}/ [put]
func (c *MarkingPrincipleController) UpdatePrinciple(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.MarkingPrincipleRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	pdf, err := controller.FormFile(ctx, "pdf_file", c.maxUpload)
	if err != nil {
		controller.RespondError(ctx, err, "Invalid pdf_file")
		return
	}
	resp, err := c.principleService.UpdatePrinciple(ctx.Request.Context(), id, req, pdf)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update marking principle")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeletePrinciple godoc
// @Summary Delete a marking principle
// @Description Tests that referenced it keep existing without a principle.
// @Tags Marking Principles
// @Param id path int true "Marking principle ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /marking-principles/{id}/ [delete]
func (c *MarkingPrincipleController) DeletePrinciple(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.principleService.DeletePrinciple(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete marking principle")
		return
	}
	ctx.Status(http.StatusNoContent)
}
