package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type ClassController struct {
	classService service.ClassService
}

func NewClassController(classService service.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

func (c *ClassController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/classes")
	controller.Route(g, http.MethodGet, "", c.ListClasses)
	controller.Route(g, http.MethodPost, "", c.CreateClass)
	controller.Route(g, http.MethodGet, "/:id", c.GetClass)
	controller.Route(g, http.MethodPut, "/:id", c.UpdateClass)
	controller.Route(g, http.MethodDelete, "/:id", c.DeleteClass)
	controller.Route(g, http.MethodGet, "/:id/students", c.ListClassStudents)
	controller.Route(g, http.MethodGet, "/:id/tests", c.ListClassTests)
}

// ListClasses godoc
// @Summary List classes
// @Tags Classes
// @Produce json
// @Success 200 {array} dto.ClassResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /classes/ [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve classes")
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// CreateClass godoc
// @Summary Create a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param class body dto.ClassRequest true "Class"
// @Success 201 {object} dto.ClassResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /classes/ [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.classService.CreateClass(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create class")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetClass godoc
// @Summary Get a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.ClassResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /classes/{id}/ [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.classService.GetClass(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve class")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateClass godoc
// @Summary Rename a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param class body dto.ClassRequest true "Class"
// @Success 200 {object} dto.ClassResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /classes/{id}/ [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.classService.UpdateClass(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update class")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteClass godoc
// @Summary Delete a class with its students and tests
// @Tags Classes
// @Param id path int true "Class ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /classes/{id}/ [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.classService.DeleteClass(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete class")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListClassStudents godoc
// @Summary List the students of a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /classes/{id}/students/ [get]
func (c *ClassController) ListClassStudents(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	students, err := c.classService.GetClassStudents(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve students")
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListClassTests godoc
// @Summary List the tests of a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /classes/{id}/tests/ [get]
func (c *ClassController) ListClassTests(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	tests, err := c.classService.GetClassTests(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve tests")
		return
	}
	ctx.JSON(http.StatusOK, tests)
}
