package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

func (c *TestController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/tests")
	controller.Route(g, http.MethodGet, "", c.ListTests)
	controller.Route(g, http.MethodPost, "", c.CreateTest)
	controller.Route(g, http.MethodGet, "/:id", c.GetTest)
	controller.Route(g, http.MethodPut, "/:id", c.UpdateTest)
	controller.Route(g, http.MethodDelete, "/:id", c.DeleteTest)
	controller.Route(g, http.MethodGet, "/:id/results", c.GetTestResults)
}

// ListTests godoc
// @Summary List tests with their total max mark
// @Tags Tests
// @Produce json
// @Param class_group query int false "Only tests of this class"
// @Success 200 {array} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tests/ [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	classID, err := controller.OptionalUintQuery(ctx, "class_group")
	if err != nil {
		controller.RespondError(ctx, err, "Invalid class filter")
		return
	}
	tests, err := c.testService.GetAllTests(ctx.Request.Context(), classID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve tests")
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// CreateTest godoc
// @Summary Create a test
// @Tags Tests
// @Accept json
// @Produce json
// @Param test body dto.TestRequest true "Test"
// @Success 201 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Class or marking principle not found"
// @Router /tests/ [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req dto.TestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.testService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create test")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetTest godoc
// @Summary Get a test
// @Tags Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id}/ [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.testService.GetTest(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateTest godoc
// @Summary Update a test
// @Tags Tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test body dto.TestRequest true "Test"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id}/ [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.testService.UpdateTest(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteTest godoc
// @Summary Delete a test with its questions and answers
// @Tags Tests
// @Param id path int true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id}/ [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.testService.DeleteTest(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete test")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetTestResults godoc
// @Summary Total marks per student for a test
// @Description Every student of the test's class, with 0 for students without answers.
// @Tags Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {array} dto.StudentResultResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id}/results/ [get]
func (c *TestController) GetTestResults(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	results, err := c.testService.GetTestResults(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to compute test results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}
