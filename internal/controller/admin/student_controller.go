package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/internal/controller"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

func (c *StudentController) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/students")
	controller.Route(g, http.MethodGet, "", c.ListStudents)
	controller.Route(g, http.MethodPost, "", c.CreateStudent)
	controller.Route(g, http.MethodGet, "/:id", c.GetStudent)
	controller.Route(g, http.MethodPut, "/:id", c.UpdateStudent)
	controller.Route(g, http.MethodDelete, "/:id", c.DeleteStudent)
}

// ListStudents godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param class_group query int false "Only students of this class"
// @Success 200 {array} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/ [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	classID, err := controller.OptionalUintQuery(ctx, "class_group")
	if err != nil {
		controller.RespondError(ctx, err, "Invalid class filter")
		return
	}
	students, err := c.studentService.GetAllStudents(ctx.Request.Context(), classID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve students")
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateStudent godoc
// @Summary Create a student
// @Tags Students
// @Accept json
// @Produce json
// @Param student body dto.StudentRequest true "Student"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /students/ [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create student")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetStudent godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/ [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve student")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param student body dto.StudentRequest true "Student"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/ [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update student")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteStudent godoc
// @Summary Delete a student and their answers
// @Tags Students
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/ [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete student")
		return
	}
	ctx.Status(http.StatusNoContent)
}
