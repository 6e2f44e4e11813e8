package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/middleware"
)

// StudentController handles profile and eligibility endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListEligible godoc
// @Summary List eligible swap partners
// @Description Returns every other student whose CGPA lies within the configured tolerance of the caller's, highest CGPA first.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EligibleStudent}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/eligible [get]
func (c *StudentController) ListEligible(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	eligible, err := c.studentService.ListEligible(ctx.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(eligible))
}

// Me godoc
// @Summary Own profile
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me [get]
func (c *StudentController) Me(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateMe godoc
// @Summary Update own profile
// @Description Updates the caller's CGPA. Batches only change through accepted swaps.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "CGPA out of range"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me [put]
func (c *StudentController) UpdateMe(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return
	}
	if req.CGPA == nil {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
		return
	}

	updated, err := c.studentService.UpdateCGPA(ctx.Request.Context(), student.ID, *req.CGPA)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// GetByID godoc
// @Summary Get a student profile
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")))
		return
	}

	student, err := c.studentService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// List godoc
// @Summary List students
// @Description Returns a page of students, newest first.
// @Tags students
// @Produce json
// @Param skip query int false "Number of students to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pagination parameters")))
		return
	}

	students, err := c.studentService.List(ctx.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}
