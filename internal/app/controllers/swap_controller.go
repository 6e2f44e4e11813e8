package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/middleware"
)

// SwapController handles the swap request lifecycle endpoints
type SwapController struct {
	swapService *services.SwapService
}

// NewSwapController creates a new SwapController
func NewSwapController(swapService *services.SwapService) *SwapController {
	return &SwapController{swapService: swapService}
}

func (c *SwapController) requestID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid swap request ID")))
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary Create a swap request
// @Description Opens a pending swap request towards another student within CGPA tolerance.
// @Tags swap-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateSwapRequest true "Target student and optional message"
// @Success 201 {object} dto.APIResponse{data=models.SwapRequest}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Self request or tolerance exceeded"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Target not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Pending request already exists"
// @Router /swap-requests [post]
func (c *SwapController) Create(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateSwapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Target student ID is required").WithField("targetId")))
		return
	}

	request, err := c.swapService.Create(ctx.Request.Context(), student, req.TargetID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(request))
}

// ListSent godoc
// @Summary List sent swap requests
// @Tags swap-requests
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, accepted, rejected, cancelled)
// @Success 200 {object} dto.APIResponse{data=[]models.SwapRequest}
// @Router /swap-requests/sent [get]
func (c *SwapController) ListSent(ctx *gin.Context) {
	c.list(ctx, true)
}

// ListReceived godoc
// @Summary List received swap requests
// @Tags swap-requests
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, accepted, rejected, cancelled)
// @Success 200 {object} dto.APIResponse{data=[]models.SwapRequest}
// @Router /swap-requests/received [get]
func (c *SwapController) ListReceived(ctx *gin.Context) {
	c.list(ctx, false)
}

func (c *SwapController) list(ctx *gin.Context, sent bool) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var query dto.SwapListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")))
		return
	}
	if query.Status != nil && !models.ValidSwapRequestStatus(*query.Status) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown status filter").WithField("status")))
		return
	}

	requests, err := c.swapService.List(ctx.Request.Context(), student.ID, sent, query.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// Get godoc
// @Summary Get a swap request
// @Description Returns one swap request. Visible only to its two participants.
// @Tags swap-requests
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} dto.APIResponse{data=models.SwapRequest}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /swap-requests/{id} [get]
func (c *SwapController) Get(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := c.requestID(ctx)
	if !ok {
		return
	}

	request, err := c.swapService.Get(ctx.Request.Context(), student.ID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// Accept godoc
// @Summary Accept a swap request
// @Description The target accepts; both students' current batches are exchanged atomically.
// @Tags swap-requests
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} dto.APIResponse{data=models.SwapRequest}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Only the target may accept"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /swap-requests/{id}/accept [post]
func (c *SwapController) Accept(ctx *gin.Context) {
	c.transition(ctx, func(ctx *gin.Context, studentID, id int64) (*models.SwapRequest, error) {
		return c.swapService.Accept(ctx.Request.Context(), studentID, id)
	})
}

// Reject godoc
// @Summary Reject a swap request
// @Tags swap-requests
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} dto.APIResponse{data=models.SwapRequest}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Only the target may reject"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /swap-requests/{id}/reject [post]
func (c *SwapController) Reject(ctx *gin.Context) {
	c.transition(ctx, func(ctx *gin.Context, studentID, id int64) (*models.SwapRequest, error) {
		return c.swapService.Reject(ctx.Request.Context(), studentID, id)
	})
}

// Cancel godoc
// @Summary Cancel a swap request
// @Description The requester withdraws a pending request. The request stays visible with status cancelled.
// @Tags swap-requests
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} dto.APIResponse{data=models.SwapRequest}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Only the requester may cancel"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already processed"
// @Router /swap-requests/{id} [delete]
func (c *SwapController) Cancel(ctx *gin.Context) {
	c.transition(ctx, func(ctx *gin.Context, studentID, id int64) (*models.SwapRequest, error) {
		return c.swapService.Cancel(ctx.Request.Context(), studentID, id)
	})
}

func (c *SwapController) transition(ctx *gin.Context, fn func(*gin.Context, int64, int64) (*models.SwapRequest, error)) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := c.requestID(ctx)
	if !ok {
		return
	}

	request, err := fn(ctx, student.ID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}
