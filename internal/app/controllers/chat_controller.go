package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/middleware"
)

// ChatController handles the REST side of per-request chat
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// History godoc
// @Summary Chat history of a swap request
// @Description Returns all messages of the swap request in ascending creation order. Participants only.
// @Tags chat
// @Produce json
// @Param swapRequestId path int true "Swap request ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ChatMessage}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Swap request not found"
// @Router /chat/messages/{swapRequestId} [get]
func (c *ChatController) History(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	swapRequestID, err := strconv.ParseInt(ctx.Param("swapRequestId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid swap request ID")))
		return
	}

	messages, err := c.chatService.History(ctx.Request.Context(), student.ID, swapRequestID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages))
}

// PostMessage godoc
// @Summary Post a chat message
// @Description Persists a message to the counterparty of the swap request. The WebSocket endpoint delivers it live when the counterparty is connected.
// @Tags chat
// @Accept json
// @Produce json
// @Param swapRequestId path int true "Swap request ID"
// @Param request body dto.PostMessageRequest true "Message text"
// @Success 201 {object} dto.APIResponse{data=models.ChatMessage}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Empty message"
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Router /chat/messages/{swapRequestId} [post]
func (c *ChatController) PostMessage(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	swapRequestID, err := strconv.ParseInt(ctx.Param("swapRequestId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid swap request ID")))
		return
	}

	var req dto.PostMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Message text is required").WithField("message")))
		return
	}

	message, err := c.chatService.PostMessage(ctx.Request.Context(), student, swapRequestID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message))
}
