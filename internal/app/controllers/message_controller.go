package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/app/services"
	"github.com/preskool/school/internal/middleware"
)

// MessageController handles inbox operations
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// Inbox retrieves the caller's inbox, newest first
// @Summary Inbox
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InboxResponse} "Inbox retrieved"
// @Router /messages [get]
func (c *MessageController) Inbox(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	inbox, err := c.messageService.Inbox(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(inbox))
}

// SendMessage delivers a message to another user
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Recipient not found"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.SendMessageRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	message, err := c.messageService.Send(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message))
}

// MarkMessageRead marks one of the caller's messages as read
// @Summary Mark message read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.StatusResponse "Acknowledged"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id}/read [post]
func (c *MessageController) MarkMessageRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.messageService.MarkRead(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusSuccess)
}

// ToggleMessageStar flips the starred flag on one of the caller's messages
// @Summary Star or unstar a message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.StatusResponse "Acknowledged"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id}/star [post]
func (c *MessageController) ToggleMessageStar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.messageService.ToggleStar(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusSuccess)
}
