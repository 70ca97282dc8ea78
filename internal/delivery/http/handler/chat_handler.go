package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// SendMessageRequest is the body of a chat message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// Send handles POST /connections/:connection_id/messages
// @Summary Send message
// @Description Send a chat message over an accepted connection
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param connection_id path string true "Connection ID"
// @Param request body SendMessageRequest true "Message body"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /connections/{connection_id}/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	connectionID, ok := pathUUID(c, "connection_id")
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	msg, err := h.chatUseCase.Send(c.Request.Context(), userID, connectionID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "message body is empty",
			})
		case errors.Is(err, domain.ErrConnectionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "connection not found",
			})
		case errors.Is(err, domain.ErrNotConnected):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "connection is not accepted",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to send message",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List handles GET /connections/:connection_id/messages
// @Summary List messages
// @Description Read the message history of an accepted connection, oldest first
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param connection_id path string true "Connection ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string][]domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /connections/{connection_id}/messages [get]
func (h *ChatHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	connectionID, ok := pathUUID(c, "connection_id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.chatUseCase.List(c.Request.Context(), userID, connectionID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConnectionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "connection not found",
			})
		case errors.Is(err, domain.ErrNotConnected):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "connection is not accepted",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to list messages",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}
