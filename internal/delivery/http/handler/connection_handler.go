package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/connection"
)

type ConnectionHandler struct {
	connectionUseCase *connection.ConnectionUseCase
}

func NewConnectionHandler(connectionUseCase *connection.ConnectionUseCase) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUseCase: connectionUseCase,
	}
}

// SendConnectionRequest starts a connection with another user.
type SendConnectionRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
}

// Send handles POST /connections
// @Summary Send connection request
// @Description Send a pending connection request to another user
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SendConnectionRequest true "Recipient"
// @Success 201 {object} domain.Connection
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /connections [post]
func (h *ConnectionHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid recipient_id",
		})
		return
	}

	conn, err := h.connectionUseCase.Send(c.Request.Context(), userID, recipientID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotConnectSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot connect to yourself",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrConnectionExists):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "connection already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to send connection request",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, conn)
}

// RespondRequest answers a pending connection request.
type RespondRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// Respond handles POST /connections/:connection_id/respond
// @Summary Respond to connection request
// @Description Accept or decline a pending connection request
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param connection_id path string true "Connection ID"
// @Param request body RespondRequest true "Decision"
// @Success 200 {object} domain.Connection
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /connections/{connection_id}/respond [post]
func (h *ConnectionHandler) Respond(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	connectionID, ok := pathUUID(c, "connection_id")
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	conn, err := h.connectionUseCase.Respond(c.Request.Context(), userID, connectionID, *req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConnectionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "connection not found",
			})
		case errors.Is(err, domain.ErrConnectionNotPending):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "connection already answered",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to respond to connection request",
			})
		}
		return
	}

	c.JSON(http.StatusOK, conn)
}

// List handles GET /connections
// @Summary List connections
// @Description List the caller's connections, optionally filtered by status
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, accepted or declined"
// @Success 200 {object} map[string][]domain.Connection
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status := domain.ConnectionStatus(c.Query("status"))
	switch status {
	case "", domain.ConnectionPending, domain.ConnectionAccepted, domain.ConnectionDeclined:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid status",
		})
		return
	}

	conns, err := h.connectionUseCase.List(c.Request.Context(), userID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list connections",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connections": conns,
	})
}
