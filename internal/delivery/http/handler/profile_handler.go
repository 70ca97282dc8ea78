package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Partially update current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	user, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserProfile handles GET /users/:user_id
// @Summary Get user profile
// @Description Get another user's profile, with distance when both sides share location
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} profile.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id} [get]
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.profileUseCase.GetUserProfile(c.Request.Context(), targetID, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HeartbeatRequest sets the caller's presence status.
type HeartbeatRequest struct {
	Status string `json:"status" binding:"required,oneof=online in-call"`
}

// Heartbeat handles POST /presence
// @Summary Report presence
// @Description Refresh the caller's presence status; it expires on its own when heartbeats stop
// @Tags presence
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body HeartbeatRequest true "Presence status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /presence [post]
func (h *ProfileHandler) Heartbeat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	if err := h.profileUseCase.Heartbeat(c.Request.Context(), userID, domain.PresenceStatus(req.Status)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update presence",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "presence updated",
	})
}

// SuggestBio handles POST /profile/me/bio-suggestion
// @Summary Suggest a bio
// @Description Generate a profile bio from the caller's skills
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /profile/me/bio-suggestion [post]
func (h *ProfileHandler) SuggestBio(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bio, err := h.profileUseCase.SuggestBio(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAIUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "bio suggestions are unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate bio",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bio": bio,
	})
}
