package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/review"
)

type ReviewHandler struct {
	reviewUseCase *review.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// CreateReviewRequest rates another user.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// Create handles POST /users/:user_id/reviews
// @Summary Review a user
// @Description Leave a rating for another user; one review per reviewer
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user_id path string true "Subject user ID"
// @Param request body CreateReviewRequest true "Rating"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	subjectID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	rev, err := h.reviewUseCase.Create(c.Request.Context(), reviewerID, subjectID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotReviewSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot review yourself",
			})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "rating must be between 1 and 5",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrReviewExists):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "review already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to create review",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, rev)
}

// List handles GET /users/:user_id/reviews
// @Summary List reviews
// @Description List reviews left for a user, newest first
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Subject user ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string][]domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	subjectID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.reviewUseCase.List(c.Request.Context(), subjectID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
	})
}
