package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// BrowseQuery carries the discovery filter controls as query parameters.
type BrowseQuery struct {
	Skill         string `form:"skill"`
	Role          string `form:"role" binding:"omitempty,oneof=any teaches learns"`
	Query         string `form:"q" binding:"omitempty,max=100"`
	RadiusEnabled bool   `form:"radius_enabled"`
	RadiusKm      int    `form:"radius_km" binding:"omitempty,min=1,max=10"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
}

// Browse handles GET /discovery
// @Summary Browse nearby users
// @Description Page through discoverable users matching the filter controls
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param skill query string false "Skill to match, or All Skills"
// @Param role query string false "any, teaches or learns"
// @Param q query string false "Free-text search"
// @Param radius_enabled query bool false "Restrict to nearby users"
// @Param radius_km query int false "Radius in km (1-10)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} discovery.BrowseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery [get]
func (h *DiscoveryHandler) Browse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid query parameters",
		})
		return
	}

	role := domain.RoleFilter(query.Role)
	if role == "" {
		role = domain.RoleAny
	}
	page := query.Page
	if page == 0 {
		page = 1
	}

	resp, err := h.discoveryUseCase.Browse(c.Request.Context(), userID, &discovery.BrowseRequest{
		Skill:         query.Skill,
		Role:          role,
		Query:         query.Query,
		RadiusEnabled: query.RadiusEnabled,
		RadiusKm:      query.RadiusKm,
		Page:          page,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPageOutOfRange) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "page out of range",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to browse users",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
