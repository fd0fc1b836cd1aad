package handlers

import (
	"net/http"

	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles HTTP requests on question follow records
type FollowHandler struct {
	followRepository repositories.QuestionFollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.QuestionFollowRepository) *FollowHandler {
	return &FollowHandler{followRepository: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/question-follows/:id", h.GetFollow)
}

func (h *FollowHandler) GetFollow(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	follow, err := h.followRepository.FindByID(c.Request().Context(), id)
	if err != nil {
		return internalError(err)
	}
	if follow == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Follow not found")
	}
	return respond(c, follow)
}
