package handlers

import (
	"net/http"

	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests on question like records
type LikeHandler struct {
	likeRepository repositories.QuestionLikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.QuestionLikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.GET("/question-likes/:id", h.GetLike)
}

func (h *LikeHandler) GetLike(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	like, err := h.likeRepository.FindByID(c.Request().Context(), id)
	if err != nil {
		return internalError(err)
	}
	if like == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}
	return respond(c, like)
}
