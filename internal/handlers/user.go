package handlers

import (
	"net/http"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.FindUserByName)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/karma", h.GetAverageKarma)
	g.GET("/users/:id/questions", h.GetAuthoredQuestions)
	g.GET("/users/:id/replies", h.GetAuthoredReplies)
	g.GET("/users/:id/followed-questions", h.GetFollowedQuestions)
	g.GET("/users/:id/liked-questions", h.GetLikedQuestions)
}

type userByNameRequest struct {
	FName string `query:"fname" validate:"required"`
	LName string `query:"lname" validate:"required"`
}

func (h *UserHandler) loadUser(c echo.Context) (*models.User, error) {
	id, err := bindID(c)
	if err != nil {
		return nil, err
	}
	user, err := h.userRepository.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, internalError(err)
	}
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return user, nil
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	return respond(c, user)
}

// FindUserByName looks a user up by exact ?fname= and ?lname=
func (h *UserHandler) FindUserByName(c echo.Context) error {
	var req userByNameRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	user, err := h.userRepository.FindByName(c.Request().Context(), req.FName, req.LName)
	if err != nil {
		return internalError(err)
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return respond(c, user)
}

// GetAverageKarma returns the average likes per question the user asked
func (h *UserHandler) GetAverageKarma(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	karma, err := h.userRepository.AverageKarma(c.Request().Context(), *user)
	if err != nil {
		return internalError(err)
	}
	return respond(c, echo.Map{"user_id": user.ID, "average_karma": karma})
}

func (h *UserHandler) GetAuthoredQuestions(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	qs, err := h.userRepository.AuthoredQuestions(c.Request().Context(), *user)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}

func (h *UserHandler) GetAuthoredReplies(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	replies, err := h.userRepository.AuthoredReplies(c.Request().Context(), *user)
	if err != nil {
		return internalError(err)
	}
	return respond(c, replies)
}

func (h *UserHandler) GetFollowedQuestions(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	qs, err := h.userRepository.FollowedQuestions(c.Request().Context(), *user)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}

func (h *UserHandler) GetLikedQuestions(c echo.Context) error {
	user, err := h.loadUser(c)
	if err != nil {
		return err
	}
	qs, err := h.userRepository.LikedQuestions(c.Request().Context(), *user)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}
