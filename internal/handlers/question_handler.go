package handlers

import (
	"net/http"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// QuestionHandler handles HTTP requests related to questions
type QuestionHandler struct {
	questionRepository repositories.QuestionRepository
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionRepo repositories.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{questionRepository: questionRepo}
}

// RegisterQuestionRoutes registers question-related routes
func (h *QuestionHandler) RegisterQuestionRoutes(g *echo.Group) {
	g.GET("/questions", h.GetQuestionsByAuthor)
	g.GET("/questions/most-followed", h.GetMostFollowed)
	g.GET("/questions/most-liked", h.GetMostLiked)
	g.GET("/questions/:id", h.GetQuestion)
	g.GET("/questions/:id/author", h.GetAuthor)
	g.GET("/questions/:id/replies", h.GetReplies)
	g.GET("/questions/:id/followers", h.GetFollowers)
	g.GET("/questions/:id/likers", h.GetLikers)
	g.GET("/questions/:id/likes", h.GetNumLikes)
}

type questionsByAuthorRequest struct {
	AuthorID int64 `query:"author_id" validate:"required,gt=0"`
}

// loadQuestion resolves :id into a question or a 404
func (h *QuestionHandler) loadQuestion(c echo.Context) (*models.Question, error) {
	id, err := bindID(c)
	if err != nil {
		return nil, err
	}
	q, err := h.questionRepository.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, internalError(err)
	}
	if q == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Question not found")
	}
	return q, nil
}

// GetQuestion retrieves a question by ID
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	return respond(c, q)
}

// GetQuestionsByAuthor lists the questions asked by ?author_id=
func (h *QuestionHandler) GetQuestionsByAuthor(c echo.Context) error {
	var req questionsByAuthorRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}
	qs, err := h.questionRepository.FindByAuthorID(c.Request().Context(), req.AuthorID)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}

// GetMostFollowed ranks questions by follower count
func (h *QuestionHandler) GetMostFollowed(c echo.Context) error {
	n, err := bindRanking(c)
	if err != nil {
		return err
	}
	qs, err := h.questionRepository.MostFollowed(c.Request().Context(), n)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}

// GetMostLiked ranks questions by like count
func (h *QuestionHandler) GetMostLiked(c echo.Context) error {
	n, err := bindRanking(c)
	if err != nil {
		return err
	}
	qs, err := h.questionRepository.MostLiked(c.Request().Context(), n)
	if err != nil {
		return internalError(err)
	}
	return respond(c, qs)
}

func (h *QuestionHandler) GetAuthor(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	author, err := h.questionRepository.Author(c.Request().Context(), *q)
	if err != nil {
		return internalError(err)
	}
	if author == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}
	return respond(c, author)
}

func (h *QuestionHandler) GetReplies(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	replies, err := h.questionRepository.Replies(c.Request().Context(), *q)
	if err != nil {
		return internalError(err)
	}
	return respond(c, replies)
}

func (h *QuestionHandler) GetFollowers(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	users, err := h.questionRepository.Followers(c.Request().Context(), *q)
	if err != nil {
		return internalError(err)
	}
	return respond(c, users)
}

func (h *QuestionHandler) GetLikers(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	users, err := h.questionRepository.Likers(c.Request().Context(), *q)
	if err != nil {
		return internalError(err)
	}
	return respond(c, users)
}

// GetNumLikes returns the like count of a question
func (h *QuestionHandler) GetNumLikes(c echo.Context) error {
	q, err := h.loadQuestion(c)
	if err != nil {
		return err
	}
	n, err := h.questionRepository.NumLikes(c.Request().Context(), *q)
	if err != nil {
		return internalError(err)
	}
	return respond(c, echo.Map{"question_id": q.ID, "likes": n})
}
