package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReplyHandler handles HTTP requests related to replies
type ReplyHandler struct {
	replyRepository repositories.ReplyRepository
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(replyRepo repositories.ReplyRepository) *ReplyHandler {
	return &ReplyHandler{replyRepository: replyRepo}
}

// RegisterReplyRoutes registers reply-related routes
func (h *ReplyHandler) RegisterReplyRoutes(g *echo.Group) {
	g.GET("/replies", h.ListReplies)
	g.GET("/replies/:id", h.GetReply)
	g.GET("/replies/:id/author", h.GetAuthor)
	g.GET("/replies/:id/question", h.GetQuestion)
	g.GET("/replies/:id/parent", h.GetParentReply)
	g.GET("/replies/:id/children", h.GetChildReplies)
}

// listRepliesRequest filters by exactly one of ?user_id= or ?question_id=
type listRepliesRequest struct {
	UserID     int64 `query:"user_id" validate:"required_without=QuestionID,gte=0"`
	QuestionID int64 `query:"question_id" validate:"excluded_with=UserID,gte=0"`
}

func (h *ReplyHandler) loadReply(c echo.Context) (*models.Reply, error) {
	id, err := bindID(c)
	if err != nil {
		return nil, err
	}
	reply, err := h.replyRepository.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, internalError(err)
	}
	if reply == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Reply not found")
	}
	return reply, nil
}

func (h *ReplyHandler) GetReply(c echo.Context) error {
	reply, err := h.loadReply(c)
	if err != nil {
		return err
	}
	return respond(c, reply)
}

// ListReplies lists the replies of a user or of a question
func (h *ReplyHandler) ListReplies(c echo.Context) error {
	var req listRepliesRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var (
		replies []models.Reply
		err     error
	)
	if req.UserID != 0 {
		replies, err = h.replyRepository.FindByUserID(ctx, req.UserID)
	} else {
		replies, err = h.replyRepository.FindByQuestionID(ctx, req.QuestionID)
	}
	if err != nil {
		return internalError(err)
	}
	return respond(c, replies)
}

func (h *ReplyHandler) GetAuthor(c echo.Context) error {
	reply, err := h.loadReply(c)
	if err != nil {
		return err
	}
	author, err := h.replyRepository.Author(c.Request().Context(), *reply)
	if err != nil {
		return internalError(err)
	}
	if author == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}
	return respond(c, author)
}

func (h *ReplyHandler) GetQuestion(c echo.Context) error {
	reply, err := h.loadReply(c)
	if err != nil {
		return err
	}
	q, err := h.replyRepository.Question(c.Request().Context(), *reply)
	if err != nil {
		return internalError(err)
	}
	if q == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Question not found")
	}
	return respond(c, q)
}

// GetParentReply returns the reply this one answers; 409 for a top-level reply
func (h *ReplyHandler) GetParentReply(c echo.Context) error {
	reply, err := h.loadReply(c)
	if err != nil {
		return err
	}
	parent, err := h.replyRepository.ParentReply(c.Request().Context(), *reply)
	if errors.Is(err, repositories.ErrNoParent) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return internalError(err)
	}
	if parent == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Parent reply not found")
	}
	return respond(c, parent)
}

func (h *ReplyHandler) GetChildReplies(c echo.Context) error {
	reply, err := h.loadReply(c)
	if err != nil {
		return err
	}
	children, err := h.replyRepository.ChildReplies(c.Request().Context(), *reply)
	if err != nil {
		return internalError(err)
	}
	return respond(c, children)
}
