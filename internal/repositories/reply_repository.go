package repositories

import (
	"context"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./reply_repository.go -package=repomocks -destination=./mocks/reply_repository.mock.go ReplyRepository

// ReplyRepository defines the read operations on replies
type ReplyRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]models.Reply, error)

	Author(ctx context.Context, r models.Reply) (*models.User, error)
	Question(ctx context.Context, r models.Reply) (*models.Question, error)
	ParentReply(ctx context.Context, r models.Reply) (*models.Reply, error)
	ChildReplies(ctx context.Context, r models.Reply) ([]models.Reply, error)
}

// GormReplyRepository implements ReplyRepository on gorm
type GormReplyRepository struct {
	db *gorm.DB
}

// NewGormReplyRepository creates a new GormReplyRepository
func NewGormReplyRepository(db *gorm.DB) *GormReplyRepository {
	return &GormReplyRepository{db: db}
}

// FindByID retrieves a reply by ID, nil when there is none
func (r *GormReplyRepository) FindByID(ctx context.Context, id int64) (*models.Reply, error) {
	return replyByID(r.db.WithContext(ctx), id)
}

// FindByUserID retrieves every reply written by a user
func (r *GormReplyRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Reply, error) {
	return repliesByUserID(r.db.WithContext(ctx), userID)
}

// FindByQuestionID retrieves every reply of a question, nested ones included
func (r *GormReplyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]models.Reply, error) {
	return repliesByQuestionID(r.db.WithContext(ctx), questionID)
}

func (r *GormReplyRepository) Author(ctx context.Context, reply models.Reply) (*models.User, error) {
	return userByID(r.db.WithContext(ctx), reply.UserID)
}

func (r *GormReplyRepository) Question(ctx context.Context, reply models.Reply) (*models.Question, error) {
	return questionByID(r.db.WithContext(ctx), reply.QuestionID)
}

// ParentReply returns the reply this one answers. A top-level reply yields ErrNoParent.
// A parent outside the reply's own question is not followed, mirroring ChildReplies.
func (r *GormReplyRepository) ParentReply(ctx context.Context, reply models.Reply) (*models.Reply, error) {
	if reply.IsRoot() {
		return nil, ErrNoParent
	}
	return findOne[models.Reply](r.db.WithContext(ctx).
		Where("id = ? AND question_id = ?", *reply.ParentID, reply.QuestionID))
}

// ChildReplies returns the direct answers to a reply within its own question
func (r *GormReplyRepository) ChildReplies(ctx context.Context, reply models.Reply) ([]models.Reply, error) {
	return findMany[models.Reply](r.db.WithContext(ctx).
		Where("question_id = ? AND parent_id = ?", reply.QuestionID, reply.ID).
		Order("id"))
}

func replyByID(tx *gorm.DB, id int64) (*models.Reply, error) {
	return findOne[models.Reply](tx.Where("id = ?", id))
}

func repliesByUserID(tx *gorm.DB, userID int64) ([]models.Reply, error) {
	return findMany[models.Reply](tx.Where("user_id = ?", userID).Order("id"))
}

func repliesByQuestionID(tx *gorm.DB, questionID int64) ([]models.Reply, error) {
	return findMany[models.Reply](tx.Where("question_id = ?", questionID).Order("id"))
}
