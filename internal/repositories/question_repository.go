package repositories

import (
	"context"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./question_repository.go -package=repomocks -destination=./mocks/question_repository.mock.go QuestionRepository

// QuestionRepository defines the read operations on questions
type QuestionRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Question, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]models.Question, error)
	MostFollowed(ctx context.Context, n int) ([]models.Question, error)
	MostLiked(ctx context.Context, n int) ([]models.Question, error)

	Author(ctx context.Context, q models.Question) (*models.User, error)
	Replies(ctx context.Context, q models.Question) ([]models.Reply, error)
	Followers(ctx context.Context, q models.Question) ([]models.User, error)
	Likers(ctx context.Context, q models.Question) ([]models.User, error)
	NumLikes(ctx context.Context, q models.Question) (int64, error)
}

// GormQuestionRepository implements QuestionRepository on gorm
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewGormQuestionRepository creates a new GormQuestionRepository
func NewGormQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db: db}
}

// FindByID retrieves a question by primary key, nil when there is none
func (r *GormQuestionRepository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	return questionByID(r.db.WithContext(ctx), id)
}

// FindByAuthorID retrieves every question asked by a user
func (r *GormQuestionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]models.Question, error) {
	return questionsByAuthorID(r.db.WithContext(ctx), authorID)
}

// MostFollowed returns the n questions with the most followers
func (r *GormQuestionRepository) MostFollowed(ctx context.Context, n int) ([]models.Question, error) {
	return mostFollowedQuestions(r.db.WithContext(ctx), n)
}

// MostLiked returns the n questions with the most likes
func (r *GormQuestionRepository) MostLiked(ctx context.Context, n int) ([]models.Question, error) {
	return mostLikedQuestions(r.db.WithContext(ctx), n)
}

func (r *GormQuestionRepository) Author(ctx context.Context, q models.Question) (*models.User, error) {
	return userByID(r.db.WithContext(ctx), q.AuthorID)
}

func (r *GormQuestionRepository) Replies(ctx context.Context, q models.Question) ([]models.Reply, error) {
	return repliesByQuestionID(r.db.WithContext(ctx), q.ID)
}

func (r *GormQuestionRepository) Followers(ctx context.Context, q models.Question) ([]models.User, error) {
	return followersForQuestionID(r.db.WithContext(ctx), q.ID)
}

func (r *GormQuestionRepository) Likers(ctx context.Context, q models.Question) ([]models.User, error) {
	return likersForQuestionID(r.db.WithContext(ctx), q.ID)
}

func (r *GormQuestionRepository) NumLikes(ctx context.Context, q models.Question) (int64, error) {
	return numLikesForQuestionID(r.db.WithContext(ctx), q.ID)
}

func questionByID(tx *gorm.DB, id int64) (*models.Question, error) {
	return findOne[models.Question](tx.Where("id = ?", id))
}

func questionsByAuthorID(tx *gorm.DB, authorID int64) ([]models.Question, error) {
	return findMany[models.Question](tx.Where("author_id = ?", authorID).Order("id"))
}
