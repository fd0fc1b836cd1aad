package repositories

import (
	"context"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"gorm.io/gorm"
)

// QuestionFollowRepository defines the read operations on question follows
type QuestionFollowRepository interface {
	FindByID(ctx context.Context, id int64) (*models.QuestionFollow, error)
	FollowersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error)
	FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error)
}

// GormQuestionFollowRepository implements QuestionFollowRepository on gorm
type GormQuestionFollowRepository struct {
	db *gorm.DB
}

// NewGormQuestionFollowRepository creates a new GormQuestionFollowRepository
func NewGormQuestionFollowRepository(db *gorm.DB) *GormQuestionFollowRepository {
	return &GormQuestionFollowRepository{db: db}
}

func (r *GormQuestionFollowRepository) FindByID(ctx context.Context, id int64) (*models.QuestionFollow, error) {
	return findOne[models.QuestionFollow](r.db.WithContext(ctx).Where("id = ?", id))
}

// FollowersForQuestionID lists the users following a question
func (r *GormQuestionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error) {
	return followersForQuestionID(r.db.WithContext(ctx), questionID)
}

// FollowedQuestionsForUserID lists the questions a user follows
func (r *GormQuestionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error) {
	return followedQuestionsForUserID(r.db.WithContext(ctx), userID)
}

// MostFollowedQuestions ranks questions by distinct followers, ties broken by ascending id
func (r *GormQuestionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	return mostFollowedQuestions(r.db.WithContext(ctx), n)
}

func followersForQuestionID(tx *gorm.DB, questionID int64) ([]models.User, error) {
	return findMany[models.User](tx.Model(&models.User{}).
		Select(models.UserColumns).
		Joins("INNER JOIN question_follows ON question_follows.author_id = users.id").
		Where("question_follows.question_id = ?", questionID).
		Order("users.id"))
}

func followedQuestionsForUserID(tx *gorm.DB, userID int64) ([]models.Question, error) {
	return findMany[models.Question](tx.Model(&models.Question{}).
		Select(models.QuestionColumns).
		Joins("INNER JOIN question_follows ON question_follows.question_id = questions.id").
		Where("question_follows.author_id = ?", userID).
		Order("questions.id"))
}

func mostFollowedQuestions(tx *gorm.DB, n int) ([]models.Question, error) {
	if n <= 0 {
		return []models.Question{}, nil
	}
	return findMany[models.Question](tx.Model(&models.Question{}).
		Select(models.QuestionColumns).
		Joins("INNER JOIN question_follows ON question_follows.question_id = questions.id").
		Joins("INNER JOIN users ON users.id = question_follows.author_id").
		Group(models.QuestionColumns).
		Order("COUNT(DISTINCT users.id) DESC").
		Order("questions.id ASC").
		Limit(n))
}
