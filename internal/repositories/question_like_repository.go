package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"gorm.io/gorm"
)

// QuestionLikeRepository defines the read operations on question likes
type QuestionLikeRepository interface {
	FindByID(ctx context.Context, id int64) (*models.QuestionLike, error)
	LikersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error)
	LikedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error)
	NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error)
	MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error)
}

// GormQuestionLikeRepository implements QuestionLikeRepository on gorm
type GormQuestionLikeRepository struct {
	db *gorm.DB
}

// NewGormQuestionLikeRepository creates a new GormQuestionLikeRepository
func NewGormQuestionLikeRepository(db *gorm.DB) *GormQuestionLikeRepository {
	return &GormQuestionLikeRepository{db: db}
}

func (r *GormQuestionLikeRepository) FindByID(ctx context.Context, id int64) (*models.QuestionLike, error) {
	return findOne[models.QuestionLike](r.db.WithContext(ctx).Where("id = ?", id))
}

// LikersForQuestionID lists the users who liked a question
func (r *GormQuestionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error) {
	return likersForQuestionID(r.db.WithContext(ctx), questionID)
}

// LikedQuestionsForUserID lists the questions a user liked
func (r *GormQuestionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error) {
	return likedQuestionsForUserID(r.db.WithContext(ctx), userID)
}

// NumLikesForQuestionID counts the users who liked a question; 0 when nobody did
func (r *GormQuestionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	return numLikesForQuestionID(r.db.WithContext(ctx), questionID)
}

// MostLikedQuestions ranks questions by distinct likers, ties broken by ascending id
func (r *GormQuestionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	return mostLikedQuestions(r.db.WithContext(ctx), n)
}

func likersForQuestionID(tx *gorm.DB, questionID int64) ([]models.User, error) {
	return findMany[models.User](tx.Model(&models.User{}).
		Select(models.UserColumns).
		Joins("INNER JOIN question_likes ON question_likes.user_id = users.id").
		Where("question_likes.question_id = ?", questionID).
		Order("users.id"))
}

func likedQuestionsForUserID(tx *gorm.DB, userID int64) ([]models.Question, error) {
	return findMany[models.Question](tx.Model(&models.Question{}).
		Select(models.QuestionColumns).
		Joins("INNER JOIN question_likes ON question_likes.question_id = questions.id").
		Where("question_likes.user_id = ?", userID).
		Order("questions.id"))
}

func numLikesForQuestionID(tx *gorm.DB, questionID int64) (int64, error) {
	var count int64
	err := tx.Model(&models.QuestionLike{}).
		Joins("INNER JOIN users ON users.id = question_likes.user_id").
		Where("question_likes.question_id = ?", questionID).
		Distinct("question_likes.user_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count likes of question %d: %w", questionID, err)
	}
	return count, nil
}

func mostLikedQuestions(tx *gorm.DB, n int) ([]models.Question, error) {
	if n <= 0 {
		return []models.Question{}, nil
	}
	return findMany[models.Question](tx.Model(&models.Question{}).
		Select(models.QuestionColumns).
		Joins("INNER JOIN question_likes ON question_likes.question_id = questions.id").
		Joins("INNER JOIN users ON users.id = question_likes.user_id").
		Group(models.QuestionColumns).
		Order("COUNT(DISTINCT users.id) DESC").
		Order("questions.id ASC").
		Limit(n))
}
