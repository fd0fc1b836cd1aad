package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./user_repository.go -package=repomocks -destination=./mocks/user_repository.mock.go UserRepository

// UserRepository defines the read operations on users
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByName(ctx context.Context, fname, lname string) (*models.User, error)

	AverageKarma(ctx context.Context, u models.User) (float64, error)
	FollowedQuestions(ctx context.Context, u models.User) ([]models.Question, error)
	AuthoredQuestions(ctx context.Context, u models.User) ([]models.Question, error)
	AuthoredReplies(ctx context.Context, u models.User) ([]models.Reply, error)
	LikedQuestions(ctx context.Context, u models.User) ([]models.Question, error)
}

// GormUserRepository implements UserRepository on gorm
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by ID, nil when there is none
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return userByID(r.db.WithContext(ctx), id)
}

// FindByName retrieves the user matching both first and last name exactly
func (r *GormUserRepository) FindByName(ctx context.Context, fname, lname string) (*models.User, error) {
	return findOne[models.User](r.db.WithContext(ctx).
		Where("fname = ? AND lname = ?", fname, lname).
		Order("id"))
}

// averageKarmaSQL averages the distinct existing likers per question the user asked.
// A like counts the same way here as in the like count of a single question.
const averageKarmaSQL = `
SELECT
	COALESCE(AVG(per_question.likers), 0.0) AS karma
FROM (
	SELECT
		questions.id, COUNT(DISTINCT users.id) * 1.0 AS likers
	FROM
		questions
	LEFT OUTER JOIN
		question_likes ON question_likes.question_id = questions.id
	LEFT OUTER JOIN
		users ON users.id = question_likes.user_id
	WHERE
		questions.author_id = ?
	GROUP BY
		questions.id
) AS per_question`

// AverageKarma is the mean number of likes per question the user authored; 0 without questions.
func (r *GormUserRepository) AverageKarma(ctx context.Context, u models.User) (float64, error) {
	var res struct {
		Karma float64 `gorm:"column:karma"`
	}
	if err := r.db.WithContext(ctx).Raw(averageKarmaSQL, u.ID).Scan(&res).Error; err != nil {
		return 0, fmt.Errorf("average karma of user %d: %w", u.ID, err)
	}
	return res.Karma, nil
}

func (r *GormUserRepository) FollowedQuestions(ctx context.Context, u models.User) ([]models.Question, error) {
	return followedQuestionsForUserID(r.db.WithContext(ctx), u.ID)
}

func (r *GormUserRepository) AuthoredQuestions(ctx context.Context, u models.User) ([]models.Question, error) {
	return questionsByAuthorID(r.db.WithContext(ctx), u.ID)
}

func (r *GormUserRepository) AuthoredReplies(ctx context.Context, u models.User) ([]models.Reply, error) {
	return repliesByUserID(r.db.WithContext(ctx), u.ID)
}

func (r *GormUserRepository) LikedQuestions(ctx context.Context, u models.User) ([]models.Question, error) {
	return likedQuestionsForUserID(r.db.WithContext(ctx), u.ID)
}

func userByID(tx *gorm.DB, id int64) (*models.User, error) {
	return findOne[models.User](tx.Where("id = ?", id))
}
