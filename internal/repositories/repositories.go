// Package repositories is the read-only data-access layer of the forum.
//
// Every repository works on an injected *gorm.DB. Single-entity finders return
// (nil, nil) when no row matches; collection finders return an empty, non-nil
// slice. Entity structs are snapshots: nothing here writes back to storage.
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNoParent is returned when the parent of a top-level reply is requested.
var ErrNoParent = errors.New("reply does not have a parent")

// Repositories bundles the five repositories built on one handle.
type Repositories struct {
	Questions QuestionRepository
	Users     UserRepository
	Replies   ReplyRepository
	Follows   QuestionFollowRepository
	Likes     QuestionLikeRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Questions: NewGormQuestionRepository(db),
		Users:     NewGormUserRepository(db),
		Replies:   NewGormReplyRepository(db),
		Follows:   NewGormQuestionFollowRepository(db),
		Likes:     NewGormQuestionLikeRepository(db),
	}
}

// findOne decodes at most one row of T, mapping "no rows" to a nil result.
func findOne[T any](tx *gorm.DB) (*T, error) {
	var rec T
	err := tx.Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %T: %w", rec, err)
	}
	return &rec, nil
}

// findMany decodes every matching row of T. The result is never nil.
func findMany[T any](tx *gorm.DB) ([]T, error) {
	recs := make([]T, 0)
	if err := tx.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("find []%T: %w", *new(T), err)
	}
	if recs == nil {
		recs = make([]T, 0)
	}
	return recs, nil
}
