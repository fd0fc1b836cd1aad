package ioc

import (
	"testing"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr(v int64) *int64 { return &v }

// SeedForum loads a small forum:
//
//	question 1 (Ada): followed by 2,3; liked by 2,3,4; reply tree 1 -> {2 -> {4}, 3}
//	question 2 (Ada): followed by 3; no likes, no replies
//	question 3 (Grace): followed by 1,2; liked by 1; replies 5 and 6 (6 points at reply 1)
//	user 4 (Edsger) asked nothing
func SeedForum(t testing.TB, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]models.User{
		{ID: 1, FName: "Ada", LName: "Lovelace"},
		{ID: 2, FName: "Grace", LName: "Hopper"},
		{ID: 3, FName: "Alan", LName: "Turing"},
		{ID: 4, FName: "Edsger", LName: "Dijkstra"},
	}).Error)
	require.NoError(t, db.Create(&[]models.Question{
		{ID: 1, Title: "T", Body: "B", AuthorID: 1},
		{ID: 2, Title: "Engines", Body: "Can it weave algebra?", AuthorID: 1},
		{ID: 3, Title: "Compilers", Body: "Why not English?", AuthorID: 2},
	}).Error)
	require.NoError(t, db.Create(&[]models.QuestionFollow{
		{ID: 1, QuestionID: 1, AuthorID: 2},
		{ID: 2, QuestionID: 1, AuthorID: 3},
		{ID: 3, QuestionID: 2, AuthorID: 3},
		{ID: 4, QuestionID: 3, AuthorID: 1},
		{ID: 5, QuestionID: 3, AuthorID: 2},
	}).Error)
	require.NoError(t, db.Create(&[]models.QuestionLike{
		{ID: 1, QuestionID: 1, UserID: 2, Likes: 1},
		{ID: 2, QuestionID: 1, UserID: 3, Likes: 1},
		{ID: 3, QuestionID: 1, UserID: 4, Likes: 1},
		{ID: 4, QuestionID: 3, UserID: 1, Likes: 1},
	}).Error)
	require.NoError(t, db.Create(&[]models.Reply{
		{ID: 1, QuestionID: 1, UserID: 2, Body: "root"},
		{ID: 2, QuestionID: 1, UserID: 1, ParentID: ptr(1), Body: "first child"},
		{ID: 3, QuestionID: 1, UserID: 3, ParentID: ptr(1), Body: "second child"},
		{ID: 4, QuestionID: 1, UserID: 2, ParentID: ptr(2), Body: "grandchild"},
		{ID: 5, QuestionID: 3, UserID: 1, Body: "other root"},
		{ID: 6, QuestionID: 3, UserID: 2, ParentID: ptr(1), Body: "stray"},
	}).Error)
}
