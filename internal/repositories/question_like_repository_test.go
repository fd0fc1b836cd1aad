package repositories

import (
	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/anonto42/qa-forum/backend/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *RepositorySuite) TestQuestionLike_FindByID() {
	t := s.T()
	l, err := s.repos.Likes.FindByID(s.ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, &models.QuestionLike{ID: 4, QuestionID: 3, UserID: 1, Likes: 1}, l)

	l, err = s.repos.Likes.FindByID(s.ctx, 44)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func (s *RepositorySuite) TestQuestionLike_LikersAndLiked() {
	t := s.T()
	users, err := s.repos.Likes.LikersForQuestionID(s.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, userIDs(users))

	qs, err := s.repos.Likes.LikedQuestionsForUserID(s.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, questionIDs(qs))

	qs, err = s.repos.Likes.LikedQuestionsForUserID(s.ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func (s *RepositorySuite) TestQuestionLike_NumLikes() {
	testCases := map[string]struct {
		questionID int64
		want       int64
	}{
		"three likes":      {questionID: 1, want: 3},
		"one like":         {questionID: 3, want: 1},
		"no likes":         {questionID: 2, want: 0},
		"unknown question": {questionID: 404, want: 0},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			n, err := s.repos.Likes.NumLikesForQuestionID(s.ctx, tc.questionID)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.want, n)
		})
	}
}

func (s *RepositorySuite) TestQuestionLike_MostLiked() {
	t := s.T()
	qs, err := s.repos.Likes.MostLikedQuestions(s.ctx, 10)
	require.NoError(t, err)
	// question 2 has no likes and is not ranked at all
	assert.Equal(t, []int64{1, 3}, questionIDs(qs))

	qs, err = s.repos.Likes.MostLikedQuestions(s.ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

// Ada asks one question that two different users like.
func (s *RepositorySuite) TestQuestionLike_TwoLikesScenario() {
	t := s.T()
	db := ioc.InitDB(t)
	require.NoError(t, db.Create(&[]models.User{
		{ID: 1, FName: "Ada", LName: "Lovelace"},
		{ID: 2, FName: "Grace", LName: "Hopper"},
		{ID: 3, FName: "Alan", LName: "Turing"},
	}).Error)
	require.NoError(t, db.Create(&models.Question{ID: 1, Title: "T", Body: "B", AuthorID: 1}).Error)
	require.NoError(t, db.Create(&[]models.QuestionLike{
		{ID: 1, QuestionID: 1, UserID: 2, Likes: 1},
		{ID: 2, QuestionID: 1, UserID: 3, Likes: 1},
	}).Error)
	repos := NewRepositories(db)

	q, err := repos.Questions.FindByID(s.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, q)

	n, err := repos.Questions.NumLikes(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	top, err := repos.Questions.MostLiked(s.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Question{*q}, top)
}
