package repositories

import (
	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *RepositorySuite) TestQuestionFollow_FindByID() {
	t := s.T()
	f, err := s.repos.Follows.FindByID(s.ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, &models.QuestionFollow{ID: 4, QuestionID: 3, AuthorID: 1}, f)

	f, err = s.repos.Follows.FindByID(s.ctx, 40)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func (s *RepositorySuite) TestQuestionFollow_Followers() {
	t := s.T()
	users, err := s.repos.Follows.FollowersForQuestionID(s.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 1, FName: "Ada", LName: "Lovelace"},
		{ID: 2, FName: "Grace", LName: "Hopper"},
	}, users)

	users, err = s.repos.Follows.FollowersForQuestionID(s.ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func (s *RepositorySuite) TestQuestionFollow_FollowedQuestions() {
	t := s.T()
	qs, err := s.repos.Follows.FollowedQuestionsForUserID(s.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, questionIDs(qs))

	qs, err = s.repos.Follows.FollowedQuestionsForUserID(s.ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func (s *RepositorySuite) TestQuestionFollow_MostFollowed() {
	testCases := map[string]struct {
		n    int
		want []int64
	}{
		// questions 1 and 3 tie on two followers; the lower id wins
		"top one":       {n: 1, want: []int64{1}},
		"tie on count":  {n: 2, want: []int64{1, 3}},
		"n above total": {n: 10, want: []int64{1, 3, 2}},
		"zero":          {n: 0, want: []int64{}},
		"negative":      {n: -1, want: []int64{}},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			qs, err := s.repos.Follows.MostFollowedQuestions(s.ctx, tc.n)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.want, questionIDs(qs))
			assert.LessOrEqual(s.T(), len(qs), max(tc.n, 0))
		})
	}
}

func (s *RepositorySuite) TestQuestionFollow_MostFollowedReturnsFullRows() {
	qs, err := s.repos.Follows.MostFollowedQuestions(s.ctx, 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []models.Question{{ID: 1, Title: "T", Body: "B", AuthorID: 1}}, qs)
}
