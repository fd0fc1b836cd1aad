package repositories

import (
	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *RepositorySuite) TestQuestion_FindByID() {
	testCases := map[string]struct {
		id      int64
		wantQue *models.Question
	}{
		"found": {
			id:      1,
			wantQue: &models.Question{ID: 1, Title: "T", Body: "B", AuthorID: 1},
		},
		"missing": {
			id:      404,
			wantQue: nil,
		},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			q, err := s.repos.Questions.FindByID(s.ctx, tc.id)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.wantQue, q)
		})
	}
}

func (s *RepositorySuite) TestQuestion_FindByAuthorID() {
	t := s.T()
	qs, err := s.repos.Questions.FindByAuthorID(s.ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, questionIDs(qs))

	qs, err = s.repos.Questions.FindByAuthorID(s.ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func (s *RepositorySuite) TestQuestion_MostFollowedAndLiked() {
	t := s.T()
	qs, err := s.repos.Questions.MostFollowed(s.ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, questionIDs(qs))

	qs, err = s.repos.Questions.MostLiked(s.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, questionIDs(qs))
}

func (s *RepositorySuite) TestQuestion_Traversals() {
	t := s.T()
	q, err := s.repos.Questions.FindByID(s.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, q)

	author, err := s.repos.Questions.Author(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: 1, FName: "Ada", LName: "Lovelace"}, author)

	replies, err := s.repos.Questions.Replies(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, replyIDs(replies))

	followers, err := s.repos.Questions.Followers(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, userIDs(followers))

	likers, err := s.repos.Questions.Likers(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, userIDs(likers))

	n, err := s.repos.Questions.NumLikes(s.ctx, *q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func (s *RepositorySuite) TestQuestion_TraversalsWithoutRows() {
	t := s.T()
	q := models.Question{ID: 2, Title: "Engines", AuthorID: 1}

	replies, err := s.repos.Questions.Replies(s.ctx, q)
	require.NoError(t, err)
	assert.NotNil(t, replies)
	assert.Empty(t, replies)

	likers, err := s.repos.Questions.Likers(s.ctx, q)
	require.NoError(t, err)
	assert.NotNil(t, likers)
	assert.Empty(t, likers)

	n, err := s.repos.Questions.NumLikes(s.ctx, q)
	require.NoError(t, err)
	assert.Zero(t, n)
}
