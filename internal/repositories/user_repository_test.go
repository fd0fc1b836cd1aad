package repositories

import (
	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *RepositorySuite) TestUser_FindByID() {
	t := s.T()
	u, err := s.repos.Users.FindByID(s.ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: 2, FName: "Grace", LName: "Hopper"}, u)

	u, err = s.repos.Users.FindByID(s.ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func (s *RepositorySuite) TestUser_FindByName() {
	testCases := map[string]struct {
		fname, lname string
		wantID       int64
		wantNil      bool
	}{
		"full name":       {fname: "Alan", lname: "Turing", wantID: 3},
		"first name only": {fname: "Alan", lname: "Kay", wantNil: true},
		"case differs":    {fname: "alan", lname: "turing", wantNil: true},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			u, err := s.repos.Users.FindByName(s.ctx, tc.fname, tc.lname)
			require.NoError(s.T(), err)
			if tc.wantNil {
				assert.Nil(s.T(), u)
				return
			}
			require.NotNil(s.T(), u)
			assert.Equal(s.T(), tc.wantID, u.ID)
		})
	}
}

func (s *RepositorySuite) TestUser_AverageKarma() {
	testCases := map[string]struct {
		userID int64
		want   float64
	}{
		// 3 likes over questions 1 and 2
		"two questions": {userID: 1, want: 1.5},
		"one question":  {userID: 2, want: 1},
		"no questions":  {userID: 4, want: 0},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			karma, err := s.repos.Users.AverageKarma(s.ctx, models.User{ID: tc.userID})
			require.NoError(s.T(), err)
			assert.InDelta(s.T(), tc.want, karma, 1e-9)
		})
	}
}

func (s *RepositorySuite) TestUser_AverageKarmaIgnoresMissingLikers() {
	t := s.T()
	// rows written behind the foreign keys' back, by whoever provisions the database
	require.NoError(t, s.db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, s.db.Exec(
		"INSERT INTO question_likes (id, question_id, user_id, likes) VALUES (9, 2, 99, 1)").Error)

	ada := models.User{ID: 1, FName: "Ada", LName: "Lovelace"}
	var total int64
	for _, id := range []int64{1, 2} {
		n, err := s.repos.Likes.NumLikesForQuestionID(s.ctx, id)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, int64(3), total)

	karma, err := s.repos.Users.AverageKarma(s.ctx, ada)
	require.NoError(t, err)
	assert.InDelta(t, float64(total)/2, karma, 1e-9)
}

func (s *RepositorySuite) TestUser_Traversals() {
	t := s.T()
	ada := models.User{ID: 1, FName: "Ada", LName: "Lovelace"}

	followed, err := s.repos.Users.FollowedQuestions(s.ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, questionIDs(followed))

	authored, err := s.repos.Users.AuthoredQuestions(s.ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, questionIDs(authored))

	replies, err := s.repos.Users.AuthoredReplies(s.ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, replyIDs(replies))

	liked, err := s.repos.Users.LikedQuestions(s.ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, questionIDs(liked))

	edsger := models.User{ID: 4}
	followed, err = s.repos.Users.FollowedQuestions(s.ctx, edsger)
	require.NoError(t, err)
	assert.NotNil(t, followed)
	assert.Empty(t, followed)
}
