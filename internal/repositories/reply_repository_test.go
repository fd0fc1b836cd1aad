package repositories

import (
	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *RepositorySuite) TestReply_Finders() {
	t := s.T()
	r, err := s.repos.Replies.FindByID(s.ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &models.Reply{ID: 2, QuestionID: 1, UserID: 1, ParentID: ptr(1), Body: "first child"}, r)

	r, err = s.repos.Replies.FindByID(s.ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, r)

	rs, err := s.repos.Replies.FindByUserID(s.ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 6}, replyIDs(rs))

	rs, err = s.repos.Replies.FindByQuestionID(s.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, replyIDs(rs))

	rs, err = s.repos.Replies.FindByQuestionID(s.ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, rs)
	assert.Empty(t, rs)
}

func (s *RepositorySuite) TestReply_ParentReply() {
	testCases := map[string]struct {
		replyID    int64
		wantParent int64
		wantErr    error
	}{
		"nested reply": {replyID: 4, wantParent: 2},
		"root reply":   {replyID: 1, wantErr: ErrNoParent},

		// reply 6 (question 3) points at reply 1 of question 1
		"parent in another question": {replyID: 6},
	}

	for name, tc := range testCases {
		s.Run(name, func() {
			r, err := s.repos.Replies.FindByID(s.ctx, tc.replyID)
			require.NoError(s.T(), err)
			require.NotNil(s.T(), r)

			parent, err := s.repos.Replies.ParentReply(s.ctx, *r)
			if tc.wantErr != nil {
				assert.ErrorIs(s.T(), err, tc.wantErr)
				assert.Nil(s.T(), parent)
				return
			}
			require.NoError(s.T(), err)
			if tc.wantParent == 0 {
				assert.Nil(s.T(), parent)
				return
			}
			require.NotNil(s.T(), parent)
			assert.Equal(s.T(), tc.wantParent, parent.ID)
		})
	}
}

func (s *RepositorySuite) TestReply_ChildReplies() {
	t := s.T()
	root, err := s.repos.Replies.FindByID(s.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, root)

	// reply 6 names reply 1 as parent but belongs to question 3
	children, err := s.repos.Replies.ChildReplies(s.ctx, *root)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, replyIDs(children))

	leaf, err := s.repos.Replies.FindByID(s.ctx, 3)
	require.NoError(t, err)
	children, err = s.repos.Replies.ChildReplies(s.ctx, *leaf)
	require.NoError(t, err)
	assert.NotNil(t, children)
	assert.Empty(t, children)
}

func (s *RepositorySuite) TestReply_AuthorAndQuestion() {
	t := s.T()
	r := models.Reply{ID: 5, QuestionID: 3, UserID: 1}

	author, err := s.repos.Replies.Author(s.ctx, r)
	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Equal(t, "Ada", author.FName)

	q, err := s.repos.Replies.Question(s.ctx, r)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Compilers", q.Title)
}
