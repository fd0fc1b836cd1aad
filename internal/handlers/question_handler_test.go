package handlers_test

import (
	"net/http"
	"testing"

	"github.com/anonto42/qa-forum/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionHandler_GetQuestion(t *testing.T) {
	e, _ := newServer(t)

	testCases := map[string]struct {
		target   string
		wantCode int
		want     *models.Question
	}{
		"found": {
			target:   "/api/v1/questions/1",
			wantCode: http.StatusOK,
			want:     &models.Question{ID: 1, Title: "T", Body: "B", AuthorID: 1},
		},
		"not found":   {target: "/api/v1/questions/404", wantCode: http.StatusNotFound},
		"non-numeric": {target: "/api/v1/questions/abc", wantCode: http.StatusBadRequest},
		"zero id":     {target: "/api/v1/questions/0", wantCode: http.StatusBadRequest},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := get(t, e, tc.target)
			require.Equal(t, tc.wantCode, rec.Code)
			if tc.want == nil {
				return
			}
			var q models.Question
			decode(t, rec, &q)
			assert.Equal(t, *tc.want, q)
		})
	}
}

func TestQuestionHandler_GetQuestionsByAuthor(t *testing.T) {
	e, _ := newServer(t)

	rec := get(t, e, "/api/v1/questions?author_id=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var qs []models.Question
	decode(t, rec, &qs)
	require.Len(t, qs, 2)
	assert.Equal(t, int64(1), qs[0].ID)
	assert.Equal(t, int64(2), qs[1].ID)

	rec = get(t, e, "/api/v1/questions?author_id=4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())

	rec = get(t, e, "/api/v1/questions")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestionHandler_Rankings(t *testing.T) {
	e, _ := newServer(t)

	testCases := map[string]struct {
		target   string
		wantCode int
		wantIDs  []int64
	}{
		"most followed": {
			target:   "/api/v1/questions/most-followed?n=2",
			wantCode: http.StatusOK,
			wantIDs:  []int64{1, 3},
		},
		"most followed default size": {
			target:   "/api/v1/questions/most-followed",
			wantCode: http.StatusOK,
			wantIDs:  []int64{1, 3, 2},
		},
		"most liked": {
			target:   "/api/v1/questions/most-liked?n=1",
			wantCode: http.StatusOK,
			wantIDs:  []int64{1},
		},
		"zero": {
			target:   "/api/v1/questions/most-liked?n=0",
			wantCode: http.StatusOK,
			wantIDs:  []int64{},
		},
		"too many": {
			target:   "/api/v1/questions/most-liked?n=1000",
			wantCode: http.StatusBadRequest,
		},
		"negative": {
			target:   "/api/v1/questions/most-followed?n=-1",
			wantCode: http.StatusBadRequest,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := get(t, e, tc.target)
			require.Equal(t, tc.wantCode, rec.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var qs []models.Question
			decode(t, rec, &qs)
			ids := make([]int64, 0, len(qs))
			for _, q := range qs {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestQuestionHandler_Traversals(t *testing.T) {
	e, _ := newServer(t)

	rec := get(t, e, "/api/v1/questions/3/author")
	require.Equal(t, http.StatusOK, rec.Code)
	var author models.User
	decode(t, rec, &author)
	assert.Equal(t, models.User{ID: 2, FName: "Grace", LName: "Hopper"}, author)

	rec = get(t, e, "/api/v1/questions/1/replies")
	require.Equal(t, http.StatusOK, rec.Code)
	var replies []models.Reply
	decode(t, rec, &replies)
	assert.Len(t, replies, 4)

	rec = get(t, e, "/api/v1/questions/1/followers")
	require.Equal(t, http.StatusOK, rec.Code)
	var followers []models.User
	decode(t, rec, &followers)
	assert.Len(t, followers, 2)

	rec = get(t, e, "/api/v1/questions/2/likers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())

	rec = get(t, e, "/api/v1/questions/1/likes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"question_id":1,"likes":3}}`, rec.Body.String())

	rec = get(t, e, "/api/v1/questions/404/likes")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
