package models

// QuestionLike records one user's like on a question.
// Like counts are derived by counting these rows; Likes is the stored column as-is.
type QuestionLike struct {
	ID         int64 `json:"id" gorm:"column:id;primaryKey"`
	QuestionID int64 `json:"question_id" gorm:"column:question_id;uniqueIndex:idx_question_liker"`
	UserID     int64 `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_question_liker"`
	Likes      int64 `json:"likes" gorm:"column:likes;default:1"`
}

func (QuestionLike) TableName() string { return "question_likes" }
