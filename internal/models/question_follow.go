package models

// QuestionFollow links a user (author_id) to a question they follow
type QuestionFollow struct {
	ID         int64 `json:"id" gorm:"column:id;primaryKey"`
	QuestionID int64 `json:"question_id" gorm:"column:question_id;uniqueIndex:idx_question_follower"`
	AuthorID   int64 `json:"author_id" gorm:"column:author_id;uniqueIndex:idx_question_follower"`
}

func (QuestionFollow) TableName() string { return "question_follows" }
