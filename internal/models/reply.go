package models

// Reply represents an answer to a question, or to another reply of the same question
type Reply struct {
	ID         int64  `json:"id" gorm:"column:id;primaryKey"`
	QuestionID int64  `json:"question_id" gorm:"column:question_id;index"`
	UserID     int64  `json:"user_id" gorm:"column:user_id;index"`
	ParentID   *int64 `json:"parent_id" gorm:"column:parent_id;index"` // nil for a top-level reply
	Body       string `json:"body" gorm:"column:body"`
}

func (Reply) TableName() string { return "replies" }

// IsRoot reports whether the reply answers the question directly
func (r Reply) IsRoot() bool { return r.ParentID == nil }
