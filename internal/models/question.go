package models

// Question represents a row of the questions table
type Question struct {
	ID       int64  `json:"id" gorm:"column:id;primaryKey"`
	Title    string `json:"title" gorm:"column:title"`
	Body     string `json:"body" gorm:"column:body"`
	AuthorID int64  `json:"author_id" gorm:"column:author_id;index"` // ID of the user who asked the question
}

func (Question) TableName() string { return "questions" }

// QuestionColumns is the select list used when a question is read through a join
const QuestionColumns = "questions.id, questions.title, questions.body, questions.author_id"
