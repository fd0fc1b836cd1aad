package models

type User struct {
	ID    int64  `json:"id" gorm:"column:id;primaryKey"`
	FName string `json:"fname" gorm:"column:fname"`
	LName string `json:"lname" gorm:"column:lname"`
}

func (User) TableName() string { return "users" }

// UserColumns is the select list used when a user is read through a join
const UserColumns = "users.id, users.fname, users.lname"
