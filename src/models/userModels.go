package models

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
