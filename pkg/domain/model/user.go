package model

import (
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// User is a read-only projection of the user directory.
type User struct {
	ID    types.UserID `gorm:"column:id;primaryKey" json:"id"`
	Name  string       `gorm:"column:name;not null" json:"name"`
	Email string       `gorm:"column:email;not null" json:"email"`
}

func (User) TableName() string {
	return "user"
}
