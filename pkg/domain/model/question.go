package model

import (
	"time"

	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// Question is a question posted by a user. Answered is true iff at least one
// of its answers is accepted; the flag is only flipped inside the acceptance
// transaction, never reconciled in the background.
type Question struct {
	ID            types.QuestionID `gorm:"column:id;primaryKey" json:"id"`
	UserID        types.UserID     `gorm:"column:user_id;not null;index" json:"userId"`
	Title         string           `gorm:"column:title;not null" json:"title"`
	Question      string           `gorm:"column:question;type:text;not null" json:"question"`
	Votes         int              `gorm:"column:votes;not null;default:0" json:"votes"`
	Answered      bool             `gorm:"column:answered;not null;default:false" json:"answered"`
	SlackThreadID types.ThreadID   `gorm:"column:slack_thread_id;index" json:"slackThreadId,omitempty"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"createdAt"`
}

func (Question) TableName() string {
	return "question"
}
