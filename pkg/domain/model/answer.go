package model

import (
	"time"

	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// Answer is an answer to a question. Acceptance is one-way: once accepted the
// flag is never cleared through this service.
type Answer struct {
	ID            types.AnswerID   `gorm:"column:id;primaryKey" json:"id"`
	UserID        types.UserID     `gorm:"column:user_id;not null;index" json:"userId"`
	QuestionID    types.QuestionID `gorm:"column:question_id;not null;index" json:"questionId"`
	Title         string           `gorm:"column:title" json:"title"`
	Answer        string           `gorm:"column:answer;type:text;not null" json:"answer"`
	Votes         int              `gorm:"column:votes;not null;default:0" json:"votes"`
	Accepted      bool             `gorm:"column:accepted;not null;default:false" json:"accepted"`
	SlackThreadID types.ThreadID   `gorm:"column:slack_thread_id;index" json:"slackThreadId,omitempty"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"createdAt"`

	// CreatedBy is the author name joined from the user table on reads.
	CreatedBy string `gorm:"->;-:migration" json:"createdBy,omitempty"`
}

func (Answer) TableName() string {
	return "answer"
}

// HasBody reports whether the answer carries a non-empty body. Empty bodies
// must be rejected before touching the database.
func (a *Answer) HasBody() bool {
	return a != nil && a.Answer != ""
}
