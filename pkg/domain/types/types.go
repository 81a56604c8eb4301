package types

// UserID identifies a user record. Lifecycle is owned by the user directory;
// this service only reads.
type UserID int64

// QuestionID identifies a question record.
type QuestionID int64

// AnswerID identifies an answer record.
type AnswerID int64

// ThreadID correlates a question or answer with a chat workspace thread.
type ThreadID string

func (x ThreadID) String() string {
	return string(x)
}
