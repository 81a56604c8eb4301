package usecase

// Error tokens surfaced to the HTTP edge. The edge writes them verbatim as
// the error body, so they are part of the public contract.
const (
	ErrorNotOwnerOfQuestion     = "not.owner.of.question"
	ErrorNotFound               = "not.found"
	ErrorAnswerNotCreated       = "answer.not.created"
	ErrorAddQuestionFailed      = "failed.to.add.question.to.database"
	ErrorLatestQuestionsFailed  = "failed.to.get.latest.questions"
	ErrorSearchQuestionsFailed  = "failed.to.search.for.questions"
	ErrorAnswerBodyMissing      = "answer.body.missing"
)

// Default limits applied when the caller leaves the limit unspecified.
const (
	DefaultLatestLimit = 10
	DefaultSearchLimit = 50
	DefaultTagLimit    = 20
	DefaultPopularTags = 10
)
