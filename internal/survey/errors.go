package survey

import (
	"errors"
	"fmt"

	"pawbody/internal/model"
)

// ErrEmptyQuestionPool means the selector could not produce a single
// question. The flow must stop rather than render an empty survey.
var ErrEmptyQuestionPool = errors.New("question pool is empty")

// QuestionRef identifies a selected question by its answer key.
type QuestionRef struct {
	Category model.Category
	SubKey   string
}

func (r QuestionRef) String() string {
	return fmt.Sprintf("%s/%s", r.Category, r.SubKey)
}

// IncompleteSurveyError is returned when aggregation is attempted before
// every selected question has an answer. A partial report is never produced.
type IncompleteSurveyError struct {
	Missing []QuestionRef
}

func (e *IncompleteSurveyError) Error() string {
	return fmt.Sprintf("survey incomplete: %d unanswered question(s), first missing %s", len(e.Missing), e.Missing[0])
}
