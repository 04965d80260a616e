package models

import (
	"errors"
	"fmt"
	"strings"
)

// AnswersPerQuestion is the fixed number of options every question carries.
const AnswersPerQuestion = 4

var (
	ErrMalformedQuestion = errors.New("question must have exactly one correct answer")
	ErrInvalidSelection  = errors.New("invalid selection")
)

type Question struct {
	Text    string                     `json:"text"`
	Answers [AnswersPerQuestion]Answer `json:"answers"`
}

// CorrectIndex returns the 0-based index of the correct answer. ok is false
// unless exactly one answer is marked correct.
func (q Question) CorrectIndex() (idx int, ok bool) {
	idx = -1
	for i, a := range q.Answers {
		if !a.IsRight {
			continue
		}
		if idx != -1 {
			return -1, false
		}
		idx = i
	}

	return idx, idx != -1
}

func (q Question) Validate() error {
	if _, ok := q.CorrectIndex(); !ok {
		return ErrMalformedQuestion
	}

	return nil
}

// IsCorrect reports whether the 0-based selection points at the correct answer.
func (q Question) IsCorrect(selection int) (bool, error) {
	if selection < 0 || selection >= len(q.Answers) {
		return false, ErrInvalidSelection
	}

	return q.Answers[selection].IsRight, nil
}

// String renders the question the way a student sees it while answering.
func (q Question) String() string {
	var sb strings.Builder
	sb.WriteString(q.Text)
	sb.WriteByte('\n')
	for i, a := range q.Answers {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, a.Text)
	}

	return sb.String()
}
