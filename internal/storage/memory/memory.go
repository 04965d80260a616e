// Package memory keeps users, questions and quiz results in fixed-capacity
// slot arrays. Nothing survives the process.
package memory

import (
	"fmt"

	"quiz/internal/domain/models"
)

type Storage struct {
	users     []*models.User
	questions []*models.Question
	results   []models.ResultEntry
}

// New allocates the slot arrays. A non-positive resultsCap sizes the result
// log to match the question store.
func New(usersCap, questionsCap, resultsCap int) (*Storage, error) {
	const op = "storage.memory.New"

	if usersCap <= 0 || questionsCap <= 0 {
		return nil, fmt.Errorf("%s: capacities must be positive, got users=%d questions=%d", op, usersCap, questionsCap)
	}
	if resultsCap <= 0 {
		resultsCap = questionsCap
	}

	return &Storage{
		users:     make([]*models.User, usersCap),
		questions: make([]*models.Question, questionsCap),
		results:   make([]models.ResultEntry, 0, resultsCap),
	}, nil
}
