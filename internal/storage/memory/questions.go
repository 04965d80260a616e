package memory

import (
	"context"
	"fmt"
	"iter"

	"quiz/internal/domain/models"
	"quiz/internal/storage"
)

// SaveQuestion stores q in the first empty slot and returns its 1-based index.
func (s *Storage) SaveQuestion(ctx context.Context, q models.Question) (int, error) {
	const op = "storage.memory.SaveQuestion"

	for i, slot := range s.questions {
		if slot == nil {
			s.questions[i] = &q
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%s: %w", op, storage.ErrCapacityExceeded)
}

// DeleteQuestion empties the slot at the 1-based index. Slots are never
// compacted, so the other indices keep pointing at the same questions.
func (s *Storage) DeleteQuestion(ctx context.Context, index int) error {
	const op = "storage.memory.DeleteQuestion"

	if !s.occupied(index) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidIndex)
	}
	s.questions[index-1] = nil

	return nil
}

// UpdateQuestion replaces the question at the 1-based index wholesale.
func (s *Storage) UpdateQuestion(ctx context.Context, index int, q models.Question) error {
	const op = "storage.memory.UpdateQuestion"

	if !s.occupied(index) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidIndex)
	}
	s.questions[index-1] = &q

	return nil
}

// QuestionExists reports whether the 1-based index addresses an occupied slot.
func (s *Storage) QuestionExists(ctx context.Context, index int) (bool, error) {
	return s.occupied(index), nil
}

// Questions yields (1-based index, question) for every occupied slot in slot
// order. The sequence can be ranged over any number of times.
func (s *Storage) Questions(ctx context.Context) iter.Seq2[int, models.Question] {
	return func(yield func(int, models.Question) bool) {
		for i, slot := range s.questions {
			if slot == nil {
				continue
			}
			if !yield(i+1, *slot) {
				return
			}
		}
	}
}

func (s *Storage) occupied(index int) bool {
	i := index - 1
	return i >= 0 && i < len(s.questions) && s.questions[i] != nil
}
