package memory

import (
	"context"
	"fmt"

	"quiz/internal/domain/models"
	"quiz/internal/storage"
)

// SaveResult appends an entry to the result log.
func (s *Storage) SaveResult(ctx context.Context, entry models.ResultEntry) error {
	const op = "storage.memory.SaveResult"

	if len(s.results) == cap(s.results) {
		return fmt.Errorf("%s: %w", op, storage.ErrCapacityExceeded)
	}
	s.results = append(s.results, entry)

	return nil
}

// Results returns a copy of the log in append order.
func (s *Storage) Results(ctx context.Context) ([]models.ResultEntry, error) {
	out := make([]models.ResultEntry, len(s.results))
	copy(out, s.results)

	return out, nil
}
