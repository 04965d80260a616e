package memory

import (
	"context"
	"fmt"

	"quiz/internal/domain/models"
	"quiz/internal/storage"
)

// SaveUser writes the user into the first empty slot. Username uniqueness is
// the caller's concern.
func (s *Storage) SaveUser(ctx context.Context, username, password string, role models.Role) error {
	const op = "storage.memory.SaveUser"

	for i, u := range s.users {
		if u == nil {
			s.users[i] = &models.User{
				Username: username,
				Password: password,
				Role:     role,
			}
			return nil
		}
	}

	return fmt.Errorf("%s: %w", op, storage.ErrCapacityExceeded)
}

// User returns the first user whose username and password both match exactly.
func (s *Storage) User(ctx context.Context, username, password string) (models.User, error) {
	const op = "storage.memory.User"

	for _, u := range s.users {
		if u != nil && u.Username == username && u.Password == password {
			return *u, nil
		}
	}

	return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
}

func (s *Storage) UserExists(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u != nil && u.Username == username {
			return true, nil
		}
	}

	return false, nil
}
