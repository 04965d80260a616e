package storage

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidIndex     = errors.New("invalid index")
)
