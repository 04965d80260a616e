package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quiz/internal/domain/models"
	"quiz/internal/lib/logger/sl"
	"quiz/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmptyCredentials   = errors.New("username and password are required")
)

type Auth struct {
	log          *slog.Logger
	userSaver    UserSaver
	userProvider UserProvider
}

type UserSaver interface {
	SaveUser(
		ctx context.Context,
		username string,
		password string,
		role models.Role,
	) error
}

type UserProvider interface {
	User(ctx context.Context, username, password string) (models.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
}

// demoUsers are added on every start since nothing is persisted.
var demoUsers = []models.User{
	{Username: "user1", Password: "pass1", Role: models.RoleStudent},
	{Username: "user2", Password: "pass2", Role: models.RoleTeacher},
	{Username: "user3", Password: "pass3", Role: models.RoleStudent},
	{Username: "user4", Password: "pass4", Role: models.RoleStudent},
	{Username: "user5", Password: "pass5", Role: models.RoleStudent},
}

// New returns a new instance of the Auth service
func New(
	log *slog.Logger,
	userSaver UserSaver,
	userProvider UserProvider,
) *Auth {
	return &Auth{
		log:          log,
		userSaver:    userSaver,
		userProvider: userProvider,
	}
}

// Seed adds the demo users to the directory.
func (a *Auth) Seed(ctx context.Context) error {
	const op = "auth.Seed"

	log := a.log.With(slog.String("op", op))

	for _, u := range demoUsers {
		if err := a.userSaver.SaveUser(ctx, u.Username, u.Password, u.Role); err != nil {
			log.Error("failed to seed user", slog.String("username", u.Username), sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Debug("demo users seeded", slog.Int("count", len(demoUsers)))

	return nil
}

// Login returns the user whose username and password both match exactly.
func (a *Auth) Login(
	ctx context.Context,
	username string,
	password string,
) (models.User, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login user")

	user, err := a.userProvider.User(ctx, username, password)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.String("role", user.Role.String()))

	return user, nil
}

// RegisterNewUser adds a student account. The username must not be taken.
func (a *Auth) RegisterNewUser(
	ctx context.Context,
	username string,
	password string,
) error {
	const op = "auth.RegisterNewUser"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	if username == "" || password == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyCredentials)
	}

	log.Info("registering user")

	exists, err := a.userProvider.UserExists(ctx, username)
	if err != nil {
		log.Error("failed to check user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		log.Warn("user already exists")
		return fmt.Errorf("%s: %w", op, ErrUserExists)
	}

	if err := a.userSaver.SaveUser(ctx, username, password, models.RoleStudent); err != nil {
		log.Error("failed to save user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered")

	return nil
}
