package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"quiz/internal/config"
	"quiz/internal/console"
	"quiz/internal/services/auth"
	"quiz/internal/services/quiz"
	"quiz/internal/storage/memory"
)

type App struct {
	log     *slog.Logger
	auth    *auth.Auth
	session *console.Session
}

// New builds the storage, the services and the console session once for the
// lifetime of the process.
func New(
	log *slog.Logger,
	cfg config.StorageConfig,
	in io.Reader,
	out io.Writer,
) (*App, error) {
	const op = "app.New"

	storage, err := memory.New(cfg.UsersCapacity, cfg.QuestionsCapacity, cfg.ResultsCapacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	authService := auth.New(log, storage, storage)
	quizService := quiz.New(log, storage, storage, storage, storage)

	return &App{
		log:     log,
		auth:    authService,
		session: console.New(log, in, out, authService, quizService),
	}, nil
}

// MustRun runs the app and panics if any error occurs.
func (a *App) MustRun(ctx context.Context) {
	if err := a.Run(ctx); err != nil {
		panic(err)
	}
}

// Run seeds the demo users and runs one console session. Running out of
// input is a normal way to finish.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	log := a.log.With(slog.String("op", op))

	if err := a.auth.Seed(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("session started")

	if err := a.session.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			log.Debug("input closed")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("session finished")

	return nil
}
