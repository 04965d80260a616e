package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"quiz/internal/app"
	"quiz/internal/config"
	"quiz/internal/lib/logger/handlers/slogpretty"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, os.Stderr)

	log.Debug("starting quiz", slog.String("env", cfg.Env))

	application, err := app.New(log, cfg.Storage, os.Stdin, os.Stdout)
	if err != nil {
		panic(err)
	}

	application.MustRun(context.Background())
}

// setupLogger is given stderr so log lines never mix into the console
// protocol on stdout. prod shares the terminal with the user, so only errors
// are written there.
func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(out)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelError}),
		)
	}

	return log
}

func setupPrettySlog(out io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}
