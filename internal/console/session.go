// Package console drives the line-oriented login, student and teacher menus.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quiz/internal/domain/models"
	"quiz/internal/lib/logger/sl"
	"quiz/internal/services/auth"
	"quiz/internal/services/quiz"
	"quiz/internal/storage"
)

type Auth interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	RegisterNewUser(ctx context.Context, username, password string) error
}

type Quiz interface {
	CreateQuestion(ctx context.Context, q models.Question) (int, error)
	DeleteQuestion(ctx context.Context, index int) error
	UpdateQuestion(ctx context.Context, index int, q models.Question) error
	QuestionExists(ctx context.Context, index int) (bool, error)
	Listing(ctx context.Context) string
	Questions(ctx context.Context) []models.Question
	Answer(ctx context.Context, q models.Question, chosen int) (models.ResultEntry, error)
	Results(ctx context.Context) ([]models.ResultEntry, error)
}

// messages maps the recoverable error conditions to what the user sees.
var messages = []struct {
	err error
	msg string
}{
	{ErrInvalidInput, "Invalid input"},
	{auth.ErrInvalidCredentials, "User not found"},
	{auth.ErrUserExists, "User already exists"},
	{auth.ErrEmptyCredentials, "Username and password are required"},
	{quiz.ErrMalformedQuestion, "Question must have exactly one correct answer"},
	{quiz.ErrStoreFull, "Quiz store is full"},
	{quiz.ErrInvalidIndex, "Invalid index"},
	{storage.ErrCapacityExceeded, "User directory is full"},
}

type Session struct {
	log  *slog.Logger
	in   *lineReader
	out  io.Writer
	auth Auth
	quiz Quiz
}

func New(
	log *slog.Logger,
	in io.Reader,
	out io.Writer,
	authService Auth,
	quizService Quiz,
) *Session {
	return &Session{
		log:  log,
		in:   newLineReader(in, out),
		out:  out,
		auth: authService,
		quiz: quizService,
	}
}

// Run shows the main menu once and carries out the chosen action. It returns
// nil when the session ends normally and io.EOF (wrapped) when input runs out.
func (s *Session) Run(ctx context.Context) error {
	const op = "console.Run"

	s.println("1. Login\n2. Register")

	choice, err := s.in.readInt("")
	if err != nil {
		return s.fail(op, err)
	}

	switch choice {
	case 1:
		err = s.login(ctx)
	case 2:
		err = s.register(ctx)
	default:
		s.println("Invalid choice")
	}
	if err != nil {
		return s.fail(op, err)
	}

	return nil
}

func (s *Session) login(ctx context.Context) error {
	username, password, err := s.readCredentials()
	if err != nil {
		return err
	}

	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.println("Login successful as " + user.Role.String())

	switch user.Role {
	case models.RoleStudent:
		return s.studentMenu(ctx)
	case models.RoleTeacher:
		return s.teacherMenu(ctx)
	default:
		return fmt.Errorf("unknown role %d", user.Role)
	}
}

func (s *Session) register(ctx context.Context) error {
	username, password, err := s.readCredentials()
	if err != nil {
		return err
	}

	if err := s.auth.RegisterNewUser(ctx, username, password); err != nil {
		return err
	}

	s.println("User registered successfully with " + models.RoleStudent.String() + " role")

	return nil
}

func (s *Session) readCredentials() (username, password string, err error) {
	username, err = s.in.readLine("Enter username: ")
	if err != nil {
		return "", "", err
	}

	password, err = s.in.readLine("Enter password: ")
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

type menuItem struct {
	title string
	// nil action leaves the menu
	action func(ctx context.Context) error
}

// menu repeats until an item without an action is chosen. Recoverable
// conditions are reported and the loop goes on.
func (s *Session) menu(ctx context.Context, items []menuItem) error {
	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, it.title)
	}
	header := sb.String()

	for {
		s.println(header)

		choice, err := s.in.readInt("")
		if err != nil {
			if s.report(err) {
				continue
			}
			return err
		}

		if choice < 1 || choice > len(items) {
			s.println("Invalid choice")
			continue
		}

		it := items[choice-1]
		if it.action == nil {
			return nil
		}

		if err := it.action(ctx); err != nil && !s.report(err) {
			return err
		}
	}
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// report prints the message for a recoverable error. It returns false when
// err is not one the user can act on.
func (s *Session) report(err error) bool {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			s.println(m.msg)
			return true
		}
	}

	return false
}

// fail reports recoverable errors and ends the session quietly; anything else
// is passed up.
func (s *Session) fail(op string, err error) error {
	if s.report(err) {
		return nil
	}

	if !errors.Is(err, io.EOF) {
		s.log.Error("session failed", slog.String("op", op), sl.Err(err))
	}

	return fmt.Errorf("%s: %w", op, err)
}
