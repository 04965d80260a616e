package console

import (
	"context"
	"errors"
	"fmt"

	"quiz/internal/domain/models"
	"quiz/internal/services/quiz"
)

func (s *Session) studentMenu(ctx context.Context) error {
	return s.menu(ctx, []menuItem{
		{title: "Start Quiz", action: s.takeQuiz},
		{title: "Exit"},
	})
}

// takeQuiz asks every stored question once, in slot order, then prints the
// whole result log and the score of this attempt. With no questions stored
// only the log is printed.
func (s *Session) takeQuiz(ctx context.Context) error {
	questions := s.quiz.Questions(ctx)
	if len(questions) == 0 {
		s.println("No questions available")
		return s.printResults(ctx)
	}

	attempt := make([]models.ResultEntry, 0, len(questions))
	for _, q := range questions {
		fmt.Fprintln(s.out, q)

		chosen, err := s.readSelection()
		if err != nil {
			return err
		}

		entry, err := s.quiz.Answer(ctx, q, chosen)
		if err != nil {
			known := false
			if errors.Is(err, quiz.ErrInvalidSelection) {
				s.println("Invalid selection")
				known = true
			}
			if errors.Is(err, quiz.ErrResultLogFull) {
				s.println("Result log is full, answer not recorded")
				known = true
			}
			if !known {
				return err
			}
		}

		if entry.IsRight {
			s.println("Your answer is correct")
		} else {
			s.println("Your answer is incorrect")
		}
		attempt = append(attempt, entry)
	}

	if err := s.printResults(ctx); err != nil {
		return err
	}

	right, total := quiz.Score(attempt)
	fmt.Fprintf(s.out, "Score: %d/%d\n", right, total)

	return nil
}

func (s *Session) printResults(ctx context.Context) error {
	results, err := s.quiz.Results(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		s.println(r.String())
	}

	return nil
}

// readSelection re-prompts until the line holds a number.
func (s *Session) readSelection() (int, error) {
	for {
		n, err := s.in.readInt("")
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, ErrInvalidInput) {
			return 0, err
		}
		s.println("Invalid input")
	}
}
