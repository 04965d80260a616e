package console

import (
	"context"
	"errors"
	"fmt"

	"quiz/internal/domain/models"
	"quiz/internal/services/quiz"
)

func (s *Session) teacherMenu(ctx context.Context) error {
	return s.menu(ctx, []menuItem{
		{title: "Create Quiz", action: s.createQuestion},
		{title: "Delete Quiz", action: s.deleteQuestion},
		{title: "Update Quiz", action: s.updateQuestion},
		{title: "List Quiz", action: s.listQuestions},
		{title: "Exit"},
	})
}

func (s *Session) createQuestion(ctx context.Context) error {
	q, err := s.readQuestion("Enter question: ", "Enter answer")
	if err != nil {
		return err
	}

	if _, err := s.quiz.CreateQuestion(ctx, q); err != nil {
		return err
	}

	s.println("Question created successfully")

	return nil
}

func (s *Session) deleteQuestion(ctx context.Context) error {
	if err := s.listQuestions(ctx); err != nil {
		return err
	}

	index, err := s.in.readInt("Enter the index of the question to delete: ")
	if err != nil {
		return err
	}

	if err := s.quiz.DeleteQuestion(ctx, index); err != nil {
		return err
	}

	s.println("Question deleted successfully")

	return nil
}

// updateQuestion checks the index before asking for the replacement so an
// invalid target costs no typing.
func (s *Session) updateQuestion(ctx context.Context) error {
	if err := s.listQuestions(ctx); err != nil {
		return err
	}

	index, err := s.in.readInt("Enter the index of the question to update: ")
	if err != nil {
		return err
	}

	ok, err := s.quiz.QuestionExists(ctx, index)
	if err != nil {
		return err
	}
	if !ok {
		return quiz.ErrInvalidIndex
	}

	q, err := s.readQuestion("Enter new question: ", "Enter new answer")
	if err != nil {
		return err
	}

	if err := s.quiz.UpdateQuestion(ctx, index, q); err != nil {
		return err
	}

	s.println("Question updated successfully")

	return nil
}

func (s *Session) listQuestions(ctx context.Context) error {
	fmt.Fprint(s.out, s.quiz.Listing(ctx))
	return nil
}

func (s *Session) readQuestion(textPrompt, answerPrompt string) (models.Question, error) {
	var q models.Question

	text, err := s.in.readLine(textPrompt)
	if err != nil {
		return models.Question{}, err
	}
	q.Text = text

	for i := range q.Answers {
		answer, err := s.in.readLine(fmt.Sprintf("%s %d: ", answerPrompt, i+1))
		if err != nil {
			return models.Question{}, err
		}

		isRight, err := s.readFlag("Is this the correct answer? (true/false): ")
		if err != nil {
			return models.Question{}, err
		}

		q.Answers[i] = models.Answer{Text: answer, IsRight: isRight}
	}

	return q, nil
}

// readFlag re-prompts until the line holds true or false.
func (s *Session) readFlag(prompt string) (bool, error) {
	for {
		v, err := s.in.readBool(prompt)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrInvalidInput) {
			return false, err
		}
		s.println("Invalid input")
	}
}
