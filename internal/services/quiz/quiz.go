package quiz

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"quiz/internal/domain/models"
	"quiz/internal/lib/logger/sl"
	"quiz/internal/storage"
)

var (
	ErrMalformedQuestion = models.ErrMalformedQuestion
	ErrInvalidSelection  = models.ErrInvalidSelection
	ErrInvalidIndex      = storage.ErrInvalidIndex
	ErrStoreFull         = errors.New("quiz store is full")
	ErrResultLogFull     = errors.New("result log is full")
)

type QuestionSaver interface {
	SaveQuestion(ctx context.Context, q models.Question) (int, error)
	UpdateQuestion(ctx context.Context, index int, q models.Question) error
	DeleteQuestion(ctx context.Context, index int) error
}

type QuestionProvider interface {
	Questions(ctx context.Context) iter.Seq2[int, models.Question]
	QuestionExists(ctx context.Context, index int) (bool, error)
}

type ResultSaver interface {
	SaveResult(ctx context.Context, entry models.ResultEntry) error
}

type ResultProvider interface {
	Results(ctx context.Context) ([]models.ResultEntry, error)
}

type Quiz struct {
	log              *slog.Logger
	questionSaver    QuestionSaver
	questionProvider QuestionProvider
	resultSaver      ResultSaver
	resultProvider   ResultProvider
}

func New(
	log *slog.Logger,
	questionSaver QuestionSaver,
	questionProvider QuestionProvider,
	resultSaver ResultSaver,
	resultProvider ResultProvider,
) *Quiz {
	return &Quiz{
		log:              log,
		questionSaver:    questionSaver,
		questionProvider: questionProvider,
		resultSaver:      resultSaver,
		resultProvider:   resultProvider,
	}
}

// CreateQuestion validates q and stores it in the first free slot. It returns
// the 1-based index the question was given.
func (qz *Quiz) CreateQuestion(ctx context.Context, q models.Question) (int, error) {
	const op = "quiz.CreateQuestion"

	log := qz.log.With(slog.String("op", op))

	if err := q.Validate(); err != nil {
		log.Warn("rejected question", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	idx, err := qz.questionSaver.SaveQuestion(ctx, q)
	if err != nil {
		if errors.Is(err, storage.ErrCapacityExceeded) {
			log.Warn("quiz store is full")
			return 0, fmt.Errorf("%s: %w", op, ErrStoreFull)
		}

		log.Error("failed to save question", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("question created", slog.Int("index", idx))

	return idx, nil
}

func (qz *Quiz) DeleteQuestion(ctx context.Context, index int) error {
	const op = "quiz.DeleteQuestion"

	log := qz.log.With(slog.String("op", op), slog.Int("index", index))

	if err := qz.questionSaver.DeleteQuestion(ctx, index); err != nil {
		log.Warn("failed to delete question", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("question deleted")

	return nil
}

// UpdateQuestion replaces the question at index, answers included.
func (qz *Quiz) UpdateQuestion(ctx context.Context, index int, q models.Question) error {
	const op = "quiz.UpdateQuestion"

	log := qz.log.With(slog.String("op", op), slog.Int("index", index))

	if err := q.Validate(); err != nil {
		log.Warn("rejected question", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := qz.questionSaver.UpdateQuestion(ctx, index, q); err != nil {
		log.Warn("failed to update question", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("question updated")

	return nil
}

// QuestionExists lets callers check an index before collecting a replacement.
func (qz *Quiz) QuestionExists(ctx context.Context, index int) (bool, error) {
	const op = "quiz.QuestionExists"

	ok, err := qz.questionProvider.QuestionExists(ctx, index)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

func (qz *Quiz) ListQuestions(ctx context.Context) iter.Seq2[int, models.Question] {
	return qz.questionProvider.Questions(ctx)
}

// Listing renders every stored question with its slot index and numbered
// answers, as shown to teachers.
func (qz *Quiz) Listing(ctx context.Context) string {
	var sb strings.Builder
	for idx, q := range qz.ListQuestions(ctx) {
		fmt.Fprintf(&sb, "%d. %s\n", idx, q.Text)
		for j, a := range q.Answers {
			fmt.Fprintf(&sb, "    %d: %s\n", j+1, a.Text)
		}
	}

	return sb.String()
}

// Questions snapshots the stored questions in slot order.
func (qz *Quiz) Questions(ctx context.Context) []models.Question {
	var out []models.Question
	for _, q := range qz.ListQuestions(ctx) {
		out = append(out, q)
	}

	return out
}

// Answer grades a 1-based selection for q and appends the outcome to the
// result log. A selection outside the answer range is recorded as incorrect
// and reported with ErrInvalidSelection. The returned entry is valid even
// when err is not nil.
func (qz *Quiz) Answer(ctx context.Context, q models.Question, chosen int) (models.ResultEntry, error) {
	const op = "quiz.Answer"

	log := qz.log.With(slog.String("op", op), slog.Int("chosen", chosen))

	isRight, selErr := q.IsCorrect(chosen - 1)
	entry := models.ResultEntry{
		Question: q.Text,
		Chosen:   chosen,
		IsRight:  isRight,
	}

	var errs []error
	if selErr != nil {
		log.Warn("selection out of range")
		errs = append(errs, selErr)
	}

	if err := qz.resultSaver.SaveResult(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrCapacityExceeded) {
			log.Warn("result log is full")
			errs = append(errs, ErrResultLogFull)
		} else {
			log.Error("failed to save result", sl.Err(err))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return entry, fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	log.Debug("answer recorded", slog.Bool("correct", isRight))

	return entry, nil
}

func (qz *Quiz) Results(ctx context.Context) ([]models.ResultEntry, error) {
	const op = "quiz.Results"

	res, err := qz.resultProvider.Results(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// Score counts the correct entries.
func Score(entries []models.ResultEntry) (right, total int) {
	for _, e := range entries {
		if e.IsRight {
			right++
		}
	}

	return right, len(entries)
}
