package problem

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// short answers are canonicalized integer strings; the comparison at solve
// time is byte-exact, so both sides must come through this same gate
var shortAnswerRe = regexp.MustCompile(`^-?\d+$`)

type CreateProblemParams struct {
	AuthorUUID    uuid.UUID
	Type          ProblemType
	Text          string
	Image         *string
	Options       []string
	CorrectAnswer string
	Difficulty    Difficulty
	Tags          []string
}

func (s *ProblemSrvc) CreateProblem(ctx context.Context, p CreateProblemParams) (*Problem, error) {
	if err := validateProblem(&p); err != nil {
		return nil, err
	}

	tx, err := s.postgres.Begin(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback(ctx)

	row := dbProblem{
		AuthorUUID:    p.AuthorUUID,
		Type:          string(p.Type),
		Text:          p.Text,
		Image:         p.Image,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Difficulty:    string(p.Difficulty),
		Tags:          p.Tags,
		CreatedAt:     time.Now(),
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO problems (
			author_uuid, type, text, image, options,
			correct_answer, difficulty, tags, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		row.AuthorUUID,
		row.Type,
		row.Text,
		row.Image,
		row.Options,
		row.CorrectAnswer,
		row.Difficulty,
		row.Tags,
		row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to insert problem: %w", err))
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET problems_created = problems_created + 1 WHERE uuid = $1
	`, p.AuthorUUID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to update author counter: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to commit transaction: %w", err))
	}

	created := row.toDomain()
	return &created, nil
}

func validateProblem(p *CreateProblemParams) error {
	if strings.TrimSpace(p.Text) == "" {
		return newErrProblemTextEmpty()
	}

	if p.Difficulty == "" {
		p.Difficulty = DifficultyMedium
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return newErrInvalidDifficulty()
	}

	switch p.Type {
	case TypeMultipleChoice:
		if len(p.Options) < 2 {
			return newErrOptionsRequired()
		}
		if !slices.Contains(p.Options, p.CorrectAnswer) {
			return newErrAnswerNotAnOption()
		}
	case TypeShortAnswer:
		p.Options = nil
		if !shortAnswerRe.MatchString(p.CorrectAnswer) {
			return newErrAnswerNotAnInteger()
		}
	default:
		return newErrInvalidProblemType()
	}

	return nil
}
