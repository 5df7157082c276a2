package problem

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProblemSrvc struct {
	postgres *pgxpool.Pool
}

func NewProblemSrvc(pool *pgxpool.Pool) *ProblemSrvc {
	return &ProblemSrvc{postgres: pool}
}

type dbProblem struct {
	ID            int64
	AuthorUUID    uuid.UUID
	Type          string
	Text          string
	Image         *string
	Options       []string
	CorrectAnswer string
	Difficulty    string
	Tags          []string
	SolveCount    int
	CreatedAt     time.Time
}

const problemColumns = `id, author_uuid, type, text, image, options,
	correct_answer, difficulty, tags, solve_count, created_at`

func scanProblem(row pgx.Row) (*dbProblem, error) {
	var p dbProblem
	err := row.Scan(
		&p.ID,
		&p.AuthorUUID,
		&p.Type,
		&p.Text,
		&p.Image,
		&p.Options,
		&p.CorrectAnswer,
		&p.Difficulty,
		&p.Tags,
		&p.SolveCount,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (row *dbProblem) toDomain() Problem {
	return Problem{
		ID:            row.ID,
		AuthorUUID:    row.AuthorUUID,
		Type:          ProblemType(row.Type),
		Text:          row.Text,
		Image:         row.Image,
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Difficulty:    Difficulty(row.Difficulty),
		Tags:          row.Tags,
		SolveCount:    row.SolveCount,
		CreatedAt:     row.CreatedAt,
	}
}

func collectProblems(rows pgx.Rows) ([]Problem, error) {
	defer rows.Close()

	var problems []Problem
	for rows.Next() {
		row, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func selectProblemByID(ctx context.Context, pg *pgxpool.Pool, id int64) (*dbProblem, error) {
	row := pg.QueryRow(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE id = $1
	`, id)
	return scanProblem(row)
}
