package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *ProblemSrvc) GetProblem(ctx context.Context, id int64) (*Problem, error) {
	row, err := selectProblemByID(ctx, s.postgres, id)
	if err != nil {
		if isNoRows(err) {
			return nil, newErrProblemNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}
	p := row.toDomain()
	return &p, nil
}

// ListProblems returns one page of the feed, newest first.
func (s *ProblemSrvc) ListProblems(ctx context.Context, limit, offset int) ([]Problem, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.postgres.Query(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to query problems: %w", err))
	}

	problems, err := collectProblems(rows)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return problems, nil
}

// UserProblems returns every problem authored by the given user, newest first.
func (s *ProblemSrvc) UserProblems(ctx context.Context, authorUUID uuid.UUID) ([]Problem, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE author_uuid = $1
		ORDER BY created_at DESC, id DESC
	`, authorUUID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to query user problems: %w", err))
	}

	problems, err := collectProblems(rows)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return problems, nil
}

// SolvedProblems returns the user's solve history, most recent first.
func (s *ProblemSrvc) SolvedProblems(ctx context.Context, userUUID uuid.UUID) ([]SolvedEntry, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT p.id, p.author_uuid, p.type, p.text, p.image, p.options,
			p.correct_answer, p.difficulty, p.tags, p.solve_count, p.created_at,
			sp.points_earned, sp.solved_at
		FROM solved_problems sp
		JOIN problems p ON p.id = sp.problem_id
		WHERE sp.user_uuid = $1
		ORDER BY sp.solved_at DESC
	`, userUUID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to query solved problems: %w", err))
	}
	defer rows.Close()

	var entries []SolvedEntry
	for rows.Next() {
		var p dbProblem
		var entry SolvedEntry
		err := rows.Scan(
			&p.ID, &p.AuthorUUID, &p.Type, &p.Text, &p.Image, &p.Options,
			&p.CorrectAnswer, &p.Difficulty, &p.Tags, &p.SolveCount, &p.CreatedAt,
			&entry.PointsEarned, &entry.SolvedAt,
		)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		entry.Problem = p.toDomain()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return entries, nil
}
