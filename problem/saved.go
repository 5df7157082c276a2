package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveProblem bookmarks a problem for the user. Saving an already saved
// problem is a no-op.
func (s *ProblemSrvc) SaveProblem(ctx context.Context, userUUID uuid.UUID, problemID int64) error {
	_, err := s.GetProblem(ctx, problemID)
	if err != nil {
		return err
	}

	_, err = s.postgres.Exec(ctx, `
		INSERT INTO saved_problems (user_uuid, problem_id)
		VALUES ($1, $2)
		ON CONFLICT (user_uuid, problem_id) DO NOTHING
	`, userUUID, problemID)
	if err != nil {
		return newErrInternalSE().SetDebug(fmt.Errorf("failed to save problem: %w", err))
	}

	return nil
}

func (s *ProblemSrvc) UnsaveProblem(ctx context.Context, userUUID uuid.UUID, problemID int64) error {
	tag, err := s.postgres.Exec(ctx, `
		DELETE FROM saved_problems
		WHERE user_uuid = $1 AND problem_id = $2
	`, userUUID, problemID)
	if err != nil {
		return newErrInternalSE().SetDebug(fmt.Errorf("failed to unsave problem: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return newErrBookmarkNotFound()
	}

	return nil
}

// SavedProblems returns the user's bookmarks, most recent first.
func (s *ProblemSrvc) SavedProblems(ctx context.Context, userUUID uuid.UUID) ([]SavedEntry, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT p.id, p.author_uuid, p.type, p.text, p.image, p.options,
			p.correct_answer, p.difficulty, p.tags, p.solve_count, p.created_at,
			sp.saved_at
		FROM saved_problems sp
		JOIN problems p ON p.id = sp.problem_id
		WHERE sp.user_uuid = $1
		ORDER BY sp.saved_at DESC
	`, userUUID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("failed to query saved problems: %w", err))
	}
	defer rows.Close()

	var entries []SavedEntry
	for rows.Next() {
		var p dbProblem
		var entry SavedEntry
		err := rows.Scan(
			&p.ID, &p.AuthorUUID, &p.Type, &p.Text, &p.Image, &p.Options,
			&p.CorrectAnswer, &p.Difficulty, &p.Tags, &p.SolveCount, &p.CreatedAt,
			&entry.SavedAt,
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
