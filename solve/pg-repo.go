package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathsolve/backend/problem"
)

type pgSolveRepo struct {
	pool *pgxpool.Pool
}

func NewPgSolveRepo(pool *pgxpool.Pool) Repo {
	return &pgSolveRepo{pool: pool}
}

const problemColumns = `id, author_uuid, type, text, image, options,
	correct_answer, difficulty, tags, solve_count, created_at`

func (r *pgSolveRepo) GetProblem(ctx context.Context, id int64) (*problem.Problem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE id = $1
	`, id)

	p, err := scanProblemRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProblemNotFound
		}
		return nil, fmt.Errorf("failed to select problem: %w", err)
	}
	return p, nil
}

func (r *pgSolveRepo) IsSolved(ctx context.Context, userUUID uuid.UUID, problemID int64) (bool, error) {
	var solved bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM solved_problems
			WHERE user_uuid = $1 AND problem_id = $2
		)
	`, userUUID, problemID).Scan(&solved)
	if err != nil {
		return false, fmt.Errorf("failed to check solve ledger: %w", err)
	}
	return solved, nil
}

// InsertSolve appends the ledger entry and bumps both counters in a single
// transaction. The unique constraint on (user_uuid, problem_id) makes the
// insert itself the atomic check-and-act; a 23505 maps to ErrDuplicateSolve.
func (r *pgSolveRepo) InsertSolve(ctx context.Context, entry Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // safe to call, does nothing if already committed

	_, err = tx.Exec(ctx, `
		INSERT INTO solved_problems (user_uuid, problem_id, points_earned, solved_at)
		VALUES ($1, $2, $3, $4)
	`,
		entry.UserUUID,
		entry.ProblemID,
		entry.PointsEarned,
		entry.SolvedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSolve
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE problems SET solve_count = solve_count + 1 WHERE id = $1
	`, entry.ProblemID)
	if err != nil {
		return fmt.Errorf("failed to increment solve count: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET points = points + $1, problems_solved = problems_solved + 1
		WHERE uuid = $2
	`, entry.PointsEarned, entry.UserUUID)
	if err != nil {
		return fmt.Errorf("failed to update user counters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SampleUnsolved pushes the anti-join to the database and lets it draw the
// sample: ORDER BY random() over the filtered set is uniform without
// replacement.
func (r *pgSolveRepo) SampleUnsolved(ctx context.Context, userUUID uuid.UUID, limit int) ([]problem.Problem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+problemColumns+`
		FROM problems p
		WHERE p.author_uuid <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM solved_problems sp
			WHERE sp.user_uuid = $1 AND sp.problem_id = p.id
		  )
		ORDER BY random()
		LIMIT $2
	`, userUUID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample unsolved problems: %w", err)
	}
	defer rows.Close()

	var problems []problem.Problem
	for rows.Next() {
		p, err := scanProblemRow(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func scanProblemRow(row pgx.Row) (*problem.Problem, error) {
	var p problem.Problem
	var pType, difficulty string
	err := row.Scan(
		&p.ID,
		&p.AuthorUUID,
		&pType,
		&p.Text,
		&p.Image,
		&p.Options,
		&p.CorrectAnswer,
		&difficulty,
		&p.Tags,
		&p.SolveCount,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Type = problem.ProblemType(pType)
	p.Difficulty = problem.Difficulty(difficulty)
	return &p, nil
}
