package solve

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SubmitResult struct {
	Correct      bool
	PointsEarned int // positive only when Correct
}

// Submit runs one answer submission through the guard chain and, when the
// answer is correct, commits the solve.
//
// Guard order: identity, problem existence, self-solve, already-solved.
// Every guard rejects before any mutation, so no failure path needs a
// rollback. An incorrect answer is a normal negative result, not an error,
// and leaves no server-side trace.
//
// The already-solved pre-check is advisory; the authoritative barrier is
// the (user, problem) uniqueness constraint inside InsertSolve. When two
// submissions race past the pre-check, exactly one insert commits and the
// other surfaces as AlreadySolved.
func (s *SolveSrvc) Submit(ctx context.Context, submitter uuid.UUID, problemID int64, answer string) (*SubmitResult, error) {
	if submitter == uuid.Nil {
		return nil, newErrUnauthorized()
	}
	if answer == "" {
		return nil, newErrAnswerMissing()
	}

	p, err := s.repo.GetProblem(ctx, problemID)
	if err != nil {
		if errors.Is(err, ErrProblemNotFound) {
			return nil, newErrProblemNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	if p.AuthorUUID == submitter {
		return nil, newErrSelfSolveForbidden()
	}

	solved, err := s.repo.IsSolved(ctx, submitter, problemID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if solved {
		return nil, newErrAlreadySolved()
	}

	correct, points := Evaluate(p, answer)
	if !correct {
		return &SubmitResult{Correct: false}, nil
	}

	err = s.repo.InsertSolve(ctx, Entry{
		UserUUID:     submitter,
		ProblemID:    problemID,
		PointsEarned: points,
		SolvedAt:     time.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSolve) {
			return nil, newErrAlreadySolved()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	s.logger.Info("problem solved",
		"user", submitter, "problem", problemID, "points", points)

	return &SubmitResult{Correct: true, PointsEarned: points}, nil
}
