package solve

import (
	"context"

	"github.com/google/uuid"
	"github.com/mathsolve/backend/problem"
)

const defaultRecommendLimit = 1

// Recommend draws up to limit random problems the user has not solved.
// Problems the user authored are excluded as well, since they can never be
// solved by the author and would waste a slot. The candidate set is
// re-evaluated against the ledger on every call; when it is smaller than
// limit the whole set is returned, and an empty set yields an empty slice.
func (s *SolveSrvc) Recommend(ctx context.Context, userUUID uuid.UUID, limit int) ([]problem.Problem, error) {
	if userUUID == uuid.Nil {
		return nil, newErrUnauthorized()
	}
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	problems, err := s.repo.SampleUnsolved(ctx, userUUID, limit)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if problems == nil {
		problems = []problem.Problem{}
	}

	return problems, nil
}
