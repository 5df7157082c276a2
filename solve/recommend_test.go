package solve

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mathsolve/backend/problem"
	"github.com/stretchr/testify/require"
)

func TestRecommendExcludesSolvedAndOwn(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	author := uuid.New()
	solver := uuid.New()

	seedProblem(repo, 1, author, "1", problem.DifficultyEasy)
	seedProblem(repo, 2, author, "2", problem.DifficultyEasy)
	seedProblem(repo, 3, solver, "3", problem.DifficultyEasy) // solver's own

	_, err := srvc.Submit(context.Background(), solver, 1, "1")
	require.NoError(t, err)

	// many draws, each must land on the single remaining candidate
	for i := 0; i < 20; i++ {
		problems, err := srvc.Recommend(context.Background(), solver, 1)
		require.NoError(t, err)
		require.Len(t, problems, 1)
		require.Equal(t, int64(2), problems[0].ID)
	}
}

func TestRecommendReturnsWholeSetWhenScarce(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	solver := uuid.New()

	seedProblem(repo, 1, uuid.New(), "1", problem.DifficultyEasy)
	seedProblem(repo, 2, uuid.New(), "2", problem.DifficultyEasy)

	problems, err := srvc.Recommend(context.Background(), solver, 5)
	require.NoError(t, err)
	require.Len(t, problems, 2)
}

func TestRecommendNoDuplicatesInOneDraw(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	solver := uuid.New()

	for id := int64(1); id <= 10; id++ {
		seedProblem(repo, id, uuid.New(), "1", problem.DifficultyEasy)
	}

	for i := 0; i < 20; i++ {
		problems, err := srvc.Recommend(context.Background(), solver, 4)
		require.NoError(t, err)
		require.Len(t, problems, 4)

		seen := map[int64]bool{}
		for _, p := range problems {
			require.False(t, seen[p.ID], "problem %d drawn twice", p.ID)
			seen[p.ID] = true
		}
	}
}

func TestRecommendEmptyWhenExhausted(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	solver := uuid.New()
	seedProblem(repo, 1, uuid.New(), "1", problem.DifficultyEasy)

	_, err := srvc.Submit(context.Background(), solver, 1, "1")
	require.NoError(t, err)

	problems, err := srvc.Recommend(context.Background(), solver, 3)
	require.NoError(t, err)
	require.NotNil(t, problems)
	require.Empty(t, problems)
}

func TestRecommendDefaultsLimit(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	solver := uuid.New()
	for id := int64(1); id <= 5; id++ {
		seedProblem(repo, id, uuid.New(), "1", problem.DifficultyEasy)
	}

	problems, err := srvc.Recommend(context.Background(), solver, 0)
	require.NoError(t, err)
	require.Len(t, problems, 1)
}

func TestRecommendRequiresIdentity(t *testing.T) {
	srvc, _ := newTestSrvc(t)

	_, err := srvc.Recommend(context.Background(), uuid.Nil, 1)
	requireErrCode(t, err, ErrCodeUnauthorized)
}
