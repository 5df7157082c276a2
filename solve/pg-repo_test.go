package solve_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mathsolve/backend/problem"
	"github.com/mathsolve/backend/solve"
	"github.com/mathsolve/backend/srvcerror"
	"github.com/mathsolve/backend/user"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "mathsolve", // local dev pg user
		Password:   "mathsolve", // local dev pg password
		Host:       "localhost",
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

type pgFixture struct {
	pool        *pgxpool.Pool
	userSrvc    *user.UserSrvc
	problemSrvc *problem.ProblemSrvc
	solveSrvc   *solve.SolveSrvc
	author      *user.User
	solver      *user.User
	problem     *problem.Problem
}

func newPgFixture(t *testing.T) *pgFixture {
	t.Helper()
	ctx := context.Background()
	pool := newTestPgDb(t)

	userSrvc := user.NewUserSrvc(pool)
	problemSrvc := problem.NewProblemSrvc(pool)
	solveSrvc := solve.NewSolveSrvc(solve.NewPgSolveRepo(pool))

	author, err := userSrvc.CreateUser(ctx, user.CreateUserParams{
		Username: "author", Password: "password123",
	})
	require.NoError(t, err)

	solver, err := userSrvc.CreateUser(ctx, user.CreateUserParams{
		Username: "solver", Password: "password123",
	})
	require.NoError(t, err)

	p, err := problemSrvc.CreateProblem(ctx, problem.CreateProblemParams{
		AuthorUUID:    author.UUID,
		Type:          problem.TypeShortAnswer,
		Text:          "What is 6 * 7?",
		CorrectAnswer: "42",
		Difficulty:    problem.DifficultyMedium,
	})
	require.NoError(t, err)

	return &pgFixture{
		pool:        pool,
		userSrvc:    userSrvc,
		problemSrvc: problemSrvc,
		solveSrvc:   solveSrvc,
		author:      author,
		solver:      solver,
		problem:     p,
	}
}

func assertPgErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	srvcErr, ok := err.(*srvcerror.Error)
	require.True(t, ok, "expected *srvcerror.Error, got %T", err)
	assert.Equal(t, code, srvcErr.ErrorCode())
}

func TestPgSubmitSolve(t *testing.T) {
	fx := newPgFixture(t)
	ctx := context.Background()

	result, err := fx.solveSrvc.Submit(ctx, fx.solver.UUID, fx.problem.ID, "42")
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.Equal(t, 10, result.PointsEarned)

	// counters moved in the same transaction as the ledger insert
	solver, err := fx.userSrvc.GetUserByUUID(ctx, fx.solver.UUID)
	require.NoError(t, err)
	assert.Equal(t, 10, solver.Points)
	assert.Equal(t, 1, solver.ProblemsSolved)

	p, err := fx.problemSrvc.GetProblem(ctx, fx.problem.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.SolveCount)

	history, err := fx.problemSrvc.SolvedProblems(ctx, fx.solver.UUID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, fx.problem.ID, history[0].Problem.ID)
	assert.Equal(t, 10, history[0].PointsEarned)
}

func TestPgSubmitDuplicate(t *testing.T) {
	fx := newPgFixture(t)
	ctx := context.Background()

	_, err := fx.solveSrvc.Submit(ctx, fx.solver.UUID, fx.problem.ID, "42")
	require.NoError(t, err)

	_, err = fx.solveSrvc.Submit(ctx, fx.solver.UUID, fx.problem.ID, "42")
	assertPgErrCode(t, err, solve.ErrCodeAlreadySolved)

	// nothing double-counted
	solver, err := fx.userSrvc.GetUserByUUID(ctx, fx.solver.UUID)
	require.NoError(t, err)
	assert.Equal(t, 10, solver.Points)
	assert.Equal(t, 1, solver.ProblemsSolved)

	p, err := fx.problemSrvc.GetProblem(ctx, fx.problem.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.SolveCount)
}

func TestPgSubmitGuards(t *testing.T) {
	fx := newPgFixture(t)
	ctx := context.Background()

	_, err := fx.solveSrvc.Submit(ctx, fx.author.UUID, fx.problem.ID, "42")
	assertPgErrCode(t, err, solve.ErrCodeSelfSolveForbidden)

	_, err = fx.solveSrvc.Submit(ctx, fx.solver.UUID, 42000, "42")
	assertPgErrCode(t, err, solve.ErrCodeProblemNotFound)

	result, err := fx.solveSrvc.Submit(ctx, fx.solver.UUID, fx.problem.ID, "41")
	require.NoError(t, err)
	require.False(t, result.Correct)

	// the miss left no trace
	solver, err := fx.userSrvc.GetUserByUUID(ctx, fx.solver.UUID)
	require.NoError(t, err)
	assert.Equal(t, 0, solver.Points)
}

func TestPgSampleUnsolved(t *testing.T) {
	fx := newPgFixture(t)
	ctx := context.Background()

	// second problem by the author, plus one by the solver
	second, err := fx.problemSrvc.CreateProblem(ctx, problem.CreateProblemParams{
		AuthorUUID:    fx.author.UUID,
		Type:          problem.TypeShortAnswer,
		Text:          "What is 5 + 5?",
		CorrectAnswer: "10",
		Difficulty:    problem.DifficultyEasy,
	})
	require.NoError(t, err)

	_, err = fx.problemSrvc.CreateProblem(ctx, problem.CreateProblemParams{
		AuthorUUID:    fx.solver.UUID,
		Type:          problem.TypeShortAnswer,
		Text:          "What is 1 + 1?",
		CorrectAnswer: "2",
		Difficulty:    problem.DifficultyEasy,
	})
	require.NoError(t, err)

	_, err = fx.solveSrvc.Submit(ctx, fx.solver.UUID, fx.problem.ID, "42")
	require.NoError(t, err)

	// solved and own problems are excluded, only `second` remains
	for i := 0; i < 5; i++ {
		problems, err := fx.solveSrvc.Recommend(ctx, fx.solver.UUID, 10)
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, second.ID, problems[0].ID)
	}

	_, err = fx.solveSrvc.Submit(ctx, fx.solver.UUID, second.ID, "10")
	require.NoError(t, err)

	problems, err := fx.solveSrvc.Recommend(ctx, fx.solver.UUID, 10)
	require.NoError(t, err)
	assert.Empty(t, problems)
}
