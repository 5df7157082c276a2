package solve

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mathsolve/backend/problem"
)

// Entry is one row of the solve ledger: who solved what, for how many
// points, when. Entries are written exactly once and never updated.
type Entry struct {
	UserUUID     uuid.UUID
	ProblemID    int64
	PointsEarned int
	SolvedAt     time.Time
}

// Sentinel errors returned by Repo implementations.
var (
	// ErrProblemNotFound: no problem with the given id.
	ErrProblemNotFound = errors.New("problem not found")
	// ErrDuplicateSolve: the (user, problem) pair already has a ledger
	// entry. Implementations must detect this atomically at insert time
	// (a uniqueness constraint, not a separate read), so that concurrent
	// submissions cannot both append.
	ErrDuplicateSolve = errors.New("duplicate solve")
)

// Repo is the persistence boundary of the solve service.
//
// InsertSolve must apply the ledger insert and both counter updates
// (problem solve_count, user points and problems_solved) as one atomic
// unit: either all three happen or none.
type Repo interface {
	GetProblem(ctx context.Context, id int64) (*problem.Problem, error)
	IsSolved(ctx context.Context, userUUID uuid.UUID, problemID int64) (bool, error)
	InsertSolve(ctx context.Context, entry Entry) error
	// SampleUnsolved returns up to limit problems the user has neither
	// solved nor authored, drawn uniformly without replacement.
	SampleUnsolved(ctx context.Context, userUUID uuid.UUID, limit int) ([]problem.Problem, error)
}

type SolveSrvc struct {
	logger *slog.Logger
	repo   Repo
}

func NewSolveSrvc(repo Repo) *SolveSrvc {
	return &SolveSrvc{
		logger: slog.Default().With("module", "solve"),
		repo:   repo,
	}
}
