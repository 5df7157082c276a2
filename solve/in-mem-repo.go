package solve

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mathsolve/backend/problem"
	"golang.org/x/exp/rand"
)

// UserStats mirrors the two ledger-derived user counters.
type UserStats struct {
	Points         int
	ProblemsSolved int
}

// InMemSolveRepo keeps the whole solve state in maps behind one mutex.
// Used by unit tests and local development runs; the mutex makes the
// check-and-insert in InsertSolve atomic the same way the pg uniqueness
// constraint does.
type InMemSolveRepo struct {
	mu       sync.Mutex
	problems map[int64]problem.Problem
	solved   map[uuid.UUID]map[int64]Entry
	stats    map[uuid.UUID]UserStats
	rng      *rand.Rand
}

func NewInMemSolveRepo() *InMemSolveRepo {
	return &InMemSolveRepo{
		problems: make(map[int64]problem.Problem),
		solved:   make(map[uuid.UUID]map[int64]Entry),
		stats:    make(map[uuid.UUID]UserStats),
		rng:      rand.New(rand.NewSource(rand.Uint64())),
	}
}

// AddProblem seeds a problem into the repo.
func (r *InMemSolveRepo) AddProblem(p problem.Problem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[p.ID] = p
}

func (r *InMemSolveRepo) GetProblem(ctx context.Context, id int64) (*problem.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.problems[id]
	if !ok {
		return nil, ErrProblemNotFound
	}
	return &p, nil
}

func (r *InMemSolveRepo) IsSolved(ctx context.Context, userUUID uuid.UUID, problemID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, solved := r.solved[userUUID][problemID]
	return solved, nil
}

func (r *InMemSolveRepo) InsertSolve(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userSolved, ok := r.solved[entry.UserUUID]
	if !ok {
		userSolved = make(map[int64]Entry)
		r.solved[entry.UserUUID] = userSolved
	}
	if _, dup := userSolved[entry.ProblemID]; dup {
		return ErrDuplicateSolve
	}

	p, ok := r.problems[entry.ProblemID]
	if !ok {
		return ErrProblemNotFound
	}

	userSolved[entry.ProblemID] = entry

	p.SolveCount++
	r.problems[entry.ProblemID] = p

	stats := r.stats[entry.UserUUID]
	stats.Points += entry.PointsEarned
	stats.ProblemsSolved++
	r.stats[entry.UserUUID] = stats

	return nil
}

// SampleUnsolved filters the candidate set and draws limit problems by
// index rejection sampling, without replacement.
func (r *InMemSolveRepo) SampleUnsolved(ctx context.Context, userUUID uuid.UUID, limit int) ([]problem.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []problem.Problem
	for _, p := range r.problems {
		if p.AuthorUUID == userUUID {
			continue
		}
		if _, solved := r.solved[userUUID][p.ID]; solved {
			continue
		}
		candidates = append(candidates, p)
	}

	if len(candidates) <= limit {
		return candidates, nil
	}

	picked := make([]problem.Problem, 0, limit)
	seen := make(map[int]bool, limit)
	for len(picked) < limit {
		i := r.rng.Intn(len(candidates))
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, candidates[i])
	}

	return picked, nil
}

// UserStats reports the ledger-derived counters for a user. Test helper.
func (r *InMemSolveRepo) UserStats(userUUID uuid.UUID) UserStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats[userUUID]
}

// SolveCount reports a problem's solve counter. Test helper.
func (r *InMemSolveRepo) SolveCount(problemID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.problems[problemID].SolveCount
}

// LedgerSize reports the total number of ledger entries. Test helper.
func (r *InMemSolveRepo) LedgerSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, entries := range r.solved {
		n += len(entries)
	}
	return n
}
