// Package cooldown implements the client-side retry throttle for answer
// submissions. The server accepts any number of attempts; the cooldown is
// advisory and lives entirely in the client, keyed by problem id.
package cooldown

import (
	"fmt"
	"time"
)

const DefaultWindow = 5 * time.Minute

// Store persists failure timestamps between client runs. Implementations
// need not be safe for concurrent use; the guard serializes access.
type Store interface {
	Load() (map[int64]time.Time, error)
	Save(map[int64]time.Time) error
}

// Guard tracks, per problem, when the last incorrect answer was given and
// how long the client should hold off before retrying.
type Guard struct {
	window time.Duration
	store  Store
	failed map[int64]time.Time
	now    func() time.Time
}

func NewGuard(window time.Duration, store Store) (*Guard, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	failed, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load cooldown state: %w", err)
	}
	if failed == nil {
		failed = map[int64]time.Time{}
	}
	return &Guard{
		window: window,
		store:  store,
		failed: failed,
		now:    time.Now,
	}, nil
}

// Fail records an incorrect answer for the problem, restarting its window.
func (g *Guard) Fail(problemID int64) error {
	g.failed[problemID] = g.now()
	return g.store.Save(g.failed)
}

// Remaining reports how long the client should still wait before retrying
// the problem. Expired entries are dropped so the state file does not grow
// without bound.
func (g *Guard) Remaining(problemID int64) (time.Duration, bool) {
	at, ok := g.failed[problemID]
	if !ok {
		return 0, false
	}
	left := g.window - g.now().Sub(at)
	if left <= 0 {
		delete(g.failed, problemID)
		return 0, false
	}
	return left, true
}

// Clear forgets the problem's failure, e.g. after a correct answer.
func (g *Guard) Clear(problemID int64) error {
	if _, ok := g.failed[problemID]; !ok {
		return nil
	}
	delete(g.failed, problemID)
	return g.store.Save(g.failed)
}

// FormatRemaining renders a duration as m:ss for countdown display,
// rounding up so the counter never shows 0:00 while the window is open.
func FormatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
