package problem

import (
	"time"

	"github.com/google/uuid"
)

type ProblemType string

const (
	TypeMultipleChoice ProblemType = "multiple-choice"
	TypeShortAnswer    ProblemType = "short-answer"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Problem struct {
	ID            int64
	AuthorUUID    uuid.UUID
	Type          ProblemType
	Text          string
	Image         *string
	Options       []string // only for multiple-choice
	CorrectAnswer string
	Difficulty    Difficulty
	Tags          []string
	SolveCount    int
	CreatedAt     time.Time
}

// SolvedEntry is one row of a user's solve history.
type SolvedEntry struct {
	Problem      Problem
	PointsEarned int
	SolvedAt     time.Time
}

// SavedEntry is one bookmark of a user.
type SavedEntry struct {
	Problem Problem
	SavedAt time.Time
}

// Author is the subset of user data embedded in problem views.
type Author struct {
	UUID           uuid.UUID
	Username       string
	ProfilePicture *string
}

// View is a problem as seen by a particular viewer: author attached,
// solved/saved state resolved, correct answer withheld.
type View struct {
	Problem  Problem
	Author   Author
	IsSolved bool
	IsSaved  bool
}
