package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UUID            uuid.UUID
	Username        string
	Points          int
	ProblemsSolved  int
	ProblemsCreated int
	Streak          int
	IsAdmin         bool
	ProfilePicture  *string
	CreatedAt       time.Time
}
