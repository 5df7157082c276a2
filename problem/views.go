package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Views resolves a set of problems into viewer-specific views: author info
// attached, solved/saved flags computed for the viewer (both false for
// anonymous viewers). Problems whose author no longer exists are dropped.
func (s *ProblemSrvc) Views(ctx context.Context, viewer *uuid.UUID, problems []Problem) ([]View, error) {
	if len(problems) == 0 {
		return []View{}, nil
	}

	authorUuids := make([]uuid.UUID, 0, len(problems))
	problemIds := make([]int64, 0, len(problems))
	for _, p := range problems {
		authorUuids = append(authorUuids, p.AuthorUUID)
		problemIds = append(problemIds, p.ID)
	}

	authors, err := s.selectAuthors(ctx, authorUuids)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	solved := map[int64]bool{}
	saved := map[int64]bool{}
	if viewer != nil {
		solved, err = s.selectMembership(ctx, "solved_problems", *viewer, problemIds)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		saved, err = s.selectMembership(ctx, "saved_problems", *viewer, problemIds)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
	}

	views := make([]View, 0, len(problems))
	for _, p := range problems {
		author, ok := authors[p.AuthorUUID]
		if !ok {
			continue
		}
		views = append(views, View{
			Problem:  p,
			Author:   author,
			IsSolved: solved[p.ID],
			IsSaved:  saved[p.ID],
		})
	}

	return views, nil
}

func (s *ProblemSrvc) selectAuthors(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]Author, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT uuid, username, profile_picture
		FROM users
		WHERE uuid = ANY($1)
	`, uuids)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make(map[uuid.UUID]Author)
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.UUID, &a.Username, &a.ProfilePicture); err != nil {
			return nil, err
		}
		authors[a.UUID] = a
	}

	return authors, rows.Err()
}

// selectMembership returns which of the given problem ids have a row for
// the user in the given join table (solved_problems or saved_problems).
func (s *ProblemSrvc) selectMembership(ctx context.Context, table string, userUUID uuid.UUID, problemIds []int64) (map[int64]bool, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT problem_id FROM `+table+`
		WHERE user_uuid = $1 AND problem_id = ANY($2)
	`, userUUID, problemIds)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s membership: %w", table, err)
	}
	defer rows.Close()

	member := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		member[id] = true
	}

	return member, rows.Err()
}
