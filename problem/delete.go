package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DeleteProblem removes a problem; ledger entries and bookmarks referencing
// it are cascaded by the schema. Only the author or an admin may delete.
// Earned points are deliberately not clawed back (matches the admin
// moderation semantics: deleting spam must not punish solvers).
func (s *ProblemSrvc) DeleteProblem(ctx context.Context, callerUUID uuid.UUID, callerIsAdmin bool, problemID int64) error {
	p, err := s.GetProblem(ctx, problemID)
	if err != nil {
		return err
	}

	if !callerIsAdmin && p.AuthorUUID != callerUUID {
		return newErrNotProblemOwner()
	}

	tag, err := s.postgres.Exec(ctx, `
		DELETE FROM problems WHERE id = $1
	`, problemID)
	if err != nil {
		return newErrInternalSE().SetDebug(fmt.Errorf("failed to delete problem: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return newErrProblemNotFound()
	}

	return nil
}
