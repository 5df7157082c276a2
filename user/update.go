package user

import (
	"context"

	"github.com/google/uuid"
)

type UpdateUserParams struct {
	ProfilePicture *string
}

// UpdateUser applies a partial profile update. Point and solve counters are
// owned by the solve transaction and cannot be touched here.
func (s *UserSrvc) UpdateUser(ctx context.Context, userUUID uuid.UUID, p UpdateUserParams) (*User, error) {
	if p.ProfilePicture != nil {
		tag, err := s.postgres.Exec(ctx, `
			UPDATE users SET profile_picture = $1 WHERE uuid = $2
		`, *p.ProfilePicture, userUUID)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		if tag.RowsAffected() == 0 {
			return nil, newErrUserNotFound()
		}
	}

	return s.GetUserByUUID(ctx, userUUID)
}

// GrantAdmin marks the named user as an administrator.
func (s *UserSrvc) GrantAdmin(ctx context.Context, username string) (*User, error) {
	tag, err := s.postgres.Exec(ctx, `
		UPDATE users SET is_admin = TRUE WHERE lower(username) = lower($1)
	`, username)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, newErrUserNotFound()
	}

	return s.GetUserByUsername(ctx, username)
}

// DeleteUser removes a user; the schema cascades their problems, solve
// ledger entries and bookmarks. Admins cannot delete themselves.
func (s *UserSrvc) DeleteUser(ctx context.Context, callerUUID, userUUID uuid.UUID) error {
	if callerUUID == userUUID {
		return newErrCannotDeleteSelf()
	}

	tag, err := s.postgres.Exec(ctx, `
		DELETE FROM users WHERE uuid = $1
	`, userUUID)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if tag.RowsAffected() == 0 {
		return newErrUserNotFound()
	}

	return nil
}
