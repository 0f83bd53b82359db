package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserSrvc struct {
	postgres   *pgxpool.Pool
	inviteCode string
}

// NewUserService constructs the member service. inviteCode is the club
// secret new members have to present when registering.
func NewUserService(pg *pgxpool.Pool, inviteCode string) *UserSrvc {
	return &UserSrvc{
		postgres:   pg,
		inviteCode: inviteCode,
	}
}

type User struct {
	UUID      uuid.UUID
	Firstname string
	Lastname  string
	IsAdmin   bool
}

func (s *UserSrvc) GetUserByUUID(ctx context.Context, userUuid uuid.UUID) (*User, error) {
	row, err := selectUserByUuid(ctx, s.postgres, userUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}

	return &User{
		UUID:      row.Uuid,
		Firstname: row.Firstname,
		Lastname:  row.Lastname,
		IsAdmin:   row.IsAdmin,
	}, nil
}
