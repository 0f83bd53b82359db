package user

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserParams struct {
	Firstname  string
	Lastname   string
	Password   string
	InviteCode string
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (res *User, err error) {
	// Validate all fields
	if err := validateFirstname(p.Firstname); err != nil {
		return nil, err
	}
	if err := validateLastname(p.Lastname); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(p.InviteCode), []byte(s.inviteCode)) != 1 {
		return nil, newErrWrongInviteCode()
	}

	existing, err := selectUserByName(ctx, s.postgres, p.Firstname, p.Lastname)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	// the (firstname, lastname) pair must be unique
	if existing != nil {
		return nil, newErrUserExists()
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbUser{
		Uuid:      uuid.New(),
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		BcryptPwd: string(bcryptPwd),
		IsAdmin:   false,
		CreatedAt: time.Now(),
	}

	err = insertUser(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	res = &User{
		UUID:      row.Uuid,
		Firstname: row.Firstname,
		Lastname:  row.Lastname,
		IsAdmin:   row.IsAdmin,
	}

	return res, nil
}

type dbUser struct {
	Uuid      uuid.UUID
	Firstname string
	Lastname  string
	BcryptPwd string
	IsAdmin   bool
	CreatedAt time.Time
}

func selectUserByName(ctx context.Context, pg *pgxpool.Pool, firstname, lastname string) (*dbUser, error) {
	rows, err := pg.Query(ctx, `
		SELECT uuid, firstname, lastname, bcrypt_pwd, is_admin, created_at
		FROM users
		WHERE firstname = $1 AND lastname = $2
	`, firstname, lastname)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var user dbUser
	err = rows.Scan(
		&user.Uuid,
		&user.Firstname,
		&user.Lastname,
		&user.BcryptPwd,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func selectUserByUuid(ctx context.Context, pg *pgxpool.Pool, userUuid uuid.UUID) (*dbUser, error) {
	rows, err := pg.Query(ctx, `
		SELECT uuid, firstname, lastname, bcrypt_pwd, is_admin, created_at
		FROM users
		WHERE uuid = $1
	`, userUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var user dbUser
	err = rows.Scan(
		&user.Uuid,
		&user.Firstname,
		&user.Lastname,
		&user.BcryptPwd,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func insertUser(ctx context.Context, pg *pgxpool.Pool, user *dbUser) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO users (uuid, firstname, lastname, bcrypt_pwd, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		user.Uuid,
		user.Firstname,
		user.Lastname,
		user.BcryptPwd,
		user.IsAdmin,
		user.CreatedAt,
	)
	return err
}

// Validation functions
func validateFirstname(firstname string) error {
	const maxFirstnameLength = 20
	if len(firstname) == 0 {
		return newErrFirstnameEmpty()
	}
	if len(firstname) > maxFirstnameLength {
		return newErrFirstnameTooLong(maxFirstnameLength)
	}
	return nil
}

func validateLastname(lastname string) error {
	const maxLastnameLength = 20
	if len(lastname) == 0 {
		return newErrLastnameEmpty()
	}
	if len(lastname) > maxLastnameLength {
		return newErrLastnameTooLong(maxLastnameLength)
	}
	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 4
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}
