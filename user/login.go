package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

func (s *UserSrvc) Login(ctx context.Context, firstname, lastname, password string) (res *User, err error) {
	row, err := selectUserByName(ctx, s.postgres, firstname, lastname)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrNameOrPasswordIncorrect()
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.BcryptPwd), []byte(password))
	if err != nil {
		return nil, newErrNameOrPasswordIncorrect()
	}

	return &User{
		UUID:      row.Uuid,
		Firstname: row.Firstname,
		Lastname:  row.Lastname,
		IsAdmin:   row.IsAdmin,
	}, nil
}
