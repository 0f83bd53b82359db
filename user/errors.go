package user

import (
	"fmt"
	"net/http"

	"github.com/bakeclub/backend/srvcerror"
)

const ErrCodeFirstnameEmpty = "firstname_empty"

func newErrFirstnameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFirstnameEmpty,
		"first name can't be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFirstnameTooLong = "firstname_too_long"

func newErrFirstnameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFirstnameTooLong,
		fmt.Sprintf("first name must contain at most %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeLastnameEmpty = "lastname_empty"

func newErrLastnameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLastnameEmpty,
		"last name can't be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeLastnameTooLong = "lastname_too_long"

func newErrLastnameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLastnameTooLong,
		fmt.Sprintf("last name must contain at most %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must contain at least %d characters", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeWrongInviteCode = "wrong_invite_code"

func newErrWrongInviteCode() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeWrongInviteCode,
		"wrong club invite code",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeUserAlreadyExists = "user_exists"

func newErrUserExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserAlreadyExists,
		"a member with this name already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"member was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNameOrPasswordIncorrect = "name_or_password_incorrect"

func newErrNameOrPasswordIncorrect() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameOrPasswordIncorrect,
		"name or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
