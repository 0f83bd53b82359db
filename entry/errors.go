package entry

import (
	"fmt"
	"net/http"

	"github.com/bakeclub/backend/srvcerror"
)

const ErrCodeNoActiveCompetition = "no_active_competition"

func newErrNoActiveCompetition() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoActiveCompetition,
		"there is no active competition right now",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleEmpty = "title_empty"

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleEmpty,
		"entry title can't be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleTooLong = "title_too_long"

func newErrTitleTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleTooLong,
		fmt.Sprintf("entry title must contain at most %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnsupportedImageType = "unsupported_image_type"

func newErrUnsupportedImageType(mimeType string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnsupportedImageType,
		fmt.Sprintf("unsupported image type: %s", mimeType),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
