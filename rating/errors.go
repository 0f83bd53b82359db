package rating

import (
	"fmt"
	"net/http"

	"github.com/bakeclub/backend/srvcerror"
)

const ErrCodeUnknownCategory = "unknown_rating_category"

func newErrUnknownCategory(category string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownCategory,
		fmt.Sprintf("unknown rating category: %s", category),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeValueOutOfRange = "rating_value_out_of_range"

func newErrValueOutOfRange(category string, min, max int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeValueOutOfRange,
		fmt.Sprintf("%s rating must be between %d and %d", category, min, max),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEntryNotFound = "entry_not_found"

func newErrEntryNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEntryNotFound,
		"entry was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeCompetitionNotFound = "competition_not_found"

func newErrCompetitionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCompetitionNotFound,
		"competition was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
