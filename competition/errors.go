package competition

import (
	"net/http"

	"github.com/bakeclub/backend/srvcerror"
)

const ErrCodeCompetitionNotFound = "competition_not_found"

func newErrCompetitionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCompetitionNotFound,
		"competition was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeCompetitionNameEmpty = "competition_name_empty"

func newErrCompetitionNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCompetitionNameEmpty,
		"competition name can't be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidTimeRange = "invalid_time_range"

func newErrInvalidTimeRange() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidTimeRange,
		"competition must end after it starts",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeOverlappingCompetition = "overlapping_competition"

func newErrOverlappingCompetition() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeOverlappingCompetition,
		"a competition already exists in this time range",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
