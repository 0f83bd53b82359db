package entry

import (
	"github.com/bakeclub/backend/competition"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PhotoStore is the object storage the entry photos end up in.
// Satisfied by s3bucket.S3Bucket.
type PhotoStore interface {
	Upload(content []byte, key string, mediaType string) (string, error)
}

type EntrySrvc struct {
	postgres *pgxpool.Pool
	compSrvc *competition.CompSrvc
	photos   PhotoStore
}

func NewEntryService(pg *pgxpool.Pool, compSrvc *competition.CompSrvc, photos PhotoStore) *EntrySrvc {
	return &EntrySrvc{
		postgres: pg,
		compSrvc: compSrvc,
		photos:   photos,
	}
}

type Author struct {
	UUID      uuid.UUID
	Firstname string
	Lastname  string
}

// OwnRating is the rating the viewing member has already given to an
// entry in one category. Used to pre-fill the rating form.
type OwnRating struct {
	Category string
	Value    int
}

type Entry struct {
	UUID            uuid.UUID
	CompetitionUUID uuid.UUID
	Title           string
	Description     string
	ImageUrl        string
	ThumbUrl        string
	Author          Author
	OwnRatings      []OwnRating
}
