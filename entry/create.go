package entry

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nfnt/resize"
)

const thumbMaxDim = 400

type CreateEntryParams struct {
	AuthorUUID  uuid.UUID
	Title       string
	Description string
	Photo       []byte
	PhotoMime   string
}

// CreateEntry stores a new entry in the currently active competition.
// The photo is uploaded to object storage together with a downscaled
// thumbnail used on listing pages.
func (s *EntrySrvc) CreateEntry(ctx context.Context, p CreateEntryParams) (*Entry, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}

	active, err := s.compSrvc.GetActiveCompetition(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, newErrNoActiveCompetition()
	}

	entryUuid := uuid.New()

	img, _, err := image.Decode(bytes.NewReader(p.Photo))
	if err != nil {
		return nil, newErrUnsupportedImageType(p.PhotoMime).SetDebug(err)
	}

	thumb := resize.Thumbnail(thumbMaxDim, thumbMaxDim, img, resize.Lanczos3)
	var thumbBuf bytes.Buffer
	if err := jpeg.Encode(&thumbBuf, thumb, nil); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	photoKey := fmt.Sprintf("entries/%s/photo%s", entryUuid, extForMime(p.PhotoMime))
	imageUrl, err := s.photos.Upload(p.Photo, photoKey, p.PhotoMime)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	thumbKey := fmt.Sprintf("entries/%s/thumb.jpg", entryUuid)
	thumbUrl, err := s.photos.Upload(thumbBuf.Bytes(), thumbKey, "image/jpeg")
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbEntry{
		Uuid:            entryUuid,
		CompetitionUuid: active.UUID,
		AuthorUuid:      p.AuthorUUID,
		Title:           p.Title,
		Description:     p.Description,
		ImageUrl:        imageUrl,
		ThumbUrl:        thumbUrl,
		CreatedAt:       time.Now(),
	}

	err = insertEntry(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &Entry{
		UUID:            row.Uuid,
		CompetitionUUID: row.CompetitionUuid,
		Title:           row.Title,
		Description:     row.Description,
		ImageUrl:        row.ImageUrl,
		ThumbUrl:        row.ThumbUrl,
		Author:          Author{UUID: p.AuthorUUID},
	}, nil
}

type dbEntry struct {
	Uuid            uuid.UUID
	CompetitionUuid uuid.UUID
	AuthorUuid      uuid.UUID
	Title           string
	Description     string
	ImageUrl        string
	ThumbUrl        string
	CreatedAt       time.Time
}

func insertEntry(ctx context.Context, pg *pgxpool.Pool, entry *dbEntry) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO entries (uuid, competition_uuid, author_uuid, title, description, image_url, thumb_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.Uuid,
		entry.CompetitionUuid,
		entry.AuthorUuid,
		entry.Title,
		entry.Description,
		entry.ImageUrl,
		entry.ThumbUrl,
		entry.CreatedAt,
	)
	return err
}

func validateTitle(title string) error {
	const maxTitleLength = 100
	if len(title) == 0 {
		return newErrTitleEmpty()
	}
	if len(title) > maxTitleLength {
		return newErrTitleTooLong(maxTitleLength)
	}
	return nil
}

func extForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	return ""
}
