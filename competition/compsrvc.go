package competition

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompSrvc struct {
	postgres *pgxpool.Pool
}

func NewCompetitionService(pg *pgxpool.Pool) *CompSrvc {
	return &CompSrvc{postgres: pg}
}

type Competition struct {
	UUID     uuid.UUID
	Name     string
	ImageUrl string
	StartsAt time.Time
	EndsAt   time.Time
}

// State is the temporal state of a competition relative to now.
type State string

const (
	StateUpcoming State = "upcoming"
	StateActive   State = "active"
	StatePast     State = "past"
)

func (c *Competition) StateAt(now time.Time) State {
	if c.StartsAt.After(now) {
		return StateUpcoming
	}
	if c.EndsAt.Before(now) {
		return StatePast
	}
	return StateActive
}
