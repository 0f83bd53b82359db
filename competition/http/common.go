package http

import (
	"time"

	"github.com/bakeclub/backend/competition"
)

type Competition struct {
	UUID     string    `json:"uuid"`
	Name     string    `json:"name"`
	ImageUrl string    `json:"image_url"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	State    string    `json:"state"` // upcoming, active or past
}

func mapCompetition(comp *competition.Competition, now time.Time) Competition {
	return Competition{
		UUID:     comp.UUID.String(),
		Name:     comp.Name,
		ImageUrl: comp.ImageUrl,
		StartsAt: comp.StartsAt,
		EndsAt:   comp.EndsAt,
		State:    string(comp.StateAt(now)),
	}
}
