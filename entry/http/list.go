package http

import (
	"net/http"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/entry"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Author struct {
	UUID      string `json:"uuid"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type OwnRating struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

type Entry struct {
	UUID        string      `json:"uuid"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageUrl    string      `json:"image_url"`
	ThumbUrl    string      `json:"thumb_url"`
	Author      Author      `json:"author"`
	OwnRatings  []OwnRating `json:"own_ratings,omitempty"`
}

func (h *EntryHttpHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	compUuid, err := uuid.Parse(chi.URLParam(r, "competitionId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid competition id", http.StatusBadRequest, "invalid_competition_id")
		return
	}

	// own ratings are only attached for authenticated viewers
	var viewerUuid *uuid.UUID
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if ok && claims != nil {
		parsed, err := uuid.Parse(claims.UUID)
		if err == nil {
			viewerUuid = &parsed
		}
	}

	entries, err := h.entrySrvc.ListEntries(r.Context(), compUuid, viewerUuid)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := make([]Entry, 0, len(entries))
	for _, e := range entries {
		response = append(response, mapEntry(e))
	}

	httpjson.WriteSuccessJson(w, response)
}

func mapEntry(e entry.Entry) Entry {
	mapped := Entry{
		UUID:        e.UUID.String(),
		Title:       e.Title,
		Description: e.Description,
		ImageUrl:    e.ImageUrl,
		ThumbUrl:    e.ThumbUrl,
		Author: Author{
			UUID:      e.Author.UUID.String(),
			Firstname: e.Author.Firstname,
			Lastname:  e.Author.Lastname,
		},
	}
	for _, r := range e.OwnRatings {
		mapped.OwnRatings = append(mapped.OwnRatings, OwnRating{
			Category: r.Category,
			Value:    r.Value,
		})
	}
	return mapped
}
