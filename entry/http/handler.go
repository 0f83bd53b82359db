package http

import (
	"github.com/bakeclub/backend/entry"
	"github.com/go-chi/chi/v5"
)

type EntryHttpHandler struct {
	entrySrvc *entry.EntrySrvc
}

func NewEntryHttpHandler(entrySrvc *entry.EntrySrvc) *EntryHttpHandler {
	return &EntryHttpHandler{entrySrvc: entrySrvc}
}

func (h *EntryHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/entries", h.CreateEntry)
	r.Get("/competitions/{competitionId}/entries", h.ListEntries)
}
