package http

import (
	"github.com/bakeclub/backend/competition"
	"github.com/go-chi/chi/v5"
)

type CompHttpHandler struct {
	compSrvc *competition.CompSrvc
}

func NewCompHttpHandler(compSrvc *competition.CompSrvc) *CompHttpHandler {
	return &CompHttpHandler{compSrvc: compSrvc}
}

func (h *CompHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/competitions", h.ListCompetitions)
	r.Post("/competitions", h.CreateCompetition)
	r.Get("/competitions/{competitionId}", h.GetCompetition)
}
