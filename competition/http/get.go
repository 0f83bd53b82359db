package http

import (
	"net/http"
	"time"

	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *CompHttpHandler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	compUuid, err := uuid.Parse(chi.URLParam(r, "competitionId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid competition id", http.StatusBadRequest, "invalid_competition_id")
		return
	}

	comp, err := h.compSrvc.GetCompetitionByUUID(r.Context(), compUuid)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCompetition(comp, time.Now()))
}
