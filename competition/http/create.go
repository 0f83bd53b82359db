package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/competition"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
)

func (h *CompHttpHandler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	if !claims.IsAdmin {
		httpjson.WriteErrorJson(w, "only admins can create competitions", http.StatusForbidden, "forbidden")
		return
	}

	type createRequest struct {
		Name     string    `json:"name"`
		ImageUrl string    `json:"image_url"`
		StartsAt time.Time `json:"starts_at"`
		EndsAt   time.Time `json:"ends_at"`
	}

	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	comp, err := h.compSrvc.CreateCompetition(r.Context(), competition.CreateCompetitionParams{
		Name:     request.Name,
		ImageUrl: request.ImageUrl,
		StartsAt: request.StartsAt,
		EndsAt:   request.EndsAt,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCompetition(comp, time.Now()))
}
