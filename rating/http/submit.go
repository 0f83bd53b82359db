package http

import (
	"encoding/json"
	"net/http"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/bakeclub/backend/rating"
	"github.com/google/uuid"
)

func (h *RatingHttpHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	raterUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	type submitRequest struct {
		EntryUUID string `json:"entry_uuid"`
		Category  string `json:"category"`
		Value     int    `json:"value"`
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	entryUuid, err := uuid.Parse(request.EntryUUID)
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid entry id", http.StatusBadRequest, "invalid_entry_id")
		return
	}

	compUuid, err := h.ratingSrvc.SubmitRating(r.Context(), rating.SubmitRatingParams{
		EntryUUID: entryUuid,
		RaterUUID: raterUuid,
		Category:  rating.Category(request.Category),
		Value:     request.Value,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	h.invalidateRankings(compUuid.String())

	httpjson.WriteSuccessJson(w, map[string]string{"status": "ok"})
}
