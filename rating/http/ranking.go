package http

import (
	"net/http"

	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RankedScore struct {
	ParticipantUUID string `json:"participant_uuid"`
	ParticipantName string `json:"participant_name"`
	Score           int    `json:"score"`
	PlaceIndex      int    `json:"place_index"`
}

func (h *RatingHttpHandler) GetCompetitionRanking(w http.ResponseWriter, r *http.Request) {
	compUuidStr := chi.URLParam(r, "competitionId")
	compUuid, err := uuid.Parse(compUuidStr)
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid competition id", http.StatusBadRequest, "invalid_competition_id")
		return
	}

	cacheKey := competitionRankingCacheKey(compUuidStr)
	if cached, found := h.cache.Get(cacheKey); found {
		httpjson.WriteSuccessJson(w, cached)
		return
	}

	result, err, _ := h.sfGroup.Do(cacheKey, func() (interface{}, error) {
		ranked, err := h.ratingSrvc.GetCompetitionRanking(r.Context(), compUuid)
		if err != nil {
			return nil, err
		}

		response := make([]RankedScore, 0, len(ranked))
		for _, row := range ranked {
			response = append(response, RankedScore{
				ParticipantUUID: row.UUID.String(),
				ParticipantName: row.Name,
				Score:           row.Score,
				PlaceIndex:      row.PlaceIndex,
			})
		}

		h.cache.SetDefault(cacheKey, response)
		return response, nil
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}
