package http

import (
	"net/http"

	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
)

type GlobalStanding struct {
	ParticipantUUID string `json:"participant_uuid"`
	ParticipantName string `json:"participant_name"`
	TotalPoints     int    `json:"total_points"`
}

func (h *RatingHttpHandler) GetGlobalRanking(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(globalRankingCacheKey); found {
		httpjson.WriteSuccessJson(w, cached)
		return
	}

	result, err, _ := h.sfGroup.Do(globalRankingCacheKey, func() (interface{}, error) {
		standing, err := h.ratingSrvc.GetGlobalRanking(r.Context())
		if err != nil {
			return nil, err
		}

		response := make([]GlobalStanding, 0, len(standing))
		for _, row := range standing {
			response = append(response, GlobalStanding{
				ParticipantUUID: row.UUID.String(),
				ParticipantName: row.Name,
				TotalPoints:     row.Score,
			})
		}

		h.cache.SetDefault(globalRankingCacheKey, response)
		return response, nil
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}
