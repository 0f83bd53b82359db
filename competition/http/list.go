package http

import (
	"net/http"
	"time"

	"github.com/bakeclub/backend/httpjson"
	"github.com/bakeclub/backend/logger"
)

func (h *CompHttpHandler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	comps, err := h.compSrvc.ListCompetitions(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	now := time.Now()
	response := make([]Competition, 0, len(comps))
	for i := range comps {
		response = append(response, mapCompetition(&comps[i], now))
	}

	httpjson.WriteSuccessJson(w, response)
}
