package http

import (
	"time"

	"github.com/bakeclub/backend/rating"
	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

type RatingHttpHandler struct {
	ratingSrvc *rating.RatingSrvc
	cache      *cache.Cache
	sfGroup    singleflight.Group // prevents cache stampedes on the leaderboards
}

func NewRatingHttpHandler(ratingSrvc *rating.RatingSrvc) *RatingHttpHandler {
	// leaderboards are cheap to recompute; keep them only briefly
	c := cache.New(5*time.Second, 10*time.Second)
	return &RatingHttpHandler{
		ratingSrvc: ratingSrvc,
		cache:      c,
	}
}

func (h *RatingHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/ratings", h.SubmitRating)
	r.Get("/competitions/{competitionId}/ranking", h.GetCompetitionRanking)
	r.Get("/ranking", h.GetGlobalRanking)
}

const globalRankingCacheKey = "global-ranking"

func competitionRankingCacheKey(compUuid string) string {
	return "competition-ranking:" + compUuid
}

// invalidateRankings drops the cached leaderboards affected by a
// rating write so the next read reflects the stored state.
func (h *RatingHttpHandler) invalidateRankings(compUuid string) {
	h.cache.Delete(competitionRankingCacheKey(compUuid))
	h.cache.Delete(globalRankingCacheKey)
}
