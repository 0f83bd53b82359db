package httpsrv

import (
	"log/slog"
	"net/http"

	"github.com/bakeclub/backend/auth"
	comphttp "github.com/bakeclub/backend/competition/http"
	entryhttp "github.com/bakeclub/backend/entry/http"
	ratinghttp "github.com/bakeclub/backend/rating/http"
	userhttp "github.com/bakeclub/backend/user/http"
	"github.com/bakeclub/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userHandler *userhttp.UserHttpHandler,
	compHandler *comphttp.CompHttpHandler,
	entryHandler *entryhttp.EntryHttpHandler,
	ratingHandler *ratinghttp.RatingHttpHandler,
	jwtKey []byte,
	allowedOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("bakeclub", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": "v1.0",
			"env":     "dev",
		},
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(httpLogger))

	// every handler downstream reads its logger from the request context
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithLogger(r.Context(), httpLogger.Logger)
			ctx = logger.WithRequestID(ctx, middleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	userHandler.RegisterRoutes(router)
	compHandler.RegisterRoutes(router)
	entryHandler.RegisterRoutes(router)
	ratingHandler.RegisterRoutes(router)

	return &HttpServer{router: router}
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *HttpServer) Handler() http.Handler {
	return s.router
}
