package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/bakeclub/backend/competition"
	comphttp "github.com/bakeclub/backend/competition/http"
	"github.com/bakeclub/backend/entry"
	entryhttp "github.com/bakeclub/backend/entry/http"
	"github.com/bakeclub/backend/httpsrv"
	"github.com/bakeclub/backend/rating"
	ratinghttp "github.com/bakeclub/backend/rating/http"
	"github.com/bakeclub/backend/s3bucket"
	"github.com/bakeclub/backend/user"
	userhttp "github.com/bakeclub/backend/user/http"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	inviteCode := os.Getenv("INVITE_CODE")
	if inviteCode == "" {
		slog.Error("INVITE_CODE is not set")
		os.Exit(1)
	}

	pg, err := pgxpool.New(context.Background(), getPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create postgres pool", "error", err)
		os.Exit(1)
	}

	photos, err := s3bucket.NewS3Bucket(
		os.Getenv("S3_REGION"),
		os.Getenv("S3_PHOTO_BUCKET"))
	if err != nil {
		slog.Error("failed to create s3 photo bucket", "error", err)
		os.Exit(1)
	}

	userSrvc := user.NewUserService(pg, inviteCode)
	compSrvc := competition.NewCompetitionService(pg)
	entrySrvc := entry.NewEntryService(pg, compSrvc, photos)
	ratingSrvc := rating.NewRatingService(pg, pointsTableFromEnv())

	server := httpsrv.NewHttpServer(
		userhttp.NewUserHttpHandler(userSrvc, []byte(jwtKey)),
		comphttp.NewCompHttpHandler(compSrvc),
		entryhttp.NewEntryHttpHandler(entrySrvc),
		ratinghttp.NewRatingHttpHandler(ratingSrvc),
		[]byte(jwtKey),
		allowedOriginsFromEnv(),
	)

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = server.Start(address)
	log.Printf("Server stopped with error: %v", err)
}

func getPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	userName := os.Getenv("POSTGRES_USER")
	pw := os.Getenv("POSTGRES_PW")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, userName, pw, db, ssl)
}

// pointsTableFromEnv reads the placement award points, e.g.
// PLACEMENT_POINTS="3,2,1". Falls back to the default table.
func pointsTableFromEnv() []int {
	raw := os.Getenv("PLACEMENT_POINTS")
	if raw == "" {
		return nil
	}

	var table []int
	for _, part := range strings.Split(raw, ",") {
		points, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			slog.Error("invalid PLACEMENT_POINTS entry", "entry", part)
			os.Exit(1)
		}
		table = append(table, points)
	}
	return table
}

func allowedOriginsFromEnv() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(raw, ",")
}
