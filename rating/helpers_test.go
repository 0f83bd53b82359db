package rating_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/rating"
	ratinghttp "github.com/bakeclub/backend/rating/http"
)

var testJwtKey = []byte("test")

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "bakeclub", // local dev pg user
		Password:   "bakeclub", // local dev pg password
		Host:       "localhost",
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func setupRatingHttpHandler(t *testing.T) (http.Handler, *pgxpool.Pool) {
	pg := newTestPgDb(t)
	ratingSrvc := rating.NewRatingService(pg, []int{3, 2, 1})
	ratingHandler := ratinghttp.NewRatingHttpHandler(ratingSrvc)
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware(testJwtKey))
	ratingHandler.RegisterRoutes(router)
	return router, pg
}

// seed helpers write straight to the test db so scoring tests don't
// have to drag the user/entry upload paths along

func seedUser(t *testing.T, pg *pgxpool.Pool, firstname, lastname string) uuid.UUID {
	t.Helper()
	userUuid := uuid.New()
	_, err := pg.Exec(context.Background(), `
		INSERT INTO users (uuid, firstname, lastname, bcrypt_pwd, is_admin, created_at)
		VALUES ($1, $2, $3, '', FALSE, NOW())
	`, userUuid, firstname, lastname)
	require.NoError(t, err)
	return userUuid
}

func seedCompetition(t *testing.T, pg *pgxpool.Pool, startsAt, endsAt time.Time) uuid.UUID {
	t.Helper()
	compUuid := uuid.New()
	_, err := pg.Exec(context.Background(), `
		INSERT INTO competitions (uuid, name, image_url, starts_at, ends_at)
		VALUES ($1, 'Test bake-off', '', $2, $3)
	`, compUuid, startsAt, endsAt)
	require.NoError(t, err)
	return compUuid
}

func seedEntry(t *testing.T, pg *pgxpool.Pool, compUuid, authorUuid uuid.UUID) uuid.UUID {
	t.Helper()
	entryUuid := uuid.New()
	_, err := pg.Exec(context.Background(), `
		INSERT INTO entries (uuid, competition_uuid, author_uuid, title, created_at)
		VALUES ($1, $2, $3, 'Test cake', NOW())
	`, entryUuid, compUuid, authorUuid)
	require.NoError(t, err)
	return entryUuid
}

func seedRating(t *testing.T, pg *pgxpool.Pool, entryUuid, raterUuid uuid.UUID, category string, value int) {
	t.Helper()
	_, err := pg.Exec(context.Background(), `
		INSERT INTO ratings (uuid, entry_uuid, rater_uuid, category, value, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, uuid.New(), entryUuid, raterUuid, category, value)
	require.NoError(t, err)
}

func bearerToken(t *testing.T, memberUuid uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateJWT(memberUuid, "Test", "Rater", false, testJwtKey)
	require.NoError(t, err)
	return token
}

func submitRating(t *testing.T, handler http.Handler, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func getJson(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeSuccessData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var responseWrapper struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")
	require.Equal(t, "success", responseWrapper.Status, "Response body: %s", w.Body.String())
	if out != nil {
		err = json.Unmarshal(responseWrapper.Data, out)
		require.NoError(t, err, "Failed to unmarshal response data")
	}
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
