package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeclub/backend/auth"
	"github.com/bakeclub/backend/user"
	userhttp "github.com/bakeclub/backend/user/http"
)

var testJwtKey = []byte("test")

const testInviteCode = "cinnamon"

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

func setupUserHttpHandler(t *testing.T) http.Handler {
	pg := newTestPgDb(t)
	userSrvc := user.NewUserService(pg, testInviteCode)
	userHandler := userhttp.NewUserHttpHandler(userSrvc, testJwtKey)
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware(testJwtKey))
	userHandler.RegisterRoutes(router)
	return router
}

func postJson(t *testing.T, handler http.Handler, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func registerMember(t *testing.T, handler http.Handler, firstname, lastname, password string) *httptest.ResponseRecorder {
	t.Helper()
	return postJson(t, handler, "/users", map[string]interface{}{
		"firstname":   firstname,
		"lastname":    lastname,
		"password":    password,
		"invite_code": testInviteCode,
	})
}

func loginMember(t *testing.T, handler http.Handler, firstname, lastname, password string) string {
	t.Helper()
	w := postJson(t, handler, "/login", map[string]interface{}{
		"firstname": firstname,
		"lastname":  lastname,
		"password":  password,
	})
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal login response")
	require.NotEmpty(t, responseWrapper.Data, "Expected a JWT in the login response")
	return responseWrapper.Data
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
