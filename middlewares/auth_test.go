package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"api/schemas"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var testSecret = []byte("test-secret-do-not-use")

func testAdmin() *schemas.Admin {
	return &schemas.Admin{
		ID:       bson.NewObjectID(),
		Username: "jane",
		Role:     schemas.RoleManager,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	adm := testAdmin()

	token, err := GenerateToken(testSecret, adm, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, adm.ID.Hex(), claims.ID)
	require.Equal(t, "jane", claims.Username)
	require.Equal(t, schemas.RoleManager, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, testAdmin(), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	require.Error(t, err)
}

func authTestServer(t *testing.T) http.Handler {
	t.Helper()
	return Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(claims.Username))
	}))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) schemas.ApiResponse {
	t.Helper()
	var resp schemas.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthMissingToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	authTestServer(t).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "No authentication token provided", decodeEnvelope(t, w).Message)
}

func TestAuthExpiredToken(t *testing.T) {
	token, err := GenerateToken(testSecret, testAdmin(), -time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authTestServer(t).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Token has expired", decodeEnvelope(t, w).Message)
}

func TestAuthMalformedToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	r.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	authTestServer(t).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid authentication token", decodeEnvelope(t, w).Message)
}

func TestAuthValidToken(t *testing.T) {
	token, err := GenerateToken(testSecret, testAdmin(), time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authTestServer(t).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "jane", w.Body.String())
}

func TestAuthTokenQueryParam(t *testing.T) {
	// Websocket clients cannot set headers, so the token rides the URL.
	token, err := GenerateToken(testSecret, testAdmin(), time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/leads/ws?token="+token, nil)
	w := httptest.NewRecorder()
	authTestServer(t).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorizeRoles(t *testing.T) {
	handler := Auth(testSecret)(Authorize(schemas.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

	// Manager token against an admin-only route.
	token, err := GenerateToken(testSecret, testAdmin(), time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/create", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Not authorized to access this resource", decodeEnvelope(t, w).Message)

	// Admin token passes.
	adm := testAdmin()
	adm.Role = schemas.RoleAdmin
	token, err = GenerateToken(testSecret, adm, time.Hour)
	require.NoError(t, err)

	r = httptest.NewRequest(http.MethodPost, "/api/admin/create", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)
}
