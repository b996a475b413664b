package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*chi.Mux, *jwtMocks.MockJWT) {
	t.Helper()

	tokens := jwtMocks.NewMockJWT(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	auth := middleware.NewAuthRoleMiddleware(tokens, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(username))
	}

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Get("/v1/pages/about", ok)
	router.Get("/v1/users/me", ok)
	router.Delete("/v1/rooms/{id}", ok)

	return router, tokens
}

func serve(router http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPublicRouteSkipsAuth(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := serve(router, http.MethodGet, "/v1/pages/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingAuthorizationHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := serve(router, http.MethodGet, "/v1/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExpiredToken(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tokens.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

	rec := serve(router, http.MethodGet, "/v1/users/me", map[string]string{constant.RequestHeaderAuthorization: "Bearer stale"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestValidTokenPopulatesContext(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tokens.EXPECT().ValidateToken("good", jwt.AccessToken).Return(&jwt.Claims{
		UserID:   "7f0c1d2e-0000-4000-8000-000000000001",
		Username: "frontdesk",
		Role:     constant.RoleStaff,
		TokenID:  "t1",
	}, nil)

	rec := serve(router, http.MethodGet, "/v1/users/me", map[string]string{constant.RequestHeaderAuthorization: "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "frontdesk", rec.Body.String())
}

func TestEmptyClaimsRejected(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tokens.EXPECT().ValidateToken("blank", jwt.AccessToken).Return(&jwt.Claims{Role: constant.RoleAdmin}, nil)

	rec := serve(router, http.MethodGet, "/v1/users/me", map[string]string{constant.RequestHeaderAuthorization: "Bearer blank"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleNotAllowed(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tokens.EXPECT().ValidateToken("staff", jwt.AccessToken).Return(&jwt.Claims{
		UserID:   "u1",
		Username: "frontdesk",
		Role:     constant.RoleStaff,
	}, nil)

	rec := serve(router, http.MethodDelete, "/v1/rooms/42", map[string]string{constant.RequestHeaderAuthorization: "Bearer staff"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleAllowed(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tokens.EXPECT().ValidateToken("admin", jwt.AccessToken).Return(&jwt.Claims{
		UserID:   "u2",
		Username: "admin",
		Role:     constant.RoleAdmin,
	}, nil)

	rec := serve(router, http.MethodDelete, "/v1/rooms/42", map[string]string{constant.RequestHeaderAuthorization: "Bearer admin"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyBypassesAuth(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := serve(router, http.MethodDelete, "/v1/rooms/42", map[string]string{constant.RequestHeaderAPIKey: "internal-key"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWrongAPIKey(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := serve(router, http.MethodGet, "/v1/users/me", map[string]string{constant.RequestHeaderAPIKey: "guess"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
