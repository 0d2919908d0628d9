package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simple-twitter/simple-twitter/internal/auth"
	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/platform/httpx"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

func newTestRouter(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Route("/users", NewHandler(discardLogger(), svc).MountRoutes)
	return r
}

func TestRegisterEndpointCreatesUser(t *testing.T) {
	repo := newUserStubRepo()
	svc := newTestService(repo, stubVerifier{}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"correct-horse"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Body.String())
	require.Len(t, repo.created, 1)
}

func TestRegisterEndpointValidatesFields(t *testing.T) {
	svc := newTestService(newUserStubRepo(), stubVerifier{}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	body := `{"username":"","email":"not-an-email","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var envelope httpx.ErrorDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Invalid Fields Exception. Check details", envelope.Title)
	assert.Contains(t, envelope.Details, "username is required")
	assert.Contains(t, envelope.Details, "email is invalid")
	assert.Contains(t, envelope.Details, "password is too short")
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	repo := newUserStubRepo()
	repo.createErr = shared.ErrDuplicate
	svc := newTestService(repo, stubVerifier{}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"correct-horse"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var envelope httpx.ErrorDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Bad Request Exception", envelope.Title)
}

func TestLoginEndpointReturnsToken(t *testing.T) {
	repo := newUserStubRepo()
	svc := newTestService(repo,
		stubVerifier{account: &auth.Account{Username: "alice", Status: shared.AccountActive}},
		stubIssuer{token: "signed-token"}, nil)
	router := newTestRouter(svc)

	body := `{"email":"alice@example.com","password":"correct-horse"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.AccessToken)
	assert.Equal(t, int64(10800), response.ExpiresIn)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	svc := newTestService(newUserStubRepo(),
		stubVerifier{err: shared.ErrInvalidCredentials}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var envelope httpx.ErrorDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Invalid Credentials Exception", envelope.Title)
}

func TestUpdateEndpointRequiresPrincipal(t *testing.T) {
	svc := newTestService(newUserStubRepo(), stubVerifier{}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	body := `{"display_name":"Alice"}`
	req := httptest.NewRequest(http.MethodPatch, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestInfoEndpointReturnsProfile(t *testing.T) {
	repo := newUserStubRepo()
	repo.add(&User{
		Username:  "alice",
		Email:     "alice@example.com",
		Status:    shared.AccountActive,
		CreatedAt: testNow,
	})
	svc := newTestService(repo, stubVerifier{}, stubIssuer{}, nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/info", nil)
	principal := identity.NewPrincipal(uuid.New(), "alice", []string{"USER"})
	req = req.WithContext(identity.ContextWithPrincipal(context.Background(), principal))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response UserInfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.Username)
	assert.Equal(t, "active", response.AccountStatus)
	assert.Equal(t, "2026-03-01", response.CreateDate)
}
