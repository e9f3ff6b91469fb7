package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/communiverse/community-api/internal/dto"
	"github.com/communiverse/community-api/internal/services"
)

type authResponse struct {
	Data dto.UserDTO `json:"data"`
	Meta struct {
		AccessToken string `json:"access_token"`
	} `json:"meta"`
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/auth/signup", body, "")

	env.authHandler.Signup(c)

	requireStatus(t, w, http.StatusCreated)

	var response authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data.ID)
	require.Equal(t, "Jane Doe", response.Data.Name)
	require.Equal(t, "jane@example.com", response.Data.Email)
	require.NotEmpty(t, response.Meta.AccessToken)

	// The token is usable as a principal credential
	userID, err := env.tokens.Verify(response.Meta.AccessToken)
	require.NoError(t, err)
	require.Equal(t, response.Data.ID, userID)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"name":     "Other Jane",
		"email":    "jane@example.com",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/auth/signup", body, "")

	env.authHandler.Signup(c)

	requireStatus(t, w, http.StatusConflict)
}

func TestAuthHandler_Signin(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"email":    "jane@example.com",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/auth/signin", body, "")

	env.authHandler.Signin(c)

	requireStatus(t, w, http.StatusOK)

	var response authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "jane@example.com", response.Data.Email)
	require.NotEmpty(t, response.Meta.AccessToken)
}

func TestAuthHandler_Signin_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"email":    "jane@example.com",
		"password": "wrongpassword",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/v1/auth/signin", body, "")

	env.authHandler.Signin(c)

	requireStatus(t, w, http.StatusBadRequest)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, "/v1/auth/me", nil, user.ID)

	env.authHandler.GetCurrentUser(c)

	requireStatus(t, w, http.StatusOK)

	var response authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.Data.ID)
	require.Equal(t, "jane@example.com", response.Data.Email)
}
