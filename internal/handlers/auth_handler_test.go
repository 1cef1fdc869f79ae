package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gms-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository is never reached on these paths, so a zero handler is enough.

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestLoginRejectsBadPayloads(t *testing.T) {
	h := &AuthHandler{}

	t.Run("malformed json", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid request body", resp.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Message)

		errs, ok := resp.Errors.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "password")
	})

	t.Run("invalid email format", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/auth/login", `{"email":"nope","password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		errs, ok := resp.Errors.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Must be a valid email address", errs["email"])
	})
}

func TestSignupRejectsBadPayloads(t *testing.T) {
	h := &AuthHandler{}

	t.Run("short password", func(t *testing.T) {
		rec := postJSON(t, h.Signup, "/auth/signup", `{"name":"A","email":"a@b.com","password":"short"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		errs, ok := resp.Errors.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Must be at least 8 characters", errs["password"])
	})

	t.Run("missing name", func(t *testing.T) {
		rec := postJSON(t, h.Signup, "/auth/signup", `{"email":"a@b.com","password":"longenough"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decodeResponse(t, rec).Message)
	})
}

func TestVerifyTOTPRejectsBadPayloads(t *testing.T) {
	h := &AuthHandler{}

	t.Run("missing code", func(t *testing.T) {
		rec := postJSON(t, h.VerifyTOTP, "/auth/verify-totp", `{"temp_token":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "Validation failed", resp.Message)
	})

	t.Run("code must be six digits", func(t *testing.T) {
		rec := postJSON(t, h.VerifyTOTP, "/auth/verify-totp", `{"temp_token":"abc","code":"12"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		errs, ok := resp.Errors.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Must be exactly 6 characters", errs["code"])
	})
}
