package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"gms-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartReading(t *testing.T, fields map[string]string, imageSize int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageSize > 0 {
		part, err := w.CreateFormFile("image", "meter.jpg")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xff}, imageSize))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/meter-logs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestCreateMeterLogRejectsBadInput(t *testing.T) {
	h := &MeterLogHandler{}

	t.Run("non numeric meter id", func(t *testing.T) {
		req := multipartReading(t, map[string]string{"meter_id": "abc", "current_reading": "120.5"}, 0)
		rec := httptest.NewRecorder()
		h.CreateMeterLog(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid meter_id", decodeResponse(t, rec).Message)
	})

	t.Run("missing reading", func(t *testing.T) {
		req := multipartReading(t, map[string]string{"meter_id": "1"}, 0)
		rec := httptest.NewRecorder()
		h.CreateMeterLog(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid current_reading", decodeResponse(t, rec).Message)
	})

	t.Run("oversized image", func(t *testing.T) {
		req := multipartReading(t,
			map[string]string{"meter_id": "1", "current_reading": "120.5"},
			services.MaxImageSize+1)
		rec := httptest.NewRecorder()
		h.CreateMeterLog(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Image size must be less than 2MB", decodeResponse(t, rec).Message)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/meter-logs", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.CreateMeterLog(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h := &MeterLogHandler{}
	router := mux.NewRouter()
	router.HandleFunc("/api/meter-logs/{id}/status/{status}", h.UpdateStatus).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/meter-logs/3/status/MAYBE", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be VALID or INVALID", decodeResponse(t, rec).Message)
}
