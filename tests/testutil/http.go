package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/stretchr/testify/require"
)

// APIClient drives the capture flow against an in-process router.
type APIClient struct {
	t       *testing.T
	handler http.Handler
}

func NewAPIClient(t *testing.T, handler http.Handler) *APIClient {
	return &APIClient{t: t, handler: handler}
}

// Do sends body as JSON when it is not nil.
func (c *APIClient) Do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		bodyReader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *APIClient) BeginSession() models.SessionStatus {
	c.t.Helper()
	rec := c.Do(http.MethodPost, "/api/v1/sessions", nil)
	RequireStatus(c.t, rec, http.StatusCreated)
	return DecodeJSON[models.SessionStatus](c.t, rec)
}

func (c *APIClient) SubmitImage(req dto.CaptureImageRequest) models.SessionStatus {
	c.t.Helper()
	rec := c.Do(http.MethodPost, "/api/v1/sessions/current/image", req)
	RequireStatus(c.t, rec, http.StatusOK)
	return DecodeJSON[models.SessionStatus](c.t, rec)
}

func (c *APIClient) CompleteSession() dto.CompleteSessionResponse {
	c.t.Helper()
	rec := c.Do(http.MethodPost, "/api/v1/sessions/current/complete", nil)
	RequireStatus(c.t, rec, http.StatusOK)
	return DecodeJSON[dto.CompleteSessionResponse](c.t, rec)
}

func (c *APIClient) Collection() dto.CollectionResponse {
	c.t.Helper()
	rec := c.Do(http.MethodGet, "/api/v1/collection", nil)
	RequireStatus(c.t, rec, http.StatusOK)
	return DecodeJSON[dto.CollectionResponse](c.t, rec)
}

func (c *APIClient) ClearCollection() {
	c.t.Helper()
	RequireStatus(c.t, c.Do(http.MethodDelete, "/api/v1/collection", nil), http.StatusOK)
}

func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func RequireStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, rec.Code, "body: %s", rec.Body.String())
}
