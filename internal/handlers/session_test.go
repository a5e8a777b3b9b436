package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/dimitrije/critterdex-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSessionTest(t *testing.T) (*testutil.MockSessionService, http.Handler) {
	t.Helper()
	mockSession := new(testutil.MockSessionService)
	handler := NewSessionHandler(mockSession)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/sessions/current", handler.Get)
	app.Post("/sessions", handler.Begin)
	app.Post("/sessions/current/image", handler.SubmitImage)
	app.Post("/sessions/current/complete", handler.Complete)
	app.Delete("/sessions/current", handler.Cancel)
	return mockSession, app
}

func TestSessionHandler_Get(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Status").Return(models.SessionStatus{SessionID: "s1", State: models.SessionCapturing})

	rec := doJSON(t, app, http.MethodGet, "/sessions/current", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var status models.SessionStatus
	decode(t, rec, &status)
	assert.Equal(t, models.SessionCapturing, status.State)
	assert.Equal(t, "s1", status.SessionID)
}

func TestSessionHandler_Begin(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Begin", nil).Return(models.SessionStatus{SessionID: "s1", State: models.SessionCapturing}, nil)

	rec := doJSON(t, app, http.MethodPost, "/sessions", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockSession.AssertExpectations(t)
}

func TestSessionHandler_Begin_Conflict(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Begin", nil).
		Return(models.SessionStatus{State: models.SessionIdentifying}, fmt.Errorf("%w: session is identifying", services.ErrSessionConflict))

	rec := doJSON(t, app, http.MethodPost, "/sessions", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var response dto.ErrorResponse
	decode(t, rec, &response)
	assert.Equal(t, "SESSION_BUSY", response.Code)
}

func TestSessionHandler_SubmitImage(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	success := true
	fox := testutil.NewFixtures().Template("red-fox")

	mockSession.On("Identify", mock.Anything, services.ImagePayload{
		Data:        testutil.TestImage,
		OverrideKey: "fox",
		Location:    "garden",
	}).Return(models.SessionStatus{State: models.SessionPendingResult, Success: &success, Animal: &fox}, nil)

	rec := doJSON(t, app, http.MethodPost, "/sessions/current/image", dto.CaptureImageRequest{
		ImageData:   testutil.TestImage,
		OverrideKey: "fox",
		Location:    "garden",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var status models.SessionStatus
	decode(t, rec, &status)
	assert.Equal(t, models.SessionPendingResult, status.State)
	require.NotNil(t, status.Animal)
	assert.Equal(t, "red-fox", status.Animal.Key)
	mockSession.AssertExpectations(t)
}

func TestSessionHandler_SubmitImage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"empty image", services.ErrEmptyImage, http.StatusBadRequest},
		{"no session", services.ErrNoActiveSession, http.StatusNotFound},
		{"wrong state", fmt.Errorf("%w: pending_result -> identifying", services.ErrInvalidTransition), http.StatusConflict},
		{"cancelled", services.ErrSessionCancelled, http.StatusGone},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession, app := setupSessionTest(t)
			mockSession.On("Identify", mock.Anything, mock.Anything).Return(models.SessionStatus{}, tt.err)

			rec := doJSON(t, app, http.MethodPost, "/sessions/current/image", dto.CaptureImageRequest{ImageData: testutil.TestImage})

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSessionHandler_Complete_Committed(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	animal := testutil.NewFixtures().CapturedAnimal("axolotl")
	mockSession.On("Complete", mock.Anything).Return(services.Outcome{Committed: true, Animal: &animal}, nil)

	rec := doJSON(t, app, http.MethodPost, "/sessions/current/complete", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response dto.CompleteSessionResponse
	decode(t, rec, &response)
	assert.Equal(t, dto.OutcomeCommitted, response.Outcome)
	require.NotNil(t, response.Animal)
	assert.Equal(t, animal.ID, response.Animal.ID)
	assert.True(t, animal.CapturedAt.Equal(response.Animal.CapturedAt))
}

func TestSessionHandler_Complete_Discarded(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Complete", mock.Anything).
		Return(services.Outcome{Failure: fmt.Errorf("%w: no animal detected", services.ErrIdentificationFailed)}, nil)

	rec := doJSON(t, app, http.MethodPost, "/sessions/current/complete", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response dto.CompleteSessionResponse
	decode(t, rec, &response)
	assert.Equal(t, dto.OutcomeDiscarded, response.Outcome)
	assert.Nil(t, response.Animal)
	assert.Contains(t, response.Error, "no animal detected")
}

func TestSessionHandler_Complete_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"no session", services.ErrNoActiveSession, http.StatusNotFound, "no active capture session"},
		{"wrong state", fmt.Errorf("%w: capturing -> committed", services.ErrInvalidTransition), http.StatusConflict, "INVALID_TRANSITION"},
		{"storage", fmt.Errorf("%w: disk full", services.ErrStorage), http.StatusInternalServerError, "STORAGE_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession, app := setupSessionTest(t)
			mockSession.On("Complete", mock.Anything).Return(services.Outcome{}, tt.err)

			rec := doJSON(t, app, http.MethodPost, "/sessions/current/complete", nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestSessionHandler_Cancel(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Cancel").Return(nil)
	mockSession.On("Status").Return(models.SessionStatus{State: models.SessionIdle})

	rec := doJSON(t, app, http.MethodDelete, "/sessions/current", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSession.AssertExpectations(t)
}

func TestSessionHandler_Cancel_NoSession(t *testing.T) {
	mockSession, app := setupSessionTest(t)
	mockSession.On("Cancel").Return(services.ErrNoActiveSession)

	rec := doJSON(t, app, http.MethodDelete, "/sessions/current", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
