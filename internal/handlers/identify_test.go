package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/dimitrije/critterdex-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupIdentifyTest(t *testing.T) (*testutil.MockIdentifier, *IdentifyHandler) {
	t.Helper()
	mockIdentifier := new(testutil.MockIdentifier)
	handler := NewIdentifyHandler(mockIdentifier, func() string { return "fixed-id" }, nil)
	return mockIdentifier, handler
}

func TestIdentifyHandler_Success(t *testing.T) {
	mockIdentifier, handler := setupIdentifyTest(t)
	fox := testutil.NewFixtures().Template("red-fox")

	mockIdentifier.On("Identify", mock.Anything, services.IdentifyRequest{
		ImagePayload: testutil.TestImage,
		OverrideKey:  "fox",
	}).Return(fox, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/identify", handler.Identify)

	rec := doJSON(t, app, http.MethodPost, "/identify", dto.IdentifyRequest{
		ImagePayload: testutil.TestImage,
		OverrideKey:  "fox",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.IdentifyResponse
	decode(t, rec, &response)
	assert.True(t, response.Success)
	if assert.NotNil(t, response.Animal) {
		assert.Equal(t, "fixed-id", response.Animal.ID)
		assert.Equal(t, "red-fox", response.Animal.Key)
		assert.Equal(t, fox.FunFacts, response.Animal.FunFacts)
	}

	mockIdentifier.AssertExpectations(t)
}

func TestIdentifyHandler_LegacyFieldNames(t *testing.T) {
	mockIdentifier, handler := setupIdentifyTest(t)

	mockIdentifier.On("Identify", mock.Anything, services.IdentifyRequest{
		ImagePayload: testutil.TestImage,
		OverrideKey:  "owl",
	}).Return(testutil.NewFixtures().Template("barn-owl"), nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/identify", handler.Identify)

	rec := doJSON(t, app, http.MethodPost, "/identify", map[string]string{
		"imageData":  testutil.TestImage,
		"mockAnimal": "owl",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	mockIdentifier.AssertExpectations(t)
}

func TestIdentifyHandler_FailureIsReportedInBody(t *testing.T) {
	mockIdentifier, handler := setupIdentifyTest(t)

	mockIdentifier.On("Identify", mock.Anything, mock.Anything).
		Return(testutil.NewFixtures().Template("cat"), errors.New("identification failed: model offline"))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/identify", handler.Identify)

	rec := doJSON(t, app, http.MethodPost, "/identify", dto.IdentifyRequest{ImagePayload: testutil.TestImage})

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.IdentifyResponse
	decode(t, rec, &response)
	assert.False(t, response.Success)
	assert.Nil(t, response.Animal)
	assert.Contains(t, response.Error, "model offline")
}

func TestDTOIdentifyRequest_PrefersCurrentFields(t *testing.T) {
	req := dto.IdentifyRequest{ImagePayload: "new", ImageData: "old", OverrideKey: "fox", MockAnimal: "cat"}
	assert.Equal(t, "new", req.Payload())
	assert.Equal(t, "fox", req.Override())

	legacy := dto.IdentifyRequest{ImageData: "old", MockAnimal: "cat"}
	assert.Equal(t, "old", legacy.Payload())
	assert.Equal(t, "cat", legacy.Override())
}
