package testutil

import (
	"context"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/internal/sse"
	"github.com/stretchr/testify/mock"
)

// MockIdentifier mocks services.Identifier
type MockIdentifier struct {
	mock.Mock
}

func (m *MockIdentifier) Identify(ctx context.Context, req services.IdentifyRequest) (models.AnimalTemplate, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.AnimalTemplate), args.Error(1)
}

// MockSessionService mocks the CaptureSession
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Begin(source services.ImageSource) (models.SessionStatus, error) {
	args := m.Called(source)
	return args.Get(0).(models.SessionStatus), args.Error(1)
}

func (m *MockSessionService) Identify(ctx context.Context, payload services.ImagePayload) (models.SessionStatus, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(models.SessionStatus), args.Error(1)
}

func (m *MockSessionService) Complete(ctx context.Context) (services.Outcome, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Outcome), args.Error(1)
}

func (m *MockSessionService) Cancel() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSessionService) Status() models.SessionStatus {
	args := m.Called()
	return args.Get(0).(models.SessionStatus)
}

// MockCollectionService mocks the CollectionStore
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) Snapshot() []models.CapturedAnimal {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.CapturedAnimal)
}

func (m *MockCollectionService) Get(id string) (models.CapturedAnimal, error) {
	args := m.Called(id)
	return args.Get(0).(models.CapturedAnimal), args.Error(1)
}

func (m *MockCollectionService) Stats() models.CollectionStats {
	args := m.Called()
	return args.Get(0).(models.CollectionStats)
}

func (m *MockCollectionService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollectionService) Loaded() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockSSEHub mocks the SSE hub
type MockSSEHub struct {
	mock.Mock
}

func (m *MockSSEHub) Register(client *sse.Client) bool {
	args := m.Called(client)
	return args.Bool(0)
}

func (m *MockSSEHub) Unregister(client *sse.Client) {
	m.Called(client)
}
