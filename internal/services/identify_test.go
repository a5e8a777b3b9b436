package services

import (
	"context"
	"testing"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIdentificationService(t *testing.T, picker Picker) *IdentificationService {
	t.Helper()
	return NewIdentificationService(catalog.Default(), picker, discardLogger())
}

func firstPicker() Picker {
	return PickerFunc(func([]models.AnimalTemplate) int { return 0 })
}

func TestIdentificationService_OverrideKey(t *testing.T) {
	svc := setupIdentificationService(t, firstPicker())

	tests := []struct {
		name     string
		override string
		wantKey  string
	}{
		{"exact key", "snow-leopard", "snow-leopard"},
		{"keyword in name", "owl", "barn-owl"},
		{"case insensitive", "AXOLOTL", "axolotl"},
		{"unknown falls back to picker", "unicorn", "cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := svc.Identify(context.Background(), IdentifyRequest{
				ImagePayload: testImage,
				OverrideKey:  tt.override,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, tmpl.Key)
		})
	}
}

func TestIdentificationService_OverrideWithoutImage(t *testing.T) {
	svc := setupIdentificationService(t, firstPicker())

	tmpl, err := svc.Identify(context.Background(), IdentifyRequest{OverrideKey: "octopus"})

	require.NoError(t, err)
	assert.Equal(t, "octopus", tmpl.Key)
}

func TestIdentificationService_ResultIsCatalogMember(t *testing.T) {
	svc := setupIdentificationService(t, NewWeightedPicker(nil))
	cat := catalog.Default()

	for i := 0; i < 100; i++ {
		tmpl, err := svc.Identify(context.Background(), IdentifyRequest{ImagePayload: testImage})
		require.NoError(t, err)
		want, err := cat.Lookup(tmpl.Key)
		require.NoError(t, err)
		assert.Equal(t, want, tmpl)
	}
}

func TestIdentificationService_Failures(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		svc  *IdentificationService
		req  IdentifyRequest
	}{
		{
			name: "no payload",
			ctx:  context.Background(),
			svc:  setupIdentificationService(t, firstPicker()),
		},
		{
			name: "invalid base64",
			ctx:  context.Background(),
			svc:  setupIdentificationService(t, firstPicker()),
			req:  IdentifyRequest{ImagePayload: "data:image/png;base64,@@@"},
		},
		{
			name: "cancelled context",
			ctx:  cancelled,
			svc:  setupIdentificationService(t, firstPicker()),
			req:  IdentifyRequest{ImagePayload: testImage},
		},
		{
			name: "picker out of range",
			ctx:  context.Background(),
			svc:  setupIdentificationService(t, PickerFunc(func(tt []models.AnimalTemplate) int { return len(tt) })),
			req:  IdentifyRequest{ImagePayload: testImage},
		},
		{
			name: "no catalog",
			ctx:  context.Background(),
			svc:  NewIdentificationService(nil, nil, discardLogger()),
			req:  IdentifyRequest{ImagePayload: testImage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Identify(tt.ctx, tt.req)
			assert.ErrorIs(t, err, ErrIdentificationFailed)
		})
	}
}
