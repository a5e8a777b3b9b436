package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImagePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"data uri", testImage, false},
		{"bare base64", "iVBORw0KGgo=", false},
		{"unpadded base64", "iVBORw0KGgo", false},
		{"empty", "", true},
		{"data uri without body", "data:image/png;base64,", true},
		{"data uri without comma", "data:image/png;base64", true},
		{"not base64 encoded uri", "data:text/plain,hello", true},
		{"garbage", "not base64 at all!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePayload(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImagePayload_EmptyIsSentinel(t *testing.T) {
	assert.ErrorIs(t, ValidateImagePayload(""), ErrEmptyImage)
	assert.ErrorIs(t, ValidateImagePayload("data:image/png;base64,"), ErrEmptyImage)
}
