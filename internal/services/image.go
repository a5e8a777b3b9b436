package services

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ValidateImagePayload accepts a base64 data URI (data:image/png;base64,...)
// or bare base64 text.
func ValidateImagePayload(payload string) error {
	if payload == "" {
		return ErrEmptyImage
	}

	data := payload
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok {
			return errors.New("data uri has no payload")
		}
		if !strings.HasSuffix(header, ";base64") {
			return errors.New("data uri is not base64 encoded")
		}
		data = body
	}

	if data == "" {
		return ErrEmptyImage
	}
	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		if _, rawErr := base64.RawStdEncoding.DecodeString(data); rawErr != nil {
			return errors.New("image payload is not valid base64")
		}
	}
	return nil
}
