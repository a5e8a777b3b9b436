// Package identifyclient calls a remote identify endpoint that speaks the
// same JSON contract as POST /api/v1/identify.
package identifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
)

const maxResponseBytes = 1 << 20

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New returns a client for endpoint. A nil httpClient gets a default one with
// timeout.
func New(endpoint string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

func (c *Client) Identify(ctx context.Context, req services.IdentifyRequest) (models.AnimalTemplate, error) {
	body, err := json.Marshal(dto.IdentifyRequest{
		ImagePayload: req.ImagePayload,
		OverrideKey:  req.OverrideKey,
	})
	if err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: encode request: %v", services.ErrIdentificationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: %w", services.ErrIdentificationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: %w", services.ErrIdentificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.AnimalTemplate{}, fmt.Errorf("%w: identify endpoint returned status %d", services.ErrIdentificationFailed, resp.StatusCode)
	}

	var out dto.IdentifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: decode response: %v", services.ErrIdentificationFailed, err)
	}
	if !out.Success || out.Animal == nil {
		msg := out.Error
		if msg == "" {
			msg = "no animal in response"
		}
		return models.AnimalTemplate{}, fmt.Errorf("%w: %s", services.ErrIdentificationFailed, msg)
	}

	tmpl := out.Animal.AnimalTemplate
	if err := tmpl.Validate(); err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: invalid animal: %v", services.ErrIdentificationFailed, err)
	}
	return tmpl, nil
}
