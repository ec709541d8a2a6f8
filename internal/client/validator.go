package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anmicius0/assembly-validator/internal/config"
)

const (
	healthEndpoint     = "/health"
	validationEndpoint = "/validation"
)

// validatorClient is an unexported concrete implementation of ValidatorClient.
type validatorClient struct {
	*HTTPClient
}

// NewValidatorClient creates a ValidatorClient for the server at baseURL. An
// empty token sends no Authorization header.
func NewValidatorClient(baseURL, token string) ValidatorClient {
	return &validatorClient{HTTPClient: NewHTTPClient(baseURL, token)}
}

func (c *validatorClient) Validate(path string) ([]config.ValidationResult, error) {
	resp, err := c.DoReq(http.MethodPost, validationEndpoint, config.ValidationRequest{Path: path}, nil)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
			var result config.ValidationResult
			if jsonErr := json.Unmarshal([]byte(httpErr.Body), &result); jsonErr == nil && result.Status == config.StatusError {
				return nil, &RejectedError{Result: result}
			}
		}
		return nil, fmt.Errorf("validate '%s': %w", path, err)
	}

	var results []config.ValidationResult
	if err := json.Unmarshal(resp.Bytes(), &results); err != nil {
		return nil, fmt.Errorf("validate '%s': failed to unmarshal response: %w", path, err)
	}
	return results, nil
}

func (c *validatorClient) Health() error {
	resp, err := c.DoReq(http.MethodGet, healthEndpoint, nil, nil)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	var health healthResponse
	if err := json.Unmarshal(resp.Bytes(), &health); err != nil {
		return fmt.Errorf("health check: failed to unmarshal response: %w", err)
	}
	if !health.Success {
		return fmt.Errorf("health check: server reported status '%s'", health.Status)
	}
	return nil
}
