package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases (e.g., 400)
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient with JSON headers. A non-empty token
// is sent as a bearer token on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(config.DefaultClientTimeout)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &HTTPClient{client: client}
}

// DoReq performs an HTTP request with the given method, endpoint, body, and query params.
// Logs errors for 4xx/5xx responses and truncates long bodies.
func (c *HTTPClient) DoReq(method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	request := c.client.R().
		SetBody(body).
		SetQueryParams(params)

	utils.Logger.Debug("HTTP request start",
		zap.String("method", method),
		zap.String("endpoint", endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		utils.Logger.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}

	// When status >= 400, log differently for 400 (rejected request) vs other errors
	if response.StatusCode() >= 400 {
		responseBody := strings.TrimSpace(response.String())
		if len(responseBody) > 1000 {
			responseBody = responseBody[:1000] + "..."
		}
		if response.StatusCode() == 400 {
			// 400 carries a rejected-request verdict, which callers report themselves
			utils.Logger.Debug("API rejected the request",
				zap.String("method", method),
				zap.String("url", response.Request.URL),
				zap.Int("status_code", response.StatusCode()),
				zap.String("body", responseBody),
				zap.Duration("duration", duration))
		} else if response.StatusCode() >= 500 {
			// Server errors are noteworthy
			utils.Logger.Error("API error response (server)",
				zap.String("method", method),
				zap.String("url", response.Request.URL),
				zap.Int("status_code", response.StatusCode()),
				zap.String("body", responseBody),
				zap.Duration("duration", duration))
		} else {
			// Other client errors are warnings
			utils.Logger.Warn("API error response (client)",
				zap.String("method", method),
				zap.String("url", response.Request.URL),
				zap.Int("status_code", response.StatusCode()),
				zap.String("body", responseBody),
				zap.Duration("duration", duration))
		}
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	utils.Logger.Debug("HTTP request completed",
		zap.String("method", method),
		zap.String("url", response.Request.URL),
		zap.Int("status_code", response.StatusCode()),
		zap.Duration("duration", duration))

	return response, nil
}
