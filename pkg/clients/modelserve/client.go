package modelserve

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes inference against a persisted regression artifact hosted by
// a model server. Calls are blocking and not retried.
type Client interface {
	Predict(ctx context.Context, features []float64) ([]float64, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient builds a model-server client for one named artifact.
func NewClient(baseURL, model string, timeout time.Duration) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &APIClient{
		httpClient: restyClient,
		model:      model,
	}
}

type predictRequest struct {
	Features [][]float64 `json:"features"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// Predict submits one feature vector and returns the model's outputs. The
// field order of the vector must match what the artifact was trained
// against; the server applies no reordering.
func (c *APIClient) Predict(ctx context.Context, features []float64) ([]float64, error) {
	var result predictResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(predictRequest{Features: [][]float64{features}}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1/models/%s/predict", c.model))
	if err != nil {
		return nil, fmt.Errorf("model %s predict: %w", c.model, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("model %s predict: unexpected status %d: %s", c.model, resp.StatusCode(), resp.String())
	}
	if len(result.Predictions) == 0 {
		return nil, fmt.Errorf("model %s predict: empty prediction response", c.model)
	}

	return result.Predictions[0], nil
}
