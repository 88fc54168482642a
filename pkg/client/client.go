package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beamx-labs/validator-engine/internal/models"
)

// Client is a Go SDK for the validator-engine API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithAPIKey sets the API key used for admin endpoints
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// NewClient creates a new validator-engine client. The API key is only
// needed for admin endpoints.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// envelope is the standard API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListQuestions retrieves the full question catalog
func (c *Client) ListQuestions(ctx context.Context) ([]models.Question, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/questions", nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Questions []models.Question `json:"questions"`
		Total     int               `json:"total"`
	}
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return data.Questions, nil
}

// StartSession begins a new assessment session
func (c *Client) StartSession(ctx context.Context, profile models.UserProfile) (*models.StartSessionResponse, error) {
	body, err := json.Marshal(models.StartSessionRequest{Profile: profile})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", "/api/v1/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var data models.StartSessionResponse
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSession retrieves the progress of an assessment session
func (c *Client) GetSession(ctx context.Context, token string) (*models.SessionProgressResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/sessions/"+token, nil)
	if err != nil {
		return nil, err
	}

	var data models.SessionProgressResponse
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Answer submits an answer for the session's current question
func (c *Client) Answer(ctx context.Context, token, answer, followUp string) (*models.SessionProgressResponse, error) {
	body, err := json.Marshal(models.AnswerRequest{Answer: answer, FollowUpAnswer: followUp})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", "/api/v1/sessions/"+token+"/answers", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var data models.SessionProgressResponse
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Back steps the session back one question
func (c *Client) Back(ctx context.Context, token string) (*models.SessionProgressResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/api/v1/sessions/"+token+"/back", nil)
	if err != nil {
		return nil, err
	}

	var data models.SessionProgressResponse
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Submit finalizes a completed session and returns the scored result
func (c *Client) Submit(ctx context.Context, token string) (*models.AssessmentResult, error) {
	resp, err := c.doRequest(ctx, "POST", "/api/v1/sessions/"+token+"/submit", nil)
	if err != nil {
		return nil, err
	}

	var data models.AssessmentResult
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetResult retrieves a stored assessment result by id
func (c *Client) GetResult(ctx context.Context, id string) (*models.AssessmentResult, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/results/"+id, nil)
	if err != nil {
		return nil, err
	}

	var data models.AssessmentResult
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RequestRecommendation asks for an AI recommendation for a result.
// The call blocks until the recommendation is ready or fails.
func (c *Client) RequestRecommendation(ctx context.Context, id string) (*models.AIRecommendation, error) {
	resp, err := c.doRequest(ctx, "POST", "/api/v1/results/"+id+"/recommendation", nil)
	if err != nil {
		return nil, err
	}

	var data models.AIRecommendation
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ShareText retrieves the pre-built social share text for a result
func (c *Client) ShareText(ctx context.Context, id string) (string, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/results/"+id+"/share", nil)
	if err != nil {
		return "", err
	}

	var data models.ShareResponse
	if err := c.decode(resp, &data); err != nil {
		return "", err
	}
	return data.Text, nil
}

// TrackEvent submits a client-side analytics event
func (c *Client) TrackEvent(ctx context.Context, event string, properties map[string]string) error {
	body, err := json.Marshal(models.TrackEventRequest{Event: event, Properties: properties})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", "/api/v1/events", bytes.NewReader(body))
	if err != nil {
		return err
	}

	return c.decode(resp, nil)
}

// ListResults retrieves stored results. Requires an API key with the
// results:read permission.
func (c *Client) ListResults(ctx context.Context, filters models.ResultFilters) ([]*models.AssessmentResult, error) {
	path := "/api/v1/admin/results?"
	if filters.Level != "" {
		path += fmt.Sprintf("level=%s&", filters.Level)
	}
	if filters.Email != "" {
		path += fmt.Sprintf("email=%s&", filters.Email)
	}
	if filters.Limit > 0 {
		path += fmt.Sprintf("limit=%d&", filters.Limit)
	}
	if filters.Offset > 0 {
		path += fmt.Sprintf("offset=%d&", filters.Offset)
	}

	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Results []*models.AssessmentResult `json:"results"`
		Total   int                        `json:"total"`
	}
	if err := c.decode(resp, &data); err != nil {
		return nil, err
	}
	return data.Results, nil
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, "GET", "/health", nil)
	return err
}

// decode unwraps the response envelope into out. A nil out discards the data.
func (c *Client) decode(resp []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp, &env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("API error: %s - %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("API error: request failed")
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
