package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beamx-labs/validator-engine/internal/models"
)

func TestClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing anthropic-version header")
		}

		var req messagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(messagesResponse{
			Content: []contentBlock{{Type: "text", Text: "hello from the model"}},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	text, err := client.Complete(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if text != "hello from the model" {
		t.Errorf("unexpected reply: %q", text)
	}
}

func TestClientNon2xxIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "rate_limit_error", "message": "slow down"},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), "analyze this")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClientTransportFailureIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), "analyze this")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClientMissingKey(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Complete(context.Background(), "analyze this")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestServiceGenerate(t *testing.T) {
	svc := NewService(&stubClient{reply: validJSON})

	rec, err := svc.Generate(context.Background(), nil, models.UserProfile{}, "green", 9)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if rec.PersonalizedPlan != "p" {
		t.Errorf("unexpected plan: %q", rec.PersonalizedPlan)
	}
}

func TestServiceGenerateServiceError(t *testing.T) {
	svc := NewService(&stubClient{err: ErrServiceUnavailable})

	_, err := svc.Generate(context.Background(), nil, models.UserProfile{}, "green", 9)
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestServiceGenerateGarbledReplyStillSucceeds(t *testing.T) {
	svc := NewService(&stubClient{reply: "no json in here"})

	rec, err := svc.Generate(context.Background(), nil, models.UserProfile{}, "red", 2)
	if err != nil {
		t.Fatalf("garbled reply must not fail: %v", err)
	}
	if rec.PersonalizedPlan != "no json in here" {
		t.Errorf("expected fallback plan, got %q", rec.PersonalizedPlan)
	}
}
