// Package twilio fetches Studio flow definitions, either from the Studio
// v2 API or from a local JSON export.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	backend "github.com/twilio/twilio-go"

	"github.com/aretw0/studiomap/internal/logging"
	"github.com/aretw0/studiomap/pkg/flow"
)

// Source provides flow definitions by SID.
type Source interface {
	FetchDefinition(ctx context.Context, sid string) (*flow.Definition, error)
}

// Client fetches flows from the Studio v2 API.
type Client struct {
	api    *backend.RestClient
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Studio API client. Credentials are read from the
// TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN environment variables.
func NewClient(opts ...ClientOption) (*Client, error) {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSID == "" || authToken == "" {
		return nil, errors.New("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN must be set")
	}

	c := &Client{
		api: backend.NewRestClientWithParams(backend.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchDefinition fetches and parses the definition of a flow.
// The SDK call is not context-aware; it runs once per invocation, off the
// graph-processing path, so ctx is accepted for interface symmetry only.
func (c *Client) FetchDefinition(_ context.Context, sid string) (*flow.Definition, error) {
	f, err := c.api.StudioV2.FetchFlow(sid)
	if err != nil {
		return nil, fmt.Errorf("fetch flow %s: %w", sid, err)
	}
	if f.Definition == nil {
		return nil, fmt.Errorf("flow %s has no definition", sid)
	}

	c.logger.Info("fetched flow",
		"sid", sid,
		"friendly_name", deref(f.FriendlyName),
		"status", deref(f.Status))

	raw, err := json.Marshal(f.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode flow %s definition: %w", sid, err)
	}
	return flow.Parse(raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FileSource reads a definition from a local JSON export instead of the
// API. The SID argument is ignored.
type FileSource struct {
	Path string
}

// FetchDefinition implements Source.
func (s FileSource) FetchDefinition(_ context.Context, _ string) (*flow.Definition, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read flow file: %w", err)
	}
	return flow.Parse(data)
}
