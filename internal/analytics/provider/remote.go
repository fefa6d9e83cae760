package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	"github.com/allisson/journalite/internal/errors"
)

// remoteProvider implements Provider over an HTTP analytics backend. Tier-1
// (the AI model) and Tier-2 (the secondary backend) share this implementation
// and differ only in name, endpoint, and credential.
type remoteProvider struct {
	name   domain.Source
	client *remoteClient
}

// NewAIProvider creates the Tier-1 provider for the remote AI model. The
// provider reports unavailable when no API key is configured.
func NewAIProvider(baseURL, apiKey string, callTimeout, probeTimeout, probeTTL time.Duration) Provider {
	return &remoteProvider{
		name:   domain.SourceAI,
		client: newRemoteClient(baseURL, apiKey, callTimeout, probeTimeout, probeTTL),
	}
}

// NewSecondaryProvider creates the Tier-2 provider for the optional secondary
// backend. The provider reports unavailable when no URL is configured.
func NewSecondaryProvider(baseURL string, callTimeout, probeTimeout, probeTTL time.Duration) Provider {
	return &remoteProvider{
		name:   domain.SourceSecondary,
		client: newRemoteClient(baseURL, "", callTimeout, probeTimeout, probeTTL),
	}
}

func (p *remoteProvider) Name() domain.Source {
	return p.name
}

func (p *remoteProvider) Available(ctx context.Context) bool {
	if p.client.baseURL == "" {
		return false
	}
	if p.name == domain.SourceAI && p.client.apiKey == "" {
		return false
	}
	return p.client.reachable(ctx)
}

// insightsRequest is the request body for capability endpoints. Entry fields
// marshal in their working (plaintext) representation.
type insightsRequest struct {
	Entries []*entriesDomain.Entry `json:"entries"`
}

func (p *remoteProvider) EmotionDistribution(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionSlice, error) {
	var out []domain.EmotionSlice
	err := p.client.post(ctx, capabilityPath(domain.CapabilityEmotionDistribution), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) SentimentAnalysis(ctx context.Context, entries []*entriesDomain.Entry) (domain.SentimentAnalysis, error) {
	var out domain.SentimentAnalysis
	err := p.client.post(ctx, capabilityPath(domain.CapabilitySentimentAnalysis), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) EmotionsOverTime(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionPoint, error) {
	var out []domain.EmotionPoint
	err := p.client.post(ctx, capabilityPath(domain.CapabilityEmotionsOverTime), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) WordCloud(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.WordCloudItem, error) {
	var out []domain.WordCloudItem
	err := p.client.post(ctx, capabilityPath(domain.CapabilityWordCloud), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) WritingPatterns(ctx context.Context, entries []*entriesDomain.Entry) (domain.WritingPatterns, error) {
	var out domain.WritingPatterns
	err := p.client.post(ctx, capabilityPath(domain.CapabilityWritingPatterns), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) MoodCorrelations(ctx context.Context, entries []*entriesDomain.Entry) (domain.MoodCorrelations, error) {
	var out domain.MoodCorrelations
	err := p.client.post(ctx, capabilityPath(domain.CapabilityMoodCorrelations), insightsRequest{Entries: entries}, &out)
	return out, err
}

func (p *remoteProvider) DetectMood(ctx context.Context, text string) (domain.MoodDetection, error) {
	var out domain.MoodDetection
	err := p.client.post(ctx, "/v1/mood", map[string]string{"text": text}, &out)
	if err == nil {
		out.Source = p.name
	}
	return out, err
}

func capabilityPath(capability domain.Capability) string {
	return "/v1/insights/" + string(capability)
}

// remoteClient is a small JSON-over-HTTP client with a cached reachability
// probe. The probe result is held for probeTTL so an unreachable backend is
// not retried on every request within a session.
type remoteClient struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	probeTimeout time.Duration
	probeTTL     time.Duration

	mu       sync.Mutex
	probedAt time.Time
	probeOK  bool
	now      func() time.Time
}

func newRemoteClient(baseURL, apiKey string, callTimeout, probeTimeout, probeTTL time.Duration) *remoteClient {
	return &remoteClient{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: callTimeout},
		probeTimeout: probeTimeout,
		probeTTL:     probeTTL,
		now:          time.Now,
	}
}

// reachable returns the cached probe result, refreshing it after probeTTL.
func (c *remoteClient) reachable(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.probedAt.IsZero() && c.now().Sub(c.probedAt) < c.probeTTL {
		return c.probeOK
	}

	c.probeOK = c.probe(ctx)
	c.probedAt = c.now()
	return c.probeOK
}

func (c *remoteClient) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// post sends payload as JSON and decodes the response into out. Any network
// failure, non-2xx status, or undecodable body maps to ErrProviderUnavailable
// so the runner falls through to the next tier.
func (c *remoteClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(domain.ErrProviderUnavailable, "encode request for %s", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(domain.ErrProviderUnavailable, "build request for %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(domain.ErrProviderUnavailable, "call %s", path)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrapf(domain.ErrProviderUnavailable, "call %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(domain.ErrProviderUnavailable, "decode response from %s", path)
	}
	return nil
}
