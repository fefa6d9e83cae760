package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

const (
	testCallTimeout  = 2 * time.Second
	testProbeTimeout = time.Second
	testProbeTTL     = 15 * time.Minute
)

func TestRemoteProviderAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("ai provider without api key", func(t *testing.T) {
		p := NewAIProvider("http://localhost:1", "", testCallTimeout, testProbeTimeout, testProbeTTL)
		assert.False(t, p.Available(ctx))
	})

	t.Run("secondary provider without url", func(t *testing.T) {
		p := NewSecondaryProvider("", testCallTimeout, testProbeTimeout, testProbeTTL)
		assert.False(t, p.Available(ctx))
	})

	t.Run("reachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		assert.True(t, p.Available(ctx))
	})

	t.Run("probe result is cached for the session", func(t *testing.T) {
		var probes atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probes.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		for i := 0; i < 5; i++ {
			assert.True(t, p.Available(ctx))
		}
		assert.Equal(t, int32(1), probes.Load())
	})

	t.Run("unreachable backend is not retried within the probe ttl", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		assert.False(t, p.Available(ctx))
		server.Close()
		assert.False(t, p.Available(ctx))
	})

	t.Run("probe refreshes after the ttl elapses", func(t *testing.T) {
		var probes atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			probes.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL).(*remoteProvider)
		require.True(t, p.Available(ctx))

		base := time.Now()
		p.client.now = func() time.Time { return base.Add(testProbeTTL + time.Minute) }
		require.True(t, p.Available(ctx))
		assert.Equal(t, int32(2), probes.Load())
	})
}

func TestRemoteProviderCapabilities(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a well-formed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/insights/emotion_distribution", r.URL.Path)
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

			var req insightsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Entries, 1)

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`[{"name":"happy","value":100,"count":1,"emoji":"😊","trend":"stable"}]`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		entries := []*entriesDomain.Entry{{
			UserID:  "user-1",
			Title:   entriesDomain.PlainField("hello"),
			Content: entriesDomain.PlainField("world"),
			Mood:    "happy",
		}}

		distribution, err := p.EmotionDistribution(ctx, entries)
		require.NoError(t, err)
		require.Len(t, distribution, 1)
		assert.Equal(t, "happy", distribution[0].Name)
	})

	t.Run("non-2xx status maps to provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		_, err := p.WordCloud(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})

	t.Run("malformed body maps to provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte("not json"))
			assert.NoError(t, err)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		_, err := p.SentimentAnalysis(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})

	t.Run("network failure maps to provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		_, err := p.MoodCorrelations(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})

	t.Run("detect mood sets the tier source", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/mood", r.URL.Path)
			_, err := w.Write([]byte(`{"primary_mood":"happy","confidence":0.92,"sentiment_score":0.8,"keywords":["joy"]}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		p := NewAIProvider(server.URL, "key", testCallTimeout, testProbeTimeout, testProbeTTL)
		result, err := p.DetectMood(ctx, "so much joy today")
		require.NoError(t, err)
		assert.Equal(t, "happy", result.PrimaryMood)
		assert.Equal(t, domain.SourceAI, result.Source)
	})
}
