package geocoder

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lastseen/config"
	"lastseen/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestNominatim(t *testing.T, handler http.HandlerFunc, opts Options) *Nominatim {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseURL = server.URL
	return NewNominatim(server.Client(), opts, testLogger(), metrics.Nop{})
}

func TestNominatim_Resolve_ShortLabel(t *testing.T) {
	n := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "25.033000", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.565400", r.URL.Query().Get("lon"))
		assert.Equal(t, "lastseen-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"address":{"suburb":"Xinyi District","city":"Taipei","country":"Taiwan"}}`)
	}, Options{UserAgent: "lastseen-test"})

	assert.Equal(t, "Xinyi District, Taipei", n.Resolve(context.Background(), 25.033, 121.5654))
}

func TestAddress_ShortLabelFallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   address
		want string
	}{
		{name: "neighbourhood wins over road", in: address{Neighbourhood: "Soho", Road: "Main St", Town: "Exeter"}, want: "Soho, Exeter"},
		{name: "village", in: address{Road: "Lane 3", Village: "Jiufen"}, want: "Lane 3, Jiufen"},
		{name: "settlement only", in: address{County: "Hualien"}, want: "Hualien"},
		{name: "local only", in: address{Road: "Ocean Rd"}, want: "Ocean Rd"},
		{name: "country fallback", in: address{Country: "Iceland"}, want: "Iceland"},
		{name: "same name once", in: address{Suburb: "Paris", City: "Paris"}, want: "Paris"},
		{name: "empty", in: address{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.shortLabel())
		})
	}
}

func TestNominatim_Resolve_FailuresYieldEmptyLabel(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "rate limited upstream", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{name: "server error", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{name: "malformed json", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"address":`)
		}},
		{name: "error payload", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"error":"Unable to geocode"}`)
		}},
		{name: "empty address", handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"address":{}}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNominatim(t, tt.handler, Options{})
			assert.Empty(t, n.Resolve(context.Background(), 1, 2))
		})
	}
}

func TestNominatim_Resolve_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	n := NewNominatim(&http.Client{Timeout: time.Second}, Options{BaseURL: baseURL}, testLogger(), nil)
	assert.Empty(t, n.Resolve(context.Background(), 1, 2))
}

func TestNominatim_Resolve_TimeoutYieldsEmptyLabel(t *testing.T) {
	release := make(chan struct{})
	n := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, Options{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.Empty(t, n.Resolve(ctx, 1, 2))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNominatim_Resolve_RateLimiterSkipsWhenDeadlineTooShort(t *testing.T) {
	var calls atomic.Int32
	n := newTestNominatim(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, `{"address":{"city":"Taipei"}}`)
	}, Options{RatePerSecond: 0.01, Burst: 1})

	assert.Equal(t, "Taipei", n.Resolve(context.Background(), 1, 2))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.Empty(t, n.Resolve(ctx, 1, 2))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_DisabledGeocoder(t *testing.T) {
	cfg := &config.Config{Geocoder: &config.GeocoderConfig{Enabled: false, BaseURL: "https://nominatim.example.org"}}
	g := New(Params{Config: cfg, Logger: testLogger(), Metrics: metrics.Nop{}})

	assert.Empty(t, g.Resolve(context.Background(), 1, 2))
}

func TestNewSafeClient_BlocksLoopback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"address":{"city":"Taipei"}}`)
	}))
	defer server.Close()

	n := NewNominatim(NewSafeClient(time.Second), Options{BaseURL: server.URL}, testLogger(), nil)
	require.Empty(t, n.Resolve(context.Background(), 1, 2))
}
