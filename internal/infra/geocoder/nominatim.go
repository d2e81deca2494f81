// Package geocoder resolves coordinates to short place labels through a
// Nominatim-compatible reverse geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lastseen/config"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"

	"github.com/doyensec/safeurl"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	reversePath     = "/reverse"
	reverseZoom     = "16"
	maxResponseSize = 1 << 20
)

// Params defines the dependencies of the geocoder.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics metrics.Recorder
}

// Nominatim is the reverse geocoding adapter.
type Nominatim struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
	metrics   metrics.Recorder
}

// Options configures a Nominatim adapter independently of the app config.
type Options struct {
	BaseURL       string
	UserAgent     string
	RatePerSecond float64
	Burst         int
}

// New creates the geocoder for the app. A disabled geocoder resolves every
// lookup to an empty label without touching the network.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoder
	if cfg == nil || !cfg.Enabled || cfg.BaseURL == "" {
		params.Logger.Info("[Geocoder] Reverse geocoding disabled")
		return disabled{}
	}

	return NewNominatim(NewSafeClient(cfg.Timeout), Options{
		BaseURL:       cfg.BaseURL,
		UserAgent:     cfg.UserAgent,
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
	}, params.Logger, params.Metrics)
}

// NewSafeClient returns an HTTP client that refuses private, loopback and
// metadata addresses, including after DNS resolution.
func NewSafeClient(timeout time.Duration) *http.Client {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(cfg).Client
}

// NewNominatim creates the adapter around client.
func NewNominatim(client *http.Client, opts Options, logger *slog.Logger, recorder metrics.Recorder) *Nominatim {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := max(opts.Burst, 1)

	return &Nominatim{
		client:    client,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
		metrics:   recorder,
	}
}

// Resolve returns a short label for the coordinates or "" on any failure.
// When the rate limiter cannot grant a slot before ctx's deadline the lookup is skipped.
func (n *Nominatim) Resolve(ctx context.Context, lat, lng float64) string {
	if err := n.limiter.Wait(ctx); err != nil {
		n.metrics.RecordGeocode(metrics.OutcomeLimited)
		n.logger.DebugContext(ctx, "[Geocoder] Lookup skipped by rate limiter", slog.Any("error", err))
		return ""
	}

	label, err := n.lookup(ctx, lat, lng)
	if err != nil {
		n.metrics.RecordGeocode(metrics.OutcomeFailure)
		n.logger.WarnContext(ctx, "[Geocoder] Reverse geocoding failed", slog.Any("error", err))
		return ""
	}
	if label == "" {
		n.metrics.RecordGeocode(metrics.OutcomeEmpty)
		return ""
	}
	n.metrics.RecordGeocode(metrics.OutcomeSuccess)

	return label
}

func (n *Nominatim) lookup(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	query.Set("zoom", reverseZoom)
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+reversePath+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "build reverse geocoding request")
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "reverse geocoding request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("reverse geocoding returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decode reverse geocoding response")
	}
	if body.Error != "" {
		return "", errors.Errorf("reverse geocoding error: %s", body.Error)
	}

	return body.Address.shortLabel(), nil
}

type reverseResponse struct {
	Error   string  `json:"error"`
	Address address `json:"address"`
}

type address struct {
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	Road          string `json:"road"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	County        string `json:"county"`
	Country       string `json:"country"`
}

// shortLabel joins the most local named area with its settlement, e.g.
// "Xinyi, Taipei". It falls back to the country alone.
func (a address) shortLabel() string {
	local := firstNonEmpty(a.Neighbourhood, a.Suburb, a.Road)
	settlement := firstNonEmpty(a.City, a.Town, a.Village, a.County)

	switch {
	case local != "" && settlement != "" && local != settlement:
		return local + ", " + settlement
	case settlement != "":
		return settlement
	case local != "":
		return local
	default:
		return strings.TrimSpace(a.Country)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

type disabled struct{}

func (disabled) Resolve(context.Context, float64, float64) string {
	return ""
}
