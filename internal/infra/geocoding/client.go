// Package geocoding resolves pincodes to coordinates through the external
// location service.
package geocoding

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"profile/config"
	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/service"
	"profile/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

const (
	coordinatesPath = "/location/coordinates"
	maxResponseSize = 64 << 10
)

// coordinatesResponse is the location service payload. Either field may be absent.
type coordinatesResponse struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Client implements service.CoordinateResolver over HTTP.
type Client struct {
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	httpClient   *http.Client
	metrics      *Metrics
	logger       *slog.Logger
}

var _ service.CoordinateResolver = (*Client)(nil)

// NewClient creates a location service client. The timeout applies to each attempt.
func NewClient(cfg *config.LocationConfig, httpClient *http.Client, metrics *Metrics, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      cfg.Timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: cfg.RetryBackoff,
		httpClient:   httpClient,
		metrics:      metrics,
		logger:       logger,
	}
}

// Resolve fetches the coordinates for pincode. Transport failures and 5xx
// responses are retried up to maxRetries times with linear backoff.
func (c *Client) Resolve(ctx context.Context, pincode string) (entity.Coordinates, error) {
	start := time.Now()

	coords, err := c.resolveWithRetry(ctx, pincode)

	switch {
	case err == nil:
		c.metrics.ObserveResolution(outcomeSuccess, start)
	case errors.Is(err, domainerrors.ErrCoordinatesNotFound):
		c.metrics.ObserveResolution(outcomeNotFound, start)
	default:
		c.metrics.ObserveResolution(outcomeError, start)
	}

	return coords, err
}

func (c *Client) resolveWithRetry(ctx context.Context, pincode string) (entity.Coordinates, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(&linearBackOff{step: c.retryBackoff}, uint64(c.maxRetries)),
		ctx,
	)

	attempt := 0
	coords, err := backoff.RetryNotifyWithData(func() (entity.Coordinates, error) {
		coords, retryable, err := c.fetch(ctx, pincode)
		if err != nil && !retryable {
			return coords, backoff.Permanent(err)
		}

		return coords, err
	}, policy, func(err error, next time.Duration) {
		attempt++
		c.logger.Warn("Location service lookup failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", next),
			slog.Any("error", err),
		)
	})
	if err == nil {
		return coords, nil
	}

	// Cancellation surfaces as the bare context error.
	if !errors.Is(err, domainerrors.ErrLocationService) && !errors.Is(err, domainerrors.ErrCoordinatesNotFound) {
		return entity.Coordinates{}, errors.Wrapf(domainerrors.ErrLocationService, "lookup aborted: %v", err)
	}

	return entity.Coordinates{}, err
}

// linearBackOff waits step, then 2*step, then 3*step and so on.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

// NextBackOff implements backoff.BackOff.
func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++

	return time.Duration(b.attempt) * b.step
}

// Reset implements backoff.BackOff.
func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// fetch performs one attempt. The bool reports whether the failure may succeed on retry.
func (c *Client) fetch(ctx context.Context, pincode string) (entity.Coordinates, bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + coordinatesPath + "?" + url.Values{"pincode": {pincode}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.Coordinates{}, false, errors.Wrapf(domainerrors.ErrLocationService, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, true, errors.Wrapf(domainerrors.ErrLocationService, "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return entity.Coordinates{}, true, errors.Wrapf(domainerrors.ErrLocationService, "read response: %v", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return entity.Coordinates{}, true, errors.Wrapf(domainerrors.ErrLocationService, "status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entity.Coordinates{}, false, errors.Wrapf(domainerrors.ErrLocationService, "status %d", resp.StatusCode)
	}

	coords, err := decodeCoordinates(body)

	return coords, false, err
}

func decodeCoordinates(body []byte) (entity.Coordinates, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entity.Coordinates{}, errors.Wrap(domainerrors.ErrCoordinatesNotFound, "empty response")
	}

	var payload coordinatesResponse
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return entity.Coordinates{}, errors.Wrapf(domainerrors.ErrLocationService, "decode response: %v", err)
	}

	if payload.Lat == nil || payload.Lng == nil {
		return entity.Coordinates{}, errors.Wrap(domainerrors.ErrCoordinatesNotFound, "incomplete coordinates")
	}

	coords := entity.Coordinates{Latitude: *payload.Lat, Longitude: *payload.Lng}
	if !coords.Valid() {
		return entity.Coordinates{}, errors.Wrapf(domainerrors.ErrLocationService,
			"coordinates out of range: lat=%f lng=%f", coords.Latitude, coords.Longitude)
	}

	return coords, nil
}
