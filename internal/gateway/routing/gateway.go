package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "routing-engine"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrNoRoute = errors.New("no route between points")

// Route дистанция в метрах и длительность маршрута между двумя точками.
type Route struct {
	DistanceMeters float64
	Duration       time.Duration
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("routing engine returned status %d", e.code)
}

type Gateway struct {
	baseURL string
	client  *http.Client
	retrier retrier
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

func New(baseURL string, timeout time.Duration) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		retrier: backoff_adapter.New(retryConfig),
	}
}

type routeResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute запрашивает маршрут между точками. Формат пары в URL:
// longitude,latitude;longitude,latitude — порядок как у OSRM.
func (g *Gateway) GetRoute(ctx context.Context, from, to entities.Location) (*Route, error) {
	url := fmt.Sprintf("%s/%s,%s;%s,%s",
		g.baseURL,
		formatCoord(from.Lon), formatCoord(from.Lat),
		formatCoord(to.Lon), formatCoord(to.Lat),
	)

	var resp routeResponse
	err := g.executeWithMetrics(ctx, "GetRoute", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		httpResp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = httpResp.Body.Close() }()

		if httpResp.StatusCode != http.StatusOK {
			return &statusError{code: httpResp.StatusCode}
		}

		return json.NewDecoder(httpResp.Body).Decode(&resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway routing, get route: %w", err)
	}

	if len(resp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	return &Route{
		DistanceMeters: resp.Routes[0].Distance,
		Duration:       time.Duration(resp.Routes[0].Duration * float64(time.Second)),
	}, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		// клиентские коды не ретраим
		return se.code >= http.StatusInternalServerError
	}

	// сетевые ошибки ретраим
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "error"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
