package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "delivery-partner"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 3 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrPartnerRejected = errors.New("partner rejected the claim")

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("partner returned status %d", e.code)
}

type Gateway struct {
	baseURL string
	token   string
	client  *http.Client
	retrier retrier
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

func New(baseURL, token string, timeout time.Duration) *Gateway {
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
		token:   token,
		client:  &http.Client{Timeout: timeout},
		retrier: backoff_adapter.New(retryConfig),
	}
}

type claimPointJSON struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
	Name        string    `json:"name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
}

type claimItemJSON struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	CostUnit string `json:"cost_value"`
}

type createClaimJSON struct {
	Source           claimPointJSON  `json:"source"`
	Destination      claimPointJSON  `json:"destination"`
	Items            []claimItemJSON `json:"items"`
	CashOnDelivery   string          `json:"cash_on_delivery,omitempty"`
	EmergencyContact *claimPointJSON `json:"emergency_contact,omitempty"`
}

type claimJSON struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// CreateClaim регистрирует заявку. request_id производен от id заказа:
// повторная отправка той же заявки не создает дубликат у партнера.
func (g *Gateway) CreateClaim(ctx context.Context, req ShipmentRequest) (*Claim, error) {
	body := createClaimJSON{
		Source: claimPointJSON{
			Coordinates: []float64{req.Source.Lon, req.Source.Lat},
			Name:        req.SourceName,
		},
		Destination: claimPointJSON{
			Coordinates: []float64{req.Destination.Lon, req.Destination.Lat},
			Name:        req.CustomerName,
			Phone:       req.CustomerPhone,
		},
	}

	for _, item := range req.Items {
		body.Items = append(body.Items, claimItemJSON{
			Title:    item.Title,
			Quantity: item.Quantity,
			CostUnit: strconv.FormatInt(item.Price, 10),
		})
	}

	if req.CashAmount > 0 {
		body.CashOnDelivery = strconv.FormatInt(req.CashAmount, 10)
	}

	if req.EmergencyContactName != "" {
		body.EmergencyContact = &claimPointJSON{
			Name:  req.EmergencyContactName,
			Phone: req.EmergencyContactPhone,
		}
	}

	url := fmt.Sprintf("%s/claims/create?request_id=order-%s", g.baseURL, req.OrderID)

	var claim claimJSON
	if err := g.post(ctx, "CreateClaim", url, body, &claim); err != nil {
		return nil, fmt.Errorf("gateway partner, create claim for order %s: %w", req.OrderID, err)
	}

	return &Claim{ID: claim.ID, Status: claim.Status, Version: claim.Version}, nil
}

func (g *Gateway) AcceptClaim(ctx context.Context, claimID string, version int) (*Claim, error) {
	url := fmt.Sprintf("%s/claims/accept?claim_id=%s", g.baseURL, claimID)
	body := map[string]int{"version": version}

	var claim claimJSON
	if err := g.post(ctx, "AcceptClaim", url, body, &claim); err != nil {
		return nil, fmt.Errorf("gateway partner, accept claim %s: %w", claimID, err)
	}

	return &Claim{ID: claim.ID, Status: claim.Status, Version: claim.Version}, nil
}

func (g *Gateway) ClaimInfo(ctx context.Context, claimID string) (*Claim, error) {
	url := fmt.Sprintf("%s/claims/info?claim_id=%s", g.baseURL, claimID)

	var claim claimJSON
	if err := g.post(ctx, "ClaimInfo", url, struct{}{}, &claim); err != nil {
		return nil, fmt.Errorf("gateway partner, claim info %s: %w", claimID, err)
	}

	return &Claim{ID: claim.ID, Status: claim.Status, Version: claim.Version}, nil
}

func (g *Gateway) post(ctx context.Context, method, url string, body, dest any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.token)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(dest)
		case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
			return fmt.Errorf("%w: %d", ErrPartnerRejected, resp.StatusCode)
		default:
			return &statusError{code: resp.StatusCode}
		}
	})
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrPartnerRejected) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
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
