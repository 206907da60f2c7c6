package destinations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/salahou-dine/hon-hon/models"
)

// PlacesProvider клиент внешнего places API (GET {base}/search).
// Запросы идут через circuit breaker: после серии отказов API не дергаем 30 секунд.
type PlacesProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]models.DestinationItem]
}

const maxPlacesBody = 1 << 20

type placesResponse struct {
	Items []models.DestinationItem `json:"items"`
}

func NewPlacesProvider(baseURL, apiKey string) *PlacesProvider {
	cb := gobreaker.NewCircuitBreaker[[]models.DestinationItem](gobreaker.Settings{
		Name:        "places-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// отмена со стороны вызывающего не считается отказом API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})

	return &PlacesProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cb: cb,
	}
}

func (p *PlacesProvider) Search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.cb.Execute(func() ([]models.DestinationItem, error) {
		return p.search(ctx, city, category, budget, limit)
	})
}

// State текущее состояние breaker (для логов и тестов)
func (p *PlacesProvider) State() gobreaker.State {
	return p.cb.State()
}

func (p *PlacesProvider) search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("category", category)
	q.Set("limit", strconv.Itoa(limit))
	if b := normalizeBudgetPtr(budget); b != nil {
		q.Set("budget", *b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-Api-Key", p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPlacesBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed placesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	items := make([]models.DestinationItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it.Source == "" {
			it.Source = "places"
		}
		if it.Category == "" {
			it.Category = category
		}
		items = append(items, it)
	}
	return nearestFirst(items, limit), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
