// Package rates supplies USD->PYG/BRL conversion factors for pricing display
// and reporting. Factors come from an external REST provider and are cached
// with a fixed TTL; on provider failure the last known snapshot is served
// stale rather than failing the caller.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	keyCurrent = "rates:current"
	keyLast    = "rates:last"
)

var trackedCurrencies = []string{"PYG", "BRL"}

// Provider fetches a fresh rate snapshot.
type Provider interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// HTTPProvider reads an exchangerate-style payload: {"rates": {"PYG": n, ...}}.
type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(trackedCurrencies))
	for _, code := range trackedCurrencies {
		f, ok := payload.Rates[code]
		if !ok {
			return nil, fmt.Errorf("rate provider payload missing %s", code)
		}
		out[code] = f
	}
	return out, nil
}

type Service struct {
	provider Provider
	store    Store
	ttl      time.Duration
	log      *zap.Logger
}

func NewService(provider Provider, store Store, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Service{provider: provider, store: store, ttl: ttl, log: log}
}

// Get returns the current factors. The bool is true when the value was served
// stale from the fallback copy after a provider failure.
func (s *Service) Get(ctx context.Context) (map[string]float64, bool, error) {
	if raw, ok, err := s.store.Get(ctx, keyCurrent); err == nil && ok {
		var cached map[string]float64
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, false, nil
		}
	}

	fresh, err := s.provider.Fetch(ctx)
	if err != nil {
		s.log.Warn("rate provider failed, trying stale cache", zap.Error(err))
		raw, ok, gerr := s.store.Get(ctx, keyLast)
		if gerr != nil || !ok {
			return nil, false, fmt.Errorf("fetch rates: %w", err)
		}
		var stale map[string]float64
		if uerr := json.Unmarshal(raw, &stale); uerr != nil {
			return nil, false, fmt.Errorf("fetch rates: %w", err)
		}
		return stale, true, nil
	}

	raw, err := json.Marshal(fresh)
	if err != nil {
		return nil, false, err
	}
	if err := s.store.Set(ctx, keyCurrent, raw, s.ttl); err != nil {
		s.log.Warn("rate cache write failed", zap.Error(err))
	}
	if err := s.store.Set(ctx, keyLast, raw, 0); err != nil {
		s.log.Warn("rate fallback write failed", zap.Error(err))
	}
	return fresh, false, nil
}
