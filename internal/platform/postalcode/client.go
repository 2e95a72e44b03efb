// Package postalcode resolves Brazilian postal codes (CEP) to their state
// (UF) and municipality (IBGE) codes through the ViaCEP web service.
package postalcode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned for malformed or unknown postal codes.
	ErrNotFound = errors.New("postal code not found")
	// ErrLookup wraps transport and upstream failures.
	ErrLookup = errors.New("postal code lookup failed")
)

// Region is what the rest of the API needs to know about a postal code.
type Region struct {
	CEP  string `json:"cep"`
	UF   string `json:"uf"`
	IBGE string `json:"ibge"`
	DDD  string `json:"ddd"`
	City string `json:"city"`
}

type Config struct {
	BaseURL    string
	UserAgent  string
	RPS        int
	MaxRetries int
	Timeout    time.Duration
}

// Client resolves postal codes. A CEP always maps to the same region, so
// successful lookups are kept for the life of the process and concurrent
// lookups of one CEP share a single upstream call.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	flight  singleflight.Group

	mu      sync.RWMutex
	regions map[string]Region
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://viacep.com.br/ws"
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(4 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RPS)), 1),
		regions: make(map[string]Region),
	}
}

// viaCEPResponse matches /ws/{cep}/json/. "erro" is a bool in the legacy
// API and the string "true" in the current one.
type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge"`
	DDD        string `json:"ddd"`
	Erro       any    `json:"erro"`
}

func (r viaCEPResponse) failed() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Normalize strips punctuation from a CEP and reports whether the result
// has the expected eight digits.
func Normalize(cep string) (string, bool) {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r != '-' && r != '.' && r != ' ' {
			return "", false
		}
	}
	out := b.String()
	return out, len(out) == 8
}

// Resolve looks cep up, answering from memory when it was resolved before.
// Unknown postal codes are not remembered.
func (c *Client) Resolve(ctx context.Context, cep string) (Region, error) {
	digits, ok := Normalize(cep)
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrNotFound, cep)
	}
	if r, ok := c.cached(digits); ok {
		return r, nil
	}

	v, err, _ := c.flight.Do(digits, func() (any, error) {
		if r, ok := c.cached(digits); ok {
			return r, nil
		}
		r, err := c.fetch(ctx, digits)
		if err != nil {
			return Region{}, err
		}
		c.mu.Lock()
		c.regions[digits] = r
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return Region{}, err
	}
	return v.(Region), nil
}

func (c *Client) cached(digits string) (Region, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.regions[digits]
	return r, ok
}

func (c *Client) fetch(ctx context.Context, digits string) (Region, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Region{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	var out viaCEPResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("cep", digits).
		SetResult(&out).
		Get("/{cep}/json/")
	if err != nil {
		return Region{}, fmt.Errorf("%w: %s: %v", ErrLookup, digits, err)
	}
	if resp.StatusCode() == http.StatusBadRequest {
		return Region{}, fmt.Errorf("%w: %s", ErrNotFound, digits)
	}
	if resp.IsError() {
		return Region{}, fmt.Errorf("%w: %s: unexpected status code: %d", ErrLookup, digits, resp.StatusCode())
	}
	if out.failed() || out.UF == "" {
		return Region{}, fmt.Errorf("%w: %s", ErrNotFound, digits)
	}

	return Region{
		CEP:  digits,
		UF:   out.UF,
		IBGE: out.IBGE,
		DDD:  out.DDD,
		City: out.Localidade,
	}, nil
}
