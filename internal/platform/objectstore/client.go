// Package objectstore talks to the Supabase Storage REST API where book
// covers, book photos and profile photos are kept.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Bucket names used by the API.
const (
	BookImages = "BookImages"
	UserImages = "UserImages"
)

// ErrStorage wraps every failure reported by the storage backend.
var ErrStorage = errors.New("object storage error")

type Config struct {
	BaseURL    string
	ServiceKey string
	// URLTTL is the lifetime of signed URLs. Zero means buckets are public
	// and URLs are built without a round trip.
	URLTTL  time.Duration
	Timeout time.Duration
}

type Client struct {
	http    *resty.Client
	baseURL string
	urlTTL  time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	httpClient := resty.New().
		SetBaseURL(baseURL+"/storage/v1").
		SetTimeout(timeout).
		SetAuthToken(cfg.ServiceKey).
		SetHeader("apikey", cfg.ServiceKey)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		urlTTL:  cfg.URLTTL,
	}
}

type apiError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func storageErr(op, bucket, key string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s %s/%s: %v", ErrStorage, op, bucket, key, err)
	}
	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Message != "" {
		msg = e.Message
	}
	return fmt.Errorf("%w: %s %s/%s: %s", ErrStorage, op, bucket, key, msg)
}

// Put uploads data under bucket/key, replacing any existing object.
func (c *Client) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"bucket": bucket, "key": key}).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		SetError(&apiError{}).
		Post("/object/{bucket}/{key}")
	if err != nil || resp.IsError() {
		return storageErr("put", bucket, key, resp, err)
	}
	return nil
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

// URL returns a URL the mobile client can load the object from.
func (c *Client) URL(ctx context.Context, bucket, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if c.urlTTL <= 0 {
		return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, key), nil
	}

	var out signResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"bucket": bucket, "key": key}).
		SetBody(signRequest{ExpiresIn: int(c.urlTTL.Seconds())}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/object/sign/{bucket}/{key}")
	if err != nil || resp.IsError() {
		return "", storageErr("sign", bucket, key, resp, err)
	}
	if out.SignedURL == "" {
		return "", fmt.Errorf("%w: sign %s/%s: empty signed url", ErrStorage, bucket, key)
	}
	return c.baseURL + "/storage/v1" + out.SignedURL, nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove deletes the given keys from bucket. Empty keys are ignored.
func (c *Client) Remove(ctx context.Context, bucket string, keys ...string) error {
	prefixes := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			prefixes = append(prefixes, k)
		}
	}
	if len(prefixes) == 0 {
		return nil
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("bucket", bucket).
		SetBody(removeRequest{Prefixes: prefixes}).
		SetError(&apiError{}).
		Delete("/object/{bucket}")
	if err != nil || resp.IsError() {
		return storageErr("remove", bucket, strings.Join(prefixes, ","), resp, err)
	}
	return nil
}
