// internal/catalog/client.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/apperrors"
)

// Client talks to the upstream catalog API. The upstream is not
// read-after-write consistent and intermediate HTTP caches are not
// trusted, so every mutation carries a cache-defeating timestamp
// parameter and no-cache headers; consistency itself is the
// refresher's job, not the client's.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Logger
	now        func() time.Time
}

func NewClient(baseURL, token string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		now:        time.Now,
	}
}

// envelope is the upstream list response wrapper. Total is optional;
// when present it may disagree with len(Data) right after a write,
// which is exactly the inconsistency the refresher compensates for.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Total *int            `json:"total,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid catalog url %q: %w", path, err)
	}

	mutation := method != http.MethodGet
	if mutation {
		q := u.Query()
		q.Set("_ts", strconv.FormatInt(c.now().UnixNano(), 10))
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if mutation {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(method+" "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NewNotFoundError("resource", "")
	case resp.StatusCode >= 500:
		return apperrors.NewNetworkError(method+" "+path, fmt.Errorf("upstream returned %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("catalog api rejected %s %s: %d %s", method, path, resp.StatusCode, string(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// getList fetches a list endpoint and decodes the {data, total}
// envelope into out. The returned total is -1 when the upstream
// omitted it.
func (c *Client) getList(ctx context.Context, path string, out interface{}) (int, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return 0, err
	}

	total := -1
	if env.Total != nil {
		total = *env.Total
	}
	if len(env.Data) == 0 {
		return total, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return 0, fmt.Errorf("failed to decode list payload of %s: %w", path, err)
	}
	return total, nil
}

// getOne fetches a single record, accepting either a bare object or a
// {data: {...}} wrapper.
func (c *Client) getOne(ctx context.Context, path string, out interface{}) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return err
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		raw = wrapped.Data
	}
	return json.Unmarshal(raw, out)
}
