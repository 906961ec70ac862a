package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBody caps how much of a provider response is read.
const maxBody = 1 << 20

func (c *Client) newRequest(ctx context.Context, endpoint string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do executes req once and returns the status with the full body.
// Non-2xx responses are not errors here: the provider reports its own
// status code in the body and the caller decides.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	return resp.StatusCode, b, nil
}
