package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/taskbot/internal/http/handler/api"
	"github.com/bornholm/taskbot/internal/http/middleware/identity"
	"github.com/pkg/errors"
)

func (c *Client) apiURL(path string) *url.URL {
	return c.baseURL.JoinPath("/api/v1", path)
}

func (c *Client) request(ctx context.Context, method string, url *url.URL, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.identity != nil {
		req.Header.Set(identity.HeaderMember, c.identity.Member)
		req.Header.Set(identity.HeaderMemberName, c.identity.DisplayName)
		req.Header.Set(identity.HeaderRoles, strings.Join(c.identity.Roles, ","))
	}

	slog.DebugContext(ctx, "sending new http request", slog.String("method", method), slog.String("url", url.String()))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		defer res.Body.Close()

		var errorRes api.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errorRes); err == nil && errorRes.Error != "" {
			return nil, errors.Errorf("server responded with status '%s': %s", res.Status, errorRes.Error)
		}

		return nil, errors.Errorf("server responded with unexpected status '%s'", res.Status)
	}

	return res, nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, url *url.URL, body io.Reader, result any) error {
	res, err := c.request(ctx, method, url, body)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if result == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
