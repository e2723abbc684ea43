package client

import (
	"net/http"
	"net/url"
	"time"
)

// Identity is the caller identity forwarded to the server, normally filled
// in by the chat gateway on behalf of the member issuing a command.
type Identity struct {
	Member      string
	DisplayName string
	Roles       []string
}

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Identity   *Identity
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithIdentity(member string, displayName string, roles ...string) OptionFunc {
	return func(opts *Options) {
		opts.Identity = &Identity{
			Member:      member,
			DisplayName: displayName,
			Roles:       roles,
		}
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:8080",
		},
		HTTPClient: &http.Client{
			Timeout: time.Minute,
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
