package vapi

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"io"
	"net/http"
	"net/url"
	"strings"
	"trunkctl/internal/apierr"
)

const ServiceName = "vapi"

type Client struct {
	httpClient   *http.Client
	common       service
	BaseURL      *url.URL
	Credentials  *CredentialsService
	PhoneNumbers *PhoneNumbersService
}

type service struct {
	client *Client
}

// NewClient wraps base with a static bearer token. base may be nil.
func NewClient(ctx context.Context, base *http.Client, baseURL, privateKey string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}

	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: privateKey},
	)
	tc := oauth2.NewClient(ctx, ts)
	if base != nil {
		tc.Timeout = base.Timeout
	}

	c := &Client{
		httpClient: tc,
		BaseURL:    u,
	}
	c.common.client = c
	c.Credentials = (*CredentialsService)(&c.common)
	c.PhoneNumbers = (*PhoneNumbersService)(&c.common)
	return c, nil
}

func (c *Client) NewRequest(method, urlStr string) (*http.Request, error) {
	if !strings.HasSuffix(c.BaseURL.Path, "/") {
		return nil, fmt.Errorf("BaseURL must have a trailing slash, but %q does not", c.BaseURL)
	}
	if strings.HasPrefix(urlStr, "/") {
		return nil, fmt.Errorf("relative path must not have a preceding slash: %q", urlStr)
	}
	u, err := c.BaseURL.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Do sends req; only 200 counts as success. The body is decoded into v when v is non-nil.
func (c *Client) Do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, error) {
	if ctx == nil {
		return nil, errors.New("context must be non-nil")
	}
	req = req.WithContext(ctx)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		return nil, apierr.Transport(ServiceName, req.Method, req.URL.String(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, apierr.Transport(ServiceName, req.Method, req.URL.String(), err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp, apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if v != nil && len(data) > 0 {
		if err := json.Unmarshal(data, v); err != nil {
			apiErr := apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, strings.TrimSpace(string(data)))
			apiErr.Err = errors.Wrap(err, "invalid JSON response")
			return resp, apiErr
		}
	}
	return resp, nil
}
