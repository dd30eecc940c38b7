package exotel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"trunkctl/internal/apierr"
)

const ServiceName = "exotel"

type Client struct {
	httpClient *http.Client
	common     service
	BaseURL    *url.URL
	authKey    string
	authToken  string
	Trunks     *TrunksService
}

type service struct {
	client *Client
}

// NewClient returns a client for the account-scoped API root baseURL, which must end with a slash.
func NewClient(httpClient *http.Client, baseURL, authKey, authToken string) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}
	c := &Client{
		httpClient: httpClient,
		BaseURL:    u,
		authKey:    authKey,
		authToken:  authToken,
	}
	c.common.client = c
	c.Trunks = (*TrunksService)(&c.common)
	return c, nil
}

func (c *Client) NewRequest(method, urlStr string, body interface{}) (*http.Request, error) {
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

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.authKey, c.authToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Do sends req and decodes the envelope into v. A 2xx answer whose body is
// empty, null or an empty JSON value is a failure: the API always returns an
// envelope on success.
func (c *Client) Do(ctx context.Context, req *http.Request, v *Response) (*http.Response, error) {
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
	body := strings.TrimSpace(string(data))

	if code := resp.StatusCode; code < 200 || code > 299 {
		return resp, apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, body)
	}
	if body == "" {
		return resp, apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, "empty response body")
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		apiErr := apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, body)
		apiErr.Err = errors.Wrap(err, "invalid JSON response")
		return resp, apiErr
	}
	if isEmptyJSON(generic) {
		return resp, apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, "empty response body")
	}

	if v != nil {
		if err := json.Unmarshal(data, v); err != nil {
			apiErr := apierr.Failure(ServiceName, req.Method, req.URL.String(), resp.StatusCode, body)
			apiErr.Err = errors.Wrap(err, "invalid JSON response")
			return resp, apiErr
		}
	}
	return resp, nil
}

func isEmptyJSON(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}
