package connectors

import (
	"crypto/tls"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"net/http"
	"time"
	"trunkctl/internal/env"
)

const RequestIdHeader = "X-Request-Id"

// NewHTTPClient builds the client shared by both upstream APIs.
func NewHTTPClient(config env.HTTPConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.InsecureSkipVerify {
		log.Warn().Msg("TLS certificate verification is disabled for upstream APIs")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &http.Client{
		Timeout:   config.Timeout,
		Transport: &TracingTransport{Base: transport},
	}
}

// TracingTransport stamps a request id on every request and logs the exchange at debug level.
type TracingTransport struct {
	Base http.RoundTripper
}

func (t *TracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	req = req.Clone(req.Context())
	requestId := uuid.New().String()
	req.Header.Set(RequestIdHeader, requestId)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	event := log.Debug().
		Str("request_id", requestId).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("upstream request failed")
		return nil, err
	}
	event.Int("status", resp.StatusCode).Msg("upstream request")
	return resp, nil
}
