package connectors

import (
	"context"
	"net/http"
	"trunkctl/internal/env"
	"trunkctl/internal/exotel"
	"trunkctl/internal/vapi"
)

func NewExotelClient(config *env.Config, httpClient *http.Client) (*exotel.Client, error) {
	return exotel.NewClient(httpClient, config.Exotel.BaseURL(), config.Exotel.AuthKey, config.Exotel.AuthToken)
}

func NewVapiClient(ctx context.Context, config *env.Config, httpClient *http.Client) (*vapi.Client, error) {
	return vapi.NewClient(ctx, httpClient, config.Vapi.BaseURL(), config.Vapi.PrivateKey)
}
