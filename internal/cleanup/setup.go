package cleanup

import (
	"context"
	"github.com/rs/zerolog/log"
	"trunkctl/internal/connectors"
	"trunkctl/internal/env"
)

// Scope selects which upstream APIs an operation talks to.
type Scope int

const (
	ScopeTrunks Scope = 1 << iota
	ScopePlatform
)

// Setup loads and validates the configuration for scope, then builds the clients.
// Nothing is sent upstream here.
func Setup(ctx context.Context, scope Scope, confirm Confirm) (*Cleanup, error) {
	config, err := env.Load(env.Flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	return New(ctx, config, scope, confirm)
}

func New(ctx context.Context, config *env.Config, scope Scope, confirm Confirm) (*Cleanup, error) {
	if err := config.Validate(scope&ScopeTrunks != 0, scope&ScopePlatform != 0); err != nil {
		return nil, err
	}

	httpClient := connectors.NewHTTPClient(config.HTTP)
	c := &Cleanup{Confirm: confirm}

	if scope&ScopeTrunks != 0 {
		client, err := connectors.NewExotelClient(config, httpClient)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("base_url", client.BaseURL.String()).Msg("exotel client ready")
		c.Trunks = client.Trunks
	}

	if scope&ScopePlatform != 0 {
		client, err := connectors.NewVapiClient(ctx, config, httpClient)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("base_url", client.BaseURL.String()).Msg("vapi client ready")
		c.Credentials = client.Credentials
		c.PhoneNumbers = client.PhoneNumbers
	}

	return c, nil
}
