package cleanup

import (
	"context"
	"trunkctl/internal/exotel"
	"trunkctl/internal/vapi"
)

// TrunkAPI is implemented by *exotel.TrunksService.
type TrunkAPI interface {
	List(ctx context.Context) ([]exotel.Trunk, error)
	Delete(ctx context.Context, trunkSid string) (*exotel.Response, error)
	ListDestinations(ctx context.Context, trunkSid string) ([]exotel.Destination, error)
	DeleteDestination(ctx context.Context, trunkSid, destinationId string) (*exotel.Response, error)
	ListPhoneNumbers(ctx context.Context, trunkSid string) ([]exotel.PhoneNumber, error)
	DeletePhoneNumber(ctx context.Context, trunkSid, mappingId string) (*exotel.Response, error)
	ListWhitelistedIPs(ctx context.Context, trunkSid string) ([]exotel.WhitelistedIP, error)
	ListCredentials(ctx context.Context, trunkSid string) ([]exotel.Credential, error)
}

// CredentialAPI is implemented by *vapi.CredentialsService.
type CredentialAPI interface {
	ListManaged(ctx context.Context) ([]vapi.Credential, error)
	Delete(ctx context.Context, id string) error
}

// PhoneNumberAPI is implemented by *vapi.PhoneNumbersService.
type PhoneNumberAPI interface {
	ListManaged(ctx context.Context) ([]vapi.PhoneNumber, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ TrunkAPI       = (*exotel.TrunksService)(nil)
	_ CredentialAPI  = (*vapi.CredentialsService)(nil)
	_ PhoneNumberAPI = (*vapi.PhoneNumbersService)(nil)
)
