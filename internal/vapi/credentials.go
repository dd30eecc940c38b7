package vapi

import (
	"context"
	"net/http"
	"net/url"
)

type CredentialsService service

// List returns every credential of the organization, whatever its provider.
func (s *CredentialsService) List(ctx context.Context) ([]Credential, error) {
	req, err := s.client.NewRequest(http.MethodGet, "credential")
	if err != nil {
		return nil, err
	}
	var credentials []Credential
	if _, err := s.client.Do(ctx, req, &credentials); err != nil {
		return nil, err
	}
	return credentials, nil
}

// ListManaged returns only the BYO SIP trunk credentials.
func (s *CredentialsService) ListManaged(ctx context.Context) ([]Credential, error) {
	credentials, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var managed []Credential
	for _, c := range credentials {
		if c.Managed() {
			managed = append(managed, c)
		}
	}
	return managed, nil
}

func (s *CredentialsService) Delete(ctx context.Context, id string) error {
	req, err := s.client.NewRequest(http.MethodDelete, "credential/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	_, err = s.client.Do(ctx, req, nil)
	return err
}
