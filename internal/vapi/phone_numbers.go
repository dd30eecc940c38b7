package vapi

import (
	"context"
	"net/http"
	"net/url"
)

type PhoneNumbersService service

func (s *PhoneNumbersService) List(ctx context.Context) ([]PhoneNumber, error) {
	req, err := s.client.NewRequest(http.MethodGet, "phone-number")
	if err != nil {
		return nil, err
	}
	var phoneNumbers []PhoneNumber
	if _, err := s.client.Do(ctx, req, &phoneNumbers); err != nil {
		return nil, err
	}
	return phoneNumbers, nil
}

func (s *PhoneNumbersService) ListManaged(ctx context.Context) ([]PhoneNumber, error) {
	phoneNumbers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var managed []PhoneNumber
	for _, p := range phoneNumbers {
		if p.Managed() {
			managed = append(managed, p)
		}
	}
	return managed, nil
}

func (s *PhoneNumbersService) Delete(ctx context.Context, id string) error {
	req, err := s.client.NewRequest(http.MethodDelete, "phone-number/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	_, err = s.client.Do(ctx, req, nil)
	return err
}
