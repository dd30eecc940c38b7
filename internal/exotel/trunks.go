package exotel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type TrunksService service

func (s *TrunksService) do(ctx context.Context, method, path string) (*Response, error) {
	req, err := s.client.NewRequest(method, path, nil)
	if err != nil {
		return nil, err
	}
	resp := &Response{}
	if _, err := s.client.Do(ctx, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func subPath(trunkSid, collection string) string {
	return fmt.Sprintf("trunks/%s/%s", url.PathEscape(trunkSid), collection)
}

func (s *TrunksService) List(ctx context.Context) ([]Trunk, error) {
	resp, err := s.do(ctx, http.MethodGet, "trunks")
	if err != nil {
		return nil, err
	}
	return decodeItems[Trunk](resp)
}

// Delete removes the trunk together with every sub-resource.
func (s *TrunksService) Delete(ctx context.Context, trunkSid string) (*Response, error) {
	return s.do(ctx, http.MethodDelete, "trunks?trunk_sid="+url.QueryEscape(trunkSid))
}

func (s *TrunksService) ListDestinations(ctx context.Context, trunkSid string) ([]Destination, error) {
	resp, err := s.do(ctx, http.MethodGet, subPath(trunkSid, "destination-uris"))
	if err != nil {
		return nil, err
	}
	return decodeItems[Destination](resp)
}

func (s *TrunksService) DeleteDestination(ctx context.Context, trunkSid, destinationId string) (*Response, error) {
	return s.do(ctx, http.MethodDelete, subPath(trunkSid, "destination-uris/"+url.PathEscape(destinationId)))
}

func (s *TrunksService) ListPhoneNumbers(ctx context.Context, trunkSid string) ([]PhoneNumber, error) {
	resp, err := s.do(ctx, http.MethodGet, subPath(trunkSid, "phone-numbers"))
	if err != nil {
		return nil, err
	}
	return decodeItems[PhoneNumber](resp)
}

func (s *TrunksService) DeletePhoneNumber(ctx context.Context, trunkSid, mappingId string) (*Response, error) {
	return s.do(ctx, http.MethodDelete, subPath(trunkSid, "phone-numbers/"+url.PathEscape(mappingId)))
}

func (s *TrunksService) ListWhitelistedIPs(ctx context.Context, trunkSid string) ([]WhitelistedIP, error) {
	resp, err := s.do(ctx, http.MethodGet, subPath(trunkSid, "whitelisted-ips"))
	if err != nil {
		return nil, err
	}
	return decodeItems[WhitelistedIP](resp)
}

func (s *TrunksService) ListCredentials(ctx context.Context, trunkSid string) ([]Credential, error) {
	resp, err := s.do(ctx, http.MethodGet, subPath(trunkSid, "credentials"))
	if err != nil {
		return nil, err
	}
	return decodeItems[Credential](resp)
}
