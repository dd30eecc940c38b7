package exotel

import (
	"bytes"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const StatusSuccess = "success"

// FlexString decodes a JSON string or number into its textual form.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return errors.Wrapf(err, "expected string or number, got %s", b)
	}
	*s = FlexString(num.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Response is the envelope every v2 endpoint answers with.
type Response struct {
	RequestId string         `json:"request_id"`
	Method    string         `json:"method"`
	HttpCode  int            `json:"http_code"`
	Items     []ResponseItem `json:"response"`
}

type ResponseItem struct {
	Code      int             `json:"code"`
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	ErrorData json.RawMessage `json:"error_data"`
}

func (i ResponseItem) ok() bool {
	return i.Status == StatusSuccess && len(i.Data) > 0 && !bytes.Equal(bytes.TrimSpace(i.Data), []byte("null"))
}

// decodeItems returns the data of every successful item, skipping the rest.
func decodeItems[T any](resp *Response) ([]T, error) {
	var out []T
	for _, item := range resp.Items {
		if !item.ok() {
			log.Debug().Int("code", item.Code).Str("status", item.Status).
				Str("error_data", string(item.ErrorData)).Msg("skipping response item")
			continue
		}
		var v T
		if err := json.Unmarshal(item.Data, &v); err != nil {
			return out, errors.Wrap(err, "failed to decode response item")
		}
		out = append(out, v)
	}
	return out, nil
}

type Trunk struct {
	TrunkSid  string `json:"trunk_sid"`
	TrunkName string `json:"trunk_name"`
	Status    string `json:"status"`
}

type Destination struct {
	Id          FlexString `json:"id"`
	Destination string     `json:"destination"`
}

type PhoneNumber struct {
	Id          FlexString `json:"id"`
	PhoneNumber string     `json:"phone_number"`
}

type WhitelistedIP struct {
	Id   FlexString `json:"id"`
	IP   string     `json:"ip"`
	Mask FlexString `json:"mask"`
}

type Credential struct {
	Id   FlexString `json:"id"`
	Type string     `json:"type"`
}

func (c Credential) TypeOrNA() string {
	if c.Type == "" {
		return "N/A"
	}
	return c.Type
}
