package cleanup

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/mock"
	"testing"
	"trunkctl/internal/exotel"
	"trunkctl/internal/logging"
	"trunkctl/internal/vapi"
)

type MockTrunkAPI struct {
	mock.Mock
}

func (m *MockTrunkAPI) List(ctx context.Context) ([]exotel.Trunk, error) {
	args := m.Called(ctx)
	trunks, _ := args.Get(0).([]exotel.Trunk)
	return trunks, args.Error(1)
}

func (m *MockTrunkAPI) Delete(ctx context.Context, trunkSid string) (*exotel.Response, error) {
	args := m.Called(ctx, trunkSid)
	resp, _ := args.Get(0).(*exotel.Response)
	return resp, args.Error(1)
}

func (m *MockTrunkAPI) ListDestinations(ctx context.Context, trunkSid string) ([]exotel.Destination, error) {
	args := m.Called(ctx, trunkSid)
	destinations, _ := args.Get(0).([]exotel.Destination)
	return destinations, args.Error(1)
}

func (m *MockTrunkAPI) DeleteDestination(ctx context.Context, trunkSid, destinationId string) (*exotel.Response, error) {
	args := m.Called(ctx, trunkSid, destinationId)
	resp, _ := args.Get(0).(*exotel.Response)
	return resp, args.Error(1)
}

func (m *MockTrunkAPI) ListPhoneNumbers(ctx context.Context, trunkSid string) ([]exotel.PhoneNumber, error) {
	args := m.Called(ctx, trunkSid)
	phones, _ := args.Get(0).([]exotel.PhoneNumber)
	return phones, args.Error(1)
}

func (m *MockTrunkAPI) DeletePhoneNumber(ctx context.Context, trunkSid, mappingId string) (*exotel.Response, error) {
	args := m.Called(ctx, trunkSid, mappingId)
	resp, _ := args.Get(0).(*exotel.Response)
	return resp, args.Error(1)
}

func (m *MockTrunkAPI) ListWhitelistedIPs(ctx context.Context, trunkSid string) ([]exotel.WhitelistedIP, error) {
	args := m.Called(ctx, trunkSid)
	ips, _ := args.Get(0).([]exotel.WhitelistedIP)
	return ips, args.Error(1)
}

func (m *MockTrunkAPI) ListCredentials(ctx context.Context, trunkSid string) ([]exotel.Credential, error) {
	args := m.Called(ctx, trunkSid)
	credentials, _ := args.Get(0).([]exotel.Credential)
	return credentials, args.Error(1)
}

type MockCredentialAPI struct {
	mock.Mock
}

func (m *MockCredentialAPI) ListManaged(ctx context.Context) ([]vapi.Credential, error) {
	args := m.Called(ctx)
	credentials, _ := args.Get(0).([]vapi.Credential)
	return credentials, args.Error(1)
}

func (m *MockCredentialAPI) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPhoneNumberAPI struct {
	mock.Mock
}

func (m *MockPhoneNumberAPI) ListManaged(ctx context.Context) ([]vapi.PhoneNumber, error) {
	args := m.Called(ctx)
	phones, _ := args.Get(0).([]vapi.PhoneNumber)
	return phones, args.Error(1)
}

func (m *MockPhoneNumberAPI) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// expectEmptyTrunk makes every sub-resource listing of trunkSid return nothing.
func expectEmptyTrunk(m *MockTrunkAPI, trunkSid string) {
	m.On("ListDestinations", mock.Anything, trunkSid).Return([]exotel.Destination{}, nil)
	m.On("ListPhoneNumbers", mock.Anything, trunkSid).Return([]exotel.PhoneNumber{}, nil)
	m.On("ListWhitelistedIPs", mock.Anything, trunkSid).Return([]exotel.WhitelistedIP{}, nil)
	m.On("ListCredentials", mock.Anything, trunkSid).Return([]exotel.Credential{}, nil)
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut, prevNoColor := logging.Out, logging.NoColor
	logging.Out, logging.NoColor = buf, true
	t.Cleanup(func() {
		logging.Out, logging.NoColor = prevOut, prevNoColor
	})
	return buf
}

func answer(reply string) Confirm {
	return func(string) bool {
		return IsYes(reply)
	}
}
