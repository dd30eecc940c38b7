package cleanup

import (
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"net/http"
	"strings"
	"testing"
	"trunkctl/internal/apierr"
	"trunkctl/internal/exotel"
	"trunkctl/internal/vapi"
)

const trunkSid = "trmum12345"

func TestRemoveDestinationSuccess(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	trunks.On("DeleteDestination", mock.Anything, trunkSid, "1234").Return(&exotel.Response{HttpCode: 200}, nil).Once()

	c := &Cleanup{Trunks: trunks}
	assert.True(t, c.RemoveDestination(context.Background(), trunkSid, "1234"))

	trunks.AssertExpectations(t)
	trunks.AssertNumberOfCalls(t, "DeleteDestination", 1)
	assert.Contains(t, out.String(), "Destination 1234 removed successfully")
	assert.NotContains(t, out.String(), "ERROR")
}

func TestRemoveDestinationFailure(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	failure := apierr.Failure("exotel", http.MethodDelete, "trunks/trmum12345/destination-uris/1234", 404, `{"message":"not found"}`)
	trunks.On("DeleteDestination", mock.Anything, trunkSid, "1234").Return(nil, failure).Once()

	c := &Cleanup{Trunks: trunks}
	assert.False(t, c.RemoveDestination(context.Background(), trunkSid, "1234"))

	trunks.AssertExpectations(t)
	assert.Contains(t, out.String(), "ERROR: Failed to remove destination 1234: status 404")
	assert.NotContains(t, out.String(), "removed successfully")
}

func TestRemovePhoneMapping(t *testing.T) {
	captureOutput(t)
	trunks := &MockTrunkAPI{}
	trunks.On("DeletePhoneNumber", mock.Anything, trunkSid, "88").Return(&exotel.Response{}, nil).Once()
	trunks.On("DeletePhoneNumber", mock.Anything, trunkSid, "89").
		Return(nil, apierr.Transport("exotel", http.MethodDelete, "u", errors.New("connection refused"))).Once()

	c := &Cleanup{Trunks: trunks}
	assert.True(t, c.RemovePhoneMapping(context.Background(), trunkSid, "88"))
	assert.False(t, c.RemovePhoneMapping(context.Background(), trunkSid, "89"))
	trunks.AssertExpectations(t)
}

func TestRemovePlatformResources(t *testing.T) {
	out := captureOutput(t)
	credentials := &MockCredentialAPI{}
	credentials.On("Delete", mock.Anything, "c1").Return(nil).Once()
	phones := &MockPhoneNumberAPI{}
	phones.On("Delete", mock.Anything, "p1").
		Return(apierr.Failure("vapi", http.MethodDelete, "phone-number/p1", 400, "bad request")).Once()

	c := &Cleanup{Credentials: credentials, PhoneNumbers: phones}
	assert.True(t, c.RemoveCredential(context.Background(), "c1"))
	assert.False(t, c.RemovePhoneNumber(context.Background(), "p1"))

	credentials.AssertExpectations(t)
	phones.AssertExpectations(t)
	assert.Contains(t, out.String(), "Credential c1 removed successfully")
	assert.Contains(t, out.String(), "Failed to remove phone number resource p1: status 400: bad request")
}

func TestDeleteTrunkCancelled(t *testing.T) {
	for _, reply := range []string{"no", "", "y", "yess", "delete"} {
		t.Run(reply, func(t *testing.T) {
			out := captureOutput(t)
			trunks := &MockTrunkAPI{}
			expectEmptyTrunk(trunks, trunkSid)

			c := &Cleanup{Trunks: trunks, Confirm: answer(reply)}
			assert.False(t, c.DeleteTrunk(context.Background(), trunkSid))

			trunks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			assert.Contains(t, out.String(), "Trunk deletion cancelled")
		})
	}
}

func TestDeleteTrunkConfirmed(t *testing.T) {
	for _, reply := range []string{"yes", "YES", " Yes \n"} {
		t.Run(reply, func(t *testing.T) {
			out := captureOutput(t)
			trunks := &MockTrunkAPI{}
			expectEmptyTrunk(trunks, trunkSid)
			trunks.On("Delete", mock.Anything, trunkSid).Return(&exotel.Response{}, nil).Once()

			var prompts []string
			confirm := func(prompt string) bool {
				prompts = append(prompts, prompt)
				return IsYes(reply)
			}

			c := &Cleanup{Trunks: trunks, Confirm: confirm}
			assert.True(t, c.DeleteTrunk(context.Background(), trunkSid))

			trunks.AssertExpectations(t)
			assert.Len(t, prompts, 1)
			assert.Contains(t, out.String(), "Resources for trunk trmum12345")
			assert.Contains(t, out.String(), "Trunk trmum12345 deleted successfully")
		})
	}
}

func TestDeleteTrunkFailureNotReportedAsSuccess(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	expectEmptyTrunk(trunks, trunkSid)
	trunks.On("Delete", mock.Anything, trunkSid).
		Return(nil, apierr.Failure("exotel", http.MethodDelete, "trunks", 200, "empty response body")).Once()

	c := &Cleanup{Trunks: trunks, Confirm: answer("yes")}
	assert.False(t, c.DeleteTrunk(context.Background(), trunkSid))
	assert.NotContains(t, out.String(), "deleted successfully")
	assert.Contains(t, out.String(), "Failed to delete trunk trmum12345")
}

func TestDeleteTrunkWithoutConfirmNeverDeletes(t *testing.T) {
	captureOutput(t)
	trunks := &MockTrunkAPI{}
	expectEmptyTrunk(trunks, trunkSid)

	c := &Cleanup{Trunks: trunks}
	assert.False(t, c.DeleteTrunk(context.Background(), trunkSid))
	trunks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListTrunkPrintsEverySection(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	trunks.On("ListDestinations", mock.Anything, trunkSid).
		Return([]exotel.Destination{{Id: "1234", Destination: "sip:10.0.0.1:5060"}}, nil)
	trunks.On("ListPhoneNumbers", mock.Anything, trunkSid).
		Return(nil, apierr.Failure("exotel", http.MethodGet, "u", 500, "boom"))
	trunks.On("ListWhitelistedIPs", mock.Anything, trunkSid).
		Return([]exotel.WhitelistedIP{{Id: "5", IP: "10.0.0.1", Mask: "32"}}, nil)
	trunks.On("ListCredentials", mock.Anything, trunkSid).
		Return([]exotel.Credential{{Id: "c1"}}, nil)

	c := &Cleanup{Trunks: trunks}
	c.ListTrunk(context.Background(), trunkSid)

	text := out.String()
	assert.Contains(t, text, "sip:10.0.0.1:5060")
	assert.Contains(t, text, "ERROR: Failed to list Phone Numbers: status 500: boom")
	assert.Contains(t, text, "10.0.0.1/32")
	assert.Contains(t, text, "N/A")
	trunks.AssertExpectations(t)
}

func TestListPlatformOnlyManagedProviders(t *testing.T) {
	out := captureOutput(t)
	credentials := &MockCredentialAPI{}
	credentials.On("ListManaged", mock.Anything).
		Return([]vapi.Credential{{Id: "c1", Name: "exotel", Provider: vapi.ProviderBYOSIPTrunk}}, nil)
	phones := &MockPhoneNumberAPI{}
	phones.On("ListManaged", mock.Anything).
		Return([]vapi.PhoneNumber{{Id: "p1", Number: "+918000000000", Name: "support", Provider: vapi.ProviderBYOPhoneNumber}}, nil)

	c := &Cleanup{Credentials: credentials, PhoneNumbers: phones}
	c.ListPlatform(context.Background())

	text := out.String()
	assert.Contains(t, text, "BYO Credentials:")
	assert.Contains(t, text, "c1")
	assert.Contains(t, text, "+918000000000")
}

func TestListAllContinuesAfterTrunkFailure(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	trunks.On("List", mock.Anything).
		Return(nil, apierr.Transport("exotel", http.MethodGet, "trunks", errors.New("tls handshake failure"))).Once()
	credentials := &MockCredentialAPI{}
	credentials.On("ListManaged", mock.Anything).Return([]vapi.Credential{}, nil).Once()
	phones := &MockPhoneNumberAPI{}
	phones.On("ListManaged", mock.Anything).Return([]vapi.PhoneNumber{}, nil).Once()

	c := &Cleanup{Trunks: trunks, Credentials: credentials, PhoneNumbers: phones}
	c.ListAll(context.Background())

	trunks.AssertExpectations(t)
	credentials.AssertExpectations(t)
	phones.AssertExpectations(t)
	assert.Contains(t, out.String(), "Failed to list trunks: request failed: tls handshake failure")
	assert.Contains(t, out.String(), "Vapi Resources:")
}

func TestListAllVisitsEveryTrunk(t *testing.T) {
	out := captureOutput(t)
	trunks := &MockTrunkAPI{}
	trunks.On("List", mock.Anything).Return([]exotel.Trunk{
		{TrunkSid: "tr1", TrunkName: "one", Status: "active"},
		{TrunkSid: "tr2", TrunkName: "two", Status: "inactive"},
	}, nil).Once()
	expectEmptyTrunk(trunks, "tr1")
	expectEmptyTrunk(trunks, "tr2")
	credentials := &MockCredentialAPI{}
	credentials.On("ListManaged", mock.Anything).Return(nil, apierr.Failure("vapi", http.MethodGet, "credential", 401, "")).Once()
	phones := &MockPhoneNumberAPI{}
	phones.On("ListManaged", mock.Anything).Return([]vapi.PhoneNumber{}, nil).Once()

	c := &Cleanup{Trunks: trunks, Credentials: credentials, PhoneNumbers: phones}
	c.ListAll(context.Background())

	trunks.AssertExpectations(t)
	phones.AssertExpectations(t)
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "Resources for trunk tr1"))
	assert.Equal(t, 1, strings.Count(text, "Resources for trunk tr2"))
	assert.Contains(t, text, "Failed to list BYO Credentials: status 401")
}
