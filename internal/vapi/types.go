package vapi

import (
	"trunkctl/internal/lib/strings"
)

const (
	ProviderBYOSIPTrunk    = "byo-sip-trunk"
	ProviderBYOPhoneNumber = "byo-phone-number"
)

// Provider kinds this tool manages. Resources of any other provider are never listed.
var (
	ManagedCredentialProviders  = []string{ProviderBYOSIPTrunk}
	ManagedPhoneNumberProviders = []string{ProviderBYOPhoneNumber}
)

type Credential struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func (c Credential) Managed() bool {
	return strings.AnyOf(c.Provider, ManagedCredentialProviders...)
}

type PhoneNumber struct {
	Id       string `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func (p PhoneNumber) Managed() bool {
	return strings.AnyOf(p.Provider, ManagedPhoneNumberProviders...)
}
