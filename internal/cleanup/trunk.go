package cleanup

import (
	"context"
	"fmt"
	"trunkctl/internal/apierr"
	"trunkctl/internal/exotel"
	"trunkctl/internal/logging"
)

// TrunkCleaner collects the sub-resources of one trunk. A failing collection is
// recorded next to it so the others are still shown.
type TrunkCleaner struct {
	Api      TrunkAPI
	TrunkSid string

	Destinations      []exotel.Destination
	DestinationsErr   error
	PhoneNumbers      []exotel.PhoneNumber
	PhoneNumbersErr   error
	WhitelistedIPs    []exotel.WhitelistedIP
	WhitelistedIPsErr error
	Credentials       []exotel.Credential
	CredentialsErr    error
}

func (t *TrunkCleaner) Fetch(ctx context.Context) error {
	t.Destinations, t.DestinationsErr = t.Api.ListDestinations(ctx, t.TrunkSid)
	t.PhoneNumbers, t.PhoneNumbersErr = t.Api.ListPhoneNumbers(ctx, t.TrunkSid)
	t.WhitelistedIPs, t.WhitelistedIPsErr = t.Api.ListWhitelistedIPs(ctx, t.TrunkSid)
	t.Credentials, t.CredentialsErr = t.Api.ListCredentials(ctx, t.TrunkSid)
	return nil
}

func (t *TrunkCleaner) Delete(ctx context.Context) error {
	_, err := t.Api.Delete(ctx, t.TrunkSid)
	return err
}

func (t *TrunkCleaner) Print() {
	logging.UserTitle(fmt.Sprintf("Resources for trunk %s:", t.TrunkSid))

	var rows [][]string
	for _, d := range t.Destinations {
		rows = append(rows, []string{d.Id.String(), d.Destination})
	}
	printSection("Destinations", []string{"ID", "Destination"}, rows, t.DestinationsErr)

	rows = nil
	for _, p := range t.PhoneNumbers {
		rows = append(rows, []string{p.Id.String(), p.PhoneNumber})
	}
	printSection("Phone Numbers", []string{"ID", "Phone Number"}, rows, t.PhoneNumbersErr)

	rows = nil
	for _, ip := range t.WhitelistedIPs {
		rows = append(rows, []string{ip.Id.String(), fmt.Sprintf("%s/%s", ip.IP, ip.Mask)})
	}
	printSection("Whitelisted IPs", []string{"ID", "IP"}, rows, t.WhitelistedIPsErr)

	rows = nil
	for _, c := range t.Credentials {
		rows = append(rows, []string{c.Id.String(), c.TypeOrNA()})
	}
	printSection("Trunk Credentials", []string{"ID", "Type"}, rows, t.CredentialsErr)
}

func printSection(title string, fields []string, rows [][]string, err error) {
	logging.UserInfo("")
	if err != nil {
		logging.UserFailure("Failed to list %s: %s", title, apierr.Describe(err))
		return
	}
	logging.UserProgress("%s:", title)
	if len(rows) == 0 {
		logging.UserInfo("   none")
		return
	}
	logging.RenderTable(fields, rows)
}
