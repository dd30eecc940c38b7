package cleanup

import (
	"context"
	"github.com/rs/zerolog/log"
	"trunkctl/internal/apierr"
	"trunkctl/internal/exotel"
	"trunkctl/internal/logging"
)

const deleteTrunkPrompt = "\nAre you sure you want to delete this trunk? (yes/no): "

// Cleanup runs the list and remove operations. Only the APIs an operation uses need to be set.
type Cleanup struct {
	Trunks       TrunkAPI
	Credentials  CredentialAPI
	PhoneNumbers PhoneNumberAPI
	Confirm      Confirm
}

// ListAll lists every trunk with its sub-resources, then the platform resources.
// A failing listing is reported and the rest still run.
func (c *Cleanup) ListAll(ctx context.Context) {
	trunks := c.ListTrunks(ctx)
	for _, t := range trunks {
		logging.UserInfo("")
		c.ListTrunk(ctx, t.TrunkSid)
	}

	logging.UserInfo("")
	c.ListPlatform(ctx)
}

// ListTrunks prints the account's trunks and returns them. On failure it reports and returns nil.
func (c *Cleanup) ListTrunks(ctx context.Context) []exotel.Trunk {
	logging.UserTitle("All Exotel Trunks:")
	trunks, err := c.Trunks.List(ctx)
	if err != nil {
		logging.UserFailure("Failed to list trunks: %s", apierr.Describe(err))
		return nil
	}
	if len(trunks) == 0 {
		logging.UserInfo("   none")
		return nil
	}

	var rows [][]string
	for _, t := range trunks {
		rows = append(rows, []string{t.TrunkSid, t.TrunkName, t.Status})
	}
	logging.RenderTable([]string{"Trunk SID", "Name", "Status"}, rows)
	return trunks
}

func (c *Cleanup) ListTrunk(ctx context.Context, trunkSid string) {
	cleaner := &TrunkCleaner{Api: c.Trunks, TrunkSid: trunkSid}
	if err := cleaner.Fetch(ctx); err != nil {
		logging.UserFailure("Failed to list resources for trunk %s: %s", trunkSid, apierr.Describe(err))
		return
	}
	cleaner.Print()
}

// ListPlatform lists BYO credentials and phone numbers; other providers are skipped by the API layer.
func (c *Cleanup) ListPlatform(ctx context.Context) {
	logging.UserTitle("Vapi Resources:")

	var rows [][]string
	credentials, err := c.Credentials.ListManaged(ctx)
	for _, cred := range credentials {
		rows = append(rows, []string{cred.Id, cred.Name})
	}
	printSection("BYO Credentials", []string{"ID", "Name"}, rows, err)

	rows = nil
	phoneNumbers, err := c.PhoneNumbers.ListManaged(ctx)
	for _, p := range phoneNumbers {
		rows = append(rows, []string{p.Id, p.Number, p.Name})
	}
	printSection("Phone Number Resources", []string{"ID", "Number", "Name"}, rows, err)
}

func (c *Cleanup) RemoveDestination(ctx context.Context, trunkSid, destinationId string) bool {
	logging.UserProgress("Removing destination %s from trunk %s...", destinationId, trunkSid)
	if _, err := c.Trunks.DeleteDestination(ctx, trunkSid, destinationId); err != nil {
		logging.UserFailure("Failed to remove destination %s: %s", destinationId, apierr.Describe(err))
		return false
	}
	logging.UserSuccess("Destination %s removed successfully", destinationId)
	return true
}

func (c *Cleanup) RemovePhoneMapping(ctx context.Context, trunkSid, mappingId string) bool {
	logging.UserProgress("Removing phone number mapping %s from trunk %s...", mappingId, trunkSid)
	if _, err := c.Trunks.DeletePhoneNumber(ctx, trunkSid, mappingId); err != nil {
		logging.UserFailure("Failed to remove phone number mapping %s: %s", mappingId, apierr.Describe(err))
		return false
	}
	logging.UserSuccess("Phone number mapping %s removed successfully", mappingId)
	return true
}

func (c *Cleanup) RemoveCredential(ctx context.Context, credentialId string) bool {
	logging.UserProgress("Removing Vapi credential %s...", credentialId)
	if err := c.Credentials.Delete(ctx, credentialId); err != nil {
		logging.UserFailure("Failed to remove credential %s: %s", credentialId, apierr.Describe(err))
		return false
	}
	logging.UserSuccess("Credential %s removed successfully", credentialId)
	return true
}

func (c *Cleanup) RemovePhoneNumber(ctx context.Context, phoneNumberId string) bool {
	logging.UserProgress("Removing Vapi phone number resource %s...", phoneNumberId)
	if err := c.PhoneNumbers.Delete(ctx, phoneNumberId); err != nil {
		logging.UserFailure("Failed to remove phone number resource %s: %s", phoneNumberId, apierr.Describe(err))
		return false
	}
	logging.UserSuccess("Phone number resource %s removed successfully", phoneNumberId)
	return true
}

// DeleteTrunk previews the trunk's resources and deletes the trunk once confirmed.
func (c *Cleanup) DeleteTrunk(ctx context.Context, trunkSid string) bool {
	logging.UserProgress("Deleting trunk %s...", trunkSid)
	logging.UserWarning("This will delete the entire trunk and all its resources!")
	logging.UserInfo("")

	cleaner := &TrunkCleaner{Api: c.Trunks, TrunkSid: trunkSid}
	deleted, err := CleanupResource(ctx, cleaner, c.Confirm, deleteTrunkPrompt)
	if err != nil {
		logging.UserFailure("Failed to delete trunk %s: %s", trunkSid, apierr.Describe(err))
		return false
	}
	if !deleted {
		log.Debug().Str("trunk_sid", trunkSid).Msg("trunk deletion not confirmed")
		logging.UserInfo("Trunk deletion cancelled")
		return false
	}
	logging.UserSuccess("Trunk %s deleted successfully", trunkSid)
	return true
}
