package vapi

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"trunkctl/internal/cleanup"
)

var Vapi = &cobra.Command{
	Use:   "vapi [command] [flags]",
	Short: "Vapi BYO resource operations",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List BYO credentials and phone numbers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopePlatform, nil)
		if err != nil {
			return err
		}
		c.ListPlatform(cmd.Context())
		return nil
	},
}

var removeCredentialCmd = &cobra.Command{
	Use:   "remove-credential CREDENTIAL_ID",
	Short: "Remove a BYO credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopePlatform, nil)
		if err != nil {
			return err
		}
		c.RemoveCredential(cmd.Context(), args[0])
		return nil
	},
}

var removePhoneCmd = &cobra.Command{
	Use:   "remove-phone PHONE_NUMBER_ID",
	Short: "Remove a BYO phone number resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopePlatform, nil)
		if err != nil {
			return err
		}
		c.RemovePhoneNumber(cmd.Context(), args[0])
		return nil
	},
}

func init() {
	Vapi.AddCommand(listCmd)
	Vapi.AddCommand(removeCredentialCmd)
	Vapi.AddCommand(removePhoneCmd)
}
