package trunk

import (
	"github.com/spf13/cobra"
	"gopkg.in/errgo.v2/fmt/errors"
	"trunkctl/internal/cleanup"
)

func twoArgs(first, second string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.Newf("%s requires %s and %s, got %d argument(s)", cmd.Name(), first, second, len(args))
		}
		return nil
	}
}

var removeDestinationCmd = &cobra.Command{
	Use:   "remove-destination TRUNK_SID DEST_ID",
	Short: "Remove a destination URI from a trunk",
	Args:  twoArgs("TRUNK_SID", "DEST_ID"),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopeTrunks, nil)
		if err != nil {
			return err
		}
		c.RemoveDestination(cmd.Context(), args[0], args[1])
		return nil
	},
}

var removePhoneMappingCmd = &cobra.Command{
	Use:   "remove-phone-mapping TRUNK_SID MAPPING_ID",
	Short: "Remove a phone number mapping from a trunk",
	Args:  twoArgs("TRUNK_SID", "MAPPING_ID"),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopeTrunks, nil)
		if err != nil {
			return err
		}
		c.RemovePhoneMapping(cmd.Context(), args[0], args[1])
		return nil
	},
}
