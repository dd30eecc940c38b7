package trunk

import (
	"github.com/spf13/cobra"
	"trunkctl/internal/cleanup"
	"trunkctl/internal/logging"
)

var listCmd = &cobra.Command{
	Use:   "list [TRUNK_SID]",
	Short: "List trunks, or the resources of one trunk",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopeTrunks, nil)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			c.ListTrunk(cmd.Context(), args[0])
			return nil
		}
		for _, t := range c.ListTrunks(cmd.Context()) {
			logging.UserInfo("")
			c.ListTrunk(cmd.Context(), t.TrunkSid)
		}
		return nil
	},
}
