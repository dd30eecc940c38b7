package trunk

import (
	"github.com/spf13/cobra"
	"trunkctl/internal/cleanup"
)

var deleteCmd = &cobra.Command{
	Use:   "delete TRUNK_SID",
	Short: "Delete an entire trunk (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := cleanup.PromptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
		c, err := cleanup.Setup(cmd.Context(), cleanup.ScopeTrunks, confirm)
		if err != nil {
			return err
		}
		c.DeleteTrunk(cmd.Context(), args[0])
		return nil
	},
}
