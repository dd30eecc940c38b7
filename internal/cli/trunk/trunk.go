package trunk

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var Trunk = &cobra.Command{
	Use:   "trunk [command] [flags]",
	Short: "Exotel trunk operations",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage: true,
	Aliases:      []string{"trunks"},
}

func init() {
	Trunk.AddCommand(listCmd)
	Trunk.AddCommand(deleteCmd)
	Trunk.AddCommand(removeDestinationCmd)
	Trunk.AddCommand(removePhoneMappingCmd)
}
