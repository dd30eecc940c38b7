package main

import (
	"fmt"
	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"strings"
	"trunkctl/internal/cli/trunk"
	"trunkctl/internal/cli/vapi"
	"trunkctl/internal/cli/version"
	"trunkctl/internal/env"
	strings2 "trunkctl/internal/lib/strings"
	"trunkctl/internal/logging"
	"unicode"
)

var helpText = dedent.Dedent(`
	Lists and removes the Exotel trunk resources and Vapi BYO resources of an integration.

	Operations (the first one given wins):
	  --list-resources                              List all resources
	  --list-trunk TRUNK_SID                        List resources for a specific trunk
	  --list-vapi                                   List Vapi resources only
	  --remove-destination TRUNK_SID DEST_ID        Remove a trunk destination
	  --remove-phone-mapping TRUNK_SID MAPPING_ID   Remove a phone number mapping
	  --remove-vapi-credential CREDENTIAL_ID        Remove a Vapi BYO credential
	  --remove-vapi-phone PHONE_NUMBER_ID           Remove a Vapi phone number resource
	  --delete-trunk TRUNK_SID                      Delete an entire trunk (DESTRUCTIVE)

	Examples:
	  trunkctl --list-resources
	  trunkctl --list-trunk trmum12345
	  trunkctl --remove-destination trmum12345 1234
	  trunkctl --delete-trunk trmum12345
	  trunkctl trunk remove-phone-mapping trmum12345 88

	Credentials are read from EXO_AUTH_KEY, EXO_AUTH_TOKEN, EXO_SUBSCRIBIX_DOMAIN,
	EXO_ACCOUNT_SID and VAPI_PRIVATE_KEY, optionally on top of a --config file.`)

var rootCmd = &cobra.Command{
	Use:   "trunkctl [group] [command] [flags]",
	Short: "Clean up Exotel trunk and Vapi BYO resources",
	Long:  strings.TrimSpace(helpText),
	Args:  cobra.ArbitraryArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.NoColor = env.Flags.NoColor
	},
	RunE:         runOperation,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func Usage(cmd *cobra.Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	usage := []string{fmt.Sprintf("Usage: %s", cmd.UseLine())}
	cmdPath := cmd.CommandPath()
	groups := []string{"trunk", "vapi"}

	if cmdPath == "trunkctl" {
		usage = append(usage, "\nGroups:")
		for _, subCommand := range cmd.Commands() {
			if strings2.AnyOf(subCommand.Name(), groups...) {
				usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
			}
		}
	}

	usage = append(usage, "\nCommands:")
	for _, subCommand := range cmd.Commands() {
		if !subCommand.Hidden && !strings2.AnyOf(subCommand.Name(), groups...) {
			usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
		}
	}

	if len(cmd.Aliases) > 0 {
		usage = append(usage, "\nAliases: "+cmd.NameAndAliases())
	}

	if cmdPath == "trunkctl" && len(cmd.LocalNonPersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, "\nOperation flags:")
		usage = append(usage, strings.TrimRightFunc(cmd.LocalNonPersistentFlags().FlagUsages(), unicode.IsSpace))
	}

	usage = append(usage, "\nCommon flags:")
	if len(cmd.PersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.PersistentFlags().FlagUsages(), unicode.IsSpace))
	}
	if len(cmd.InheritedFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.InheritedFlags().FlagUsages(), unicode.IsSpace))
	}

	if cmdPath == "trunkctl" {
		cmdPath += " [group]"
	} else {
		cmdPath += " [command]"
	}
	usage = append(usage, fmt.Sprintf("\nUse '%s --help' for more information about a command.\n", cmdPath))

	cmd.Println(strings.Join(usage, "\n"))

	return nil
}

func init() {
	rootCmd.AddCommand(trunk.Trunk)
	rootCmd.AddCommand(vapi.Vapi)
	rootCmd.AddCommand(version.Version)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "help for this command")
	rootCmd.PersistentFlags().StringVarP(&env.Flags.ConfigFile, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVar(&env.Flags.InsecureSkipVerify, "insecure-skip-verify", false, "Skip TLS certificate verification for upstream APIs")
	rootCmd.PersistentFlags().BoolVar(&env.Flags.NoColor, "no-color", false, "Disable colored output")
	addOperationFlags(rootCmd)
	rootCmd.SetUsageFunc(Usage)
}

func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
		}
		zerolog.SetGlobalLevel(level)
	}
}

func main() {
	configureLogging()
	Execute()
}
