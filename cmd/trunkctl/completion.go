package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/errgo.v2/fmt/errors"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:

$ source <(trunkctl completion bash)

# To load completions for each session, execute once:
Linux:
  $ trunkctl completion bash > /etc/bash_completion.d/trunkctl
MacOS:
  $ trunkctl completion bash > /usr/local/etc/bash_completion.d/trunkctl

Zsh:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc
$ trunkctl completion zsh > "${fpath[1]}/_trunkctl"

Fish:

$ trunkctl completion fish > ~/.config/fish/completions/trunkctl.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(out)
		default:
			return errors.Newf("autocompletion for %s not supported", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
