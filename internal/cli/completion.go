package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for c2draw.

To load completions:

Bash:
  $ source <(c2draw completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ c2draw completion bash > /etc/bash_completion.d/c2draw
  # macOS:
  $ c2draw completion bash > $(brew --prefix)/etc/bash_completion.d/c2draw

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ c2draw completion zsh > "${fpath[1]}/_c2draw"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ c2draw completion fish | source

  # To load completions for each session, execute once:
  $ c2draw completion fish > ~/.config/fish/completions/c2draw.fish

PowerShell:
  PS> c2draw completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> c2draw completion powershell > c2draw.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
