// ABOUTME: Root CLI command with global flags
// ABOUTME: Wires subcommands and verbose/quiet output control
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
███████╗ ██████╗  ██████╗      ██╗███████╗ ██████╗████████╗██╗  ██╗██████╗
██╔══██║██╔═══██╗██╔═══██╗     ██║██╔════╝██╔════╝╚══██╔══╝██║ ██╔╝██╔══██╗
███████║██████╔╝ ██║   ██║     ██║█████╗  ██║        ██║   █████╔╝ ██████╔╝
██╔════╝██╔══██╗ ██║   ██║██   ██║██╔══╝  ██║        ██║   ██╔═██╗ ██╔══██╗
██║     ██║  ██║ ╚██████╔╝╚█████╔╝███████╗╚██████╗   ██║   ██║  ██╗██████╔╝
╚═╝     ╚═╝  ╚═╝  ╚═════╝  ╚════╝ ╚══════╝ ╚═════╝   ╚═╝   ╚═╝  ╚═╝╚═════╝
`

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projectkb",
		Short: "Project-scoped knowledge store for documents and memory",
		Long: banner + `
projectkb keeps per-project documents with full version history and
memory entries (notes, decisions, observations), cross-linkable through
a typed relation graph and taggable on both sides.

Serve it to LLM agents over MCP or browse it through the web front-end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewWebCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
