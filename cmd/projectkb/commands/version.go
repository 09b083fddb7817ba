// ABOUTME: Version command reporting what binary is running
// ABOUTME: Build metadata is injected by the release pipeline via SetVersion
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo carries the build metadata stamped into the binary.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the metadata as the multi-line version report.
func (v VersionInfo) String() string {
	return fmt.Sprintf("projectkb version %s\n  commit: %s\n  built:  %s", v.Version, v.Commit, v.Date)
}

var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// SetVersion stamps the build metadata; main calls this before Execute.
func SetVersion(version, commit, date string) {
	versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Report the projectkb version along with the commit and build date it was produced from.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionInfo)
		},
	}
}
