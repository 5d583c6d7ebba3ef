package commands

import (
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	Built     string `json:"built"      yaml:"built"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the CLI version and the User-Agent it sends to the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				UserAgent: tictail.DefaultUserAgent(),
				GoVersion: runtime.Version(),
			}

			out := cmd.OutOrStdout()

			switch viper.GetString(keyOutput) {
			case constants.FormatJSON:
				return writeJSON(out, versionInfo)
			case constants.FormatYAML:
				return writeYAML(out, versionInfo)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")
				_ = table.Append("Version", versionInfo.Version)
				_ = table.Append("Commit", versionInfo.Commit)
				_ = table.Append("Built", versionInfo.Built)
				_ = table.Append("User Agent", versionInfo.UserAgent)
				_ = table.Append("Go Version", versionInfo.GoVersion)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
