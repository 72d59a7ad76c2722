package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumb-messenger/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if versionShort {
		_, err := fmt.Fprintln(out, buildInfo.Version)
		return err
	}

	renderer := styles.NewAboutRenderer(styles.NewTheme())
	_, err := fmt.Fprintln(out, renderer.Render(buildInfo))
	return err
}
