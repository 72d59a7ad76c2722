package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumb-messenger/assets"
	"github.com/bnema/dumb-messenger/internal/cli/styles"
	"github.com/bnema/dumb-messenger/internal/infrastructure/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage desktop integration",
	Long: `Install or remove the desktop entry and icon.

The desktop entry id matches the application id, so notifications and
the unread count on the launcher icon are attributed to the window.

Subcommands:
  install  - Install the desktop file and icon to $XDG_DATA_HOME
  remove   - Remove them
  status   - Show what is installed`,
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install desktop file and icon",
	Long: `Install the desktop file to $XDG_DATA_HOME/applications/ and the icon to
$XDG_DATA_HOME/icons/hicolor/scalable/apps/.

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove desktop file and icon",
	Args:  cobra.NoArgs,
	RunE:  runDesktopRemove,
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show desktop integration status",
	Args:  cobra.NoArgs,
	RunE:  runDesktopStatus,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd)
	desktopCmd.AddCommand(desktopRemoveCmd)
	desktopCmd.AddCommand(desktopStatusCmd)
}

func newDesktopCommand() (*desktop.EntryInstaller, *styles.DesktopRenderer, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	installer, err := desktop.NewEntryInstaller()
	if err != nil {
		return nil, nil, err
	}
	return installer, styles.NewDesktopRenderer(a.Theme), nil
}

func runDesktopInstall(cmd *cobra.Command, _ []string) error {
	installer, renderer, err := newDesktopCommand()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	before := installer.Status(ctx)
	status, err := installer.Install(ctx, assets.LogoSVG)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderInstalled(status.DesktopFilePath, status.IconFilePath, before.DesktopFileInstalled))
	return nil
}

func runDesktopRemove(cmd *cobra.Command, _ []string) error {
	installer, renderer, err := newDesktopCommand()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	before := installer.Status(ctx)
	if err := installer.Remove(ctx); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderRemoved(before.DesktopFilePath, before.DesktopFileInstalled))
	return nil
}

func runDesktopStatus(cmd *cobra.Command, _ []string) error {
	installer, renderer, err := newDesktopCommand()
	if err != nil {
		return err
	}

	s := installer.Status(app.Ctx())
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderStatus(s.DesktopFilePath, s.DesktopFileInstalled, s.IconFilePath, s.IconInstalled, s.ExecutablePath))
	return nil
}
