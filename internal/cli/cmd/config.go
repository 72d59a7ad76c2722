package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/dumb-messenger/internal/cli/styles"
	"github.com/bnema/dumb-messenger/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration and state live, and print the effective configuration.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, database and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and DUMB_MESSENGER_* environment
overrides were applied, in TOML.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func configFilePath() (string, error) {
	if m := config.GetManager(); m != nil {
		return m.ConfigFile(), nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)
	out := cmd.OutOrStdout()

	configFile, err := configFilePath()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	dbFile, err := a.DatabasePath()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	fmt.Fprint(out, renderer.RenderPaths(configFile, dbFile, logDir))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)
	out := cmd.OutOrStdout()

	configFile, err := configFilePath()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Fprint(out, renderer.RenderNoConfigFile(configFile))
	}

	doc, err := toml.Marshal(a.Config)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(fmt.Errorf("encode config: %w", err)))
		return nil
	}
	fmt.Fprint(out, renderer.RenderConfig(configFile, string(doc)))
	return nil
}
