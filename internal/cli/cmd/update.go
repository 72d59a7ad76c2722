package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/cli/styles"
	"github.com/bnema/dumb-messenger/internal/infrastructure/browser"
	"github.com/bnema/dumb-messenger/internal/infrastructure/updater"
)

var updateOpen bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Check the release feed for a version newer than this binary.

Updates are never installed automatically. Use --open to open the
release page in your browser when a newer version exists.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVarP(&updateOpen, "open", "o", false, "open the release page when an update is available")
}

// updateChecker is the part of the check use case the command needs.
type updateChecker interface {
	Execute(ctx context.Context, in usecase.CheckUpdateInput) (*usecase.CheckUpdateOutput, error)
}

// updateModel is the bubbletea model for the update command.
type updateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.UpdateRenderer
	checker  updateChecker
	dev      bool

	output   *usecase.CheckUpdateOutput
	err      error
	done     bool
	quitting bool
}

// checkResultMsg is sent when the update check completes.
type checkResultMsg struct {
	output *usecase.CheckUpdateOutput
	err    error
}

func newUpdateModel(ctx context.Context, theme *styles.Theme, checker updateChecker, dev bool) updateModel {
	return updateModel{
		ctx:      ctx,
		spinner:  styles.NewDefaultSpinner(theme),
		renderer: styles.NewUpdateRenderer(theme),
		checker:  checker,
		dev:      dev,
	}
}

func (m updateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkForUpdates())
}

func (m updateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checkResultMsg:
		m.output, m.err = msg.output, msg.err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m updateModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.done {
		return m.renderer.RenderChecking(m.spinner.View())
	}
	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	out := m.output
	switch {
	case m.dev:
		return m.renderer.RenderDevBuild(out.LatestVersion)
	case !out.UpdateAvailable:
		return m.renderer.RenderUpToDate(out.CurrentVersion)
	default:
		return m.renderer.RenderAvailable(out.CurrentVersion, out.LatestVersion, out.ReleaseURL, out.ReleaseNotes)
	}
}

func (m updateModel) checkForUpdates() tea.Cmd {
	return func() tea.Msg {
		result, err := m.checker.Execute(m.ctx, usecase.CheckUpdateInput{Manual: true})
		return checkResultMsg{output: result, err: err}
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	checker := updater.NewGitHubChecker(a.Config.Update.FeedURL)
	checkUC := usecase.NewCheckUpdateUseCase(checker, a.BuildInfo)

	m := newUpdateModel(ctx, a.Theme, checkUC, a.BuildInfo.IsDev())
	p := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout()))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	model, ok := finalModel.(updateModel)
	if !ok || model.err != nil || model.output == nil || !model.output.UpdateAvailable {
		return nil
	}
	if updateOpen && model.output.ReleaseURL != "" {
		renderer := styles.NewUpdateRenderer(a.Theme)
		if err := browser.NewOpener().OpenURL(ctx, model.output.ReleaseURL); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderOpened(model.output.ReleaseURL))
	}
	return nil
}
