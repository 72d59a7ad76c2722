package cmd

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/cli/styles"
)

type stubChecker struct {
	out  *usecase.CheckUpdateOutput
	err  error
	seen usecase.CheckUpdateInput
}

func (s *stubChecker) Execute(_ context.Context, in usecase.CheckUpdateInput) (*usecase.CheckUpdateOutput, error) {
	s.seen = in
	return s.out, s.err
}

func runCheck(t *testing.T, checker *stubChecker) updateModel {
	t.Helper()
	m := newUpdateModel(context.Background(), styles.NewTheme(), checker, false)

	msg := m.checkForUpdates()()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	model, ok := next.(updateModel)
	require.True(t, ok)
	return model
}

func TestUpdateModel_CheckIsManual(t *testing.T) {
	checker := &stubChecker{out: &usecase.CheckUpdateOutput{CurrentVersion: "1.0.0", LatestVersion: "1.0.0"}}
	runCheck(t, checker)
	assert.True(t, checker.seen.Manual)
}

func TestUpdateModel_UpToDate(t *testing.T) {
	checker := &stubChecker{out: &usecase.CheckUpdateOutput{CurrentVersion: "1.0.0", LatestVersion: "1.0.0"}}
	m := runCheck(t, checker)

	assert.True(t, m.done)
	assert.Contains(t, m.View(), "Already up to date")
}

func TestUpdateModel_Available(t *testing.T) {
	checker := &stubChecker{out: &usecase.CheckUpdateOutput{
		UpdateAvailable: true,
		CurrentVersion:  "1.0.0",
		LatestVersion:   "1.1.0",
		ReleaseURL:      "https://github.com/bnema/dumb-messenger/releases/tag/v1.1.0",
	}}
	m := runCheck(t, checker)

	view := m.View()
	assert.Contains(t, view, "Update available")
	assert.Contains(t, view, "1.1.0")
	assert.Contains(t, view, "releases/tag/v1.1.0")
}

func TestUpdateModel_Error(t *testing.T) {
	checker := &stubChecker{err: errors.New("release feed unavailable")}
	m := runCheck(t, checker)

	assert.Contains(t, m.View(), "release feed unavailable")
}

func TestUpdateModel_QuitKey(t *testing.T) {
	m := newUpdateModel(context.Background(), styles.NewTheme(), &stubChecker{}, false)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestUpdateModel_DevBuild(t *testing.T) {
	checker := &stubChecker{out: &usecase.CheckUpdateOutput{CurrentVersion: "dev", LatestVersion: "1.1.0"}}
	m := newUpdateModel(context.Background(), styles.NewTheme(), checker, true)

	next, _ := m.Update(m.checkForUpdates()())
	view := next.View()
	assert.Contains(t, view, "Development build")
	assert.Contains(t, view, "1.1.0")
	assert.NotContains(t, view, "Already up to date")
}
