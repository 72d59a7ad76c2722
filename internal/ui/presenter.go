package ui

import (
	"context"
	"fmt"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
	"github.com/bnema/dumb-messenger/internal/ui/component"
	"github.com/bnema/dumb-messenger/internal/ui/coordinator"
)

// updatePresenter renders update check outcomes in the prompt overlay.
type updatePresenter struct {
	prompt *component.PromptOverlay
	table  func() *i18n.Table
}

var _ coordinator.UpdatePresenter = (*updatePresenter)(nil)

func (p *updatePresenter) ShowUpdateAvailable(_ context.Context, out *usecase.CheckUpdateOutput, onDownload, onLater func()) {
	t := p.table()
	p.prompt.Show(component.Prompt{
		Kind:  component.PromptInfo,
		Title: t.T(i18n.MsgUpdateAvailableTitle),
		Body:  fmt.Sprintf(t.T(i18n.MsgUpdateAvailableBody), out.LatestVersion, out.CurrentVersion),
		Actions: []component.PromptAction{
			{Label: t.T(i18n.MsgUpdateLater), OnClick: onLater},
			{Label: t.T(i18n.MsgUpdateDownload), Suggested: true, OnClick: onDownload},
		},
	})
}

func (p *updatePresenter) ShowUpToDate(_ context.Context, out *usecase.CheckUpdateOutput) {
	t := p.table()
	p.prompt.Show(component.Prompt{
		Kind:    component.PromptInfo,
		Title:   fmt.Sprintf(t.T(i18n.MsgUpdateUpToDate), out.CurrentVersion),
		Actions: []component.PromptAction{{Label: t.T(i18n.MsgDismiss), Suggested: true}},
	})
}

func (p *updatePresenter) ShowUpdateError(_ context.Context, err error) {
	t := p.table()
	p.prompt.Show(component.Prompt{
		Kind:    component.PromptError,
		Title:   t.T(i18n.MsgUpdateFailedTitle),
		Body:    err.Error(),
		Actions: []component.PromptAction{{Label: t.T(i18n.MsgDismiss), Suggested: true}},
	})
}
