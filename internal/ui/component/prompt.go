package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// PromptKind selects the styling of a prompt.
type PromptKind int

const (
	PromptInfo PromptKind = iota
	PromptError
)

func (k PromptKind) cssClass() string {
	if k == PromptError {
		return "prompt-error"
	}
	return "prompt-info"
}

// PromptAction is one button of a prompt.
type PromptAction struct {
	Label string
	// Suggested highlights the default action.
	Suggested bool
	// OnClick runs after the prompt is hidden. May be nil.
	OnClick func()
}

// Prompt describes what the overlay shows.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Body    string
	Actions []PromptAction
}

// PromptOverlay is a card shown on top of the web view. It carries the
// update prompt and the update error report. Showing a new prompt replaces
// the visible one.
type PromptOverlay struct {
	card    *gtk.Box
	title   *gtk.Label
	body    *gtk.Label
	buttons *gtk.Box
	kind    PromptKind
}

// NewPromptOverlay creates a hidden overlay.
func NewPromptOverlay() *PromptOverlay {
	p := &PromptOverlay{
		card:    gtk.NewBox(gtk.OrientationVertical, 8),
		title:   gtk.NewLabel(""),
		body:    gtk.NewLabel(""),
		buttons: gtk.NewBox(gtk.OrientationHorizontal, 6),
	}

	p.card.AddCSSClass("prompt-card")
	p.card.SetHAlign(gtk.AlignCenter)
	p.card.SetVAlign(gtk.AlignStart)
	p.card.SetMarginTop(12)

	p.title.AddCSSClass("prompt-title")
	p.title.SetXAlign(0)
	p.body.SetXAlign(0)
	p.body.SetWrap(true)
	p.body.SetMaxWidthChars(48)

	p.buttons.SetHAlign(gtk.AlignEnd)

	p.card.Append(p.title)
	p.card.Append(p.body)
	p.card.Append(p.buttons)
	p.card.SetVisible(false)
	return p
}

// Widget returns the widget for the window overlay.
func (p *PromptOverlay) Widget() gtk.Widgetter {
	return p.card
}

// Show displays prompt. A prompt without actions gets no buttons and stays
// until Hide.
func (p *PromptOverlay) Show(prompt Prompt) {
	p.card.RemoveCSSClass(p.kind.cssClass())
	p.kind = prompt.Kind
	p.card.AddCSSClass(p.kind.cssClass())

	p.title.SetText(prompt.Title)
	p.body.SetText(prompt.Body)
	p.body.SetVisible(prompt.Body != "")

	for child := p.buttons.FirstChild(); child != nil; child = p.buttons.FirstChild() {
		p.buttons.Remove(child)
	}
	for _, action := range prompt.Actions {
		btn := gtk.NewButtonWithLabel(action.Label)
		if action.Suggested {
			btn.AddCSSClass("suggested-action")
		}
		onClick := action.OnClick
		btn.ConnectClicked(func() {
			p.Hide()
			if onClick != nil {
				onClick()
			}
		})
		p.buttons.Append(btn)
	}

	p.card.SetVisible(true)
}

// Hide removes the prompt.
func (p *PromptOverlay) Hide() {
	p.card.SetVisible(false)
}

// Visible reports whether a prompt is shown.
func (p *PromptOverlay) Visible() bool {
	return p.card.IsVisible()
}
