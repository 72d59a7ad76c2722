// Package component provides the widgets of the main window.
package component

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// badgePixelSize is the on-screen size of the header-bar badge.
const badgePixelSize = 20

// BadgeIndicator shows the unread badge in the header bar. It prefers the
// rendered image and falls back to a text label when rendering failed.
type BadgeIndicator struct {
	box   *gtk.Box
	image *gtk.Image
	label *gtk.Label
}

// NewBadgeIndicator creates a hidden indicator.
func NewBadgeIndicator() *BadgeIndicator {
	b := &BadgeIndicator{
		box:   gtk.NewBox(gtk.OrientationHorizontal, 0),
		image: gtk.NewImage(),
		label: gtk.NewLabel(""),
	}
	b.box.AddCSSClass("unread-badge")
	b.box.SetVAlign(gtk.AlignCenter)
	b.image.SetPixelSize(badgePixelSize)
	b.label.AddCSSClass("unread-badge-label")
	b.box.Append(b.image)
	b.box.Append(b.label)
	b.box.SetVisible(false)
	return b
}

// Widget returns the widget for packing.
func (b *BadgeIndicator) Widget() gtk.Widgetter {
	return b.box
}

// Apply shows or clears the badge. Must run on the main loop.
func (b *BadgeIndicator) Apply(ctx context.Context, update entity.BadgeUpdate) {
	log := logging.FromContext(ctx)

	if update.IsClear() {
		b.box.SetVisible(false)
		b.image.Clear()
		b.label.SetText("")
		return
	}

	b.box.SetTooltipText(update.Label)
	if len(update.Image) > 0 {
		texture, err := gdk.NewTextureFromBytes(glib.NewBytesWithGo(update.Image))
		if err == nil {
			b.image.SetFromPaintable(texture)
			b.image.SetVisible(true)
			b.label.SetVisible(false)
			b.box.SetVisible(true)
			return
		}
		log.Warn().Err(err).Msg("failed to decode badge image")
	}

	b.image.SetVisible(false)
	b.label.SetText(update.Label)
	b.label.SetVisible(true)
	b.box.SetVisible(true)
}
