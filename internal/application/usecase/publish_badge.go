package usecase

import (
	"context"
	"sync"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/title"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// BadgeSource names the producer that observed a title.
type BadgeSource string

const (
	BadgeSourcePageObserver BadgeSource = "page-observer"
	BadgeSourcePagePoll     BadgeSource = "page-poll"
	BadgeSourceTitleSignal  BadgeSource = "title-signal"
	BadgeSourceHostPoll     BadgeSource = "host-poll"
)

// BadgePublisher derives the unread badge from page titles.
//
// Several producers may report the same title in any order; Observe only
// delivers when the extracted count differs from the last delivered one.
type BadgePublisher struct {
	renderer port.BadgeRenderer
	surface  port.BadgeSurface

	mu        sync.Mutex
	lastCount int
}

// NewBadgePublisher creates a publisher. The first observed title is always
// delivered, including a zero count, so a stale badge from a previous page
// is cleared.
func NewBadgePublisher(renderer port.BadgeRenderer, surface port.BadgeSurface) *BadgePublisher {
	return &BadgePublisher{
		renderer:  renderer,
		surface:   surface,
		lastCount: -1,
	}
}

// Observe reports a page title seen by source. It returns true when an
// update was delivered.
func (p *BadgePublisher) Observe(ctx context.Context, source BadgeSource, pageTitle string) bool {
	log := logging.FromContext(ctx)
	count := title.UnreadCount(pageTitle)

	p.mu.Lock()
	if count == p.lastCount {
		p.mu.Unlock()
		return false
	}
	p.lastCount = count
	p.mu.Unlock()

	update := entity.ClearBadge()
	if count > 0 {
		label := title.BadgeLabel(count)
		img, err := p.renderer.Render(label)
		if err != nil {
			// Deliver the label alone; the surface still updates the launcher count.
			log.Warn().Err(err).Str("label", label).Msg("failed to render badge")
		}
		update = entity.BadgeUpdate{Count: count, Label: label, Image: img}
	}

	log.Debug().
		Str("source", string(source)).
		Int("count", count).
		Msg("badge update")

	p.surface.Apply(ctx, update)
	return true
}

// LastCount returns the last delivered count, or -1 before the first update.
func (p *BadgePublisher) LastCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastCount
}

// Reset forgets the last delivered count so the next observation is
// delivered unconditionally.
func (p *BadgePublisher) Reset() {
	p.mu.Lock()
	p.lastCount = -1
	p.mu.Unlock()
}
