package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// queue collects posted main-loop callbacks.
type queue struct {
	mu  sync.Mutex
	fns []func()
}

func (q *queue) post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fns = append(q.fns, fn)
}

func (q *queue) postKeyed(_ string, fn func()) {
	q.post(fn)
}

// drain runs everything posted so far, including callbacks posted while
// draining.
func (q *queue) drain() int {
	n := 0
	for {
		q.mu.Lock()
		if len(q.fns) == 0 {
			q.mu.Unlock()
			return n
		}
		fn := q.fns[0]
		q.fns = q.fns[1:]
		q.mu.Unlock()
		fn()
		n++
	}
}

type fakeWindow struct {
	mu        sync.Mutex
	active    bool
	destroyed bool
	presented int
}

func (w *fakeWindow) Present() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presented++
}

func (w *fakeWindow) IsActive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *fakeWindow) IsDestroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

type fakeBadgeView struct {
	updates []entity.BadgeUpdate
}

func (v *fakeBadgeView) Apply(_ context.Context, u entity.BadgeUpdate) {
	v.updates = append(v.updates, u)
}

type fakeLauncher struct {
	mu     sync.Mutex
	counts []int
	urgent []bool
}

func (l *fakeLauncher) SetCount(_ context.Context, n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts = append(l.counts, n)
	return nil
}

func (l *fakeLauncher) SetUrgent(_ context.Context, u bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.urgent = append(l.urgent, u)
	return nil
}

type stubRenderer struct{}

func (stubRenderer) Render(label string) ([]byte, error) {
	return []byte("png:" + label), nil
}

type fakeTitle struct {
	title string
}

func (f *fakeTitle) Title() string { return f.title }

// manualScheduler is a port.Scheduler advanced by hand.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	s    *manualScheduler
	at   time.Time
	fn   func()
	done bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{now: time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC)}
}

func (s *manualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now.Add(d), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	pending := !t.done
	t.done = true
	return pending
}

// Advance runs due timers one at a time, in creation order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *manualTimer
		for _, t := range s.timers {
			if !t.done && !t.at.After(target) {
				next = t
				break
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.done = true
		s.mu.Unlock()
		next.fn()
	}
}

type fakeLoader struct {
	loaded []string
}

func (l *fakeLoader) LoadURL(url string) error {
	l.loaded = append(l.loaded, url)
	return nil
}

type fakePage struct {
	uri string
}

func (p *fakePage) URI() string { return p.uri }

type fakePopups struct {
	opened  []string
	openers []PageView
	views   []*fakePage
}

// OpenPopup records the request and returns a view that starts at url.
func (p *fakePopups) OpenPopup(_ context.Context, opener PageView, url string) PageView {
	p.opened = append(p.opened, url)
	p.openers = append(p.openers, opener)
	view := &fakePage{uri: url}
	p.views = append(p.views, view)
	return view
}

type fakePresenter struct {
	mu        sync.Mutex
	available []*usecase.CheckUpdateOutput
	upToDate  []*usecase.CheckUpdateOutput
	errs      []error
	download  func()
	later     func()
	events    chan string
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{events: make(chan string, 16)}
}

func (p *fakePresenter) ShowUpdateAvailable(_ context.Context, out *usecase.CheckUpdateOutput, onDownload, onLater func()) {
	p.mu.Lock()
	p.available = append(p.available, out)
	p.download, p.later = onDownload, onLater
	p.mu.Unlock()
	p.events <- "available"
}

func (p *fakePresenter) ShowUpToDate(_ context.Context, out *usecase.CheckUpdateOutput) {
	p.mu.Lock()
	p.upToDate = append(p.upToDate, out)
	p.mu.Unlock()
	p.events <- "up-to-date"
}

func (p *fakePresenter) ShowUpdateError(_ context.Context, err error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
	p.events <- "error"
}

type fakeMenuView struct {
	models []entity.MenuModel
}

func (v *fakeMenuView) Render(m entity.MenuModel) {
	v.models = append(v.models, m)
}
