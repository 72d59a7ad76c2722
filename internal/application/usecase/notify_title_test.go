package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/port/mocks"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

type recordingNotifier struct {
	mu    sync.Mutex
	shown []entity.Notification
	err   error
}

func (r *recordingNotifier) Show(_ context.Context, n entity.Notification, _ func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
	return r.err
}

func (r *recordingNotifier) bodies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.shown))
	for _, n := range r.shown {
		out = append(out, n.Body)
	}
	return out
}

type countingAttention struct {
	requested int
	cleared   int
	presented int
}

func (a *countingAttention) RequestAttention(context.Context) { a.requested++ }
func (a *countingAttention) ClearAttention(context.Context)   { a.cleared++ }
func (a *countingAttention) Present(context.Context)          { a.presented++ }

func newTestNotifier(t *testing.T) (*TitleNotifier, *recordingNotifier, *countingAttention, *fakeScheduler) {
	t.Helper()
	rec := &recordingNotifier{}
	att := &countingAttention{}
	sched := newFakeScheduler()
	n := NewTitleNotifier(rec, att, sched, TitleNotifierConfig{}, nil)
	return n, rec, att, sched
}

func TestTitleNotifier_FirstTitleNotifiesImmediately(t *testing.T) {
	ctx := context.Background()
	n, rec, att, _ := newTestNotifier(t)

	n.OnTitleChanged(ctx, "Jane Doe messaged you", false)

	require.Equal(t, []string{"Jane Doe messaged you"}, rec.bodies())
	assert.Equal(t, DefaultIdleTitle, rec.shown[0].Title)
	assert.Equal(t, 1, att.requested)
	assert.Equal(t, DebounceCoolingDown, n.State())
}

func TestTitleNotifier_BurstWithinCooldownShowsLatestOnce(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "Alice: hi", false)
	require.Len(t, rec.bodies(), 1)

	sched.Advance(100 * time.Millisecond)
	n.OnTitleChanged(ctx, "Bob: hey", false)
	sched.Advance(100 * time.Millisecond)
	n.OnTitleChanged(ctx, "(2) Messenger", false)
	sched.Advance(100 * time.Millisecond)
	n.OnTitleChanged(ctx, "Carol: yo", false)

	assert.Len(t, rec.bodies(), 1, "nothing shown before the cooldown expires")
	assert.Equal(t, 1, sched.Pending(), "only one deferred notification is kept")

	sched.Advance(700 * time.Millisecond)

	assert.Equal(t, []string{"Alice: hi", "Carol: yo"}, rec.bodies())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(10 * time.Second)
	assert.Len(t, rec.bodies(), 2)
}

func TestTitleNotifier_DeferredDelayIsRemainingCooldown(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "first", false)
	sched.Advance(400 * time.Millisecond)
	n.OnTitleChanged(ctx, "second", false)

	sched.Advance(599 * time.Millisecond)
	assert.Len(t, rec.bodies(), 1)

	sched.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, rec.bodies())
}

func TestTitleNotifier_AfterCooldownNotifiesImmediately(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "first", false)
	sched.Advance(DefaultNotifyCooldown)
	n.OnTitleChanged(ctx, "second", false)

	assert.Equal(t, []string{"first", "second"}, rec.bodies())
	assert.Equal(t, 0, sched.Pending())
}

func TestTitleNotifier_NeverWhileFocused(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	for _, title := range []string{"Alice: hi", "Bob: hey", "Messenger", "(1) Bob"} {
		n.OnTitleChanged(ctx, title, true)
		sched.Advance(2 * time.Second)
	}

	assert.Empty(t, rec.bodies())
	assert.Equal(t, DebounceIdle, n.State())
}

func TestTitleNotifier_CounterPrefixedTitlesAreIgnored(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "(3) Jane Doe", false)
	sched.Advance(2 * time.Second)
	n.OnTitleChanged(ctx, "(4) Jane Doe", false)
	sched.Advance(2 * time.Second)

	assert.Empty(t, rec.bodies())
}

func TestTitleNotifier_IdleSentinelAndDuplicatesAreIgnored(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, DefaultIdleTitle, false)
	n.OnTitleChanged(ctx, "", false)
	n.OnTitleChanged(ctx, "Jane: hello", false)
	sched.Advance(2 * time.Second)
	n.OnTitleChanged(ctx, "Jane: hello", false)
	sched.Advance(2 * time.Second)

	assert.Equal(t, []string{"Jane: hello"}, rec.bodies())
}

func TestTitleNotifier_FocusGainedResetsLastTitle(t *testing.T) {
	ctx := context.Background()
	n, rec, att, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "Jane: hello", false)
	sched.Advance(2 * time.Second)

	n.OnFocusGained(ctx)
	assert.Equal(t, 1, att.cleared)

	n.OnTitleChanged(ctx, "Jane: hello", false)
	assert.Equal(t, []string{"Jane: hello", "Jane: hello"}, rec.bodies())
}

func TestTitleNotifier_FocusGainedCancelsPending(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "first", false)
	sched.Advance(100 * time.Millisecond)
	n.OnTitleChanged(ctx, "second", false)
	require.Equal(t, 1, sched.Pending())

	n.OnFocusGained(ctx)
	sched.Advance(5 * time.Second)

	assert.Equal(t, []string{"first"}, rec.bodies())
}

func TestTitleNotifier_RepeatAfterFocusWithinCooldownStillNotifies(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "Jane: hello", false)
	sched.Advance(200 * time.Millisecond)
	n.OnFocusGained(ctx)
	n.OnTitleChanged(ctx, "Jane: hello", false)

	sched.Advance(DefaultNotifyCooldown)
	assert.Equal(t, []string{"Jane: hello", "Jane: hello"}, rec.bodies())
}

func TestTitleNotifier_Disabled(t *testing.T) {
	ctx := context.Background()
	rec := &recordingNotifier{}
	sched := newFakeScheduler()
	enabled := false
	n := NewTitleNotifier(rec, &countingAttention{}, sched, TitleNotifierConfig{}, func() bool { return enabled })

	n.OnTitleChanged(ctx, "Jane: hello", false)
	assert.Empty(t, rec.bodies())

	enabled = true
	n.OnTitleChanged(ctx, "Jane: hello", false)
	assert.Len(t, rec.bodies(), 1)
}

func TestTitleNotifier_CloseCancelsPending(t *testing.T) {
	ctx := context.Background()
	n, rec, _, sched := newTestNotifier(t)

	n.OnTitleChanged(ctx, "first", false)
	n.OnTitleChanged(ctx, "second", false)
	n.Close()
	sched.Advance(5 * time.Second)

	assert.Equal(t, []string{"first"}, rec.bodies())
}

func TestTitleNotifier_ShowErrorStillRequestsAttention(t *testing.T) {
	ctx := context.Background()
	notifier := mocks.NewMockDesktopNotifier(t)
	attention := mocks.NewMockWindowAttention(t)
	sched := newFakeScheduler()

	notifier.EXPECT().
		Show(mock.Anything, mock.MatchedBy(func(n entity.Notification) bool {
			return n.Body == "Jane: hello" && n.Title == "Chats"
		}), mock.Anything).
		Return(errors.New("no notification daemon")).
		Once()
	attention.EXPECT().RequestAttention(mock.Anything).Return().Once()

	n := NewTitleNotifier(notifier, attention, sched, TitleNotifierConfig{Summary: "Chats"}, nil)
	n.OnTitleChanged(ctx, "Jane: hello", false)
}

func TestTitleNotifier_SetSummaryAppliesToLaterNotifications(t *testing.T) {
	ctx := context.Background()
	notifier := mocks.NewMockDesktopNotifier(t)
	sched := newFakeScheduler()

	var headings []string
	notifier.EXPECT().
		Show(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, n entity.Notification, _ func()) {
			headings = append(headings, n.Title)
		}).
		Return(nil).
		Twice()

	n := NewTitleNotifier(notifier, nil, sched, TitleNotifierConfig{Cooldown: time.Second, Summary: "New message"}, nil)
	n.OnTitleChanged(ctx, "Jane: hello", false)

	n.SetSummary("Neue Nachricht")
	n.SetSummary("")
	sched.Advance(time.Second)
	n.OnTitleChanged(ctx, "Jane: again", false)

	assert.Equal(t, []string{"New message", "Neue Nachricht"}, headings)
}

func TestTitleNotifier_ActivationPresentsWindow(t *testing.T) {
	ctx := context.Background()
	notifier := mocks.NewMockDesktopNotifier(t)
	attention := mocks.NewMockWindowAttention(t)
	sched := newFakeScheduler()

	var activate func()
	notifier.EXPECT().
		Show(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Notification, onActivate func()) {
			activate = onActivate
		}).
		Return(nil).
		Once()
	attention.EXPECT().RequestAttention(mock.Anything).Return().Once()
	attention.EXPECT().Present(mock.Anything).Return().Once()

	n := NewTitleNotifier(notifier, attention, sched, TitleNotifierConfig{Cooldown: 3 * time.Second}, nil)
	n.OnTitleChanged(ctx, "Jane: hello", false)

	require.NotNil(t, activate)
	activate()
}
