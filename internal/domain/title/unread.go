// Package title extracts unread counters from the page title.
package title

import (
	"regexp"
	"strconv"
)

// MaxBadgeCount is the largest count rendered verbatim on the badge.
const MaxBadgeCount = 99

// OverflowLabel is shown when the count exceeds MaxBadgeCount.
const OverflowLabel = "99+"

var unreadPrefix = regexp.MustCompile(`^\((\d+)\)`)

// HasUnreadPrefix reports whether t starts with a "(N)" counter.
// Such titles are counter-only updates, not message content.
func HasUnreadPrefix(t string) bool {
	return unreadPrefix.MatchString(t)
}

// UnreadCount returns the counter of a "(N) ..." title, or 0 when the title
// carries no counter.
func UnreadCount(t string) int {
	m := unreadPrefix.FindStringSubmatch(t)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		// Overflowing digit runs are still "a lot of unread".
		return MaxBadgeCount + 1
	}
	return n
}

// BadgeLabel returns the text drawn on the badge for count.
func BadgeLabel(count int) string {
	if count <= 0 {
		return ""
	}
	if count > MaxBadgeCount {
		return OverflowLabel
	}
	return strconv.Itoa(count)
}
