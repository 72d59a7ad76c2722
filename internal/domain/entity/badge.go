package entity

// BadgeUpdate is delivered from the badge producer to the window.
// A zero Count clears the badge. Image may be empty when rendering failed;
// surfaces then fall back to the label.
type BadgeUpdate struct {
	Count int
	Label string
	// Image is an encoded PNG.
	Image []byte
}

// IsClear reports whether the update removes the badge.
func (b BadgeUpdate) IsClear() bool {
	return b.Count <= 0
}

// ClearBadge returns the update that removes the badge.
func ClearBadge() BadgeUpdate {
	return BadgeUpdate{}
}
