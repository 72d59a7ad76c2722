package entity

// Notification is a desktop notification raised for a new message.
type Notification struct {
	Title string
	Body  string
	// Icon is a themed icon name.
	Icon string
}
