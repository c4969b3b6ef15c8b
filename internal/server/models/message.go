package models

import "time"

// Message is one point-to-point chat message. Source is empty for
// system-originated notices. Within a destination mailbox, messages keep
// their insertion order. Rendering for display is the client's concern.
type Message struct {
	ID          string
	Source      string
	Destination string
	Text        string
	SentAt      time.Time
}
