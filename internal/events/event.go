package events

import "time"

// TopicLinkCreated is the topic LinkCreatedEvent is published to.
const TopicLinkCreated = "link.created"

// LinkCreatedEvent represents an event emitted when a link is created.
type LinkCreatedEvent struct {
	Code      string    `json:"code"`
	URL       string    `json:"url"`
	Generated bool      `json:"generated"`
	CreatedAt time.Time `json:"createdAt"`
	RequestID string    `json:"requestId,omitempty"`
}
