package models

// Message represents a single board message as persisted in the cached
// message sequence. Timestamp is milliseconds since epoch.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
