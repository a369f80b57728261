package dto

import "time"

// Change kinds broadcast after successful mutations.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// ChangeEvent notifies clients that a resource collection changed and cached reads are stale.
type ChangeEvent struct {
	ID       string    `json:"id"`
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	EntityID uint      `json:"entity_id"`
	NodeID   string    `json:"node_id,omitempty"`
	At       time.Time `json:"at"`
}

// UploadResponse describes a stored asset.
type UploadResponse struct {
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}
