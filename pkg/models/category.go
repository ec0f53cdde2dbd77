package models

import "time"

// Category is a registered topical bucket. ID is an opaque reference,
// Key a stable lowercase slug and Label the display name.
type Category struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
