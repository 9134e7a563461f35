package models

import "time"

// CollectionStatus is a point-in-time snapshot of the background topic
// collector.
type CollectionStatus struct {
	Enabled            bool      `json:"enabled"`
	Schedule           string    `json:"schedule"`
	Topics             []string  `json:"topics"`
	Running            bool      `json:"running"`
	LastRun            time.Time `json:"last_run,omitempty"`
	NextRun            time.Time `json:"next_run,omitempty"`
	LastError          string    `json:"last_error,omitempty"`
	DocumentsCollected int       `json:"documents_collected"`
}
