package models

import "time"

// Document is a persisted snapshot of collected web content.
// PRIMARY CONTENT FORMAT: Markdown (ContentMarkdown field).
type Document struct {
	// Identity
	ID    string `json:"id"`    // doc_{uuid}
	Topic string `json:"topic"` // Collection topic this snapshot belongs to

	// Content (markdown-first)
	Title           string `json:"title"`
	ContentMarkdown string `json:"content_markdown"`
	ContentText     string `json:"content_text"` // Stripped plain text used for scoring

	URL            string  `json:"url"` // Link to original
	RelevanceScore float64 `json:"relevance_score"`

	// Timestamps
	CollectedAt time.Time `json:"collected_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
