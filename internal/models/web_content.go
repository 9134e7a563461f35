package models

import "time"

// PageMetadata describes a fetched page.
type PageMetadata struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Timestamp   time.Time `json:"timestamp"`
	ContentType string    `json:"content_type"`
}

// FetchResult is the raw result of navigating to a URL: the page HTML plus
// its metadata. Screenshots are base64 PNG data when capture was requested.
type FetchResult struct {
	Content     string       `json:"content"`
	Metadata    PageMetadata `json:"metadata"`
	Screenshots []string     `json:"screenshots,omitempty"`
}

// ProcessedContent is web page content after markup stripping and relevance
// scoring. Not persisted across restarts; lives in the retrieval cache.
type ProcessedContent struct {
	Text           string    `json:"text"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Timestamp      time.Time `json:"timestamp"`
	RelevanceScore float64   `json:"relevance_score"`
}
