// Package interfaces provides service interfaces for dependency injection.
package interfaces

import "github.com/ternarybob/responsa/internal/models"

// KnowledgeService provides access to the static knowledge base and
// lexical matching against it.
type KnowledgeService interface {
	// AllEntries returns the full ordered knowledge base, fixed at load time.
	AllEntries() []models.QAPair

	// FindRelevant scores the query against every entry and returns the
	// highest-scored entries, at most limit. Pure function: repeated calls
	// with the same query return the same ordered sequence.
	FindRelevant(query string, limit int) []models.QAPair
}
