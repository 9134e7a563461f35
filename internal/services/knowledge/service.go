// Package knowledge provides the static question/answer knowledge base and
// lexical matching against it.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// DefaultLimit is the number of static matches returned when the caller
// passes limit <= 0.
const DefaultLimit = 3

// Service holds the immutable knowledge base. Entries are loaded once at
// construction and never mutated afterwards.
type Service struct {
	entries []models.QAPair
	logger  arbor.ILogger
}

// NewService creates a knowledge service from the compiled-in seed list,
// plus any *.yaml files found in the configured directory.
func NewService(config common.KnowledgeConfig, logger arbor.ILogger) (*Service, error) {
	entries := make([]models.QAPair, len(seedEntries))
	copy(entries, seedEntries)

	if config.Dir != "" {
		extra, err := loadEntriesFromDir(config.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load knowledge dir: %w", err)
		}
		entries = append(entries, extra...)
		logger.Info().
			Str("dir", config.Dir).
			Int("extra_entries", len(extra)).
			Msg("Loaded additional knowledge entries")
	}

	logger.Info().Int("entries", len(entries)).Msg("Knowledge base loaded")

	return &Service{
		entries: entries,
		logger:  logger,
	}, nil
}

// NewServiceFromEntries creates a knowledge service with a fixed entry list.
// Used by tests and callers that manage their own knowledge base.
func NewServiceFromEntries(entries []models.QAPair, logger arbor.ILogger) *Service {
	fixed := make([]models.QAPair, len(entries))
	copy(fixed, entries)
	return &Service{entries: fixed, logger: logger}
}

// AllEntries returns the full ordered knowledge base.
func (s *Service) AllEntries() []models.QAPair {
	return s.entries
}

// Categories returns the distinct categories in knowledge base order.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, entry := range s.entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories
}

// FindRelevant scores the query against every entry and returns the
// highest-scored entries, at most limit (highest first, ties keeping
// knowledge base order). Query tokens of length <= 3 contribute nothing;
// a keyword substring match scores 3, a question match 2, an answer match 1.
// Entries scoring 0 are discarded. An empty query yields an empty result.
func (s *Service) FindRelevant(query string, limit int) []models.QAPair {
	if limit <= 0 {
		limit = DefaultLimit
	}

	queryWords := strings.Fields(strings.ToLower(query))

	type scoredPair struct {
		pair  models.QAPair
		score int
	}

	var scored []scoredPair
	for _, pair := range s.entries {
		score := 0
		question := strings.ToLower(pair.Question)
		answer := strings.ToLower(pair.Answer)

		for _, word := range queryWords {
			if len(word) <= 3 {
				continue
			}

			for _, keyword := range pair.Keywords {
				if strings.Contains(keyword, word) {
					score += 3
					break
				}
			}
			if strings.Contains(question, word) {
				score += 2
			}
			if strings.Contains(answer, word) {
				score += 1
			}
		}

		if score > 0 {
			scored = append(scored, scoredPair{pair: pair, score: score})
		}
	}

	// Stable sort keeps knowledge base order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]models.QAPair, len(scored))
	for i, item := range scored {
		results[i] = item.pair
	}
	return results
}

// loadEntriesFromDir reads QAPair lists from every *.yaml / *.yml file in dir.
func loadEntriesFromDir(dir string) ([]models.QAPair, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var entries []models.QAPair
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var fileEntries []models.QAPair
		if err := yaml.Unmarshal(data, &fileEntries); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		entries = append(entries, fileEntries...)
	}

	return entries, nil
}

// Ensure Service implements KnowledgeService interface
var _ interfaces.KnowledgeService = (*Service)(nil)
