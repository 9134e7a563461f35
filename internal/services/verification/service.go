// Package verification cross-checks retrieved web content for agreement
// between independent sources.
package verification

import (
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

const (
	// minSources is the number of independent results required before any
	// verification can be attempted.
	minSources = 2

	// maxChecks caps the number of sentence probes taken from the first
	// source.
	maxChecks = 5

	// minProbeTokens is the minimum number of long tokens a sentence needs
	// to form a usable probe.
	minProbeTokens = 2

	// verifiedThreshold is the fraction of probes that must be confirmed by
	// a second source for the set to count as verified.
	verifiedThreshold = 0.5
)

// Service verifies retrieved content by probing whether key sentences from
// one source are corroborated by another.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a verification service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Verify cross-checks the first result's sentences against the remaining
// results. Fewer than two results can never be verified. Sentences too
// short to yield two long tokens are skipped and do not count as checks.
func (s *Service) Verify(results []*models.ProcessedContent) models.VerificationResult {
	if len(results) < minSources {
		return models.VerificationResult{Verified: false, ConfidenceScore: 0}
	}

	totalChecks := 0
	confirmed := 0
	for _, sentence := range keySentences(results[0].Text) {
		if totalChecks == maxChecks {
			break
		}
		pattern := tokenPattern(sentence)
		if pattern == nil {
			continue
		}
		totalChecks++
		for _, other := range results[1:] {
			if pattern.MatchString(strings.ToLower(other.Text)) {
				confirmed++
				break
			}
		}
	}

	if totalChecks == 0 {
		return models.VerificationResult{Verified: false, ConfidenceScore: 0}
	}

	confidence := float64(confirmed) / float64(totalChecks)
	verified := confidence > verifiedThreshold

	s.logger.Debug().
		Int("sources", len(results)).
		Int("checks", totalChecks).
		Int("confirmed", confirmed).
		Bool("verified", verified).
		Msg("Verification complete")

	return models.VerificationResult{Verified: verified, ConfidenceScore: confidence}
}

// keySentences returns the sentences longer than 20 characters, splitting
// on periods. The caller budgets how many become checks; sentences that
// cannot form a probe do not consume that budget.
func keySentences(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, ".") {
		sentence := strings.TrimSpace(raw)
		if len(sentence) > 20 {
			out = append(out, sentence)
		}
	}
	return out
}

// tokenPattern builds a loose regexp from the first three words longer than
// 5 characters, joined so they may appear in order anywhere in a source.
// Sentences with fewer than two such words yield no pattern.
func tokenPattern(sentence string) *regexp.Regexp {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(sentence)) {
		if len(word) > 5 {
			tokens = append(tokens, regexp.QuoteMeta(word))
			if len(tokens) == 3 {
				break
			}
		}
	}
	if len(tokens) < minProbeTokens {
		return nil
	}
	pattern, err := regexp.Compile(strings.Join(tokens, ".*"))
	if err != nil {
		return nil
	}
	return pattern
}

// Ensure Service implements VerificationService interface
var _ interfaces.VerificationService = (*Service)(nil)
