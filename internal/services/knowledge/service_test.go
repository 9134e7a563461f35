package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/models"
)

func testEntries() []models.QAPair {
	return []models.QAPair{
		{
			ID:       "kw-match",
			Question: "Unrelated question",
			Answer:   "Unrelated answer",
			Keywords: []string{"kubernetes", "container"},
			Category: "infra",
		},
		{
			ID:       "question-match",
			Question: "How does kubernetes schedule pods?",
			Answer:   "Unrelated answer",
			Keywords: []string{"scheduling"},
			Category: "infra",
		},
		{
			ID:       "answer-match",
			Question: "Unrelated question",
			Answer:   "Workloads run on kubernetes nodes",
			Keywords: []string{"nodes"},
			Category: "infra",
		},
		{
			ID:       "no-match",
			Question: "What is a monad?",
			Answer:   "A monoid in the category of endofunctors",
			Keywords: []string{"monad", "haskell"},
			Category: "fp",
		},
	}
}

func TestFindRelevantOrdersByScore(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	results := svc.FindRelevant("kubernetes", 10)
	require.Len(t, results, 3)

	// Keyword match (3) beats question match (2) beats answer match (1).
	assert.Equal(t, "kw-match", results[0].ID)
	assert.Equal(t, "question-match", results[1].ID)
	assert.Equal(t, "answer-match", results[2].ID)
}

func TestFindRelevantExcludesZeroScores(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	results := svc.FindRelevant("kubernetes", 10)
	for _, r := range results {
		assert.NotEqual(t, "no-match", r.ID)
	}
}

func TestFindRelevantIgnoresShortTokens(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	// Every token has length <= 3; nothing can score.
	assert.Empty(t, svc.FindRelevant("how is a pod", 10))
}

func TestFindRelevantEmptyQuery(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())
	assert.Empty(t, svc.FindRelevant("", 10))
}

func TestFindRelevantAppliesLimit(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	results := svc.FindRelevant("kubernetes", 1)
	require.Len(t, results, 1)
	assert.Equal(t, "kw-match", results[0].ID)
}

func TestFindRelevantDefaultLimit(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	results := svc.FindRelevant("kubernetes", 0)
	assert.Len(t, results, DefaultLimit)
}

func TestFindRelevantDeterministic(t *testing.T) {
	svc := NewServiceFromEntries(testEntries(), arbor.NewLogger())

	first := svc.FindRelevant("kubernetes scheduling", 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.FindRelevant("kubernetes scheduling", 10))
	}
}

func TestSeedEntriesAnswerRAGQuery(t *testing.T) {
	svc, err := NewService(common.KnowledgeConfig{}, arbor.NewLogger())
	require.NoError(t, err)

	results := svc.FindRelevant("What is RAG?", 3)
	require.NotEmpty(t, results)
	assert.Equal(t, "ai-1", results[0].ID)
}

func TestSeedEntriesCoverAllCategories(t *testing.T) {
	svc, err := NewService(common.KnowledgeConfig{}, arbor.NewLogger())
	require.NoError(t, err)

	assert.Len(t, svc.AllEntries(), 35)
	assert.Len(t, svc.Categories(), 9)
}
