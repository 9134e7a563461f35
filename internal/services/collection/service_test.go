package collection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
	"github.com/ternarybob/responsa/internal/services/fetcher"
	"github.com/ternarybob/responsa/internal/services/processor"
)

// memoryStorage implements interfaces.DocumentStorage in memory
type memoryStorage struct {
	mu   sync.Mutex
	docs map[string]*models.Document
	fail bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{docs: make(map[string]*models.Document)}
}

func (m *memoryStorage) SaveDocument(doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("storage unavailable")
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *memoryStorage) GetDocument(id string) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return doc, nil
}

func (m *memoryStorage) ListDocuments(opts *interfaces.ListOptions) ([]*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var docs []*models.Document
	for _, doc := range m.docs {
		if opts != nil && opts.Topic != "" && doc.Topic != opts.Topic {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *memoryStorage) DeleteDocument(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memoryStorage) CountDocuments() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs), nil
}

func newTestCollector(t *testing.T, config common.CollectionConfig, storage interfaces.DocumentStorage) *Service {
	t.Helper()
	logger := arbor.NewLogger()
	fetcherService := fetcher.NewService(common.WebSearchConfig{Mode: "simulation"}, true, logger)
	processorService := processor.NewService(fetcherService, logger)
	return NewService(config, fetcherService, processorService, processorService, storage, logger)
}

func TestCollectTopicStoresDocuments(t *testing.T) {
	storage := newMemoryStorage()
	svc := newTestCollector(t, common.CollectionConfig{MaxResults: 2}, storage)

	count, err := svc.CollectTopic(context.Background(), "golang concurrency")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	docs, err := storage.ListDocuments(&interfaces.ListOptions{Topic: "golang concurrency"})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	for _, doc := range docs {
		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.ContentMarkdown)
		assert.NotEmpty(t, doc.ContentText)
		assert.Contains(t, doc.URL, "golang-concurrency")
		assert.False(t, doc.CollectedAt.IsZero())
	}
}

func TestCollectNowCoversAllTopics(t *testing.T) {
	storage := newMemoryStorage()
	svc := newTestCollector(t, common.CollectionConfig{
		Topics:     []string{"golang", "rust"},
		MaxResults: 1,
	}, storage)

	require.NoError(t, svc.CollectNow(context.Background()))

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	status := svc.Status()
	assert.Equal(t, 2, status.DocumentsCollected)
	assert.False(t, status.Running)
	assert.False(t, status.LastRun.IsZero())
	assert.Empty(t, status.LastError)
}

func TestCollectTopicSkipsFailedSaves(t *testing.T) {
	storage := newMemoryStorage()
	storage.fail = true
	svc := newTestCollector(t, common.CollectionConfig{MaxResults: 2}, storage)

	count, err := svc.CollectTopic(context.Background(), "golang")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStartDisabled(t *testing.T) {
	svc := newTestCollector(t, common.CollectionConfig{Enabled: false}, newMemoryStorage())
	require.NoError(t, svc.Start())

	status := svc.Status()
	assert.False(t, status.Enabled)
	assert.True(t, status.NextRun.IsZero())
}

func TestStartRegistersSchedule(t *testing.T) {
	svc := newTestCollector(t, common.CollectionConfig{
		Enabled:  true,
		Schedule: "0 */6 * * *",
		Topics:   []string{"golang"},
	}, newMemoryStorage())

	require.NoError(t, svc.Start())
	defer svc.Stop()

	status := svc.Status()
	assert.True(t, status.Enabled)
	assert.True(t, status.NextRun.After(time.Now()))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	svc := newTestCollector(t, common.CollectionConfig{
		Enabled:  true,
		Schedule: "not a schedule",
	}, newMemoryStorage())

	assert.Error(t, svc.Start())
}
