package badger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

func newTestStorage(t *testing.T) interfaces.DocumentStorage {
	t.Helper()

	options := badgerhold.DefaultOptions
	options.Dir = t.TempDir()
	options.ValueDir = options.Dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	db := &BadgerDB{store: store}
	return NewDocumentStorage(db, arbor.NewLogger())
}

func testDocument(id, topic string, collectedAt time.Time) *models.Document {
	return &models.Document{
		ID:              id,
		Topic:           topic,
		Title:           "Title " + id,
		ContentMarkdown: "# " + id,
		ContentText:     "text " + id,
		URL:             "https://example.com/" + id,
		RelevanceScore:  0.5,
		CollectedAt:     collectedAt,
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	storage := newTestStorage(t)

	doc := testDocument("doc-1", "golang", time.Now().UTC())
	require.NoError(t, storage.SaveDocument(doc))
	assert.False(t, doc.CreatedAt.IsZero())

	loaded, err := storage.GetDocument("doc-1")
	require.NoError(t, err)
	assert.Equal(t, "golang", loaded.Topic)
	assert.Equal(t, "# doc-1", loaded.ContentMarkdown)
}

func TestSaveDocumentRequiresID(t *testing.T) {
	storage := newTestStorage(t)
	assert.Error(t, storage.SaveDocument(&models.Document{Topic: "golang"}))
}

func TestGetDocumentNotFound(t *testing.T) {
	storage := newTestStorage(t)
	_, err := storage.GetDocument("missing")
	assert.Error(t, err)
}

func TestListDocumentsByTopic(t *testing.T) {
	storage := newTestStorage(t)
	base := time.Now().UTC()

	require.NoError(t, storage.SaveDocument(testDocument("doc-1", "golang", base.Add(-2*time.Hour))))
	require.NoError(t, storage.SaveDocument(testDocument("doc-2", "golang", base)))
	require.NoError(t, storage.SaveDocument(testDocument("doc-3", "rust", base)))

	docs, err := storage.ListDocuments(&interfaces.ListOptions{Topic: "golang"})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Newest first.
	assert.Equal(t, "doc-2", docs[0].ID)
	assert.Equal(t, "doc-1", docs[1].ID)
}

func TestListDocumentsLimitAndOffset(t *testing.T) {
	storage := newTestStorage(t)
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, storage.SaveDocument(testDocument(id, "golang", base.Add(time.Duration(i)*time.Minute))))
	}

	docs, err := storage.ListDocuments(&interfaces.ListOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)
}

func TestDeleteDocument(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.SaveDocument(testDocument("doc-1", "golang", time.Now())))
	require.NoError(t, storage.DeleteDocument("doc-1"))

	_, err := storage.GetDocument("doc-1")
	assert.Error(t, err)

	// Deleting a missing document is not an error.
	assert.NoError(t, storage.DeleteDocument("doc-1"))
}

func TestCountDocuments(t *testing.T) {
	storage := newTestStorage(t)

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, storage.SaveDocument(testDocument("doc-1", "golang", time.Now())))
	require.NoError(t, storage.SaveDocument(testDocument("doc-2", "rust", time.Now())))

	count, err = storage.CountDocuments()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
