package interfaces

import "github.com/ternarybob/responsa/internal/models"

// ListOptions filters document listings.
type ListOptions struct {
	Topic  string
	Limit  int
	Offset int
}

// DocumentStorage persists collected web content snapshots.
type DocumentStorage interface {
	SaveDocument(doc *models.Document) error
	GetDocument(id string) (*models.Document, error)
	ListDocuments(opts *ListOptions) ([]*models.Document, error)
	DeleteDocument(id string) error
	CountDocuments() (int, error)
}

// StorageManager owns the database lifecycle.
type StorageManager interface {
	DocumentStorage() DocumentStorage
	Close() error
}
