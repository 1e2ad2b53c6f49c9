package remote

import (
	"context"
	"encoding/json"
)

// Collection names a group of documents inside a user's partition.
type Collection string

const (
	Folders Collection = "folders"
	Banks   Collection = "banks"
)

// Partition addresses one collection of one user.
type Partition struct {
	UserID     string
	Collection Collection
}

// Document is one stored entity. Body is its JSON encoding.
type Document struct {
	ID   string
	Body json.RawMessage
}

// DocumentStore is a per-user partitioned document database.
type DocumentStore interface {
	// Get returns store.ErrNotFound when the document does not exist.
	Get(ctx context.Context, p Partition, id string) (*Document, error)
	List(ctx context.Context, p Partition) ([]Document, error)
	// Query returns documents whose top-level string field equals value.
	Query(ctx context.Context, p Partition, field, value string) ([]Document, error)
	// Put upserts all docs atomically: either every document lands or none does.
	Put(ctx context.Context, p Partition, docs ...Document) error
	// Delete is a no-op when the document does not exist.
	Delete(ctx context.Context, p Partition, id string) error
}
