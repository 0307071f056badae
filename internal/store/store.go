package store

import (
	"context"
)

// Collection names used by the marketplace.
const (
	CollectionProjects = "projects"
	CollectionCredits  = "credits"
	CollectionUsers    = "users"
)

// Document is a schemaless record as held by the store. Nested objects are
// nested Documents, temporal values are time.Time.
type Document = map[string]any

// Store is the entity persistence capability. Two backends implement it: a
// MongoDB-backed store for deployment and an in-memory store for local runs
// and tests, selected by configuration.
//
// Ordering of listed documents is not part of the contract. An unknown id is
// a normal outcome (nil document, nil error), never an error.
type Store interface {
	// Insert writes doc to the named collection and returns its id. A
	// document without an "id" field gets a store-assigned one; a document
	// carrying an id replaces any existing record wholesale.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// GetByID returns the document with the given id, or (nil, nil) when
	// no such document exists.
	GetByID(ctx context.Context, collection, id string) (Document, error)

	// ListAll returns every document in the collection.
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// ListWhere returns the documents whose value at the dotted fieldPath
	// (e.g. "ngo.id") equals value. A path matching nothing yields an
	// empty slice.
	ListWhere(ctx context.Context, collection, fieldPath string, value any) ([]Document, error)
}
