package projects

import (
	"context"

	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/store"
)

// Repository persists projects in the entity store. Read failures are
// logged here and degrade to absent/empty results; write failures propagate.
type Repository struct {
	store  store.Store
	logger *zap.Logger
}

func NewRepository(s store.Store, logger *zap.Logger) *Repository {
	return &Repository{store: s, logger: logger}
}

// Create inserts the project and fills in its assigned id.
func (r *Repository) Create(ctx context.Context, p *Project) error {
	doc, err := store.Encode(p)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.CollectionProjects, doc)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update replaces the stored project wholesale.
func (r *Repository) Update(ctx context.Context, p *Project) error {
	doc, err := store.Encode(p)
	if err != nil {
		return err
	}
	_, err = r.store.Insert(ctx, store.CollectionProjects, doc)
	return err
}

// GetByID returns the project, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) *Project {
	doc, err := r.store.GetByID(ctx, store.CollectionProjects, id)
	if err != nil {
		r.logger.Error("failed to read project", zap.String("id", id), zap.Error(err))
		return nil
	}
	if doc == nil {
		return nil
	}
	return r.decode(doc)
}

// List returns every project, in no particular order.
func (r *Repository) List(ctx context.Context) []*Project {
	docs, err := r.store.ListAll(ctx, store.CollectionProjects)
	if err != nil {
		r.logger.Error("failed to list projects", zap.Error(err))
		return nil
	}
	return r.decodeAll(docs)
}

// ListByNGO returns the projects whose implementing partner has the id.
func (r *Repository) ListByNGO(ctx context.Context, ngoID string) []*Project {
	docs, err := r.store.ListWhere(ctx, store.CollectionProjects, "ngo.id", ngoID)
	if err != nil {
		r.logger.Error("failed to list projects by ngo", zap.String("ngoID", ngoID), zap.Error(err))
		return nil
	}
	return r.decodeAll(docs)
}

func (r *Repository) decode(doc store.Document) *Project {
	var p Project
	if err := store.Decode(doc, &p); err != nil {
		r.logger.Error("failed to decode project", zap.Error(err))
		return nil
	}
	return &p
}

func (r *Repository) decodeAll(docs []store.Document) []*Project {
	out := make([]*Project, 0, len(docs))
	for _, doc := range docs {
		if p := r.decode(doc); p != nil {
			out = append(out, p)
		}
	}
	return out
}
