package users

import (
	"context"

	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/store"
)

// Repository persists user profiles in the entity store.
type Repository struct {
	store  store.Store
	logger *zap.Logger
}

func NewRepository(s store.Store, logger *zap.Logger) *Repository {
	return &Repository{store: s, logger: logger}
}

// Upsert writes the profile wholesale under its subject id.
func (r *Repository) Upsert(ctx context.Context, profile *UserProfile) error {
	doc, err := store.Encode(profile)
	if err != nil {
		return err
	}
	_, err = r.store.Insert(ctx, store.CollectionUsers, doc)
	return err
}

// GetByID returns the profile for the subject id, or nil when none exists.
// Store read failures degrade to nil with a logged diagnostic.
func (r *Repository) GetByID(ctx context.Context, id string) *UserProfile {
	doc, err := r.store.GetByID(ctx, store.CollectionUsers, id)
	if err != nil {
		r.logger.Error("failed to read user profile", zap.String("id", id), zap.Error(err))
		return nil
	}
	if doc == nil {
		return nil
	}
	var profile UserProfile
	if err := store.Decode(doc, &profile); err != nil {
		r.logger.Error("failed to decode user profile", zap.String("id", id), zap.Error(err))
		return nil
	}
	return &profile
}
