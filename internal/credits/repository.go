package credits

import (
	"context"

	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/store"
)

// Repository persists issued credits. Credits are written once; there is no
// update surface.
type Repository struct {
	store  store.Store
	logger *zap.Logger
}

func NewRepository(s store.Store, logger *zap.Logger) *Repository {
	return &Repository{store: s, logger: logger}
}

// Create writes the issued credit under its token id.
func (r *Repository) Create(ctx context.Context, credit *CarbonCredit) error {
	doc, err := store.Encode(credit)
	if err != nil {
		return err
	}
	_, err = r.store.Insert(ctx, store.CollectionCredits, doc)
	return err
}

// GetByID returns the credit, or nil when absent. Read failures degrade to
// nil with a logged diagnostic.
func (r *Repository) GetByID(ctx context.Context, id string) *CarbonCredit {
	doc, err := r.store.GetByID(ctx, store.CollectionCredits, id)
	if err != nil {
		r.logger.Error("failed to read credit", zap.String("id", id), zap.Error(err))
		return nil
	}
	if doc == nil {
		return nil
	}
	var credit CarbonCredit
	if err := store.Decode(doc, &credit); err != nil {
		r.logger.Error("failed to decode credit", zap.String("id", id), zap.Error(err))
		return nil
	}
	return &credit
}

// ListByBuyer returns every credit held by the buyer.
func (r *Repository) ListByBuyer(ctx context.Context, buyerID string) []*CarbonCredit {
	docs, err := r.store.ListWhere(ctx, store.CollectionCredits, "buyerId", buyerID)
	if err != nil {
		r.logger.Error("failed to list credits by buyer", zap.String("buyerID", buyerID), zap.Error(err))
		return nil
	}
	out := make([]*CarbonCredit, 0, len(docs))
	for _, doc := range docs {
		var credit CarbonCredit
		if err := store.Decode(doc, &credit); err != nil {
			r.logger.Error("failed to decode credit", zap.Error(err))
			continue
		}
		out = append(out, &credit)
	}
	return out
}
