package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Encode converts a typed record into a Document via its bson tags. Temporal
// fields come back as time.Time so an encoded document round-trips through
// either backend unchanged.
func Encode(v any) (Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return NormalizeDates(doc), nil
}

// Decode converts a Document back into a typed record.
func Decode(doc Document, out any) error {
	raw, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
