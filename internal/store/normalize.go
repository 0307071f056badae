package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDates returns a copy of doc in which every BSON temporal value is
// materialized as a time.Time, recursively through nested documents and
// arrays. The input is never mutated.
func NormalizeDates(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case time.Time:
		return t.UTC()
	case Document:
		return NormalizeDates(t)
	case bson.M:
		return NormalizeDates(Document(t))
	case bson.D:
		sub := make(Document, len(t))
		for _, e := range t {
			sub[e.Key] = normalizeValue(e.Value)
		}
		return sub
	case bson.A:
		return normalizeSlice(t)
	case []any:
		return normalizeSlice(t)
	default:
		return v
	}
}

func normalizeSlice(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = normalizeValue(v)
	}
	return out
}
