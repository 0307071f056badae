package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDatesMaterializesTemporalValues(t *testing.T) {
	planted := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	doc := Document{
		"name":      "Sundarbans",
		"plantedAt": primitive.NewDateTimeFromTime(planted),
		"partner": bson.M{
			"since": primitive.NewDateTimeFromTime(planted),
		},
		"milestones": bson.A{
			bson.M{"at": primitive.NewDateTimeFromTime(planted)},
		},
	}

	out := NormalizeDates(doc)

	got, ok := out["plantedAt"].(time.Time)
	require.True(t, ok, "top-level datetime should become time.Time")
	assert.True(t, planted.Equal(got))

	partner, ok := out["partner"].(Document)
	require.True(t, ok)
	nested, ok := partner["since"].(time.Time)
	require.True(t, ok, "nested datetime should become time.Time")
	assert.True(t, planted.Equal(nested))

	milestones, ok := out["milestones"].([]any)
	require.True(t, ok)
	inArray, ok := milestones[0].(Document)["at"].(time.Time)
	require.True(t, ok, "datetime inside an array should become time.Time")
	assert.True(t, planted.Equal(inArray))
}

func TestNormalizeDatesDoesNotMutateInput(t *testing.T) {
	doc := Document{
		"plantedAt": primitive.NewDateTimeFromTime(time.Now()),
		"partner":   bson.M{"since": primitive.NewDateTimeFromTime(time.Now())},
	}

	_ = NormalizeDates(doc)

	_, stillRaw := doc["plantedAt"].(primitive.DateTime)
	assert.True(t, stillRaw, "input document must not be rewritten in place")
	_, nestedStillRaw := doc["partner"].(bson.M)["since"].(primitive.DateTime)
	assert.True(t, nestedStillRaw, "nested input must not be rewritten in place")
}
