package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPartner struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

type testRecord struct {
	ID        string      `bson:"id"`
	Name      string      `bson:"name"`
	Tonnes    int         `bson:"tonnes"`
	Rate      float64     `bson:"rate"`
	PlantedAt time.Time   `bson:"plantedAt"`
	Partner   testPartner `bson:"partner"`
}

func TestInsertAssignsID(t *testing.T) {
	s := NewMemoryStore()

	doc, err := Encode(&testRecord{Name: "Sundarbans"})
	require.NoError(t, err)

	id, err := s.Insert(context.Background(), "records", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := s.GetByID(context.Background(), "records", id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got["id"])
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	want := testRecord{
		Name:      "Kerala Backwaters Blue Carbon",
		Tonnes:    250,
		Rate:      18.2,
		PlantedAt: time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
		Partner:   testPartner{ID: "ngo_2", Name: "Kerala Coastal Trust"},
	}
	doc, err := Encode(&want)
	require.NoError(t, err)

	id, err := s.Insert(context.Background(), "records", doc)
	require.NoError(t, err)

	raw, err := s.GetByID(context.Background(), "records", id)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var got testRecord
	require.NoError(t, Decode(raw, &got))

	assert.Equal(t, id, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Tonnes, got.Tonnes)
	assert.Equal(t, want.Rate, got.Rate)
	assert.True(t, want.PlantedAt.Equal(got.PlantedAt), "dates should survive the round trip")
	assert.Equal(t, want.Partner, got.Partner)
}

func TestGetByIDUnknownIsAbsentNotError(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.GetByID(context.Background(), "records", "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInsertWithCallerIDReplacesWholesale(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := Encode(&testRecord{ID: "user-1", Name: "Acme", Tonnes: 10})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "records", first)
	require.NoError(t, err)

	second, err := Encode(&testRecord{ID: "user-1", Name: "Acme Corp"})
	require.NoError(t, err)
	id, err := s.Insert(ctx, "records", second)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	raw, err := s.GetByID(ctx, "records", "user-1")
	require.NoError(t, err)
	var got testRecord
	require.NoError(t, Decode(raw, &got))
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Zero(t, got.Tonnes, "replace is wholesale, not a merge")

	all, err := s.ListAll(ctx, "records")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListWhereNestedFieldMatchesListAllFilter(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		partner := "ngo_1"
		if i%2 == 1 {
			partner = "ngo_2"
		}
		doc, err := Encode(&testRecord{
			Name:    fmt.Sprintf("project-%d", i),
			Partner: testPartner{ID: partner},
		})
		require.NoError(t, err)
		_, err = s.Insert(ctx, "records", doc)
		require.NoError(t, err)
	}

	matched, err := s.ListWhere(ctx, "records", "partner.id", "ngo_1")
	require.NoError(t, err)

	all, err := s.ListAll(ctx, "records")
	require.NoError(t, err)
	var wantNames []string
	for _, doc := range all {
		partner := doc["partner"].(Document)
		if partner["id"] == "ngo_1" {
			wantNames = append(wantNames, doc["name"].(string))
		}
	}

	var gotNames []string
	for _, doc := range matched {
		gotNames = append(gotNames, doc["name"].(string))
	}
	assert.ElementsMatch(t, wantNames, gotNames)
	assert.Len(t, matched, 3)
}

func TestListWhereNoMatchesIsEmptyNotError(t *testing.T) {
	s := NewMemoryStore()

	doc, err := Encode(&testRecord{Partner: testPartner{ID: "ngo_1"}})
	require.NoError(t, err)
	_, err = s.Insert(context.Background(), "records", doc)
	require.NoError(t, err)

	got, err := s.ListWhere(context.Background(), "records", "partner.id", "ngo_unknown")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoredDocumentsDoNotAliasCallerState(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := Document{"id": "p1", "partner": Document{"id": "ngo_1"}}
	_, err := s.Insert(ctx, "records", doc)
	require.NoError(t, err)

	// Mutating the inserted document must not affect the stored copy.
	doc["partner"].(Document)["id"] = "tampered"

	got, err := s.GetByID(ctx, "records", "p1")
	require.NoError(t, err)
	assert.Equal(t, "ngo_1", got["partner"].(Document)["id"])

	// Mutating a read result must not affect subsequent reads.
	got["partner"].(Document)["id"] = "tampered"
	again, err := s.GetByID(ctx, "records", "p1")
	require.NoError(t, err)
	assert.Equal(t, "ngo_1", again["partner"].(Document)["id"])
}

func TestConcurrentInserts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := Encode(&testRecord{Name: fmt.Sprintf("project-%d", i)})
			assert.NoError(t, err)
			_, err = s.Insert(ctx, "records", doc)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.ListAll(ctx, "records")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
