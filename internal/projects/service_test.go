package projects

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/store"
)

func newTestService(t *testing.T) (*Service, *Repository) {
	t.Helper()
	repo := NewRepository(store.NewMemoryStore(), zap.NewNop())
	return NewService(repo), repo
}

func validSubmission() SubmitProjectRequest {
	return SubmitProjectRequest{
		Name:            "Gujarat Coastal Afforestation",
		Location:        Coordinate{Lat: 22.2587, Lng: 71.1924},
		LocationName:    "Gulf of Kutch, Gujarat",
		RestorationType: Afforestation,
		PlantationDate:  time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description:     "Mangrove belt plantation along the Gulf of Kutch.",
	}
}

func TestSubmitProjectForcesPendingStatusAndZeroCredits(t *testing.T) {
	svc, repo := newTestService(t)

	submitted, err := svc.SubmitProject(context.Background(), validSubmission(),
		NGORef{ID: "ngo_9", Name: "Kutch Mangrove Initiative"})
	require.NoError(t, err)
	require.NotEmpty(t, submitted.ID)

	persisted := repo.GetByID(context.Background(), submitted.ID)
	require.NotNil(t, persisted)
	assert.Equal(t, StatusPendingVerification, persisted.Status)
	assert.Equal(t, 0, persisted.CreditsAvailable)
	assert.Equal(t, "ngo_9", persisted.NGO.ID)
	assert.Equal(t, defaultNDVI, persisted.NDVI)
	assert.Equal(t, defaultCaptureRate, persisted.EstimatedCarbonCapture)
	assert.Equal(t, defaultImageHint, persisted.ImageHint)
	assert.Equal(t, placeholderImageURL, persisted.ImageURL)
}

func TestSubmitProjectRejectsOutOfRangeCoordinates(t *testing.T) {
	svc, _ := newTestService(t)
	ngo := NGORef{ID: "ngo_9", Name: "Kutch Mangrove Initiative"}

	req := validSubmission()
	req.Location.Lat = 91
	_, err := svc.SubmitProject(context.Background(), req, ngo)
	assert.Error(t, err)

	req = validSubmission()
	req.Location.Lng = -181
	_, err = svc.SubmitProject(context.Background(), req, ngo)
	assert.Error(t, err)
}

func TestSubmitProjectRequiresNGOIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SubmitProject(context.Background(), validSubmission(), NGORef{})
	assert.Error(t, err)
}

func TestListProjectsByNGOFiltersOnNestedID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitProject(ctx, validSubmission(), NGORef{ID: "ngo_a", Name: "A"})
	require.NoError(t, err)
	_, err = svc.SubmitProject(ctx, validSubmission(), NGORef{ID: "ngo_b", Name: "B"})
	require.NoError(t, err)
	_, err = svc.SubmitProject(ctx, validSubmission(), NGORef{ID: "ngo_a", Name: "A"})
	require.NoError(t, err)

	mine := svc.ListProjectsByNGO(ctx, "ngo_a")
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "ngo_a", p.NGO.ID)
	}

	assert.Empty(t, svc.ListProjectsByNGO(ctx, "ngo_unknown"))
}

func TestSubmitProjectInvalidatesListingCache(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ngo := NGORef{ID: "ngo_a", Name: "A"}

	_, err := svc.SubmitProject(ctx, validSubmission(), ngo)
	require.NoError(t, err)
	assert.Len(t, svc.ListProjects(ctx), 1)

	// A second submission must show up even though the listing was cached.
	_, err = svc.SubmitProject(ctx, validSubmission(), ngo)
	require.NoError(t, err)
	assert.Len(t, svc.ListProjects(ctx), 2)
}

func TestGetProjectUnknownIsNil(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Nil(t, svc.GetProject(context.Background(), "no-such-project"))
}

func TestSeedLoadsReferenceProjects(t *testing.T) {
	_, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))
	require.NoError(t, Seed(ctx, repo), "seeding must be idempotent")

	all := repo.List(ctx)
	assert.Len(t, all, 2)

	sundarbans := repo.GetByID(ctx, "project-1")
	require.NotNil(t, sundarbans)
	assert.Equal(t, StatusVerified, sundarbans.Status)
	assert.Equal(t, 5000, sundarbans.CreditsAvailable)
}
