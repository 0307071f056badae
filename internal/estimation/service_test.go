package estimation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateIsDeterministic(t *testing.T) {
	svc := NewService()
	req := EstimateRequest{NDVI: 0.65, RestorationType: "Reforestation"}

	first, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ConfidenceMedium, first.ConfidenceLevel)
	assert.NotEmpty(t, first.SupportingData)
}

func TestEstimateIsMonotoneInNDVI(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	low, err := svc.Estimate(ctx, EstimateRequest{NDVI: 0})
	require.NoError(t, err)
	high, err := svc.Estimate(ctx, EstimateRequest{NDVI: 1})
	require.NoError(t, err)

	assert.NotEqual(t, low.EstimatedCarbonCapture, high.EstimatedCarbonCapture)
	assert.Greater(t, high.EstimatedCarbonCapture, low.EstimatedCarbonCapture)

	prev := low.EstimatedCarbonCapture
	for _, ndvi := range []float64{0.25, 0.5, 0.75, 1} {
		est, err := svc.Estimate(ctx, EstimateRequest{NDVI: ndvi})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, est.EstimatedCarbonCapture, prev)
		prev = est.EstimatedCarbonCapture
	}
}

func TestEstimateIgnoresNonNDVIInputs(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	a, err := svc.Estimate(ctx, EstimateRequest{NDVI: 0.5, RestorationType: "Afforestation", ProjectLocation: "9.93, 76.26"})
	require.NoError(t, err)
	b, err := svc.Estimate(ctx, EstimateRequest{NDVI: 0.5, RestorationType: "Agroforestry", PlantationDate: "2021-01-01"})
	require.NoError(t, err)

	assert.Equal(t, a.EstimatedCarbonCapture, b.EstimatedCarbonCapture)
}

func TestEstimateRejectsOutOfRangeNDVI(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.Estimate(ctx, EstimateRequest{NDVI: -0.1})
	assert.Error(t, err)
	_, err = svc.Estimate(ctx, EstimateRequest{NDVI: 1.1})
	assert.Error(t, err)
}
