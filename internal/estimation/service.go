package estimation

import (
	"context"
	"fmt"
)

// Confidence level of an estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// EstimateRequest carries the inputs for a carbon-capture estimate.
// RestorationType, PlantationDate, and ProjectLocation are part of the
// contract but not yet consumed by the mock model.
type EstimateRequest struct {
	NDVI            float64 `json:"ndviData"`
	RestorationType string  `json:"restorationType"`
	PlantationDate  string  `json:"plantationDate"`  // ISO date (YYYY-MM-DD)
	ProjectLocation string  `json:"projectLocation"` // "lat, lng" or a place name
}

// Estimate is the model output: tonnes of CO2 per hectare per year plus a
// confidence grade and a short note on methodology.
type Estimate struct {
	EstimatedCarbonCapture float64    `json:"estimatedCarbonCapture"`
	ConfidenceLevel        Confidence `json:"confidenceLevel"`
	SupportingData         string     `json:"supportingData"`
}

// Reference mock: an affine function of NDVI alone, monotone increasing.
// TODO: replace with the calibrated model once the satellite ingestion
// pipeline supplies per-project NDVI series.
const (
	baseCaptureRate = 12.5
	ndviScale       = 10.0
)

// Service produces carbon-capture estimates.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate returns a deterministic capture estimate for the given inputs.
func (s *Service) Estimate(_ context.Context, req EstimateRequest) (*Estimate, error) {
	if req.NDVI < 0 || req.NDVI > 1 {
		return nil, fmt.Errorf("ndvi %v out of range [0, 1]", req.NDVI)
	}

	return &Estimate{
		EstimatedCarbonCapture: baseCaptureRate + req.NDVI*ndviScale,
		ConfidenceLevel:        ConfidenceMedium,
		SupportingData:         "Estimated based on regional averages and provided NDVI data (Mock).",
	}, nil
}
