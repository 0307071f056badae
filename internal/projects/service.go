package projects

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Defaults for fields determined later in the verification process.
const (
	defaultNDVI            = 0.65
	defaultCaptureRate     = 15.0
	defaultImageHint       = "restoration project"
	placeholderImageURL    = "https://picsum.photos/seed/restoration/800/600"
	defaultListingCacheTTL = time.Minute
)

// SubmitProjectRequest carries the submission form fields. Status, credits,
// and the implementing partner are never taken from the submitter.
type SubmitProjectRequest struct {
	Name            string          `json:"name" binding:"required"`
	Location        Coordinate      `json:"location"`
	LocationName    string          `json:"locationName" binding:"required"`
	RestorationType RestorationType `json:"restorationType" binding:"required"`
	PlantationDate  time.Time       `json:"plantationDate" binding:"required"`
	Description     string          `json:"description"`
	ImageDataURL    string          `json:"imageDataUrl"`
}

// Service orchestrates project submission and listing.
type Service struct {
	repo  *Repository
	cache *ListingCache
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo:  repo,
		cache: NewListingCache(defaultListingCacheTTL),
	}
}

// SubmitProject assembles a project from the form fields and the submitting
// NGO's identity and persists it. New projects always start pending
// verification with zero credits available, whatever the caller sent.
func (s *Service) SubmitProject(ctx context.Context, req SubmitProjectRequest, ngo NGORef) (*Project, error) {
	if ngo.ID == "" {
		return nil, errors.New("submitting NGO identity is required")
	}
	if req.Location.Lat < -90 || req.Location.Lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range [-90, 90]", req.Location.Lat)
	}
	if req.Location.Lng < -180 || req.Location.Lng > 180 {
		return nil, fmt.Errorf("longitude %v out of range [-180, 180]", req.Location.Lng)
	}

	imageURL := req.ImageDataURL
	if imageURL == "" {
		imageURL = placeholderImageURL
	}

	project := &Project{
		Name:            req.Name,
		Location:        req.Location,
		LocationName:    req.LocationName,
		RestorationType: req.RestorationType,
		PlantationDate:  req.PlantationDate,
		Description:     req.Description,
		NGO:             ngo,
		Status:          StatusPendingVerification,
		ImageURL:        imageURL,
		ImageHint:       defaultImageHint,
		// Determined later in the verification process.
		CreditsAvailable:       0,
		NDVI:                   defaultNDVI,
		EstimatedCarbonCapture: defaultCaptureRate,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate()
	return project, nil
}

// GetProject returns the project, or nil when absent.
func (s *Service) GetProject(ctx context.Context, id string) *Project {
	return s.repo.GetByID(ctx, id)
}

// ListProjects serves the marketplace listing through the cache.
func (s *Service) ListProjects(ctx context.Context) []*Project {
	if cached, ok := s.cache.Get(); ok {
		return cached
	}
	listing := s.repo.List(ctx)
	s.cache.Set(listing)
	return listing
}

// ListProjectsByNGO returns an NGO's own projects, uncached.
func (s *Service) ListProjectsByNGO(ctx context.Context, ngoID string) []*Project {
	return s.repo.ListByNGO(ctx, ngoID)
}
