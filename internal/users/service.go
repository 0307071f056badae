package users

import (
	"context"
	"errors"
	"fmt"
)

// NGOOnboardingRequest mirrors the NGO signup wizard fields.
type NGOOnboardingRequest struct {
	Email              string  `json:"email" binding:"required"`
	NGOName            string  `json:"ngoName" binding:"required"`
	NGOType            NGOType `json:"ngoType"`
	RegistrationNumber string  `json:"registrationNumber"`
	PAN                string  `json:"pan"`
	RegisteredAddress  string  `json:"registeredAddress"`
	Website            string  `json:"website"`
	KeyPersonName      string  `json:"keyPersonName"`
	Phone              string  `json:"phone"`
}

// BuyerOnboardingRequest mirrors the corporate signup wizard fields.
type BuyerOnboardingRequest struct {
	Email                 string      `json:"email" binding:"required"`
	CompanyName           string      `json:"companyName" binding:"required"`
	CompanyType           CompanyType `json:"companyType"`
	CIN                   string      `json:"cin"`
	IncorporationDate     string      `json:"incorporationDate"`
	RegisteredAddress     string      `json:"registeredAddress"`
	CompanyPAN            string      `json:"companyPan"`
	GSTNumber             string      `json:"gstNumber"`
	Industry              string      `json:"industry"`
	CorporatePhone        string      `json:"corporatePhone"`
	Website               string      `json:"website"`
	AuthPersonName        string      `json:"authPersonName"`
	AuthPersonDesignation string      `json:"authPersonDesignation"`
	AuthPersonEmail       string      `json:"authPersonEmail"`
	AuthPersonPhone       string      `json:"authPersonPhone"`
}

// ErrRoleChange is returned when onboarding would alter an existing
// profile's role.
var ErrRoleChange = errors.New("role cannot change after onboarding")

// Service completes onboarding and serves profiles.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CompleteNGOOnboarding maps the wizard payload into a profile with the ngo
// role forced, and upserts it under the caller's subject id.
func (s *Service) CompleteNGOOnboarding(ctx context.Context, userID string, req NGOOnboardingRequest) (*UserProfile, error) {
	if err := s.checkRole(ctx, userID, RoleNGO); err != nil {
		return nil, err
	}

	profile := &UserProfile{
		ID:                 userID,
		Email:              req.Email,
		Role:               RoleNGO,
		DisplayName:        req.NGOName,
		NGOType:            req.NGOType,
		RegistrationNumber: req.RegistrationNumber,
		PAN:                req.PAN,
		Address:            req.RegisteredAddress,
		Website:            req.Website,
		KeyPerson:          req.KeyPersonName,
		Phone:              req.Phone,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save ngo profile: %w", err)
	}
	return profile, nil
}

// CompleteBuyerOnboarding maps the wizard payload into a profile with the
// buyer role forced, and upserts it under the caller's subject id.
func (s *Service) CompleteBuyerOnboarding(ctx context.Context, userID string, req BuyerOnboardingRequest) (*UserProfile, error) {
	if err := s.checkRole(ctx, userID, RoleBuyer); err != nil {
		return nil, err
	}

	profile := &UserProfile{
		ID:                    userID,
		Email:                 req.Email,
		Role:                  RoleBuyer,
		DisplayName:           req.CompanyName,
		CompanyType:           req.CompanyType,
		CIN:                   req.CIN,
		IncorporationDate:     req.IncorporationDate,
		Address:               req.RegisteredAddress,
		PAN:                   req.CompanyPAN,
		GSTNumber:             req.GSTNumber,
		Industry:              req.Industry,
		Phone:                 req.CorporatePhone,
		Website:               req.Website,
		KeyPerson:             req.AuthPersonName,
		AuthPersonDesignation: req.AuthPersonDesignation,
		AuthPersonEmail:       req.AuthPersonEmail,
		AuthPersonPhone:       req.AuthPersonPhone,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save buyer profile: %w", err)
	}
	return profile, nil
}

// GetProfile returns the profile for the subject id, or nil when absent.
func (s *Service) GetProfile(ctx context.Context, userID string) *UserProfile {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) checkRole(ctx context.Context, userID string, want Role) error {
	existing := s.repo.GetByID(ctx, userID)
	if existing != nil && existing.Role != want {
		return ErrRoleChange
	}
	return nil
}
