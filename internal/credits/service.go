package credits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/notifications"
	"blue-carbon/marketplace/marketplace-backend/internal/projects"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrCreditNotFound     = errors.New("credit not found")
	ErrProjectNotVerified = errors.New("project is not verified for sale")
	ErrQuantityInvalid    = errors.New("quantity must be a positive number of tonnes")
	ErrQuantityExceeds    = errors.New("quantity exceeds the project's available credits")
)

// Buyer identifies the purchasing account for issuance and delivery.
type Buyer struct {
	ID    string
	Name  string
	Email string
}

// PurchaseResult reports an issued credit. CertificateSent is false when the
// credit was persisted but certificate delivery failed; the certificate can
// be re-sent without re-purchasing.
type PurchaseResult struct {
	Credit          *CarbonCredit `json:"credit"`
	CertificateSent bool          `json:"certificateSent"`
}

// BuyerCredit pairs a held credit with its originating project for display.
type BuyerCredit struct {
	*CarbonCredit
	Project *projects.Project `json:"project,omitempty"`
}

// Service orchestrates credit issuance: persist the credit first, then
// render and send the certificate. No retries, no rollback; a send failure
// after the write degrades to PurchaseResult.CertificateSent == false.
type Service struct {
	credits  *Repository
	projects *projects.Repository
	sender   notifications.EmailSender
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(credits *Repository, projectRepo *projects.Repository, sender notifications.EmailSender, logger *zap.Logger) *Service {
	return &Service{
		credits:  credits,
		projects: projectRepo,
		sender:   sender,
		logger:   logger,
		now:      time.Now,
	}
}

// Purchase issues quantity tonnes of credits against the project to the
// buyer and emails the retirement certificate.
func (s *Service) Purchase(ctx context.Context, projectID string, buyer Buyer, quantity int) (*PurchaseResult, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	project := s.projects.GetByID(ctx, projectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.Status != projects.StatusVerified {
		return nil, ErrProjectNotVerified
	}
	if quantity > project.CreditsAvailable {
		return nil, ErrQuantityExceeds
	}

	issuedAt := s.now().UTC()
	credit := &CarbonCredit{
		ID:           NewCreditID(project.ID, issuedAt),
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		Buyer:        buyer.Name,
		BuyerID:      buyer.ID,
		PurchaseDate: issuedAt,
		TonnesCO2:    quantity,
	}

	// The credit is durable before any notification work happens.
	if err := s.credits.Create(ctx, credit); err != nil {
		return nil, fmt.Errorf("persist credit: %w", err)
	}

	// Best effort: the credit record is authoritative, the counter is
	// display state. There is no transaction spanning the two entities.
	project.CreditsAvailable -= quantity
	if err := s.projects.Update(ctx, project); err != nil {
		s.logger.Warn("failed to decrement available credits",
			zap.String("projectID", project.ID), zap.Error(err))
	}

	sent := s.sendCertificate(ctx, credit, project, buyer.Email)
	return &PurchaseResult{Credit: credit, CertificateSent: sent}, nil
}

// ListByBuyer returns the buyer's credits, each enriched with its project.
func (s *Service) ListByBuyer(ctx context.Context, buyerID string) []BuyerCredit {
	held := s.credits.ListByBuyer(ctx, buyerID)
	out := make([]BuyerCredit, 0, len(held))
	for _, credit := range held {
		out = append(out, BuyerCredit{
			CarbonCredit: credit,
			Project:      s.projects.GetByID(ctx, credit.ProjectID),
		})
	}
	return out
}

// ResendCertificate re-renders and re-sends the certificate for an already
// issued credit.
func (s *Service) ResendCertificate(ctx context.Context, creditID, email string) error {
	credit := s.credits.GetByID(ctx, creditID)
	if credit == nil {
		return ErrCreditNotFound
	}
	project := s.projects.GetByID(ctx, credit.ProjectID)
	if project == nil {
		return ErrProjectNotFound
	}
	if !s.sendCertificate(ctx, credit, project, email) {
		return errors.New("failed to send certificate email")
	}
	return nil
}

func (s *Service) sendCertificate(ctx context.Context, credit *CarbonCredit, project *projects.Project, email string) bool {
	html, err := RenderCertificate(credit, project)
	if err != nil {
		s.logger.Error("certificate rendering failed", zap.String("creditID", credit.ID), zap.Error(err))
		return false
	}

	err = s.sender.Send(ctx, notifications.Email{
		To:       email,
		Subject:  fmt.Sprintf("Your Carbon Credit Certificate for %s", credit.ProjectName),
		HTMLBody: html,
	})
	if err != nil {
		s.logger.Warn("certificate delivery failed",
			zap.String("creditID", credit.ID), zap.String("to", email), zap.Error(err))
		return false
	}
	return true
}
