// Package donation handles pledges, the tier catalogue and impact estimates.
package donation

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// Service defines the interface for donation operations
type Service interface {
	Create(ctx context.Context, req domain.DonationRequest) (*domain.DonationReceipt, error)
	List(ctx context.Context, limit int) ([]domain.Donation, int, error)

	Tiers(ctx context.Context) []domain.DonationTier
	Tier(ctx context.Context, id string) (*domain.DonationTier, error)
	Impact(ctx context.Context, amount int64) (*domain.ImpactEstimate, error)
}

type service struct {
	repo            repository.Donation
	tiers           []domain.DonationTier
	publisher       event.Bus
	checkoutBaseURL string
	now             func() time.Time
}

// NewService creates a new donation service. publisher may be nil.
func NewService(repo repository.Donation, tiers []domain.DonationTier, publisher event.Bus, checkoutBaseURL string) Service {
	if checkoutBaseURL == "" {
		checkoutBaseURL = DefaultCheckoutBaseURL
	}
	return &service{
		repo:            repo,
		tiers:           slices.Clone(tiers),
		publisher:       publisher,
		checkoutBaseURL: strings.TrimRight(checkoutBaseURL, "/"),
		now:             time.Now,
	}
}

// Create records a pending pledge. The trees planted are always derived from the amount.
func (s *service) Create(ctx context.Context, req domain.DonationRequest) (*domain.DonationReceipt, error) {
	log := logger.FromContext(ctx)

	if req.Amount == nil || *req.Amount < domain.MinimumDonationAmount {
		return nil, domain.ErrDonationBelowMinimum
	}
	if *req.Amount > domain.MaximumDonationAmount {
		return nil, domain.ErrDonationAboveMaximum
	}
	if req.TierID != "" {
		if _, err := s.Tier(ctx, req.TierID); err != nil {
			return nil, fmt.Errorf(ErrFmtUnknownTier, domain.ErrInvalidInput, req.TierID)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGenerateIDFailed, err)
	}

	now := s.now().UTC()
	amount := *req.Amount
	d := domain.Donation{
		ID:               id.String(),
		Amount:           amount,
		TierID:           req.TierID,
		DonorName:        req.DonorName,
		DonorEmail:       req.DonorEmail,
		Message:          req.Message,
		TreesPlanted:     domain.TreesForAmount(amount),
		Timestamp:        now,
		PaymentStatus:    domain.PaymentStatusPending,
		PaymentReference: PaymentReference(now),
	}

	if err := s.repo.CreateDonation(ctx, &d); err != nil {
		return nil, err
	}

	log.Info(LogMsgDonationCreated,
		"donation_id", d.ID,
		"amount", d.Amount,
		"trees", d.TreesPlanted,
		"reference", d.PaymentReference)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewDonationCreatedEvent(d)); err != nil {
			log.Warn(LogMsgEventPublishFailed, "donation_id", d.ID, "error", err)
		}
	}

	return &domain.DonationReceipt{
		Donation:   d,
		Message:    ThankYouMessage(d.TreesPlanted),
		PaymentURL: s.checkoutBaseURL + "/" + d.PaymentReference,
	}, nil
}

// List returns the newest donations, DefaultListLimit of them when limit <= 0,
// together with the number of stored donations
func (s *service) List(ctx context.Context, limit int) ([]domain.Donation, int, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListDonations(ctx, limit)
}

func (s *service) Tiers(_ context.Context) []domain.DonationTier {
	out := make([]domain.DonationTier, len(s.tiers))
	for i, t := range s.tiers {
		t.Benefits = slices.Clone(t.Benefits)
		out[i] = t
	}
	return out
}

func (s *service) Tier(_ context.Context, id string) (*domain.DonationTier, error) {
	for _, t := range s.tiers {
		if t.ID == id {
			t.Benefits = slices.Clone(t.Benefits)
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTierNotFound, id)
}

// Impact estimates the yearly effect of a custom amount
func (s *service) Impact(_ context.Context, amount int64) (*domain.ImpactEstimate, error) {
	if amount < domain.MinimumDonationAmount {
		return nil, domain.ErrDonationBelowMinimum
	}
	if amount > domain.MaximumDonationAmount {
		return nil, domain.ErrDonationAboveMaximum
	}
	est := domain.EstimateImpact(amount)
	return &est, nil
}

// PaymentReference derives the checkout reference from the pledge time
func PaymentReference(t time.Time) string {
	return domain.PaymentReferencePrefix + strconv.FormatInt(t.UnixMilli(), 10)
}
