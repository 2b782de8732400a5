package repository

import (
	"context"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// Donation defines the interface for donation data access
type Donation interface {
	CreateDonation(ctx context.Context, donation *domain.Donation) error
	// ListDonations returns donations newest first, at most limit rows when limit > 0,
	// together with the number of stored donations
	ListDonations(ctx context.Context, limit int) ([]domain.Donation, int, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
