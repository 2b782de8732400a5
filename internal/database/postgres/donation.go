package postgres

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/database/generated"
	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

type donationRepository struct {
	q *generated.Queries
}

// NewDonationRepository creates a new PostgreSQL donation repository
func NewDonationRepository(db *pgxpool.Pool) repository.Donation {
	return &donationRepository{q: generated.New(db)}
}

func (r *donationRepository) CreateDonation(ctx context.Context, d *domain.Donation) error {
	if err := r.q.InsertDonation(ctx, insertDonationParams(d)); err != nil {
		return wrapDBError(ErrMsgFailedToInsertDonation, err)
	}
	return nil
}

// ListDonations returns donations newest first along with the stored count
func (r *donationRepository) ListDonations(ctx context.Context, limit int) ([]domain.Donation, int, error) {
	total, err := r.q.CountDonations(ctx)
	if err != nil {
		return nil, 0, wrapDBError(ErrMsgFailedToCountDonations, err)
	}

	var rows []generated.Donation
	if limit > 0 {
		rows, err = r.q.ListRecentDonations(ctx, int32(min(limit, math.MaxInt32)))
	} else {
		rows, err = r.q.ListDonations(ctx)
	}
	if err != nil {
		return nil, 0, wrapDBError(ErrMsgFailedToQueryDonations, err)
	}

	donations := make([]domain.Donation, len(rows))
	for i, row := range rows {
		donations[i] = mapDonation(row)
	}
	return donations, int(total), nil
}

func insertDonationParams(d *domain.Donation) generated.InsertDonationParams {
	return generated.InsertDonationParams{
		DonationID:       d.ID,
		Amount:           d.Amount,
		TierID:           d.TierID,
		DonorName:        d.DonorName,
		DonorEmail:       d.DonorEmail,
		Message:          d.Message,
		TreesPlanted:     d.TreesPlanted,
		CreatedAt:        pgtype.Timestamptz{Time: d.Timestamp, Valid: true},
		PaymentStatus:    string(d.PaymentStatus),
		PaymentReference: d.PaymentReference,
	}
}

// mapDonation converts a generated.Donation row to domain.Donation
func mapDonation(row generated.Donation) domain.Donation {
	return domain.Donation{
		ID:               row.DonationID,
		Amount:           row.Amount,
		TierID:           row.TierID,
		DonorName:        row.DonorName,
		DonorEmail:       row.DonorEmail,
		Message:          row.Message,
		TreesPlanted:     row.TreesPlanted,
		Timestamp:        row.CreatedAt.Time.UTC(),
		PaymentStatus:    domain.PaymentStatus(row.PaymentStatus),
		PaymentReference: row.PaymentReference,
	}
}
