package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// CreateDonationRequest is the body of POST /donations. Amount is a pointer
// so a missing amount can be told apart from zero.
type CreateDonationRequest struct {
	Amount     *float64 `json:"amount"`
	TierID     string   `json:"tierId,omitempty" validate:"max=50"`
	DonorName  string   `json:"donorName,omitempty" validate:"max=200"`
	DonorEmail string   `json:"donorEmail,omitempty" validate:"omitempty,email"`
	Message    string   `json:"message,omitempty" validate:"max=1000"`
}

func (req CreateDonationRequest) toDomain() (domain.DonationRequest, error) {
	out := domain.DonationRequest{
		TierID:     req.TierID,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Message:    req.Message,
	}
	if req.Amount == nil {
		return out, nil
	}

	raw := *req.Amount
	switch {
	case math.IsNaN(raw) || math.IsInf(raw, 0):
		return out, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAmountNotFinite)
	case raw > float64(domain.MaximumDonationAmount):
		return out, domain.ErrDonationAboveMaximum
	}

	// Fractional naira are dropped; anything negative is simply below the minimum
	amount := int64(math.Max(math.Floor(raw), -1))
	out.Amount = &amount
	return out, nil
}

// HandleCreateDonation records a pending pledge
// @Summary Create donation
// @Description Amount must be between ₦5,000 and ₦100,000,000,000. Trees planted are amount / 5000, floored.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body CreateDonationRequest true "Donation"
// @Success 201 {object} Envelope{data=domain.Donation}
// @Failure 400 {object} Envelope
// @Router /donations [post]
func HandleCreateDonation(svc donation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDonationRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateDonation); err != nil {
			return
		}

		pledge, err := req.toDomain()
		if err != nil {
			respondServiceError(w, r, OpCreateDonation, err)
			return
		}

		receipt, err := svc.Create(r.Context(), pledge)
		if err != nil {
			respondServiceError(w, r, OpCreateDonation, err)
			return
		}

		respondJSON(w, http.StatusCreated, Envelope{
			Success:    true,
			Data:       receipt.Donation,
			Message:    receipt.Message,
			PaymentURL: receipt.PaymentURL,
		})
	}
}

// HandleListDonations lists the most recent donations
// @Summary List donations
// @Description Newest first. total counts every stored donation, not just the returned page.
// @Tags donations
// @Produce json
// @Param limit query int false "Maximum number of donations (default 10)"
// @Success 200 {object} Envelope{data=[]domain.Donation}
// @Failure 500 {object} Envelope
// @Router /donations [get]
func HandleListDonations(svc donation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donations, total, err := svc.List(r.Context(), parseLimit(r))
		if err != nil {
			respondServiceError(w, r, OpListDonations, err)
			return
		}
		respondList(w, donations, total)
	}
}

// HandleDonationImpact estimates the yearly effect of an amount
// @Summary Impact estimate
// @Tags donations
// @Produce json
// @Param amount query int true "Amount in naira"
// @Success 200 {object} Envelope{data=domain.ImpactEstimate}
// @Failure 400 {object} Envelope
// @Router /donations/impact [get]
func HandleDonationImpact(svc donation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := strconv.ParseInt(GetOptionalQueryParam(r, "amount", ""), 10, 64)
		if err != nil {
			logger.FromContext(r.Context()).Debug("Invalid impact amount", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidAmount)
			return
		}

		est, err := svc.Impact(r.Context(), amount)
		if err != nil {
			respondServiceError(w, r, OpImpact, err)
			return
		}
		respondData(w, http.StatusOK, est, "")
	}
}

// HandleListTiers returns the donation tier catalogue
// @Summary List tiers
// @Tags donations
// @Produce json
// @Success 200 {object} Envelope{data=[]domain.DonationTier}
// @Router /tiers [get]
func HandleListTiers(svc donation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiers := svc.Tiers(r.Context())
		respondList(w, tiers, len(tiers))
	}
}

// HandleGetTier returns one tier
// @Summary Get tier
// @Tags donations
// @Produce json
// @Param id path string true "Tier ID"
// @Success 200 {object} Envelope{data=domain.DonationTier}
// @Failure 404 {object} Envelope
// @Router /tiers/{id} [get]
func HandleGetTier(svc donation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tier, err := svc.Tier(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetTier, err)
			return
		}
		respondData(w, http.StatusOK, tier, "")
	}
}
