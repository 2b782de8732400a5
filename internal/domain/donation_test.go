package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreesForAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{-5000, 0},
		{0, 0},
		{4999, 0},
		{5000, 1},
		{9999, 1},
		{12000, 2},
		{20000, 4},
		{100000, 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("amount_%d", tt.amount), func(t *testing.T) {
			assert.Equal(t, tt.want, TreesForAmount(tt.amount))
		})
	}
}

func TestEstimateImpact(t *testing.T) {
	impact := EstimateImpact(25000)

	assert.Equal(t, int64(25000), impact.Amount)
	assert.Equal(t, int64(5), impact.Trees)
	assert.Equal(t, int64(110), impact.CarbonOffsetKg)
	assert.Equal(t, int64(590), impact.OxygenProductionKg)
}

func TestErrDonationBelowMinimum_IsInvalidInput(t *testing.T) {
	err := fmt.Errorf("%w: amount 4000", ErrDonationBelowMinimum)

	assert.True(t, errors.Is(err, ErrDonationBelowMinimum))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrTreeNotFound))
}

func TestTreeStats_Clone(t *testing.T) {
	stats := TreeStats{
		TotalTrees: 10,
		TopDonors:  []TopDonor{{Name: "A", Trees: 1}},
		RecentActivity: []ActivityEvent{
			{ID: "1", Type: ActivityPlanted, Message: "m", Timestamp: "t"},
		},
	}

	clone := stats.Clone()
	clone.TopDonors[0].Name = "changed"
	clone.RecentActivity[0].Message = "changed"

	assert.Equal(t, "A", stats.TopDonors[0].Name)
	assert.Equal(t, "m", stats.RecentActivity[0].Message)
}
