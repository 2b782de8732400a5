// Package stats serves the landing page aggregates: the fixed marketing
// fixture and live figures derived from the stored trees and donations.
package stats

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// Service defines the interface for stats operations
type Service interface {
	// GetStats returns the seeded fixture, identical on every call
	GetStats(ctx context.Context) domain.TreeStats
	// GetLiveStats aggregates the repositories, served from cache when fresh
	GetLiveStats(ctx context.Context) (*domain.TreeStats, error)

	RecordActivity(ctx context.Context, entry domain.ActivityEvent)
	Invalidate()
}

type service struct {
	fixture   domain.TreeStats
	trees     repository.Tree
	donations repository.Donation
	feed      *ActivityFeed
	cache     *liveStatsCache
}

// NewService creates a new stats service. A non-positive ttl uses DefaultCacheTTL.
func NewService(fixture domain.TreeStats, trees repository.Tree, donations repository.Donation, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		fixture:   fixture.Clone(),
		trees:     trees,
		donations: donations,
		feed:      NewActivityFeed(ActivityFeedCapacity),
		cache:     newLiveStatsCache(ttl),
	}
}

func (s *service) GetStats(_ context.Context) domain.TreeStats {
	return s.fixture.Clone()
}

func (s *service) GetLiveStats(ctx context.Context) (*domain.TreeStats, error) {
	cached, gen, ok := s.cache.Get()
	if ok {
		return &cached, nil
	}

	trees, err := s.trees.ListTrees(ctx, domain.TreeFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTreesFailed, err)
	}
	donations, _, err := s.donations.ListDonations(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListDonationsFailed, err)
	}

	live := aggregate(trees, donations)
	live.RecentActivity = s.feed.Snapshot()

	stored := s.cache.SetIfCurrent(gen, live)
	logger.FromContext(ctx).Debug(LogMsgLiveStatsComputed,
		"trees", live.TotalTrees,
		"states", live.TotalStates,
		"donations", len(donations),
		"cached", stored)
	return &live, nil
}

func (s *service) RecordActivity(_ context.Context, entry domain.ActivityEvent) {
	s.feed.Push(entry)
	s.cache.Clear()
}

func (s *service) Invalidate() {
	s.cache.Clear()
}

// aggregate computes every live figure except the activity feed
func aggregate(trees []domain.Tree, donations []domain.Donation) domain.TreeStats {
	states := make(map[string]struct{})
	var carbon float64
	for _, t := range trees {
		states[strings.ToLower(strings.TrimSpace(t.Location.State))] = struct{}{}
		carbon += t.CarbonOffset
	}

	var total int64
	byDonor := make(map[string]int64)
	for _, d := range donations {
		total = addCapped(total, d.Amount)
		name := strings.TrimSpace(d.DonorName)
		if name == "" || strings.EqualFold(name, AnonymousDonorName) {
			continue
		}
		byDonor[name] = addCapped(byDonor[name], d.TreesPlanted)
	}

	return domain.TreeStats{
		TotalTrees:        int64(len(trees)),
		TotalStates:       int64(len(states)),
		TotalCarbonOffset: carbon,
		TotalDonations:    total,
		TopDonors:         topDonors(byDonor, TopDonorsLimit),
		RecentActivity:    []domain.ActivityEvent{},
	}
}

// addCapped sums two non-negative amounts, pinning at MaxInt64 instead of wrapping
func addCapped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// topDonors ranks by trees funded, ties broken by name
func topDonors(byDonor map[string]int64, limit int) []domain.TopDonor {
	out := make([]domain.TopDonor, 0, len(byDonor))
	for name, trees := range byDonor {
		out = append(out, domain.TopDonor{Name: name, Trees: trees})
	}
	slices.SortFunc(out, func(a, b domain.TopDonor) int {
		if c := cmp.Compare(b.Trees, a.Trees); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
