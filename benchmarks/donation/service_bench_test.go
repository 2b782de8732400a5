package donation_bench

import (
	"context"
	"testing"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/database/memory"
	"github.com/greenlegacy-ng/greenlegacy/internal/dataset"
	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/stats"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubDonationRepository struct{}

func (s *StubDonationRepository) CreateDonation(ctx context.Context, d *domain.Donation) error {
	return nil
}
func (s *StubDonationRepository) ListDonations(ctx context.Context, limit int) ([]domain.Donation, int, error) {
	return nil, 0, nil
}

// StubBus implements event.Bus
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error      { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

// --- Benchmark Functions ---

// BenchmarkCreateDonation measures validation, tier lookup and receipt building.
func BenchmarkCreateDonation(b *testing.B) {
	ds := dataset.MustLoad()
	svc := donation.NewService(&StubDonationRepository{}, ds.Tiers, &StubBus{}, "")

	ctx := context.Background()
	amount := int64(25000)
	req := domain.DonationRequest{Amount: &amount, DonorName: "Bench", Message: "for the forest"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Create(ctx, req); err != nil {
			b.Fatalf("Create failed: %v", err)
		}
	}
}

// BenchmarkLiveStats_Uncached recomputes aggregates over the seeded memory store every call.
func BenchmarkLiveStats_Uncached(b *testing.B) {
	ds := dataset.MustLoad()
	store := memory.NewSeededStore(ds)
	svc := stats.NewService(ds.Stats, store, store, time.Minute)

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Invalidate()
		if _, err := svc.GetLiveStats(ctx); err != nil {
			b.Fatalf("GetLiveStats failed: %v", err)
		}
	}
}

// BenchmarkLiveStats_Cached serves from the expirable LRU after the first call.
func BenchmarkLiveStats_Cached(b *testing.B) {
	ds := dataset.MustLoad()
	store := memory.NewSeededStore(ds)
	svc := stats.NewService(ds.Stats, store, store, time.Minute)

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetLiveStats(ctx); err != nil {
			b.Fatalf("GetLiveStats failed: %v", err)
		}
	}
}

// BenchmarkListTrees_Filtered runs a state plus search filter under the read lock.
func BenchmarkListTrees_Filtered(b *testing.B) {
	store := memory.NewSeededStore(dataset.MustLoad())
	filter := domain.TreeFilter{State: "lagos", Search: "iroko"}

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.ListTrees(ctx, filter); err != nil {
			b.Fatalf("ListTrees failed: %v", err)
		}
	}
}
