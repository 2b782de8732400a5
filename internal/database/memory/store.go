// Package memory is the default storage driver: an in-process store seeded from
// the mock dataset and reset on every restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/greenlegacy-ng/greenlegacy/internal/dataset"
	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

var (
	_ repository.Tree     = (*Store)(nil)
	_ repository.Donation = (*Store)(nil)
	_ repository.EventLog = (*Store)(nil)
	_ repository.Pinger   = (*Store)(nil)
)

// Store implements repository.Tree, repository.Donation and repository.EventLog.
// A single RWMutex guards every collection: reads share, writes are exclusive.
type Store struct {
	mu          sync.RWMutex
	trees       []domain.Tree
	donations   []domain.Donation
	events      []repository.EventLogEntry
	nextEventID int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a store holding the dataset's trees and donations
func NewSeededStore(ds *dataset.Dataset) *Store {
	s := NewStore()
	s.trees = slices.Clone(ds.Trees)
	s.donations = slices.Clone(ds.Donations)
	return s
}

// Ping always succeeds
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// ListTrees returns matching trees in insertion order
func (s *Store) ListTrees(_ context.Context, filter domain.TreeFilter) ([]domain.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Tree, 0, len(s.trees))
	for _, t := range s.trees {
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
		if t.Matches(filter) {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTree returns a copy of the tree with the given id
func (s *Store) GetTree(_ context.Context, id string) (*domain.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	t := s.trees[i]
	return &t, nil
}

// CreateTree appends a tree; the id must be unused
func (s *Store) CreateTree(_ context.Context, tree *domain.Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(tree.ID) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTreeID, tree.ID)
	}
	s.trees = append(s.trees, *tree)
	return nil
}

// UpdateTree merges patch into the stored tree under the write lock
func (s *Store) UpdateTree(_ context.Context, id string, patch domain.TreePatch, lastUpdated string) (*domain.Tree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	updated := s.trees[i].ApplyPatch(patch)
	updated.LastUpdated = lastUpdated
	s.trees[i] = updated
	return &updated, nil
}

// DeleteTree removes the tree with the given id
func (s *Store) DeleteTree(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	s.trees = slices.Delete(s.trees, i, i+1)
	return nil
}

// CountTreesByStatus counts trees per status; every known status is present
func (s *Store) CountTreesByStatus(_ context.Context) (map[domain.TreeStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.TreeStatus]int, len(domain.TreeStatuses))
	for _, st := range domain.TreeStatuses {
		counts[st] = 0
	}
	for _, t := range s.trees {
		counts[t.Status]++
	}
	return counts, nil
}

// indexOf must be called with mu held
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.trees, func(t domain.Tree) bool { return t.ID == id })
}

// CreateDonation stores a donation
func (s *Store) CreateDonation(_ context.Context, donation *domain.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.donations = append(s.donations, *donation)
	return nil
}

// ListDonations returns donations newest first along with the stored count
func (s *Store) ListDonations(_ context.Context, limit int) ([]domain.Donation, int, error) {
	s.mu.RLock()
	out := slices.Clone(s.donations)
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b domain.Donation) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	total := len(out)
	if limit > 0 && limit < total {
		out = out[:limit]
	}
	return out, total, nil
}
