// Package tree implements the tree catalogue: filtered listing, lookups,
// status counts for the map legend, and create/update/delete.
package tree

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/event"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// Service defines the interface for tree operations
type Service interface {
	List(ctx context.Context, filter domain.TreeFilter) ([]domain.Tree, error)
	Get(ctx context.Context, id string) (*domain.Tree, error)
	StatusCounts(ctx context.Context) ([]domain.StatusCount, error)

	Create(ctx context.Context, tree domain.Tree) (*domain.Tree, error)
	Update(ctx context.Context, id string, patch domain.TreePatch) (*domain.Tree, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      repository.Tree
	publisher event.Bus
	now       func() time.Time
}

// NewService creates a new tree service. publisher may be nil.
func NewService(repo repository.Tree, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns matching trees in collection order
func (s *service) List(ctx context.Context, filter domain.TreeFilter) ([]domain.Tree, error) {
	return s.repo.ListTrees(ctx, filter)
}

func (s *service) Get(ctx context.Context, id string) (*domain.Tree, error) {
	return s.repo.GetTree(ctx, id)
}

// StatusCounts returns one entry per known status in display order
func (s *service) StatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	counts, err := s.repo.CountTreesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StatusCount, 0, len(domain.TreeStatuses))
	for _, st := range domain.TreeStatuses {
		out = append(out, domain.StatusCount{Status: st, Count: counts[st]})
	}
	return out, nil
}

// Create assigns an id and stamps plantedDate and lastUpdated with the current time
func (s *service) Create(ctx context.Context, tree domain.Tree) (*domain.Tree, error) {
	log := logger.FromContext(ctx)

	if err := validateTree(tree); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGenerateIDFailed, err)
	}
	now := s.timestamp()
	tree.ID = id.String()
	tree.PlantedDate = now
	tree.LastUpdated = now

	if err := s.repo.CreateTree(ctx, &tree); err != nil {
		return nil, err
	}

	log.Info(LogMsgTreeCreated, "tree_id", tree.ID, "state", tree.Location.State)
	s.publish(ctx, event.NewTreePlantedEvent(tree))
	return &tree, nil
}

// Update merges the patch over the stored tree. The id never changes.
func (s *service) Update(ctx context.Context, id string, patch domain.TreePatch) (*domain.Tree, error) {
	log := logger.FromContext(ctx)

	before, err := s.repo.GetTree(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTree(before.ApplyPatch(patch)); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateTree(ctx, id, patch, s.timestamp())
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgTreeUpdated, "tree_id", id)

	evt := event.NewTreeUpdatedEvent(*updated)
	if before.DonorName == "" && updated.DonorName != "" {
		evt.Metadata = map[string]any{MetadataKeyAdopted: true}
	}
	s.publish(ctx, evt)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetTree(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTree(ctx, id); err != nil {
		return err
	}

	log.Info(LogMsgTreeDeleted, "tree_id", id)
	s.publish(ctx, event.NewTreeRemovedEvent(*existing))
	return nil
}

func (s *service) timestamp() string {
	return s.now().UTC().Format(domain.TimestampLayout)
}

// publish never fails the caller; subscriber errors are only logged
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// validateTree enforces the field invariants shared by create and update
func validateTree(t domain.Tree) error {
	if t.Name == "" {
		return fmt.Errorf(ErrFmtFieldRequired, domain.ErrInvalidInput, "name")
	}
	if t.Species == "" {
		return fmt.Errorf(ErrFmtFieldRequired, domain.ErrInvalidInput, "species")
	}
	if t.Location.State == "" {
		return fmt.Errorf(ErrFmtFieldRequired, domain.ErrInvalidInput, "location.state")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf(ErrFmtInvalidStatus, domain.ErrInvalidInput, t.Status)
	}
	if t.Location.Lat < MinLatitude || t.Location.Lat > MaxLatitude {
		return fmt.Errorf(ErrFmtLatOutOfRange, domain.ErrInvalidInput, t.Location.Lat)
	}
	if t.Location.Lng < MinLongitude || t.Location.Lng > MaxLongitude {
		return fmt.Errorf(ErrFmtLngOutOfRange, domain.ErrInvalidInput, t.Location.Lng)
	}

	for name, v := range map[string]float64{
		"age":           t.Age,
		"height":        t.Height,
		"carbonOffset":  t.CarbonOffset,
		"adoptionPrice": float64(t.AdoptionPrice),
	} {
		if v < 0 {
			return fmt.Errorf(ErrFmtFieldNegative, domain.ErrInvalidInput, name)
		}
	}
	return nil
}
