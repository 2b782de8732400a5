package repository

import (
	"context"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// Tree defines the interface for tree data access.
// Implementations return copies; mutating a returned tree never changes stored state.
type Tree interface {
	// ListTrees returns trees matching filter in collection order, truncated to filter.Limit when positive
	ListTrees(ctx context.Context, filter domain.TreeFilter) ([]domain.Tree, error)
	GetTree(ctx context.Context, id string) (*domain.Tree, error)
	CreateTree(ctx context.Context, tree *domain.Tree) error
	// UpdateTree merges patch over the stored tree, stamps lastUpdated and returns the result
	UpdateTree(ctx context.Context, id string, patch domain.TreePatch, lastUpdated string) (*domain.Tree, error)
	DeleteTree(ctx context.Context, id string) error
	CountTreesByStatus(ctx context.Context) (map[domain.TreeStatus]int, error)
}
