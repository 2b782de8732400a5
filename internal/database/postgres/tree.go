package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/database/generated"
	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

const treeColumns = `tree_id, name, species, planted_date, planted_by, lat, lng, state, city, address,
	status, age_years, height_meters, image_url, donor_name, donor_message, adoption_price, carbon_offset, last_updated`

type treeRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewTreeRepository creates a new PostgreSQL tree repository
func NewTreeRepository(db *pgxpool.Pool) repository.Tree {
	return &treeRepository{db: db, q: generated.New(db)}
}

// ListTrees builds the WHERE clause from the filter and keeps insertion order.
// The filter combinations make this one hand-written rather than generated.
func (r *treeRepository) ListTrees(ctx context.Context, filter domain.TreeFilter) ([]domain.Tree, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + treeColumns + " FROM trees WHERE 1=1")

	args := []interface{}{}
	argNum := 1

	if filter.State != "" {
		fmt.Fprintf(&queryBuilder, " AND lower(state) = lower($%d)", argNum)
		args = append(args, filter.State)
		argNum++
	}

	if filter.Status != "" {
		fmt.Fprintf(&queryBuilder, " AND status = $%d", argNum)
		args = append(args, string(filter.Status))
		argNum++
	}

	if filter.Search != "" {
		fmt.Fprintf(&queryBuilder,
			" AND (strpos(lower(name), lower($%[1]d)) > 0 OR strpos(lower(species), lower($%[1]d)) > 0 OR strpos(lower(state), lower($%[1]d)) > 0)",
			argNum)
		args = append(args, filter.Search)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY seq")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToQueryTrees, err)
	}
	defer rows.Close()

	trees := []domain.Tree{}
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, err
		}
		trees = append(trees, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(ErrMsgFailedToQueryTrees, err)
	}
	return trees, nil
}

func (r *treeRepository) GetTree(ctx context.Context, id string) (*domain.Tree, error) {
	row, err := r.q.GetTree(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToScanTree, err)
	}
	t := mapTree(row)
	return &t, nil
}

func (r *treeRepository) CreateTree(ctx context.Context, tree *domain.Tree) error {
	if err := r.q.InsertTree(ctx, insertTreeParams(tree)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateTreeID, tree.ID)
		}
		return wrapDBError(ErrMsgFailedToInsertTree, err)
	}
	return nil
}

// UpdateTree locks the row, merges the patch in Go and writes every column back
func (r *treeRepository) UpdateTree(ctx context.Context, id string, patch domain.TreePatch, lastUpdated string) (*domain.Tree, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)

	row, err := q.GetTreeForUpdate(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToScanTree, err)
	}

	updated := mapTree(row).ApplyPatch(patch)
	updated.LastUpdated = lastUpdated

	if err := q.UpdateTree(ctx, generated.UpdateTreeParams(insertTreeParams(&updated))); err != nil {
		return nil, wrapDBError(ErrMsgFailedToUpdateTree, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError(ErrMsgFailedToCommitTransaction, err)
	}
	return &updated, nil
}

func (r *treeRepository) DeleteTree(ctx context.Context, id string) error {
	n, err := r.q.DeleteTree(ctx, id)
	if err != nil {
		return wrapDBError(ErrMsgFailedToDeleteTree, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTreeNotFound, id)
	}
	return nil
}

func (r *treeRepository) CountTreesByStatus(ctx context.Context) (map[domain.TreeStatus]int, error) {
	rows, err := r.q.CountTreesByStatus(ctx)
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToCountTrees, err)
	}

	counts := make(map[domain.TreeStatus]int, len(domain.TreeStatuses))
	for _, st := range domain.TreeStatuses {
		counts[st] = 0
	}
	for _, row := range rows {
		counts[domain.TreeStatus(row.Status)] = int(row.Count)
	}
	return counts, nil
}

// insertTreeParams flattens a tree into column order; UpdateTreeParams shares the layout
func insertTreeParams(t *domain.Tree) generated.InsertTreeParams {
	return generated.InsertTreeParams{
		TreeID:        t.ID,
		Name:          t.Name,
		Species:       t.Species,
		PlantedDate:   t.PlantedDate,
		PlantedBy:     t.PlantedBy,
		Lat:           t.Location.Lat,
		Lng:           t.Location.Lng,
		State:         t.Location.State,
		City:          t.Location.City,
		Address:       t.Location.Address,
		Status:        string(t.Status),
		AgeYears:      t.Age,
		HeightMeters:  t.Height,
		ImageUrl:      t.Image,
		DonorName:     t.DonorName,
		DonorMessage:  t.DonorMessage,
		AdoptionPrice: t.AdoptionPrice,
		CarbonOffset:  t.CarbonOffset,
		LastUpdated:   t.LastUpdated,
	}
}

// mapTree converts a generated.Tree row to domain.Tree
func mapTree(row generated.Tree) domain.Tree {
	return domain.Tree{
		ID:          row.TreeID,
		Name:        row.Name,
		Species:     row.Species,
		PlantedDate: row.PlantedDate,
		PlantedBy:   row.PlantedBy,
		Location: domain.Location{
			Lat:     row.Lat,
			Lng:     row.Lng,
			State:   row.State,
			City:    row.City,
			Address: row.Address,
		},
		Status:        domain.TreeStatus(row.Status),
		Age:           row.AgeYears,
		Height:        row.HeightMeters,
		Image:         row.ImageUrl,
		DonorName:     row.DonorName,
		DonorMessage:  row.DonorMessage,
		AdoptionPrice: row.AdoptionPrice,
		CarbonOffset:  row.CarbonOffset,
		LastUpdated:   row.LastUpdated,
	}
}

func scanTree(row pgx.Rows) (*domain.Tree, error) {
	var t domain.Tree
	var status string
	err := row.Scan(
		&t.ID, &t.Name, &t.Species, &t.PlantedDate, &t.PlantedBy,
		&t.Location.Lat, &t.Location.Lng, &t.Location.State, &t.Location.City, &t.Location.Address,
		&status, &t.Age, &t.Height, &t.Image, &t.DonorName, &t.DonorMessage,
		&t.AdoptionPrice, &t.CarbonOffset, &t.LastUpdated,
	)
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToScanTree, err)
	}
	t.Status = domain.TreeStatus(status)
	return &t, nil
}
