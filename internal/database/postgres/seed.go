package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/database/generated"
	"github.com/greenlegacy-ng/greenlegacy/internal/dataset"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// Seed loads the dataset's trees and donations into an empty database.
// A database that already holds trees or donations is left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, ds *dataset.Dataset) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return wrapDBError(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := generated.New(tx)

	populated, err := q.HasSeedData(ctx)
	if err != nil {
		return wrapDBError(ErrMsgFailedToSeed, err)
	}
	if populated {
		logger.FromContext(ctx).Info(LogMsgSeedSkipped)
		return nil
	}

	for i := range ds.Trees {
		if err := q.InsertTree(ctx, insertTreeParams(&ds.Trees[i])); err != nil {
			return wrapDBError(ErrMsgFailedToSeed, err)
		}
	}
	for i := range ds.Donations {
		if err := q.InsertDonation(ctx, insertDonationParams(&ds.Donations[i])); err != nil {
			return wrapDBError(ErrMsgFailedToSeed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapDBError(ErrMsgFailedToCommitTransaction, err)
	}

	logger.FromContext(ctx).Info(LogMsgSeeded, "trees", len(ds.Trees), "donations", len(ds.Donations))
	return nil
}
