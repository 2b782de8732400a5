package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// wrapDBError tags err as a database error while keeping the driver error in the chain
func wrapDBError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, msg, err)
}
