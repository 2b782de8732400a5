package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an entry and fills in its ID and creation time
func (r *eventLogRepository) LogEvent(ctx context.Context, entry *repository.EventLogEntry) error {
	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
	}

	var metadataJSON []byte
	if entry.Metadata != nil {
		metadataJSON, err = json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
		}
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO event_log (event_type, subject_id, payload, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		entry.EventType, entry.SubjectID, payloadJSON, metadataJSON, createdAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return wrapDBError(ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// ListEvents retrieves entries matching the filter, newest first
func (r *eventLogRepository) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, subject_id, payload, metadata, created_at
		FROM event_log
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.EventType != "" {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, filter.EventType)
		argNum++
	}

	if filter.SubjectID != "" {
		fmt.Fprintf(&queryBuilder, " AND subject_id = $%d", argNum)
		args = append(args, filter.SubjectID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, wrapDBError(ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes entries created before the cutoff
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM event_log WHERE created_at < $1`, before)
	if err != nil {
		return 0, wrapDBError(ErrMsgFailedToCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	events := []repository.EventLogEntry{}

	for rows.Next() {
		var evt repository.EventLogEntry
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.SubjectID,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, wrapDBError(ErrMsgFailedToScanEvent, err)
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, wrapDBError(ErrMsgFailedToScanEvent, err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, wrapDBError(ErrMsgFailedToScanEvent, err)
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(ErrMsgFailedToQueryEvents, err)
	}

	return events, nil
}
