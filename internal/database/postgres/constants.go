package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Queries
const (
	ErrMsgFailedToQueryTrees     = "failed to query trees"
	ErrMsgFailedToScanTree       = "failed to scan tree"
	ErrMsgFailedToInsertTree     = "failed to insert tree"
	ErrMsgFailedToUpdateTree     = "failed to update tree"
	ErrMsgFailedToDeleteTree     = "failed to delete tree"
	ErrMsgFailedToCountTrees     = "failed to count trees"
	ErrMsgFailedToQueryDonations = "failed to query donations"
	ErrMsgFailedToInsertDonation = "failed to insert donation"
	ErrMsgFailedToCountDonations = "failed to count donations"
	ErrMsgFailedToSeed           = "failed to seed database"
	ErrMsgFailedToEncodeEvent    = "failed to encode event payload"
	ErrMsgFailedToInsertEvent    = "failed to insert event log entry"
	ErrMsgFailedToQueryEvents    = "failed to query event log"
	ErrMsgFailedToScanEvent      = "failed to scan event log entry"
	ErrMsgFailedToCleanupEvents  = "failed to clean up event log"
)

// Log Messages
const (
	LogMsgSeeded      = "Seeded empty database from dataset"
	LogMsgSeedSkipped = "Database already populated, skipping seed"
)
