package dataset

// Embedded file names
const (
	TreesFile     = "seed/trees.json"
	StatsFile     = "seed/stats.json"
	TiersFile     = "seed/tiers.json"
	DonationsFile = "seed/donations.json"

	TreesSchema     = "schemas/trees.schema.json"
	StatsSchema     = "schemas/stats.schema.json"
	TiersSchema     = "schemas/tiers.schema.json"
	DonationsSchema = "schemas/donations.schema.json"
)

// Error message formats
const (
	ErrFmtReadSeedFailed       = "failed to read seed file %s: %w"
	ErrFmtSchemaFailed         = "schema validation failed for %s: %w"
	ErrFmtParseSeedFailed      = "failed to parse seed file %s: %w"
	ErrFmtDuplicateID          = "%w: duplicate %s id '%s'"
	ErrFmtTreesPlantedMismatch = "%w: donation '%s' plants %d trees, amount %d funds %d"
)
