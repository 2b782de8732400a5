package tree

// Coordinate bounds
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Metadata keys attached to tree events
const (
	MetadataKeyAdopted = "adopted"
)

// Error message formats
const (
	ErrFmtFieldRequired    = "%w: %s is required"
	ErrFmtFieldNegative    = "%w: %s must not be negative"
	ErrFmtInvalidStatus    = "%w: unknown status '%s'"
	ErrFmtLatOutOfRange    = "%w: lat %v outside [-90, 90]"
	ErrFmtLngOutOfRange    = "%w: lng %v outside [-180, 180]"
	ErrMsgGenerateIDFailed = "failed to generate tree id"
)

// Log messages
const (
	LogMsgTreeCreated        = "Tree created"
	LogMsgTreeUpdated        = "Tree updated"
	LogMsgTreeDeleted        = "Tree deleted"
	LogMsgEventPublishFailed = "Failed to publish tree event"
)
