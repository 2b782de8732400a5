package handler

// Client-facing error messages. 5xx responses never carry internal details.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidRequestSum  = "Invalid request"
	ErrMsgInvalidAmount      = "Invalid amount parameter"
	ErrMsgAmountNotFinite    = "amount must be a finite number"
	ErrMsgInvalidSince       = "Invalid since parameter, expected RFC 3339"

	ErrMsgTreeNotFound  = "Tree not found"
	ErrMsgTierNotFound  = "Tier not found"
	ErrMsgDuplicateTree = "Tree already exists"

	ErrMsgUnavailable = "storage unavailable"
)

// Success messages
const (
	MsgTreeAdded   = "Tree successfully added"
	MsgTreeUpdated = "Tree successfully updated"
	MsgTreeDeleted = "Tree successfully deleted"
)

// Operation names used in logs
const (
	OpListTrees      = "List trees"
	OpCountTrees     = "Count trees by status"
	OpGetTree        = "Get tree"
	OpCreateTree     = "Create tree"
	OpUpdateTree     = "Update tree"
	OpDeleteTree     = "Delete tree"
	OpLiveStats      = "Live stats"
	OpCreateDonation = "Create donation"
	OpListDonations  = "List donations"
	OpImpact         = "Impact estimate"
	OpGetTier        = "Get tier"
	OpListEvents     = "List event log"
)
