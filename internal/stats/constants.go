package stats

import "time"

// Live stats tuning
const (
	// DefaultCacheTTL bounds how stale live stats may be without an invalidating event
	DefaultCacheTTL = 30 * time.Second

	// ActivityFeedCapacity is how many activity entries are retained, newest first
	ActivityFeedCapacity = 20

	// TopDonorsLimit is the leaderboard length on the landing page
	TopDonorsLimit = 5
)

// Activity message formats
const (
	MsgFmtPlanted      = "New %s tree planted in %s"
	MsgFmtPlantedBy    = "New %s tree planted in %s by %s"
	MsgFmtDonated      = "%s donated %s for %d %s"
	MsgFmtAdopted      = "%s adopted a %s tree in %s"
	AnonymousDonorName = "Anonymous"
)

// Log messages
const (
	LogMsgLiveStatsComputed = "Computed live stats"
	LogMsgDecodeFailed      = "Failed to decode event payload for activity feed"
)

// Error messages
const (
	ErrMsgListTreesFailed     = "failed to list trees for live stats"
	ErrMsgListDonationsFailed = "failed to list donations for live stats"
)
