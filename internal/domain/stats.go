package domain

// ActivityType classifies an entry in the activity feed
type ActivityType string

const (
	ActivityPlanted ActivityType = "planted"
	ActivityDonated ActivityType = "donated"
	ActivityAdopted ActivityType = "adopted"
)

// TopDonor is a leaderboard row
type TopDonor struct {
	Name   string `json:"name"`
	Trees  int64  `json:"trees"`
	Avatar string `json:"avatar,omitempty"`
}

// ActivityEvent is one entry of the recent activity feed
type ActivityEvent struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
}

// TreeStats is the aggregate shown on the landing page
type TreeStats struct {
	TotalTrees        int64           `json:"totalTrees"`
	TotalStates       int64           `json:"totalStates"`
	TotalCarbonOffset float64         `json:"totalCarbonOffset"`
	TotalDonations    int64           `json:"totalDonations"`
	TopDonors         []TopDonor      `json:"topDonors"`
	RecentActivity    []ActivityEvent `json:"recentActivity"`
}

// Clone returns a deep copy so callers cannot mutate shared fixtures
func (s TreeStats) Clone() TreeStats {
	out := s
	out.TopDonors = append(make([]TopDonor, 0, len(s.TopDonors)), s.TopDonors...)
	out.RecentActivity = append(make([]ActivityEvent, 0, len(s.RecentActivity)), s.RecentActivity...)
	return out
}

// StatusCount is the number of trees in a given status
type StatusCount struct {
	Status TreeStatus `json:"status"`
	Count  int        `json:"count"`
}
