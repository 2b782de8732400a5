package domain

import "strings"

// TreeStatus is the health/lifecycle state of a planted tree
type TreeStatus string

const (
	TreeStatusHealthy        TreeStatus = "healthy"
	TreeStatusGrowing        TreeStatus = "growing"
	TreeStatusNeedsAttention TreeStatus = "needs-attention"
	TreeStatusPlanted        TreeStatus = "planted"
)

// TreeStatuses lists every valid status in display order
var TreeStatuses = []TreeStatus{
	TreeStatusHealthy,
	TreeStatusGrowing,
	TreeStatusNeedsAttention,
	TreeStatusPlanted,
}

// IsValid reports whether s is one of the four known statuses
func (s TreeStatus) IsValid() bool {
	switch s {
	case TreeStatusHealthy, TreeStatusGrowing, TreeStatusNeedsAttention, TreeStatusPlanted:
		return true
	}
	return false
}

// Location is where a tree was planted
type Location struct {
	Lat     float64 `json:"lat" db:"lat"`
	Lng     float64 `json:"lng" db:"lng"`
	State   string  `json:"state" db:"state"`
	City    string  `json:"city" db:"city"`
	Address string  `json:"address,omitempty" db:"address"`
}

// Tree is a single planted tree with its sponsorship metadata.
// ID is assigned once at creation and never changes.
type Tree struct {
	ID            string     `json:"id" db:"tree_id"`
	Name          string     `json:"name" db:"name"`
	Species       string     `json:"species" db:"species"`
	PlantedDate   string     `json:"plantedDate" db:"planted_date"`
	PlantedBy     string     `json:"plantedBy" db:"planted_by"`
	Location      Location   `json:"location"`
	Status        TreeStatus `json:"status" db:"status"`
	Age           float64    `json:"age" db:"age_years"`
	Height        float64    `json:"height" db:"height_meters"`
	Image         string     `json:"image,omitempty" db:"image_url"`
	DonorName     string     `json:"donorName,omitempty" db:"donor_name"`
	DonorMessage  string     `json:"donorMessage,omitempty" db:"donor_message"`
	AdoptionPrice int64      `json:"adoptionPrice" db:"adoption_price"`
	CarbonOffset  float64    `json:"carbonOffset" db:"carbon_offset"` // kg per year
	LastUpdated   string     `json:"lastUpdated" db:"last_updated"`
}

// LocationPatch carries optional location fields for a partial update
type LocationPatch struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	State   *string  `json:"state,omitempty"`
	City    *string  `json:"city,omitempty"`
	Address *string  `json:"address,omitempty"`
}

// TreePatch is a partial tree. Nil fields are left untouched by ApplyPatch.
type TreePatch struct {
	Name          *string        `json:"name,omitempty"`
	Species       *string        `json:"species,omitempty"`
	PlantedDate   *string        `json:"plantedDate,omitempty"`
	PlantedBy     *string        `json:"plantedBy,omitempty"`
	Location      *LocationPatch `json:"location,omitempty"`
	Status        *TreeStatus    `json:"status,omitempty"`
	Age           *float64       `json:"age,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	Image         *string        `json:"image,omitempty"`
	DonorName     *string        `json:"donorName,omitempty"`
	DonorMessage  *string        `json:"donorMessage,omitempty"`
	AdoptionPrice *int64         `json:"adoptionPrice,omitempty"`
	CarbonOffset  *float64       `json:"carbonOffset,omitempty"`
}

// ApplyPatch returns a copy of t with every non-nil field of p merged over it.
// ID and LastUpdated are never touched here.
func (t Tree) ApplyPatch(p TreePatch) Tree {
	out := t
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Species != nil {
		out.Species = *p.Species
	}
	if p.PlantedDate != nil {
		out.PlantedDate = *p.PlantedDate
	}
	if p.PlantedBy != nil {
		out.PlantedBy = *p.PlantedBy
	}
	if p.Location != nil {
		if p.Location.Lat != nil {
			out.Location.Lat = *p.Location.Lat
		}
		if p.Location.Lng != nil {
			out.Location.Lng = *p.Location.Lng
		}
		if p.Location.State != nil {
			out.Location.State = *p.Location.State
		}
		if p.Location.City != nil {
			out.Location.City = *p.Location.City
		}
		if p.Location.Address != nil {
			out.Location.Address = *p.Location.Address
		}
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.DonorName != nil {
		out.DonorName = *p.DonorName
	}
	if p.DonorMessage != nil {
		out.DonorMessage = *p.DonorMessage
	}
	if p.AdoptionPrice != nil {
		out.AdoptionPrice = *p.AdoptionPrice
	}
	if p.CarbonOffset != nil {
		out.CarbonOffset = *p.CarbonOffset
	}
	return out
}

// Matches reports whether the tree satisfies every filter that is set
func (t Tree) Matches(f TreeFilter) bool {
	if f.State != "" && !strings.EqualFold(t.Location.State, f.State) {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Species), q) &&
			!strings.Contains(strings.ToLower(t.Location.State), q) {
			return false
		}
	}
	return true
}
