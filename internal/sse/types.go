package sse

// TreePayload is streamed for tree.planted and tree.updated
type TreePayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	State     string `json:"state"`
	City      string `json:"city,omitempty"`
	Status    string `json:"status"`
	DonorName string `json:"donorName,omitempty"`
	Adopted   bool   `json:"adopted,omitempty"`
}

// TreeRemovedPayload is streamed for tree.removed
type TreeRemovedPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// DonationPayload is streamed for donation.created. Donor email and
// payment reference never leave the server.
type DonationPayload struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	TreesPlanted int64  `json:"treesPlanted"`
	TierID       string `json:"tierId,omitempty"`
	DonorName    string `json:"donorName,omitempty"`
}
