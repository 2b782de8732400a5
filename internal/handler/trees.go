package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

// LocationRequest is the location part of a create request
type LocationRequest struct {
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
	State   string  `json:"state" validate:"required,max=100"`
	City    string  `json:"city" validate:"max=100"`
	Address string  `json:"address,omitempty" validate:"max=300"`
}

// CreateTreeRequest is the body of POST /trees. The id and timestamps are
// assigned by the server and rejected if sent.
type CreateTreeRequest struct {
	Name          string            `json:"name" validate:"required,max=200"`
	Species       string            `json:"species" validate:"required,max=200"`
	PlantedBy     string            `json:"plantedBy" validate:"max=200"`
	Location      LocationRequest   `json:"location"`
	Status        domain.TreeStatus `json:"status,omitempty" validate:"treestatus"`
	Age           float64           `json:"age" validate:"gte=0"`
	Height        float64           `json:"height" validate:"gte=0"`
	Image         string            `json:"image,omitempty" validate:"omitempty,url"`
	DonorName     string            `json:"donorName,omitempty" validate:"max=200"`
	DonorMessage  string            `json:"donorMessage,omitempty" validate:"max=1000"`
	AdoptionPrice int64             `json:"adoptionPrice" validate:"gte=0"`
	CarbonOffset  float64           `json:"carbonOffset" validate:"gte=0"`
}

// toTree converts the request; a missing status means the tree was just planted
func (req CreateTreeRequest) toTree() domain.Tree {
	status := req.Status
	if status == "" {
		status = domain.TreeStatusPlanted
	}
	return domain.Tree{
		Name:      req.Name,
		Species:   req.Species,
		PlantedBy: req.PlantedBy,
		Location: domain.Location{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			State:   req.Location.State,
			City:    req.Location.City,
			Address: req.Location.Address,
		},
		Status:        status,
		Age:           req.Age,
		Height:        req.Height,
		Image:         req.Image,
		DonorName:     req.DonorName,
		DonorMessage:  req.DonorMessage,
		AdoptionPrice: req.AdoptionPrice,
		CarbonOffset:  req.CarbonOffset,
	}
}

// LocationPatchRequest is the location part of an update request
type LocationPatchRequest struct {
	Lat     *float64 `json:"lat,omitempty" validate:"omitnil,gte=-90,lte=90"`
	Lng     *float64 `json:"lng,omitempty" validate:"omitnil,gte=-180,lte=180"`
	State   *string  `json:"state,omitempty" validate:"omitnil,min=1,max=100"`
	City    *string  `json:"city,omitempty" validate:"omitnil,max=100"`
	Address *string  `json:"address,omitempty" validate:"omitnil,max=300"`
}

// UpdateTreeRequest is the body of PUT /trees/{id}. Absent fields are left untouched.
type UpdateTreeRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitnil,min=1,max=200"`
	Species       *string               `json:"species,omitempty" validate:"omitnil,min=1,max=200"`
	PlantedDate   *string               `json:"plantedDate,omitempty" validate:"omitnil,max=40"`
	PlantedBy     *string               `json:"plantedBy,omitempty" validate:"omitnil,max=200"`
	Location      *LocationPatchRequest `json:"location,omitempty"`
	Status        *domain.TreeStatus    `json:"status,omitempty" validate:"omitnil,treestatus"`
	Age           *float64              `json:"age,omitempty" validate:"omitnil,gte=0"`
	Height        *float64              `json:"height,omitempty" validate:"omitnil,gte=0"`
	Image         *string               `json:"image,omitempty" validate:"omitnil,imageurl"`
	DonorName     *string               `json:"donorName,omitempty" validate:"omitnil,max=200"`
	DonorMessage  *string               `json:"donorMessage,omitempty" validate:"omitnil,max=1000"`
	AdoptionPrice *int64                `json:"adoptionPrice,omitempty" validate:"omitnil,gte=0"`
	CarbonOffset  *float64              `json:"carbonOffset,omitempty" validate:"omitnil,gte=0"`
}

func (req UpdateTreeRequest) toPatch() domain.TreePatch {
	p := domain.TreePatch{
		Name:          req.Name,
		Species:       req.Species,
		PlantedDate:   req.PlantedDate,
		PlantedBy:     req.PlantedBy,
		Status:        req.Status,
		Age:           req.Age,
		Height:        req.Height,
		Image:         req.Image,
		DonorName:     req.DonorName,
		DonorMessage:  req.DonorMessage,
		AdoptionPrice: req.AdoptionPrice,
		CarbonOffset:  req.CarbonOffset,
	}
	if req.Location != nil {
		p.Location = &domain.LocationPatch{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			State:   req.Location.State,
			City:    req.Location.City,
			Address: req.Location.Address,
		}
	}
	return p
}

// HandleListTrees lists trees matching the query filters
// @Summary List trees
// @Description Filter by state (case-insensitive), status, free-text q. Unparseable limits mean no limit.
// @Tags trees
// @Produce json
// @Param state query string false "State name"
// @Param status query string false "Tree status" Enums(healthy, growing, needs-attention, planted)
// @Param q query string false "Search name, species or state"
// @Param limit query int false "Maximum number of trees"
// @Success 200 {object} Envelope{data=[]domain.Tree}
// @Failure 500 {object} Envelope
// @Router /trees [get]
func HandleListTrees(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.TreeFilter{
			State:  GetOptionalQueryParam(r, "state", ""),
			Status: domain.TreeStatus(GetOptionalQueryParam(r, "status", "")),
			Search: GetOptionalQueryParam(r, "q", ""),
			Limit:  parseLimit(r),
		}

		trees, err := svc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, OpListTrees, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Trees listed", "count", len(trees), "filtered", !filter.IsEmpty())
		respondList(w, trees, len(trees))
	}
}

// HandleTreeStatusCounts returns the number of trees per status
// @Summary Tree status counts
// @Description Count of trees in each status, all four statuses always present
// @Tags trees
// @Produce json
// @Success 200 {object} Envelope{data=[]domain.StatusCount}
// @Failure 500 {object} Envelope
// @Router /trees/status-counts [get]
func HandleTreeStatusCounts(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.StatusCounts(r.Context())
		if err != nil {
			respondServiceError(w, r, OpCountTrees, err)
			return
		}
		respondData(w, http.StatusOK, counts, "")
	}
}

// HandleGetTree returns one tree
// @Summary Get tree
// @Tags trees
// @Produce json
// @Param id path string true "Tree ID"
// @Success 200 {object} Envelope{data=domain.Tree}
// @Failure 404 {object} Envelope
// @Router /trees/{id} [get]
func HandleGetTree(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetTree, err)
			return
		}
		respondData(w, http.StatusOK, t, "")
	}
}

// HandleCreateTree adds a tree
// @Summary Create tree
// @Description The server assigns id, plantedDate and lastUpdated. Unknown fields are rejected.
// @Tags trees
// @Accept json
// @Produce json
// @Param request body CreateTreeRequest true "Tree"
// @Success 201 {object} Envelope{data=domain.Tree}
// @Failure 400 {object} Envelope
// @Security AdminKey
// @Router /trees [post]
func HandleCreateTree(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTreeRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateTree); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), req.toTree())
		if err != nil {
			respondServiceError(w, r, OpCreateTree, err)
			return
		}
		respondData(w, http.StatusCreated, created, MsgTreeAdded)
	}
}

// HandleUpdateTree merges a partial tree over the stored one
// @Summary Update tree
// @Description Fields absent from the body are unchanged; lastUpdated is refreshed.
// @Tags trees
// @Accept json
// @Produce json
// @Param id path string true "Tree ID"
// @Param request body UpdateTreeRequest true "Fields to change"
// @Success 200 {object} Envelope{data=domain.Tree}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Security AdminKey
// @Router /trees/{id} [put]
func HandleUpdateTree(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateTreeRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUpdateTree); err != nil {
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toPatch())
		if err != nil {
			respondServiceError(w, r, OpUpdateTree, err)
			return
		}
		respondData(w, http.StatusOK, updated, MsgTreeUpdated)
	}
}

// HandleDeleteTree removes a tree
// @Summary Delete tree
// @Tags trees
// @Produce json
// @Param id path string true "Tree ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security AdminKey
// @Router /trees/{id} [delete]
func HandleDeleteTree(svc tree.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, OpDeleteTree, err)
			return
		}
		respondMessage(w, http.StatusOK, MsgTreeDeleted)
	}
}
