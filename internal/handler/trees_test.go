package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// envelope mirrors Envelope with raw data for decoding in tests
type envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Error      string            `json:"error"`
	Message    string            `json:"message"`
	Total      *int              `json:"total"`
	Fields     map[string]string `json:"fields"`
	PaymentURL string            `json:"paymentUrl"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func treeRouter(svc *MockTreeService) http.Handler {
	r := chi.NewRouter()
	r.Get("/trees", HandleListTrees(svc))
	r.Get("/trees/status-counts", HandleTreeStatusCounts(svc))
	r.Post("/trees", HandleCreateTree(svc))
	r.Get("/trees/{id}", HandleGetTree(svc))
	r.Put("/trees/{id}", HandleUpdateTree(svc))
	r.Delete("/trees/{id}", HandleDeleteTree(svc))
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleListTrees_ParsesFilters(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter domain.TreeFilter
	}{
		{"no filters", "", domain.TreeFilter{}},
		{"all filters", "?state=Lagos&status=healthy&q=oak&limit=2", domain.TreeFilter{State: "Lagos", Status: domain.TreeStatusHealthy, Search: "oak", Limit: 2}},
		{"unparseable limit means none", "?limit=abc", domain.TreeFilter{}},
		{"zero limit means none", "?limit=0", domain.TreeFilter{}},
		{"negative limit means none", "?limit=-3", domain.TreeFilter{}},
		{"blank values ignored", "?state=%20&status=", domain.TreeFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTreeService)
			trees := []domain.Tree{{ID: "1"}, {ID: "2"}}
			svc.On("List", mock.Anything, tt.filter).Return(trees, nil)

			w := serve(treeRouter(svc), http.MethodGet, "/trees"+tt.query, "")

			assert.Equal(t, http.StatusOK, w.Code)
			env := decodeEnvelope(t, w)
			assert.True(t, env.Success)
			require.NotNil(t, env.Total)
			assert.Equal(t, 2, *env.Total)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListTrees_EmptyIsSuccess(t *testing.T) {
	svc := new(MockTreeService)
	svc.On("List", mock.Anything, domain.TreeFilter{State: "Nowhere"}).Return([]domain.Tree{}, nil)

	w := serve(treeRouter(svc), http.MethodGet, "/trees?state=Nowhere", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"total":0}`, w.Body.String())
}

func TestHandleListTrees_StoreFailure(t *testing.T) {
	svc := new(MockTreeService)
	svc.On("List", mock.Anything, domain.TreeFilter{}).
		Return(nil, fmt.Errorf("%w: connection reset by peer", domain.ErrDatabaseError))

	w := serve(treeRouter(svc), http.MethodGet, "/trees", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, ErrMsgGenericServerError, env.Error)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestHandleCreateTree(t *testing.T) {
	validBody := `{"name":"Lekki Iroko","species":"Iroko","location":{"lat":6.4,"lng":3.4,"state":"Lagos","city":"Lekki"},"adoptionPrice":5000,"carbonOffset":22}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockTreeService)
		expectedStatus int
		expectedError  string
		expectedMsg    string
	}{
		{
			name: "Success defaults status to planted",
			body: validBody,
			setupMock: func(m *MockTreeService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(tr domain.Tree) bool {
					return tr.Status == domain.TreeStatusPlanted && tr.Location.City == "Lekki" && tr.AdoptionPrice == 5000
				})).Return(&domain.Tree{ID: "new-id", Name: "Lekki Iroko"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    MsgTreeAdded,
		},
		{
			name:           "Unparseable body",
			body:           `{"name":`,
			setupMock:      func(*MockTreeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field",
			body:           `{"name":"x","species":"y","location":{"state":"Oyo"},"id":"mine"}`,
			setupMock:      func(*MockTreeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Wrong type",
			body:           `{"name":"x","species":"y","location":{"state":"Oyo"},"age":"old"}`,
			setupMock:      func(*MockTreeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Trailing data",
			body:           validBody + `{}`,
			setupMock:      func(*MockTreeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Validation failure",
			body:           `{"name":"x","species":"y","location":{"state":"Oyo","lat":120}}`,
			setupMock:      func(*MockTreeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSum,
		},
		{
			name: "Service rejects input",
			body: validBody,
			setupMock: func(m *MockTreeService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid input: name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTreeService)
			tt.setupMock(svc)

			w := serve(treeRouter(svc), http.MethodPost, "/trees", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			env := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus < 300, env.Success)
			assert.Equal(t, tt.expectedError, env.Error)
			assert.Equal(t, tt.expectedMsg, env.Message)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleCreateTree_ValidationFields(t *testing.T) {
	svc := new(MockTreeService)

	w := serve(treeRouter(svc), http.MethodPost, "/trees", `{"species":"y","location":{"state":"Oyo"},"status":"dead"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "This field is required", env.Fields["name"])
	assert.Contains(t, env.Fields, "status")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleUpdateTree(t *testing.T) {
	t.Run("Patch passes only provided fields", func(t *testing.T) {
		svc := new(MockTreeService)
		healthy := domain.TreeStatusHealthy
		svc.On("Update", mock.Anything, "7", domain.TreePatch{Status: &healthy}).
			Return(&domain.Tree{ID: "7", Status: healthy}, nil)

		w := serve(treeRouter(svc), http.MethodPut, "/trees/7", `{"status":"healthy"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, MsgTreeUpdated, env.Message)
		svc.AssertExpectations(t)
	})

	t.Run("Empty image clears it", func(t *testing.T) {
		svc := new(MockTreeService)
		empty := ""
		svc.On("Update", mock.Anything, "7", domain.TreePatch{Image: &empty}).
			Return(&domain.Tree{ID: "7"}, nil)

		w := serve(treeRouter(svc), http.MethodPut, "/trees/7", `{"image":""}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Image must otherwise be a URL", func(t *testing.T) {
		svc := new(MockTreeService)

		w := serve(treeRouter(svc), http.MethodPut, "/trees/7", `{"image":"not a url"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Must be a valid URL", decodeEnvelope(t, w).Fields["image"])
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Id cannot be patched", func(t *testing.T) {
		svc := new(MockTreeService)

		w := serve(treeRouter(svc), http.MethodPut, "/trees/7", `{"id":"8"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decodeEnvelope(t, w).Error)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockTreeService)
		svc.On("Update", mock.Anything, "missing", mock.Anything).
			Return(nil, fmt.Errorf("%w: missing", domain.ErrTreeNotFound))

		w := serve(treeRouter(svc), http.MethodPut, "/trees/missing", `{"height":3}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgTreeNotFound, decodeEnvelope(t, w).Error)
	})
}

func TestHandleDeleteTree(t *testing.T) {
	svc := new(MockTreeService)
	svc.On("Delete", mock.Anything, "3").Return(nil)
	svc.On("Delete", mock.Anything, "nope").Return(domain.ErrTreeNotFound)

	w := serve(treeRouter(svc), http.MethodDelete, "/trees/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Tree successfully deleted"}`, w.Body.String())

	w = serve(treeRouter(svc), http.MethodDelete, "/trees/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Tree not found"}`, w.Body.String())
}

func TestHandleTreeStatusCounts(t *testing.T) {
	svc := new(MockTreeService)
	svc.On("StatusCounts", mock.Anything).Return([]domain.StatusCount{
		{Status: domain.TreeStatusHealthy, Count: 4},
		{Status: domain.TreeStatusPlanted, Count: 0},
	}, nil)

	w := serve(treeRouter(svc), http.MethodGet, "/trees/status-counts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"status":"healthy","count":4},{"status":"planted","count":0}]}`, w.Body.String())
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"tree not found wrapped", fmt.Errorf("%w: x", domain.ErrTreeNotFound), http.StatusNotFound, ErrMsgTreeNotFound},
		{"tier not found", domain.ErrTierNotFound, http.StatusNotFound, ErrMsgTierNotFound},
		{"below minimum", domain.ErrDonationBelowMinimum, http.StatusBadRequest, "Minimum donation amount is ₦5,000"},
		{"above maximum", domain.ErrDonationAboveMaximum, http.StatusBadRequest, "Maximum donation amount is ₦100,000,000,000"},
		{"duplicate", domain.ErrDuplicateTreeID, http.StatusConflict, ErrMsgDuplicateTree},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
