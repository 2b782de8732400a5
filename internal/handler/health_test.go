package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPinger mocks the repository.Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store Reachable", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		store.AssertExpectations(t)
	})

	t.Run("Store Unreachable", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"storage unavailable"`)
		store.AssertExpectations(t)
	})

	t.Run("Ping Gets A Deadline", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(context.DeadlineExceeded)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		store.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.4.0", "production").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "production", info.Environment)
	assert.Equal(t, runtime.Version(), info.GoVersion)

	assert.Equal(t, "dev", resolveVersion(""))
}

func TestHandleMapConfig(t *testing.T) {
	w := httptest.NewRecorder()
	HandleMapConfig("pk.public").ServeHTTP(w, httptest.NewRequest("GET", "/config/map", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Success bool      `json:"success"`
		Data    MapConfig `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "pk.public", env.Data.AccessToken)
	assert.Equal(t, DefaultMapCenter, env.Data.Center)
}
