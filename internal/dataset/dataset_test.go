package dataset

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

func TestLoad_SeedValues(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	require.Len(t, ds.Trees, 8)
	assert.Equal(t, "Hope Oak", ds.Trees[0].Name)
	assert.Equal(t, "Lagos", ds.Trees[0].Location.State)
	assert.Equal(t, domain.TreeStatusHealthy, ds.Trees[0].Status)
	assert.Equal(t, "Enugu Bamboo", ds.Trees[7].Name)
	assert.Equal(t, 3.5, ds.Trees[7].Height)

	assert.Equal(t, int64(127543), ds.Stats.TotalTrees)
	assert.Equal(t, int64(28), ds.Stats.TotalStates)
	assert.Equal(t, float64(2805946), ds.Stats.TotalCarbonOffset)
	assert.Equal(t, int64(45782000), ds.Stats.TotalDonations)
	require.Len(t, ds.Stats.TopDonors, 5)
	assert.Equal(t, "MTN Foundation", ds.Stats.TopDonors[0].Name)
	require.Len(t, ds.Stats.RecentActivity, 3)
	assert.Equal(t, "Anonymous donated ₦50,000 for 10 trees", ds.Stats.RecentActivity[1].Message)

	require.Len(t, ds.Tiers, 4)
	grove, ok := ds.TierByID("grove")
	require.True(t, ok)
	assert.Equal(t, int64(20000), grove.Price)
	assert.Equal(t, 5, grove.Trees)
	assert.True(t, grove.Popular)

	require.Len(t, ds.Donations, 3)
	for _, d := range ds.Donations {
		assert.Equal(t, domain.TreesForAmount(d.Amount), d.TreesPlanted, d.ID)
		assert.Equal(t, domain.PaymentStatusPending, d.PaymentStatus, "demo pledges are never settled")
	}
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first := MustLoad()
	first.Trees[0].Name = "changed"
	first.Stats.TopDonors[0].Name = "changed"

	second := MustLoad()
	assert.Equal(t, "Hope Oak", second.Trees[0].Name)
	assert.Equal(t, "MTN Foundation", second.Stats.TopDonors[0].Name)
}

func TestTierByID_Unknown(t *testing.T) {
	ds := MustLoad()
	_, ok := ds.TierByID("jungle")
	assert.False(t, ok)
}

// overlay copies the embedded files and replaces one of them
func overlay(t *testing.T, name, content string) fstest.MapFS {
	t.Helper()
	m := fstest.MapFS{}
	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(files, path)
		if err != nil {
			return err
		}
		m[path] = &fstest.MapFile{Data: data}
		return nil
	})
	require.NoError(t, err)
	m[name] = &fstest.MapFile{Data: []byte(content)}
	return m
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		errorMsg string
		isErr    error
	}{
		{
			name:     "schema violation",
			file:     TreesFile,
			content:  `{"version": "1.0", "trees": [{"id": "1"}]}`,
			errorMsg: "schema validation failed",
		},
		{
			name:     "unknown status",
			file:     TreesFile,
			content:  `{"version": "1.0", "trees": [{"id": "1", "name": "a", "species": "b", "plantedDate": "2024-01-01", "plantedBy": "c", "location": {"lat": 1, "lng": 1, "state": "Lagos", "city": "x"}, "status": "dead", "age": 1, "height": 1, "adoptionPrice": 5000, "carbonOffset": 1, "lastUpdated": "2024-01-01"}]}`,
			errorMsg: "status",
		},
		{
			name:     "duplicate tier",
			file:     TiersFile,
			content:  `{"version": "1.0", "tiers": [{"id": "a", "name": "A", "price": 5000, "trees": 1, "benefits": []}, {"id": "a", "name": "B", "price": 5000, "trees": 1, "benefits": []}]}`,
			errorMsg: "duplicate tier id 'a'",
			isErr:    ErrInvalidDataset,
		},
		{
			name:     "trees planted mismatch",
			file:     DonationsFile,
			content:  `{"version": "1.0", "donations": [{"id": "1", "amount": 50000, "treesPlanted": 3, "timestamp": "2024-08-31T09:15:00Z"}]}`,
			errorMsg: "plants 3 trees",
			isErr:    ErrInvalidDataset,
		},
		{
			name:     "invalid JSON",
			file:     StatsFile,
			content:  `{"version": `,
			errorMsg: StatsFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFS(overlay(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}
