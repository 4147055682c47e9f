package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AngleCut/internal/model"
)

func testProfile(name string, maxStock float64) model.HardwareProfile {
	return model.HardwareProfile{
		Name:            name,
		Description:     "site-specific hardware",
		Gap:             10,
		SlotPitch:       50,
		LengthIncrement: 5,
		MaxAngleLength:  maxStock,
		MinEdgeDistance: 35,
	}
}

func TestSaveLoadCustomProfiles_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	profiles := []model.HardwareProfile{
		testProfile("Site A", 1190),
		testProfile("Site B", 890),
	}
	require.NoError(t, SaveCustomProfiles(path, profiles))

	loaded, err := LoadCustomProfiles(path)
	require.NoError(t, err)
	assert.Equal(t, profiles, loaded)
}

func TestLoadCustomProfiles_MissingFile(t *testing.T) {
	loaded, err := LoadCustomProfiles(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestLoadCustomProfiles_ClearsBuiltInFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	p := testProfile("Pretender", 1490)
	p.IsBuiltIn = true
	require.NoError(t, SaveCustomProfiles(path, []model.HardwareProfile{p}))

	loaded, err := LoadCustomProfiles(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.False(t, loaded[0].IsBuiltIn, "loaded profiles must not masquerade as built-ins")
}

func TestResolveProfile(t *testing.T) {
	custom := []model.HardwareProfile{testProfile("Site A", 1190)}

	assert.Equal(t, 1190.0, ResolveProfile("Site A", custom).MaxAngleLength)
	assert.Equal(t, "Short Stock", ResolveProfile("Short Stock", custom).Name)
	assert.Equal(t, "Standard", ResolveProfile("unknown", custom).Name)

	// A custom profile shadows a built-in of the same name.
	shadow := []model.HardwareProfile{testProfile("Standard", 890)}
	assert.Equal(t, 890.0, ResolveProfile("Standard", shadow).MaxAngleLength)
}

func TestImportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Imported", "max_angle_length": 990}`), 0644))

	profile, err := ImportProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Imported", profile.Name)
	assert.Equal(t, 990.0, profile.MaxAngleLength)
	assert.False(t, profile.IsBuiltIn)
}

func TestImportProfile_RequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_angle_length": 990}`), 0644))

	_, err := ImportProfile(path)
	assert.Error(t, err)
}

func TestImportProfile_MissingFile(t *testing.T) {
	_, err := ImportProfile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
