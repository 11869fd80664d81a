package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawScoreMapReadsAbsentAsZero(t *testing.T) {
	var m RawScoreMap
	assert.Equal(t, 0, m.Get(Strength))
	assert.False(t, m.Has(Strength))
	assert.True(t, m.Empty())

	m = RawScoreMap{}
	m.Add(Strength, 10)
	m.Add(Strength, 10)
	m.Add(Speed, 5)
	assert.Equal(t, 20, m.Get(Strength))
	assert.Equal(t, 25, m.Total())
	assert.Equal(t, []string{Speed, Strength}, m.Categories())
}

func TestRawScoreMapClone(t *testing.T) {
	m := RawScoreMap{Logical: 10}
	c := m.Clone()
	c[Logical] = 99
	assert.Equal(t, 10, m[Logical])

	var nilMap RawScoreMap
	assert.NotNil(t, nilMap.Clone())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"skills", KindSkills},
		{"Psych", KindPersonality},
		{"physical", KindSports},
		{"creative", KindCreative},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("astrology")
	assert.Error(t, err)
}

func TestStoreKeysAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds {
		key := k.StoreKey()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(KindSports, Strength))
	assert.True(t, ValidCategory(KindPersonality, Openness))
	assert.False(t, ValidCategory(KindSports, "Strenght"))
	assert.False(t, ValidCategory(KindCreative, Logical))
}

func TestPhysicalStatsValidate(t *testing.T) {
	require.NoError(t, DefaultPhysicalStats().Validate())

	bad := DefaultPhysicalStats()
	bad.Gender = "Robot"
	bad.LocationType = "Moon"
	assert.Error(t, bad.Validate())

	g, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, g)
}
