package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"Plain", "2025-11-01", Date{2025, time.November, 1}, false},
		{"Quoted", " '2025-07-15' ", Date{2025, time.July, 15}, false},
		{"DoubleQuoted", `"2025-12-31"`, Date{2025, time.December, 31}, false},
		{"DayFirst", "15-07-2025", Date{}, true},
		{"Empty", "", Date{}, true},
		{"NotADate", "tomorrow", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_TextRoundTrip(t *testing.T) {
	d := MustParseDate("2025-11-01")
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-11-01", string(b))

	var back Date
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, d, back)

	require.NoError(t, back.UnmarshalText([]byte("")))
	assert.True(t, back.IsZero())
	assert.Equal(t, "", back.String())
}

func TestAttraction_ClosedOnDate(t *testing.T) {
	closed := Attraction{ID: "a", Name: "A", ClosedOn: MustParseDate("2025-11-01")}
	open := Attraction{ID: "b", Name: "B"}

	assert.True(t, closed.ClosedOnDate(MustParseDate("2025-11-01")))
	assert.False(t, closed.ClosedOnDate(MustParseDate("2025-11-02")))
	assert.False(t, closed.ClosedOnDate(Date{}))
	assert.False(t, open.ClosedOnDate(Date{}))
	assert.False(t, open.ClosedOnDate(MustParseDate("2025-11-01")))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input []Attraction
		errIs string
	}{
		{"MissingID", []Attraction{{Name: "X"}}, "id is required"},
		{"UpperCaseID", []Attraction{{ID: "Luna", Name: "X"}}, "lowercase"},
		{"SpaceInID", []Attraction{{ID: "luna park", Name: "X"}}, "lowercase"},
		{"MissingName", []Attraction{{ID: "x"}}, "name is required"},
		{"NegativePrice", []Attraction{{ID: "x", Name: "X", Price: -1}}, "negative"},
		{"Duplicate", []Attraction{{ID: "x", Name: "X"}, {ID: "x", Name: "Y"}}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("", tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errIs)
		})
	}
}

func TestSydney_Order(t *testing.T) {
	c := Sydney()
	assert.Equal(t, []string{"luna_park", "opera_house", "harbour_bridge", "bondi_beach"}, c.IDs())
	assert.Equal(t, "AUD", c.Currency())
	assert.Equal(t, 4, c.Len())

	// Same order on every call.
	first := c.All()
	second := c.All()
	assert.Equal(t, first, second)
	assert.Equal(t, "luna_park", first[0].ID)
}

func TestCatalog_Immutable(t *testing.T) {
	c := Sydney()

	all := c.All()
	all[0].Name = "changed"
	all[0].Hours["weekday"] = "never"

	ids := c.IDs()
	ids[0] = "changed"

	luna, ok := c.Lookup("luna_park")
	require.True(t, ok)
	assert.Equal(t, "Luna Park", luna.Name)
	assert.Equal(t, "11:00 AM - 6:00 PM", luna.Hours["weekday"])
	assert.Equal(t, "luna_park", c.IDs()[0])
}

func TestCatalog_Each(t *testing.T) {
	var seen []string
	Sydney().Each(func(a Attraction) bool {
		seen = append(seen, a.ID)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"luna_park", "opera_house"}, seen)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.yaml")
		content := `currency: NZD
attractions:
  - id: sky_tower
    name: Sky Tower
    price: 35
    location: Auckland CBD
    closed_on: "2025-12-25"
  - id: waiheke
    name: Waiheke Island
    price: 0
    location: Hauraki Gulf
    note: Ferry not included
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := LoadFile(path, "")
		require.NoError(t, err)
		assert.Equal(t, "NZD", c.Currency())
		assert.Equal(t, []string{"sky_tower", "waiheke"}, c.IDs())

		tower, _ := c.Lookup("sky_tower")
		assert.Equal(t, MustParseDate("2025-12-25"), tower.ClosedOn)
		waiheke, _ := c.Lookup("waiheke")
		assert.True(t, waiheke.ClosedOn.IsZero())
		assert.Equal(t, "Ferry not included", waiheke.Note)
	})

	t.Run("JSONWithCurrencyOverride", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		content := `{"attractions":[{"id":"zoo","name":"Taronga Zoo","price":51,"location":"Mosman"}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := LoadFile(path, "USD")
		require.NoError(t, err)
		assert.Equal(t, "USD", c.Currency())
		assert.Equal(t, []string{"zoo"}, c.IDs())
	})

	t.Run("Empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("attractions: []\n"), 0o600))
		_, err := LoadFile(path, "")
		assert.Error(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"), "")
		assert.Error(t, err)
	})
}
