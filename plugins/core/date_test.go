package core

import (
	"context"
	"testing"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/tripmate/tools"
)

func newDateTool(t *testing.T) *DateTool {
	t.Helper()
	registry := tools.NewRegistry()
	gk := genkit.Init(context.Background())

	dt := NewClient(gk, registry).DateTool
	dt.Location = time.UTC
	dt.Now = func() time.Time {
		// Thursday
		return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	}
	return dt
}

func TestDateTool_Execute(t *testing.T) {
	dt := newDateTool(t)

	tests := []struct {
		name      string
		code      string
		want      string
		expectErr bool
	}{
		{name: "Date Object", code: "new Date('2026-01-02T00:00:00Z')", want: "2026-01-02"},
		{name: "ISO String", code: "'2026-01-02T00:00:00Z'", want: "2026-01-02"},
		{name: "Plain Date String", code: "'2026-03-15'", want: "2026-03-15"},
		{name: "Tomorrow", code: "new Date(now + 86400000)", want: "2026-01-02"},
		{name: "Number", code: "12345", expectErr: true},
		{name: "Null", code: "null", expectErr: true},
		{name: "Undefined", code: "var x = 1;", expectErr: true},
		{name: "Syntax Error", code: "new Date(", expectErr: true},
		{name: "Garbage String", code: "'next week'", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dt.Execute(context.Background(), &DateInput{Expression: tt.code})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Date)
		})
	}
}

func TestDateTool_Weekday(t *testing.T) {
	dt := newDateTool(t)

	res, err := dt.Execute(context.Background(), &DateInput{Expression: "new Date(now)"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", res.Date)
	assert.Equal(t, "Thursday", res.Weekday)
}

func TestDateTool_NilInput(t *testing.T) {
	_, err := NewDateTool(nil, nil).Execute(context.Background(), nil)
	assert.Error(t, err)
}

func TestDateTool_Registered(t *testing.T) {
	registry := tools.NewRegistry()
	NewClient(genkit.Init(context.Background()), registry)
	assert.Equal(t, []string{"date_calc"}, registry.Names())

	_, err := registry.ExecuteTool(context.Background(), "date_calc", map[string]interface{}{})
	assert.Error(t, err)
}
