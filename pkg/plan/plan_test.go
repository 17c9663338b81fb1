package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Mode
		wantErr bool
	}{
		{name: "empty_defaults_to_overwrite", in: "", want: ModeOverwrite},
		{name: "overwrite", in: "overwrite", want: ModeOverwrite},
		{name: "append_mixed_case", in: " Append ", want: ModeAppend},
		{name: "unknown", in: "merge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "overwrite", ModeOverwrite.String())
	assert.Equal(t, "append", ModeAppend.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name        string
		plan        Plan
		errContains string
	}{
		{name: "default_plan", plan: Default()},
		{
			name:        "empty_destination",
			plan:        Plan{{Source: "a.py", Destination: "  "}},
			errContains: "destination is required",
		},
		{
			name:        "empty_source",
			plan:        Plan{{Destination: "b.py"}},
			errContains: "source is required",
		},
		{
			name:        "unknown_mode",
			plan:        Plan{{Source: "a.py", Destination: "b.py", Mode: Mode(7)}},
			errContains: "unknown mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDefaultPlanAppendsFollowFirstWriter(t *testing.T) {
	written := map[string]bool{}
	for _, e := range Default() {
		if e.Mode == ModeAppend {
			assert.True(t, written[e.Destination], "append entry %s must follow a writer of %s", e.Source, e.Destination)
		}
		written[e.Destination] = true
	}
}

func TestDestinations(t *testing.T) {
	p := Plan{
		{Source: "a", Destination: "x"},
		{Source: "b", Destination: "x", Mode: ModeAppend},
		{Source: "c", Destination: "y"},
	}
	assert.Equal(t, []string{"x", "y"}, p.Destinations())
}
