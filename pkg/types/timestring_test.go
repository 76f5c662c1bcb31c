package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing minutes", input: "14", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "with seconds", input: "14:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("14:30")

	moved, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:15"), moved)

	moved, err = ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), moved)

	_, err = ts.AddMinutes(10 * 60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:45")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := TimeString("14:30").At(date)

	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2025, 6, 15, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), got)
}
