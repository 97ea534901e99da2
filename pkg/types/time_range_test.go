package types

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		in      TimeString
		want    int
		wantErr bool
	}{
		{name: "hours and minutes", in: "09:30", want: 570},
		{name: "minutes absent", in: "9", want: 540},
		{name: "padded", in: " 10:05 ", want: 605},
		{name: "end of day", in: "24:00", want: 1440},
		{name: "empty", in: "", wantErr: true},
		{name: "letters", in: "ab:cd", wantErr: true},
		{name: "minutes too large", in: "10:75", wantErr: true},
		{name: "past midnight", in: "25:00", wantErr: true},
		{name: "too many parts", in: "10:00:00", wantErr: true},
		{name: "negative", in: "-1:00", wantErr: true},
		{name: "huge hours", in: "153722867280912931:00", wantErr: true},
		{name: "hours out of range", in: "100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Minutes()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("09:15").OnDate(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC), got)
}

func TestTimeString_OnDateFollowsWallClockOnDSTChange(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 30 марта 2025 в Берлине часы переводятся с 02:00 на 03:00
	date := time.Date(2025, 3, 30, 0, 0, 0, 0, berlin)

	got, err := TimeString("09:00").OnDate(date, berlin)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.True(t, got.Equal(time.Date(2025, 3, 30, 7, 0, 0, 0, time.UTC)))
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "regular", in: "09:00 - 10:00", wantStart: 540, wantEnd: 600},
		{name: "trimmed", in: "  09:00 - 10:30  ", wantStart: 540, wantEnd: 630},
		{name: "no minutes", in: "9 - 10", wantStart: 540, wantEnd: 600},
		{name: "missing separator", in: "09:00-10:00", wantErr: true},
		{name: "three parts", in: "09:00 - 10:00 - 11:00", wantErr: true},
		{name: "garbage", in: "morning - evening", wantErr: true},
		{name: "reversed", in: "11:00 - 10:00", wantErr: true},
		{name: "empty interval", in: "10:00 - 10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.StartMinutes())
			assert.Equal(t, tt.wantEnd, got.EndMinutes())
		})
	}
}

func TestTimeRange_TouchesAndOverlaps(t *testing.T) {
	first, err := ParseTimeRange("09:00 - 10:00")
	require.NoError(t, err)
	second, err := ParseTimeRange("10:00 - 11:00")
	require.NoError(t, err)
	overlapping, err := ParseTimeRange("09:30 - 10:30")
	require.NoError(t, err)

	assert.True(t, first.Touches(second))
	assert.False(t, first.Overlaps(second))
	assert.True(t, first.Overlaps(overlapping))
	assert.False(t, first.Touches(overlapping))

	merged := first.ExtendTo(second)
	assert.Equal(t, "09:00 - 11:00", merged.String())
}
